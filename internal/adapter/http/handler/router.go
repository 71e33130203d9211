package handler

import (
	"checkout-persistence/internal/adapter/http/cookiestore"
	"checkout-persistence/internal/adapter/http/middleware"
	redisStore "checkout-persistence/internal/adapter/storage/redis"
	"checkout-persistence/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Facade         FacadeFunc
	WalletSvc      ports.WalletJWTService // nil = wallet endpoints disabled
	SessionCookie  cookiestore.Attributes
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1", middleware.Session(deps.SessionCookie, deps.Logger))

	sessionHandler := NewSessionHandler(deps.Facade, deps.WalletSvc)
	session := v1.Group("/session")
	{
		read, write := rl("session_read"), rl("session_write")

		session.PUT("/maskedWallet", write, sessionHandler.PutMaskedWallet)
		session.GET("/maskedWallet", read, sessionHandler.GetMaskedWallet)
		session.PUT("/fullWallet", write, sessionHandler.PutFullWallet)
		session.GET("/fullWallet", read, sessionHandler.GetFullWallet)
		session.PUT("/changedJwt", write, sessionHandler.PutChangedJWT)
		session.GET("/changedJwt", read, sessionHandler.GetChangedJWT)
		session.PUT("/currentItem", write, sessionHandler.PutCurrentItem)
		session.GET("/currentItem", read, sessionHandler.GetCurrentItem)
		session.PUT("/cartItem", write, sessionHandler.PutCartItem)
		session.GET("/cartItem", read, sessionHandler.GetCartItem)
		session.DELETE("/cartItem/:index", write, sessionHandler.DeleteCartItem)
		session.PUT("/transactionId", write, sessionHandler.PutTransactionID)
		session.GET("/transactionId", read, sessionHandler.GetTransactionID)
		session.PUT("/email", write, sessionHandler.PutEmail)
		session.GET("/email", read, sessionHandler.GetEmail)
		session.PUT("/accessToken", write, sessionHandler.PutAccessToken)
		session.GET("/accessToken", read, sessionHandler.GetAccessToken)
	}

	if deps.WalletSvc != nil {
		walletHandler := NewWalletHandler(deps.WalletSvc, deps.Facade)
		wallet := v1.Group("/wallet", rl("wallet"))
		{
			wallet.GET("/masked-request", walletHandler.MaskedRequest)
			wallet.POST("/full-request", walletHandler.FullRequest)
			wallet.POST("/jwt/validate", walletHandler.ValidateJWT)
			wallet.GET("/transaction-status", walletHandler.TransactionStatus)
			wallet.POST("/transaction-status", walletHandler.TransactionStatus)
		}
	}

	return r
}
