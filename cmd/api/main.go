package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-persistence/config"
	"checkout-persistence/internal/adapter/http/cookiestore"
	httpHandler "checkout-persistence/internal/adapter/http/handler"
	"checkout-persistence/internal/adapter/storage/memory"
	pgStorage "checkout-persistence/internal/adapter/storage/postgres"
	redisStorage "checkout-persistence/internal/adapter/storage/redis"
	sqliteStorage "checkout-persistence/internal/adapter/storage/sqlite"
	"checkout-persistence/internal/core/ports"
	"checkout-persistence/internal/service"
	"checkout-persistence/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

// cookieSessionTTL bounds server-side session cookies, which have no expiry of their own.
const cookieSessionTTL = 24 * time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("durable", cfg.Durable.Backend).
		Str("cookies", cfg.Cookies.Backend).
		Msg("Starting checkout persistence service")

	ctx := context.Background()
	var checkers []ports.HealthChecker

	// Redis is needed for the redis backends and for rate limiting.
	var rdb *goredis.Client
	if cfg.Durable.Backend == config.BackendRedis || cfg.Cookies.Backend == config.BackendRedis || cfg.RateLimit.Enabled {
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected")
	}

	// Durable backend
	var durable ports.DurableStoreFactory
	switch cfg.Durable.Backend {
	case config.BackendPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare PostgreSQL schema")
		}
		durable = pgStorage.NewDurableStore(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected")
	case config.BackendSQLite:
		store, err := sqliteStorage.Open(ctx, cfg.Durable.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open SQLite database")
		}
		defer store.Close()
		durable = store
		checkers = append(checkers, store)
		log.Info().Str("path", cfg.Durable.SQLitePath).Msg("SQLite opened")
	case config.BackendMemory:
		durable = memory.NewDurableBackend(memory.WithMaxSessions(cfg.Durable.MaxSessions))
		log.Warn().Msg("Durable values are kept in memory and lost on restart")
	default:
		durable = redisStorage.NewDurableStore(rdb)
	}

	// Cookie backend
	attrs := cookiestore.Attributes{
		Domain:   cfg.Cookies.Domain,
		Path:     cfg.Cookies.Path,
		Secure:   cfg.Cookies.Secure,
		HTTPOnly: cfg.Cookies.HTTPOnly,
		SameSite: cookiestore.ParseSameSite(cfg.Cookies.SameSite),
	}

	var cookies httpHandler.CookieStoreFunc
	switch cfg.Cookies.Backend {
	case config.BackendRedis:
		cookies = httpHandler.SessionCookies(redisStorage.NewCookieStore(rdb, cookieSessionTTL))
	case config.BackendMemory:
		cookies = httpHandler.SessionCookies(memory.NewCookieBackend(nil))
	default:
		var sealer ports.ValueSealer
		if cfg.Cookies.Secret != "" {
			cs, err := service.NewCookieSealer(cfg.Cookies.Secret)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize cookie sealer")
			}
			sealer = cs
		} else {
			log.Warn().Msg("cookies.secret not set, cookie values are stored in clear text")
		}
		cookies = cookiestore.Provider(attrs, sealer, logger.Component(log, "cookies"))
	}

	// Wallet JWT service
	var walletSvc ports.WalletJWTService
	if cfg.Wallet.MerchantSecret != "" {
		walletSvc = service.NewWalletJWTService(service.WalletMerchant{
			ID:       cfg.Wallet.MerchantID,
			Secret:   cfg.Wallet.MerchantSecret,
			Name:     cfg.Wallet.MerchantName,
			ClientID: cfg.Wallet.ClientID,
			Currency: cfg.Wallet.Currency,
		})
		log.Info().Bool("sandbox", cfg.Wallet.IsSandbox()).Msg("Wallet request signing enabled")
	} else {
		log.Warn().Msg("wallet.merchant_secret not set, wallet endpoints disabled")
	}

	// Initialize rate limit store
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.RateLimit.Enabled {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Facade:         httpHandler.NewFacade(durable, cookies, log),
		WalletSvc:      walletSvc,
		SessionCookie:  attrs,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
