package handler

import (
	"checkout-persistence/internal/core/ports"
	"checkout-persistence/internal/service"
	"checkout-persistence/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CookieStoreFunc returns the expiring store for the request's session.
type CookieStoreFunc func(c *gin.Context, sessionID string) ports.CookieStore

// SessionCookies adapts a server-side cookie backend to a CookieStoreFunc.
func SessionCookies(factory ports.CookieStoreFactory) CookieStoreFunc {
	return func(_ *gin.Context, sessionID string) ports.CookieStore {
		return factory.ForSession(sessionID)
	}
}

// NewFacade builds a FacadeFunc that creates a PersistenceService per request
// over the given durable backend and cookie store.
func NewFacade(durable ports.DurableStoreFactory, cookies CookieStoreFunc, log zerolog.Logger) FacadeFunc {
	log = logger.Component(log, "persistence")
	return func(c *gin.Context, sessionID string, refresher ports.CartRefresher) ports.PersistenceService {
		return service.NewPersistenceService(
			durable.ForSession(sessionID),
			cookies(c, sessionID),
			refresher,
			log.With().Str("session_id", sessionID).Logger(),
		)
	}
}
