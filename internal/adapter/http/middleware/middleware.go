package middleware

import (
	"fmt"
	"net/http"
	"time"

	"checkout-persistence/internal/adapter/http/cookiestore"
	"checkout-persistence/pkg/apperror"
	"checkout-persistence/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// SessionCookieName holds the opaque browser session ID.
	SessionCookieName = "ckp_sid"

	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxSessionID = "session_id"
)

// RequestID assigns every request an ID, reusing a well-formed inbound
// X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(response.CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Session makes sure the browser carries a session cookie and exposes its
// ID under CtxSessionID. Missing or malformed IDs are replaced.
func Session(attrs cookiestore.Attributes, log zerolog.Logger) gin.HandlerFunc {
	if attrs.Path == "" {
		attrs.Path = "/"
	}
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookieName)
		if _, parseErr := uuid.Parse(sid); err != nil || parseErr != nil {
			sid = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sid,
				Path:     attrs.Path,
				Domain:   attrs.Domain,
				Secure:   attrs.Secure,
				HttpOnly: true,
				SameSite: attrs.SameSite,
			})
			log.Debug().Str("session_id", sid).Msg("session started")
		}
		c.Set(CtxSessionID, sid)
		c.Next()
	}
}

// SessionID returns the session ID set by Session.
func SessionID(c *gin.Context) (string, bool) {
	sid := c.GetString(CtxSessionID)
	return sid, sid != ""
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(response.CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Error(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}
