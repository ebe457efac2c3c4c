package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-console/internal/session"
	"github.com/noah-isme/aps-console/pkg/logger"
	"github.com/noah-isme/aps-console/pkg/response"
)

const (
	// SessionCookie carries the console session id for browser clients.
	SessionCookie = "aps_session"
	// SessionHeader carries the console session id for API clients.
	SessionHeader = "X-Session-ID"
	// ContextSessionKey is the gin context key storing the session controller.
	ContextSessionKey = "consoleSession"
)

type sessionLookup interface {
	Get(id string) (*session.Controller, error)
}

// Session resolves the caller's console session from the header or cookie
// and rejects requests without a live one.
func Session(sessions sessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := SessionIDFromRequest(c)
		ctrl, err := sessions.Get(id)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, ctrl)
		c.Set(logger.SessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// SessionIDFromRequest reads the session id, preferring the header.
func SessionIDFromRequest(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	if id, err := c.Cookie(SessionCookie); err == nil {
		return id
	}
	return ""
}

// SessionFromContext returns the controller attached by Session.
func SessionFromContext(c *gin.Context) *session.Controller {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	ctrl, ok := value.(*session.Controller)
	if !ok {
		return nil
	}
	return ctrl
}
