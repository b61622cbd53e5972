package middleware

import (
	"github.com/gin-gonic/gin"

	"calendar-automation/internal/model"
	"calendar-automation/pkg/response"
)

const (
	// HeaderUserID carries the session ID handed out by the OAuth callback.
	HeaderUserID = "X-User-ID"

	scopeKey = "scope"
)

// Auth validates the session header against the session store and attaches
// the request scope to the gin context. Requests without a live session are
// rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Unauthorized(c, "missing "+HeaderUserID+" header")
			c.Abort()
			return
		}

		if !m.sessions.Check(c.Request.Context(), userID) {
			response.Unauthorized(c, "session expired, please authenticate again")
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the scope attached by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
