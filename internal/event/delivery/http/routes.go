package http

import (
	"github.com/gin-gonic/gin"

	"calendar-automation/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Both routes require an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/process", mw.RateLimit(), mw.Auth(), h.Process)
	rg.POST("/create", mw.RateLimit(), mw.Auth(), h.Create)
}
