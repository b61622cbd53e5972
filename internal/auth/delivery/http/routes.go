package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The OAuth
// endpoints are deliberately unauthenticated, they are how a session starts.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/google", h.AuthURL)
	rg.GET("/google/callback", h.Callback)
	rg.GET("/check", h.Check)
	rg.POST("/logout", h.Logout)
}
