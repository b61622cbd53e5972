package http

import (
	"github.com/gin-gonic/gin"

	"calendar-automation/internal/auth"
	"calendar-automation/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	AuthURL(c *gin.Context)
	Callback(c *gin.Context)
	Check(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          auth.UseCase
	frontendURL string
}

// New creates a new HTTP handler for the auth domain. frontendURL is where the
// OAuth callback redirects the browser after a successful exchange.
func New(l log.Logger, uc auth.UseCase, frontendURL string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		frontendURL: frontendURL,
	}
}
