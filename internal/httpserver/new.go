package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "calendar-automation/internal/auth/delivery/http"
	eventHTTP "calendar-automation/internal/event/delivery/http"
	"calendar-automation/internal/middleware"
	"calendar-automation/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw           middleware.Middleware
	authHandler  authHTTP.Handler
	eventHandler eventHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware   middleware.Middleware
	AuthHandler  authHTTP.Handler
	EventHandler eventHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           cfg.Middleware,
		authHandler:  cfg.AuthHandler,
		eventHandler: cfg.EventHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	if srv.eventHandler == nil {
		return errors.New("event handler is required")
	}
	return nil
}
