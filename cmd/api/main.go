package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/oauth2"

	"calendar-automation/config"
	_ "calendar-automation/docs" // Swagger docs
	authHTTP "calendar-automation/internal/auth/delivery/http"
	authUC "calendar-automation/internal/auth/usecase"
	"calendar-automation/internal/event"
	eventHTTP "calendar-automation/internal/event/delivery/http"
	eventUC "calendar-automation/internal/event/usecase"
	"calendar-automation/internal/httpserver"
	"calendar-automation/internal/middleware"
	"calendar-automation/pkg/gcalendar"
	"calendar-automation/pkg/gemini"
	"calendar-automation/pkg/log"
)

// @title       Calendar Automation API
// @description Turns free-form text into Google Calendar events using Gemini extraction and natural language date resolution.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Automation...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Auth domain: OAuth client + in-memory session store
	sessionUC := authUC.New(logger, authUC.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		SessionTTL:   cfg.Session.TTL,
		MaxSessions:  cfg.Session.MaxEntries,
	})
	authHandler := authHTTP.New(logger, sessionUC, cfg.Google.FrontendURL)

	// 4. Event domain: Gemini extraction + per-session calendar clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, gemini.WithModel(cfg.Gemini.Model))

	calendarFor := func(ctx context.Context, token *oauth2.Token) (event.CalendarClient, error) {
		return gcalendar.NewClientFromToken(ctx, sessionUC.OAuthConfig(), token)
	}

	extractorUC := eventUC.New(logger, geminiClient, sessionUC, calendarFor, eventUC.Config{
		ExtractTimeout:  cfg.Extraction.Timeout,
		FallbackEnabled: cfg.Extraction.FallbackEnabled,
		CalendarID:      cfg.Google.CalendarID,
	})
	eventHandler := eventHTTP.New(logger, extractorUC)

	// 5. Middleware
	mw := middleware.New(logger, sessionUC, middleware.Config{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		AuthHandler:  authHandler,
		EventHandler: eventHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
