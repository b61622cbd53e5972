package usecase

import (
	"time"

	"calendar-automation/internal/auth"
	"calendar-automation/internal/event"
	"calendar-automation/pkg/gcalendar"
	pkgLog "calendar-automation/pkg/log"
)

var _ event.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l           pkgLog.Logger
	llm         event.LLM
	sessions    auth.UseCase
	calendarFor event.CalendarFactory

	extractTimeout  time.Duration
	fallbackEnabled bool
	calendarID      string

	// now is the reference-time source, swapped out by tests.
	now func() time.Time
}

// Config holds the tunables for the event UseCase.
type Config struct {
	// ExtractTimeout bounds the model call. Zero means 30s.
	ExtractTimeout time.Duration

	// FallbackEnabled turns on the regex paragraph scanner when the model
	// call fails.
	FallbackEnabled bool

	// CalendarID is the target calendar; empty means "primary".
	CalendarID string
}

// New creates a new event UseCase instance.
func New(l pkgLog.Logger, llm event.LLM, sessions auth.UseCase, calendarFor event.CalendarFactory, cfg Config) *implUseCase {
	timeout := cfg.ExtractTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}

	return &implUseCase{
		l:               l,
		llm:             llm,
		sessions:        sessions,
		calendarFor:     calendarFor,
		extractTimeout:  timeout,
		fallbackEnabled: cfg.FallbackEnabled,
		calendarID:      calendarID,
		now:             time.Now,
	}
}
