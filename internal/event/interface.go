package event

import (
	"context"

	"golang.org/x/oauth2"

	"calendar-automation/internal/model"
	"calendar-automation/pkg/gcalendar"
	"calendar-automation/pkg/gemini"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// Process turns the user's raw text into calendar event records without
	// inserting anything.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// Create inserts previously extracted records into the user's primary
	// calendar.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
}

// LLM is the generative-text collaborator used for extraction.
type LLM interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// CalendarClient is the per-user Google Calendar collaborator.
type CalendarClient interface {
	UserTimezone(ctx context.Context) (string, error)
	InsertEvent(ctx context.Context, calendarID string, rec gcalendar.EventRecord) (*gcalendar.Event, error)
}

// CalendarFactory builds a CalendarClient from a session's OAuth token.
type CalendarFactory func(ctx context.Context, token *oauth2.Token) (CalendarClient, error)
