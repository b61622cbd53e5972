package gcalendar

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultCalendarID is the user's primary calendar.
const DefaultCalendarID = "primary"

// Client wraps the Google Calendar API service for a single user.
type Client struct {
	service *calendar.Service
}

// NewClientFromToken creates a Calendar client bound to one user's OAuth
// token. The token source refreshes the token transparently when it expires.
func NewClientFromToken(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*Client, error) {
	tokenSource := cfg.TokenSource(ctx, token)
	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP
// client. Used by tests to point the service at a local server.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, endpoint string) (*Client, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// UserTimezone returns the user's calendar timezone setting, e.g.
// "Europe/Berlin". Callers should fall back to UTC on error.
func (c *Client) UserTimezone(ctx context.Context) (string, error) {
	setting, err := c.service.Settings.Get("timezone").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to read timezone setting: %w", err)
	}
	return setting.Value, nil
}

// InsertEvent inserts one event record into the given calendar. The record's
// wall-clock timestamps and timezone name pass through verbatim.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, rec EventRecord) (*Event, error) {
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	event := &calendar.Event{
		Summary:     rec.Summary,
		Description: rec.Description,
		Start: &calendar.EventDateTime{
			DateTime: rec.Start.DateTime,
			TimeZone: rec.Start.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: rec.End.DateTime,
			TimeZone: rec.End.TimeZone,
		},
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
	}, nil
}
