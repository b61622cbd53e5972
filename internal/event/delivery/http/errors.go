package http

import (
	"errors"

	"calendar-automation/internal/auth"
	"calendar-automation/internal/event"
	pkgErrors "calendar-automation/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "text is required")
	case errors.Is(err, event.ErrNoRecords):
		return pkgErrors.NewHTTPError(400, "no event records to create")
	case errors.Is(err, event.ErrNoEventsFound):
		return pkgErrors.NewHTTPError(400, "no events found in the provided text")
	case errors.Is(err, auth.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(401, "session expired, please authenticate again")
	case errors.Is(err, event.ErrExtractionFailed):
		return pkgErrors.NewHTTPError(502, "event extraction is temporarily unavailable")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
