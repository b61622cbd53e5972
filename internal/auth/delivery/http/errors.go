package http

import (
	"errors"

	"calendar-automation/internal/auth"
	pkgErrors "calendar-automation/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrEmptyCode):
		return pkgErrors.NewHTTPError(400, "authorization code is required")
	case errors.Is(err, auth.ErrExchangeFailed):
		return pkgErrors.NewHTTPError(502, "could not exchange authorization code")
	case errors.Is(err, auth.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(401, "unknown session")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
