package auth

import "context"

// UseCase defines the business logic interface for the auth domain.
type UseCase interface {
	// AuthURL returns the Google consent-screen URL to redirect the user to.
	AuthURL(ctx context.Context) string

	// HandleCallback exchanges the authorization code for tokens and opens a
	// new session, returning it with a freshly minted opaque user id.
	HandleCallback(ctx context.Context, code string) (Session, error)

	// Session returns the live session for the given user id, or
	// ErrSessionNotFound.
	Session(ctx context.Context, userID string) (Session, error)

	// Check reports whether the given user id maps to a live session.
	Check(ctx context.Context, userID string) bool

	// Logout drops the session. Returns ErrSessionNotFound when there is
	// nothing to drop.
	Logout(ctx context.Context, userID string) error
}
