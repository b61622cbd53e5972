package auth

import (
	"time"

	"golang.org/x/oauth2"
)

// Session holds one user's OAuth tokens in memory. Sessions are keyed by an
// opaque user id and evicted by TTL; nothing is ever persisted.
type Session struct {
	UserID    string
	Token     *oauth2.Token
	CreatedAt time.Time
}
