package model

// Scope identifies the authenticated caller of a request. UserID is the
// opaque session id handed out after the OAuth callback; it carries no
// Google identity by itself.
type Scope struct {
	UserID string
}
