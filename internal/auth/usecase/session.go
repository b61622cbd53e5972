package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"calendar-automation/internal/auth"
)

// AuthURL returns the Google consent-screen URL. Offline access is requested
// so the token source can refresh expired tokens without re-consent.
func (uc *implUseCase) AuthURL(ctx context.Context) string {
	return uc.oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// HandleCallback exchanges the authorization code and opens a session.
func (uc *implUseCase) HandleCallback(ctx context.Context, code string) (auth.Session, error) {
	if strings.TrimSpace(code) == "" {
		return auth.Session{}, auth.ErrEmptyCode
	}

	token, err := uc.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return auth.Session{}, fmt.Errorf("%w: %v", auth.ErrExchangeFailed, err)
	}

	sess := auth.Session{
		UserID:    uuid.NewString(),
		Token:     token,
		CreatedAt: time.Now(),
	}
	uc.sessions.Add(sess.UserID, sess)

	uc.l.Infof(ctx, "auth: opened session %s", sess.UserID)
	return sess, nil
}

// Session returns the live session for the given user id.
func (uc *implUseCase) Session(ctx context.Context, userID string) (auth.Session, error) {
	sess, ok := uc.sessions.Get(userID)
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return sess, nil
}

// Check reports whether the user id maps to a live session with a token.
func (uc *implUseCase) Check(ctx context.Context, userID string) bool {
	sess, ok := uc.sessions.Get(userID)
	return ok && sess.Token != nil && sess.Token.AccessToken != ""
}

// Logout drops the session.
func (uc *implUseCase) Logout(ctx context.Context, userID string) error {
	if !uc.sessions.Remove(userID) {
		return auth.ErrSessionNotFound
	}
	uc.l.Infof(ctx, "auth: closed session %s", userID)
	return nil
}
