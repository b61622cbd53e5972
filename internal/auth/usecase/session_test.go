package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"calendar-automation/internal/auth"
	"calendar-automation/internal/auth/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestUseCase(t *testing.T) (auth.UseCase, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Form.Get("code") == "bad-code" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "at-123", "token_type": "Bearer", "refresh_token": "rt-456", "expires_in": 3600}`))
	}))
	t.Cleanup(ts.Close)

	uc := usecase.New(&mockLogger{}, usecase.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
		SessionTTL:   time.Minute,
		MaxSessions:  8,
	})
	// Point the token endpoint at the local server.
	uc.OAuthConfig().Endpoint = oauth2.Endpoint{
		AuthURL:  ts.URL + "/auth",
		TokenURL: ts.URL + "/token",
	}
	return uc, ts
}

func TestAuthURL(t *testing.T) {
	uc, _ := newTestUseCase(t)

	url := uc.AuthURL(context.Background())
	if url == "" {
		t.Fatalf("expected non-empty auth URL")
	}
}

func TestSessionLifecycle(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	sess, err := uc.HandleCallback(ctx, "good-code")
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	if sess.UserID == "" {
		t.Fatalf("expected opaque user id")
	}
	if sess.Token == nil || sess.Token.AccessToken != "at-123" {
		t.Fatalf("unexpected token: %+v", sess.Token)
	}

	if !uc.Check(ctx, sess.UserID) {
		t.Errorf("Check should report a live session")
	}

	got, err := uc.Session(ctx, sess.UserID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if got.UserID != sess.UserID {
		t.Errorf("session id mismatch: %s vs %s", got.UserID, sess.UserID)
	}

	if err := uc.Logout(ctx, sess.UserID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if uc.Check(ctx, sess.UserID) {
		t.Errorf("Check should report no session after logout")
	}
	if err := uc.Logout(ctx, sess.UserID); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Errorf("second Logout should return ErrSessionNotFound, got %v", err)
	}
}

func TestHandleCallbackErrors(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	if _, err := uc.HandleCallback(ctx, "   "); !errors.Is(err, auth.ErrEmptyCode) {
		t.Errorf("expected ErrEmptyCode, got %v", err)
	}

	if _, err := uc.HandleCallback(ctx, "bad-code"); !errors.Is(err, auth.ErrExchangeFailed) {
		t.Errorf("expected ErrExchangeFailed, got %v", err)
	}
}

func TestSessionNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Session(context.Background(), "nope")
	if !errors.Is(err, auth.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
