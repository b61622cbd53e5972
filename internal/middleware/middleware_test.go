package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-automation/internal/auth"
	"calendar-automation/internal/middleware"
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

type mockSessions struct {
	known map[string]bool
}

func (m *mockSessions) AuthURL(ctx context.Context) string { return "" }

func (m *mockSessions) HandleCallback(ctx context.Context, code string) (auth.Session, error) {
	return auth.Session{}, nil
}

func (m *mockSessions) Session(ctx context.Context, userID string) (auth.Session, error) {
	if !m.known[userID] {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return auth.Session{UserID: userID}, nil
}

func (m *mockSessions) Check(ctx context.Context, userID string) bool { return m.known[userID] }

func (m *mockSessions) Logout(ctx context.Context, userID string) error { return nil }

func newRouter(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw.RateLimit(), mw.Auth(), func(c *gin.Context) {
		sc, ok := middleware.ScopeFromContext(c)
		if !ok {
			c.String(http.StatusInternalServerError, "scope missing")
			return
		}
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func doGet(r *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	sessions := &mockSessions{known: map[string]bool{"sess-1": true}}
	mw := middleware.New(&mockLogger{}, sessions, middleware.Config{})
	r := newRouter(mw)

	t.Run("valid session passes with scope", func(t *testing.T) {
		w := doGet(r, "sess-1")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if w.Body.String() != "sess-1" {
			t.Errorf("scope user = %q", w.Body.String())
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("unknown session rejected", func(t *testing.T) {
		if w := doGet(r, "nope"); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	sessions := &mockSessions{known: map[string]bool{"sess-1": true, "sess-2": true}}

	t.Run("throttles a single session", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, sessions, middleware.Config{RequestsPerMinute: 1, Burst: 2})
		r := newRouter(mw)

		if w := doGet(r, "sess-1"); w.Code != http.StatusOK {
			t.Fatalf("first request: %d", w.Code)
		}
		if w := doGet(r, "sess-1"); w.Code != http.StatusOK {
			t.Fatalf("second request within burst: %d", w.Code)
		}
		if w := doGet(r, "sess-1"); w.Code != http.StatusTooManyRequests {
			t.Errorf("third request should be throttled, got %d", w.Code)
		}

		// A different session has its own bucket.
		if w := doGet(r, "sess-2"); w.Code != http.StatusOK {
			t.Errorf("other session throttled: %d", w.Code)
		}
	})

	t.Run("zero rate disables limiting", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, sessions, middleware.Config{})
		r := newRouter(mw)

		for i := 0; i < 10; i++ {
			if w := doGet(r, "sess-1"); w.Code != http.StatusOK {
				t.Fatalf("request %d: %d", i, w.Code)
			}
		}
	})
}
