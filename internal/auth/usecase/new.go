package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"calendar-automation/internal/auth"
	pkgLog "calendar-automation/pkg/log"
)

const (
	defaultSessionTTL = 12 * time.Hour
	defaultMaxEntries = 1024
)

// Config holds the OAuth client settings and session store limits.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	SessionTTL   time.Duration
	MaxSessions  int
}

var _ auth.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l        pkgLog.Logger
	oauthCfg *oauth2.Config
	sessions *expirable.LRU[string, auth.Session]
}

// New creates a new auth UseCase with an in-memory TTL session store.
func New(l pkgLog.Logger, cfg Config) *implUseCase {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	maxEntries := cfg.MaxSessions
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}

	return &implUseCase{
		l: l,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{calendar.CalendarScope},
			Endpoint:     google.Endpoint,
		},
		sessions: expirable.NewLRU[string, auth.Session](maxEntries, nil, ttl),
	}
}

// OAuthConfig exposes the oauth2 client config so per-session Google API
// clients can be built from stored tokens.
func (uc *implUseCase) OAuthConfig() *oauth2.Config {
	return uc.oauthCfg
}
