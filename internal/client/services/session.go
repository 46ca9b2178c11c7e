// Package services contains the application services of the ondo client:
// the session service (credential restore, login, logout) and the data
// service (server collections and their derived rollups).
package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ondoapp/ondo-cli/internal/client/api"
	"github.com/ondoapp/ondo-cli/internal/client/models"
	"github.com/ondoapp/ondo-cli/internal/client/repositories/credentials"
	"github.com/ondoapp/ondo-cli/internal/logging"
)

// SessionState is the authentication lifecycle state.
type SessionState string

const (
	StateRestoring       SessionState = "restoring"
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticated   SessionState = "authenticated"
)

// SessionService owns the in-memory session: the current token and user.
// It is the only mutator of the token; the API client re-reads it through
// Token at request-issue time.
//
// Persistence failures are logged and swallowed here: the in-memory
// session stays authoritative for the current process lifetime, so losing
// a cache write never blocks a successful authentication.
type SessionService struct {
	client api.Client
	store  credentials.Store
	log    logging.Logger

	mu    sync.RWMutex
	state SessionState
	token string
	user  models.User

	restoreOnce sync.Once
	hooks       []func()
}

// NewSessionService constructs a session in the restoring state.
func NewSessionService(client api.Client, store credentials.Store, log logging.Logger) *SessionService {
	return &SessionService{
		client: client,
		store:  store,
		log:    log.With("component", "session"),
		state:  StateRestoring,
	}
}

// State returns the current lifecycle state.
func (s *SessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the current bearer token, or "" when unauthenticated.
// Callers must re-read after every login/logout rather than caching it.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user. Meaningful only when authenticated.
func (s *SessionService) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// OnInvalidate registers a hook run after logout. Consumers use it to drop
// derived data; logout is a full state reset, not a partial one.
func (s *SessionService) OnInvalidate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Restore loads the persisted credential and resolves the restoring state.
// It runs at most once per process lifetime; nothing should fetch user
// data before it completes. Returns the resulting state.
func (s *SessionService) Restore(ctx context.Context) SessionState {
	s.restoreOnce.Do(func() {
		cred, err := s.store.Load(ctx)
		if err != nil {
			s.log.Warn(ctx, "credential restore failed", "error", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if cred == nil || cred.Token == "" {
			s.state = StateUnauthenticated
			return
		}
		s.token = cred.Token
		s.user = cred.User
		s.state = StateAuthenticated
		s.warnIfExpired(ctx, cred.Token)
	})
	return s.State()
}

// warnIfExpired inspects the cached JWT's exp claim without verifying the
// signature. Diagnostic only; an expired token still restores and fails on
// first use instead.
func (s *SessionService) warnIfExpired(ctx context.Context, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if exp.Before(time.Now()) {
		s.log.Warn(ctx, "cached token already expired", "expired_at", exp.Time)
	}
}

// Login authenticates against the backend and transitions to
// authenticated. The credential is persisted best-effort after the network
// call succeeds; callers must not assume durability from a successful
// return.
func (s *SessionService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	tr, err := s.client.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}

	s.adopt(ctx, tr)
	return tr.User, nil
}

// Register creates an account and, like Login, adopts the returned
// credential immediately.
func (s *SessionService) Register(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	tr, err := s.client.Register(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}

	s.adopt(ctx, tr)
	return tr.User, nil
}

// validateCredentials rejects blank (after trimming) email or password.
// The password itself is sent unmodified; only its emptiness is checked.
func validateCredentials(email, password string) error {
	if email == "" {
		return &api.ValidationError{Field: "email", Reason: "이메일을 입력해주세요"}
	}
	if strings.TrimSpace(password) == "" {
		return &api.ValidationError{Field: "password", Reason: "비밀번호를 입력해주세요"}
	}
	return nil
}

func (s *SessionService) adopt(ctx context.Context, tr *api.TokenResponse) {
	s.mu.Lock()
	s.token = tr.AccessToken
	s.user = tr.User
	s.state = StateAuthenticated
	s.mu.Unlock()

	cred := models.Credential{Token: tr.AccessToken, User: tr.User}
	if err := s.store.Save(ctx, cred); err != nil {
		s.log.Warn(ctx, "credential save failed", "error", err)
	}
}

// Logout clears the store and the in-memory session, then notifies the
// invalidation hooks. Store failures are logged and swallowed; the
// in-memory reset always happens.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "credential clear failed", "error", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = models.User{}
	s.state = StateUnauthenticated
	hooks := make([]func(), len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
