// Package api implements the REST client for the ondo backend. It owns
// request authentication (bearer token attachment), the per-endpoint DTOs,
// and the normalization of transport and HTTP failures into the client's
// error taxonomy.
package api

import (
	"context"
	"encoding/json"

	"github.com/ondoapp/ondo-cli/internal/client/models"
)

// Client is the backend surface the services consume.
//
// Contract:
//   - Login/Register: exchange credentials for a token + user.
//   - Radar: per-category scores and an overall score for the current user.
//   - Categories/Personas: the raw collections the rollup is derived from.
//   - CreateCategory: create a new category owned by the current user.
//   - Health: unauthenticated connectivity probe.
//   - AITest/AIChat: ancillary test endpoints.
//
// All methods honor context cancellation. Failures are one of
// *AuthError, *NetworkError, or *ProtocolError.
type Client interface {
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	Register(ctx context.Context, email, password string) (*TokenResponse, error)
	Radar(ctx context.Context) (*RadarResponse, error)
	Categories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	Personas(ctx context.Context) ([]models.Persona, error)
	Health(ctx context.Context) error
	AITest(ctx context.Context) (json.RawMessage, error)
	AIChat(ctx context.Context, prompt string, maxTokens int) (*ChatResponse, error)
}

// TokenSource returns the current bearer token, or "" when the session is
// unauthenticated. The client re-reads it on every request; only the
// session manager mutates the underlying value.
type TokenSource func() string
