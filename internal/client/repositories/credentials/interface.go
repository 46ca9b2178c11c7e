// Package credentials persists the auth token and cached user profile in
// the local database so a session survives process restarts.
package credentials

import (
	"context"

	"github.com/ondoapp/ondo-cli/internal/client/models"
)

// Store is the persistence contract for the credential.
//
// Contract:
//   - Load: (nil, nil) when no token is stored. A token without a cached
//     user record yields the placeholder user instead of failing.
//   - Save: token and user are written as two independent entries; the
//     first failure is reported, writes already done are kept.
//   - Clear: removes both entries atomically (both-or-neither observable).
type Store interface {
	Load(ctx context.Context) (*models.Credential, error)
	Save(ctx context.Context, cred models.Credential) error
	Clear(ctx context.Context) error
}
