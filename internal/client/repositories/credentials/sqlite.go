package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ondoapp/ondo-cli/internal/client/models"
	"github.com/ondoapp/ondo-cli/internal/dbx"
)

// Fixed keys in the credentials table.
const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// SQLiteStore keeps the credential in a key-value table managed by the
// embedded migrations.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// Load reads the persisted token and user. A missing token means no
// credential (nil, nil). A token whose user record is missing or corrupt
// is still usable: the placeholder user is substituted.
func (s *SQLiteStore) Load(ctx context.Context) (*models.Credential, error) {
	token, err := get(ctx, s.db, tokenKey)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	cred := &models.Credential{Token: string(token), User: models.PlaceholderUser()}

	raw, err := get(ctx, s.db, userKey)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		var user models.User
		if err := json.Unmarshal(raw, &user); err == nil {
			cred.User = user
		}
	}
	return cred, nil
}

// Save upserts the token and the user as two independent writes.
func (s *SQLiteStore) Save(ctx context.Context, cred models.Credential) error {
	if err := set(ctx, s.db, tokenKey, []byte(cred.Token)); err != nil {
		return err
	}
	raw, err := json.Marshal(cred.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return set(ctx, s.db, userKey, raw)
}

// Clear removes both entries in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, tokenKey); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, userKey); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		return nil
	})
}
