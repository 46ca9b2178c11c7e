package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondoapp/ondo-cli/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestLoad_Empty_ReturnsNilNil(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	cred, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	in := models.Credential{
		Token: "tok-123",
		User:  models.User{ID: "u1", Email: "a@b.kr"},
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Token, out.Token)
	assert.Equal(t, in.User, out.User)
}

func TestLoad_TokenWithoutUser_SubstitutesPlaceholder(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO credentials(key, value) VALUES('auth_token', ?)`, []byte("tok"))
	require.NoError(t, err)

	cred, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "tok", cred.Token)
	assert.Equal(t, models.PlaceholderUser(), cred.User)
}

func TestLoad_CorruptUser_SubstitutesPlaceholder(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO credentials(key, value) VALUES('auth_token', ?), ('auth_user', ?)`,
		[]byte("tok"), []byte("{not json"))
	require.NoError(t, err)

	cred, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, models.PlaceholderUser(), cred.User)
}

func TestClear_RemovesBothEntries(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Credential{Token: "t", User: models.User{ID: "u"}}))
	require.NoError(t, s.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM credentials`).Scan(&n))
	assert.Equal(t, 0, n)

	cred, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestSave_Upsert_Overwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Credential{Token: "old", User: models.User{ID: "u1"}}))
	require.NoError(t, s.Save(ctx, models.Credential{Token: "new", User: models.User{ID: "u2"}}))

	cred, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "new", cred.Token)
	assert.Equal(t, "u2", cred.User.ID)
}
