package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Интеграционный тест: нужен живой Postgres в TEST_DATABASE_URL.
func TestAdminStore_FindByUsername(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	pool, err := Open(ctx, dsn)
	if err != nil {
		t.Skipf("database connection failed: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })
	// TEMP-таблица видна только в своём соединении
	pool.SetMaxOpenConns(1)

	_, err = pool.ExecContext(ctx, `CREATE TEMP TABLE administrators (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = pool.ExecContext(ctx,
		`INSERT INTO administrators (username, password_hash) VALUES ($1, $2)`, "admin", string(hash))
	require.NoError(t, err)

	store := NewAdminStore(pool)

	a, err := store.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "admin", a.Username)
	assert.Equal(t, string(hash), a.PasswordHash)

	// регистр важен
	a, err = store.FindByUsername(ctx, "Admin")
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = store.FindByUsername(ctx, "' OR '1'='1")
	require.NoError(t, err)
	assert.Nil(t, a)
}
