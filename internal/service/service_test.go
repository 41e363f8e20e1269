package service

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/lifefinance/navigator/internal/db"
	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := db.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return database
}

func strPtr(s string) *string { return &s }

func createTestUser(t *testing.T, users repository.UserRepository, user *model.User) *model.User {
	t.Helper()
	require.NoError(t, users.Create(user))
	return user
}
