package user_test

import (
	"database/sql"
	"testing"

	"projectboard/pkg/user"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)

	schema := `
	CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`

	_, err = db.Exec(schema)
	assert.NoError(t, err)

	return db
}

func setupTestBadDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)

	schema := `
	CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE
	);`

	_, err = db.Exec(schema)
	assert.NoError(t, err)

	return db
}

func TestMySQLRepo_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := user.NewMySQLRepo(db)

	_, err := db.Exec(
		"INSERT INTO users (id, email, password_hash) VALUES (?, ?, ?)",
		"user123", "admin@example.com", "hashed_pass",
	)
	assert.NoError(t, err)

	u, err := repo.FindByEmail("admin@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, u)
	assert.Equal(t, "user123", u.ID)
	assert.Equal(t, "admin@example.com", u.Email)
	assert.Equal(t, "hashed_pass", u.PasswordHash)

	u2, err := repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.Nil(t, u2)

	// storage faults must not look like a missing user
	db2 := setupTestBadDB(t)
	repo2 := user.NewMySQLRepo(db2)

	_, err = repo2.FindByEmail("whoever@example.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrNotFound)
}
