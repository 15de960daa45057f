package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/tx"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username      VARCHAR(50) PRIMARY KEY,
			email         VARCHAR(100) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			date_joined   TIMESTAMP NOT NULL DEFAULT NOW(),
			description   TEXT,
			CONSTRAINT users_email_key UNIQUE (email)
		);`,
		`CREATE TABLE IF NOT EXISTS user_friends (
			user_username   VARCHAR(50) NOT NULL REFERENCES users (username) ON UPDATE CASCADE ON DELETE CASCADE,
			friend_username VARCHAR(50) NOT NULL REFERENCES users (username) ON UPDATE CASCADE ON DELETE CASCADE,
			PRIMARY KEY (user_username, friend_username)
		);`,
		`CREATE TABLE IF NOT EXISTS user_books (
			username VARCHAR(50) NOT NULL REFERENCES users (username) ON UPDATE CASCADE ON DELETE CASCADE,
			book_id  TEXT NOT NULL,
			rating   INT,
			review   TEXT,
			status   TEXT,
			added_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (username, book_id)
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helper ---

// savepointRunner opens one ambient transaction and wraps it in a
// SavepointRunner so a test can compose several repository operations
// that see each other's writes. The ambient transaction is rolled back
// when the test ends, leaving the database untouched.
func savepointRunner(t *testing.T, db *sqlx.DB) *tx.SavepointRunner {
	txn, err := db.Beginx()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = txn.Rollback() })
	return tx.NewSavepointRunner(txn)
}

// plainHasher avoids bcrypt cost in tests that don't check hashing.
func plainHasher(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}
