package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/ticklist/ticklist/internal/config"
	"github.com/ticklist/ticklist/internal/pkg/database"
	"github.com/ticklist/ticklist/internal/pkg/logger"
)

// getTestDB returns a database connection for integration tests.
// Skips the calling test if the database is not available.
func getTestDB(t *testing.T) *database.PostgresDB {
	if os.Getenv("POSTGRES_TEST_HOST") == "" {
		t.Skip("Skipping integration test: POSTGRES_TEST_HOST not set")
		return nil
	}

	_ = logger.Init(logger.Config{Level: "error", Format: "console"})

	cfg := config.PostgresConfig{
		Host:     os.Getenv("POSTGRES_TEST_HOST"),
		Port:     5432,
		User:     os.Getenv("POSTGRES_TEST_USER"),
		Password: os.Getenv("POSTGRES_TEST_PASS"),
		Database: os.Getenv("POSTGRES_TEST_DB"),
		SSLMode:  "disable",
		MaxConns: 5,
		MinConns: 1,
	}

	if cfg.Database == "" {
		cfg.Database = "test_ticklist"
	}
	if cfg.User == "" {
		cfg.User = "postgres"
	}

	db, err := database.NewPostgres(context.Background(), cfg)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to PostgreSQL: %v", err)
		return nil
	}

	if err := EnsureSchema(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to ensure schema: %v", err)
	}

	return db
}

// cleanupTodos removes test todos from the database
func cleanupTodos(t *testing.T, db *database.PostgresDB, texts ...string) {
	ctx := context.Background()
	for _, text := range texts {
		_, _ = db.Pool.Exec(ctx, "DELETE FROM todos WHERE text = $1", text)
	}
}
