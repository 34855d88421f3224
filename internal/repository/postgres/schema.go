package postgres

import (
	"context"
	"fmt"

	"github.com/ticklist/ticklist/internal/pkg/database"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS todos (
	id        BIGSERIAL PRIMARY KEY,
	text      TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT false
)
`

// EnsureSchema creates the todos table if it does not exist.
// Called once at startup before the repository serves requests.
func EnsureSchema(ctx context.Context, db *database.PostgresDB) error {
	if _, err := db.Pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure todos schema: %w", err)
	}
	return nil
}
