package database

import (
	"context"
	"fmt"
	"os"
)

// RunMigrations applies the schema file. Statements are idempotent
// (CREATE ... IF NOT EXISTS) so repeated startups are safe.
func (db *DB) RunMigrations(ctx context.Context, schemaPath string) error {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}

	if _, err := db.Pool.Exec(ctx, string(schema)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}
