// Package schema embeds the HR database schema and demo data.
package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hrdesk/hr-backend/pkg/database"
)

//go:embed schema.sql
var schemaSQL string

//go:embed seed.sql
var seedSQL string

// SchemaSQL returns the DDL applied by Apply.
func SchemaSQL() string { return schemaSQL }

// SeedSQL returns the demo data applied by Apply when seeding.
func SeedSQL() string { return seedSQL }

// Apply creates all tables and, if withSeed is set, loads the demo data.
// Everything runs in one transaction.
func Apply(ctx context.Context, db *database.DB, withSeed bool) error {
	return db.Transaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		if !withSeed {
			return nil
		}
		if _, err := tx.ExecContext(ctx, seedSQL); err != nil {
			return fmt.Errorf("failed to apply seed data: %w", err)
		}
		return nil
	})
}
