package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for a fresh ledger.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the ledger schema. Tests load it via
// GetSchemaSQL() so repository code and schema cannot drift apart.
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Stock movements (one row per inventory mutation)
CREATE TABLE IF NOT EXISTS stock_movements (
	id TEXT PRIMARY KEY,
	checkout_id TEXT,
	actor TEXT NOT NULL DEFAULT '',
	action TEXT NOT NULL CHECK(action IN ('add', 'remove', 'price', 'purchase')),
	category TEXT NOT NULL,
	name TEXT NOT NULL,
	colour TEXT NOT NULL,
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_stock_movements_item ON stock_movements(name, colour);
CREATE INDEX IF NOT EXISTS idx_stock_movements_checkout ON stock_movements(checkout_id);
`

// InitSchema creates the ledger schema or brings an older ledger up to date.
func InitSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		// schema_version table exists - run any pending migrations
		return RunMigrations(db)
	}

	// Fresh ledger - create the current schema directly
	if _, err := db.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := createVersionTable(db); err != nil {
		return err
	}

	// Mark all migrations as applied for fresh installs
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
