// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the ledger schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/stockroom/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// every pooled connection to :memory: would see its own empty database
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedMovement inserts a ledger row and returns its ID.
func seedMovement(t *testing.T, db *sql.DB, id, action, name, colour string) string {
	t.Helper()
	if id == "" {
		id = "MOV-001"
	}
	if action == "" {
		action = "add"
	}
	_, err := db.Exec(
		"INSERT INTO stock_movements (id, action, category, name, colour) VALUES (?, ?, 'clothes', ?, ?)",
		id, action, name, colour,
	)
	if err != nil {
		t.Fatalf("failed to seed movement: %v", err)
	}
	return id
}
