package repository

import (
	"context"
	"database/sql"
	"testing"
)

// newTestDB opens an in-memory sqlite database with the schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(context.Background(), db, "sqlite3"); err != nil {
		t.Fatalf("Migrate() unexpected error: %v", err)
	}

	return db
}
