package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaFor returns the DDL for the given driver. Application-generated
// string keys and application-written UTC timestamps keep the schema portable
// across mysql and sqlite. The one per-driver difference is the email column:
// mysql's default utf8mb4 collations compare case-insensitively, and emails
// are unique and matched exactly as stored, so mysql gets a binary collation.
func schemaFor(driver string) []string {
	emailCollate := ""
	if driver == "mysql" {
		emailCollate = " COLLATE utf8mb4_bin"
	}
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
		id            VARCHAR(36) PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255)%s NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at    TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	)`, emailCollate),
		`CREATE TABLE IF NOT EXISTS tasks (
		id          VARCHAR(36) PRIMARY KEY,
		user_id     VARCHAR(36) NOT NULL,
		name        VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL,
		updated_at  TIMESTAMP NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	}
}

// Migrate creates the schema for the given driver if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	for _, stmt := range schemaFor(driver) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
