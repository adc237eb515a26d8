package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// NewDB opens a database connection pool for the given driver and DSN.
// Supported drivers: mysql (deployment) and sqlite3 (local/dev and tests).
// The pool is the process-wide storage handle; callers own its Close.
func NewDB(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case "mysql":
		rewritten, err := mysqlDSN(dsn)
		if err != nil {
			return nil, err
		}
		dsn = rewritten
	case "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite3" {
		// sqlite serializes writers; a single connection avoids
		// SQLITE_BUSY under concurrent requests.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// mysqlDSN enables clientFoundRows so RowsAffected counts matched rows, like
// sqlite's changes() does. Without it an UPDATE that rewrites identical
// values reports 0 affected rows and an owned task would look missing.
func mysqlDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}
