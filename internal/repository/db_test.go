package repository

import (
	"strings"
	"testing"
)

func TestMysqlDSNClientFoundRows(t *testing.T) {
	out, err := mysqlDSN("root:password@tcp(127.0.0.1:3306)/tellis?parseTime=true")
	if err != nil {
		t.Fatalf("mysqlDSN() unexpected error: %v", err)
	}
	if !strings.Contains(out, "clientFoundRows=true") {
		t.Errorf("mysqlDSN() = %q, want clientFoundRows enabled", out)
	}
	if !strings.Contains(out, "parseTime=true") {
		t.Errorf("mysqlDSN() = %q, existing parameters must survive", out)
	}
}

func TestMysqlDSNInvalid(t *testing.T) {
	if _, err := mysqlDSN("not a dsn"); err == nil {
		t.Error("mysqlDSN() expected error for malformed DSN")
	}
}

func TestNewDBUnsupportedDriver(t *testing.T) {
	if _, err := NewDB("postgres", "whatever"); err == nil {
		t.Error("NewDB() expected error for unsupported driver")
	}
}
