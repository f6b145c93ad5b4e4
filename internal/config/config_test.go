package config

import (
	"strings"
	"testing"
)

func clearStorageEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_PORT", "MYSQL_HOST", "MYSQL_PORT", "MYSQL_DB", "MYSQL_USER", "MYSQL_PASS", "SQLITE_PATH", "REDIS_ADDR", "REDIS_DB"} {
		t.Setenv(k, "")
	}
}

func TestStorageDriver_Selection(t *testing.T) {
	clearStorageEnv(t)

	if d := Load().StorageDriver(); d != DriverMemory {
		t.Fatalf("driver = %s, want memory", d)
	}

	t.Setenv("SQLITE_PATH", "/tmp/loandesk.db")
	if d := Load().StorageDriver(); d != DriverSQLite {
		t.Fatalf("driver = %s, want sqlite", d)
	}

	// mysql wins over sqlite when both are set
	t.Setenv("MYSQL_HOST", "db.internal")
	if d := Load().StorageDriver(); d != DriverMySQL {
		t.Fatalf("driver = %s, want mysql", d)
	}
}

func TestValidate_MySQLRequiresPort(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "not-a-port")

	if err := Load().Validate(); err == nil {
		t.Fatal("expected invalid port error")
	}

	t.Setenv("MYSQL_PORT", "3306")
	if err := Load().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_MemoryNeedsNoDB(t *testing.T) {
	clearStorageEnv(t)
	if err := Load().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestMySQLDSN(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_DB", "loans")
	t.Setenv("MYSQL_USER", "svc")
	t.Setenv("MYSQL_PASS", "secret")

	dsn := Load().MySQLDSN()
	if !strings.HasPrefix(dsn, "svc:secret@tcp(db.internal:3307)/loans?") {
		t.Fatalf("dsn = %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn missing parseTime: %s", dsn)
	}
}
