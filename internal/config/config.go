package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

// Driver names the storage backend selected at startup. Callers never see
// the choice: both backends satisfy the same storage contract.
type Driver string

const (
	DriverMySQL  Driver = "mysql"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	SQLitePath string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: os.Getenv("MYSQL_HOST"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loandesk"),
		MySQLUser: getenv("MYSQL_USER", "loandesk"),
		MySQLPass: os.Getenv("MYSQL_PASS"),

		SQLitePath: os.Getenv("SQLITE_PATH"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		IdempTTLSecs: 300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

// StorageDriver picks the backend from the configuration shape: a MySQL host
// means the production relational store, a SQLite path the development file
// store, and neither means the seeded in-memory store.
func (c *Config) StorageDriver() Driver {
	switch {
	case c.MySQLHost != "":
		return DriverMySQL
	case c.SQLitePath != "":
		return DriverSQLite
	default:
		return DriverMemory
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.StorageDriver() != DriverMySQL {
		return nil
	}
	if c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
