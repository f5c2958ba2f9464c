package database

import (
	"fmt"
	"strings"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
	// DriverMemory keeps records in process memory; no connection is opened.
	DriverMemory = "memory"
)

// Config holds database connection settings.
type Config struct {
	Driver         string `yaml:"driver" envconfig:"DB_DRIVER"`
	DSN            string `yaml:"dsn" envconfig:"DATABASE_URL"`
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	Path           string `yaml:"path" envconfig:"DB_PATH"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
	MigrationsDir  string `yaml:"migrations_dir" envconfig:"DB_MIGRATIONS_DIR"`
}

// Normalize validates the driver and fills defaults.
func (c *Config) Normalize() error {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	switch c.Driver {
	case "", "postgresql", DriverPostgres:
		c.Driver = DriverPostgres
		if c.DSN == "" && (c.Host == "" || c.Name == "") {
			return fmt.Errorf("database.host and database.name (or database.dsn) are required for postgres")
		}
		if c.SSLMode == "" {
			c.SSLMode = "disable"
		}
		if c.Port == "" {
			c.Port = "5432"
		}
	case "sqlite", DriverSQLite:
		c.Driver = DriverSQLite
		if strings.TrimSpace(c.Path) == "" {
			c.Path = "tynys.db"
		}
	case DriverMemory:
	default:
		return fmt.Errorf("invalid database.driver %q; allowed: postgres, sqlite3, memory", c.Driver)
	}
	if c.MaxConnections <= 0 {
		c.MaxConnections = 10
	}
	if c.Driver == DriverSQLite {
		// sqlite allows a single writer at a time.
		c.MaxConnections = 1
	}
	if strings.TrimSpace(c.MigrationsDir) == "" {
		c.MigrationsDir = "migrations"
	}
	return nil
}

// ConnString returns the driver-specific connection string for database/sql.
func (c Config) ConnString() string {
	switch c.Driver {
	case DriverSQLite:
		return c.Path + "?_busy_timeout=5000"
	default:
		if c.DSN != "" {
			return c.DSN
		}
		return fmt.Sprintf(
			"user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
			c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
		)
	}
}

// MigrationURL returns the golang-migrate database URL.
func (c Config) MigrationURL() string {
	switch c.Driver {
	case DriverSQLite:
		return "sqlite3://" + c.Path
	default:
		if c.DSN != "" {
			return c.DSN
		}
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
		)
	}
}
