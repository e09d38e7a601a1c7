package database

import (
	"fmt"
	"strings"
)

// DefaultSQLitePath is where the recipe store lives when no DB_PATH is set.
const DefaultSQLitePath = "recetario.sqlite"

// DatabaseConfig carries the connection settings for the recipe store.
// Postgres is the deployment target; sqlite backs local development and the
// test suite. Only the fields of the selected driver are read.
type DatabaseConfig struct {
	Driver string

	// postgres
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// sqlite
	Path string
}

// NormalizedDriver canonicalizes the configured driver name. An empty value
// means sqlite; unknown names are passed through lower-cased so the caller
// can report them.
func (c *DatabaseConfig) NormalizedDriver() string {
	switch driver := strings.ToLower(strings.TrimSpace(c.Driver)); driver {
	case "", "sqlite":
		return "sqlite"
	case "postgres", "postgresql":
		return "postgres"
	default:
		return driver
	}
}

// DSN builds the connection string for the normalized driver.
func (c *DatabaseConfig) DSN() string {
	switch c.NormalizedDriver() {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite":
		if c.Path == "" {
			return DefaultSQLitePath
		}
		return c.Path
	default:
		return ""
	}
}

// String returns a loggable representation with the password masked.
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.NormalizedDriver(), c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}
