package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_NormalizedDriver(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		expected string
	}{
		{"empty defaults to sqlite", "", "sqlite"},
		{"sqlite passes through", "sqlite", "sqlite"},
		{"postgres passes through", "postgres", "postgres"},
		{"postgresql canonicalizes", "postgresql", "postgres"},
		{"mixed case is normalized", "Postgres", "postgres"},
		{"surrounding whitespace is trimmed", "  sqlite  ", "sqlite"},
		{"unknown driver is reported lower-cased", "MySQL", "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DatabaseConfig{Driver: tt.driver}
			assert.Equal(t, tt.expected, cfg.NormalizedDriver())
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("postgres DSN carries every field", func(t *testing.T) {
		cfg := &DatabaseConfig{
			Driver:   "Postgres",
			Host:     "db.internal",
			Port:     "5432",
			User:     "recetario",
			Password: "s3cret",
			Name:     "recetario",
			SSLMode:  "require",
		}
		assert.Equal(t,
			"host=db.internal user=recetario password=s3cret dbname=recetario port=5432 sslmode=require",
			cfg.DSN())
	})

	t.Run("sqlite DSN is the path", func(t *testing.T) {
		cfg := &DatabaseConfig{Driver: "sqlite", Path: "/tmp/recetas.db"}
		assert.Equal(t, "/tmp/recetas.db", cfg.DSN())
	})

	t.Run("sqlite without a path falls back to the default file", func(t *testing.T) {
		cfg := &DatabaseConfig{}
		assert.Equal(t, DefaultSQLitePath, cfg.DSN())
	})

	t.Run("unknown driver yields no DSN", func(t *testing.T) {
		cfg := &DatabaseConfig{Driver: "oracle"}
		assert.Equal(t, "", cfg.DSN())
	})
}

func TestDatabaseConfig_StringMasksPassword(t *testing.T) {
	cfg := &DatabaseConfig{Driver: "postgres", Password: "s3cret", User: "recetario"}
	out := cfg.String()
	assert.NotContains(t, out, "s3cret")
	assert.Contains(t, out, "[REDACTED]")
}
