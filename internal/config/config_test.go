package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DatabaseDriver != DriverPostgres {
		t.Errorf("Expected driver %q, got %q", DriverPostgres, cfg.DatabaseDriver)
	}
	if cfg.Port != 3000 {
		t.Errorf("Expected port 3000, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if cfg.WriteGuardEnabled() {
		t.Error("Expected write guard to be disabled by default")
	}
	if AppConfig != cfg {
		t.Error("Expected AppConfig to point at the loaded config")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "catalog.db")
	t.Setenv("PORT", "8081")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DatabaseDriver != DriverSQLite || cfg.DSN() != "catalog.db" {
		t.Errorf("Unexpected database settings: %q %q", cfg.DatabaseDriver, cfg.DSN())
	}
	if cfg.Addr() != ":8081" {
		t.Errorf("Expected :8081, got %s", cfg.Addr())
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("Expected 3s, got %s", cfg.ShutdownTimeout)
	}
	if !cfg.WriteGuardEnabled() {
		t.Error("Expected write guard to be enabled")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DATABASE_DRIVER": "mysql"}},
		{"sqlite without url", map[string]string{"DATABASE_DRIVER": "sqlite"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"port not a number", map[string]string{"PORT": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestDSNBuiltFromParts(t *testing.T) {
	cfg := &Config{
		DatabaseDriver:   DriverPostgres,
		DatabaseHost:     "db",
		DatabasePort:     5433,
		DatabaseUser:     "catalog",
		DatabasePassword: "pw",
		DatabaseName:     "games",
	}

	dsn := cfg.DSN()
	if !strings.HasPrefix(dsn, "postgres://catalog:pw@db:5433/games") {
		t.Errorf("Unexpected DSN %q", dsn)
	}
}
