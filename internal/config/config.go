package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DATABASE_HOST"`
	DatabasePort     int    `mapstructure:"DATABASE_PORT"`
	DatabaseUser     string `mapstructure:"DATABASE_USER"`
	DatabasePassword string `mapstructure:"DATABASE_PASSWORD"`
	DatabaseName     string `mapstructure:"DATABASE_NAME"`

	Port            int           `mapstructure:"PORT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	JWTSecret  string `mapstructure:"JWT_SECRET"`
	APIKeyHash string `mapstructure:"API_KEY_HASH"`
}

var AppConfig *Config

var defaults = map[string]any{
	"DATABASE_DRIVER":   DriverPostgres,
	"DATABASE_URL":      "",
	"DATABASE_HOST":     "localhost",
	"DATABASE_PORT":     5432,
	"DATABASE_USER":     "postgres",
	"DATABASE_PASSWORD": "",
	"DATABASE_NAME":     "postgres",
	"PORT":              3000,
	"GIN_MODE":          "release",
	"SHUTDOWN_TIMEOUT":  "10s",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
	"JWT_SECRET":        "",
	"API_KEY_HASH":      "",
}

// LoadConfig loads the configuration from a .env file and environment variables.
// Environment variables take precedence over the file.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Unmarshal only sees env vars for keys viper already knows about.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	AppConfig = &cfg
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseDriver == DriverSQLite && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for the sqlite driver")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// DSN returns DATABASE_URL, or for postgres a URL built from the discrete
// DATABASE_* settings when no URL is given.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" || c.DatabaseDriver != DriverPostgres {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DatabaseUser, c.DatabasePassword),
		Host:     c.DatabaseHost + ":" + strconv.Itoa(c.DatabasePort),
		Path:     "/" + c.DatabaseName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// WriteGuardEnabled reports whether mutating routes require credentials.
func (c *Config) WriteGuardEnabled() bool {
	return c.JWTSecret != "" || c.APIKeyHash != ""
}
