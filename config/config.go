package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment (and .env).
type Config struct {
	Port          string `mapstructure:"PORT"`
	DBURL         string `mapstructure:"DB_URL"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	CORSOrigin    string `mapstructure:"CORS_ORIGIN"`
	GinMode       string `mapstructure:"GIN_MODE"`

	OIDCIssuerURL    string `mapstructure:"OIDC_ISSUER_URL"`
	OIDCClientID     string `mapstructure:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `mapstructure:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURL  string `mapstructure:"OIDC_REDIRECT_URL"`
	// FrontendURL is where the browser lands after login and logout.
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var keys = []string{
	"PORT", "DB_URL", "SESSION_SECRET", "ADMIN_EMAIL", "CORS_ORIGIN", "GIN_MODE",
	"OIDC_ISSUER_URL", "OIDC_CLIENT_ID", "OIDC_CLIENT_SECRET", "OIDC_REDIRECT_URL",
	"FRONTEND_URL", "LOG_LEVEL", "LOG_FORMAT",
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found. Using system environment variables.")
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("FRONTEND_URL", "/")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.AdminEmail = strings.TrimSpace(cfg.AdminEmail)
	return &cfg, nil
}

// RequireDatabase fails when DB_URL is missing.
func (c *Config) RequireDatabase() error {
	if c.DBURL == "" {
		return errors.New("missing required environment variable: DB_URL")
	}
	return nil
}

// RequireServer fails when anything serve needs is missing.
func (c *Config) RequireServer() error {
	if err := c.RequireDatabase(); err != nil {
		return err
	}
	if c.SessionSecret == "" {
		return errors.New("missing required environment variable: SESSION_SECRET")
	}
	return nil
}

// OIDCEnabled reports whether the login routes can be mounted.
func (c *Config) OIDCEnabled() bool {
	return c.OIDCIssuerURL != "" && c.OIDCClientID != ""
}
