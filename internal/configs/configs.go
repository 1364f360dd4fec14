/*
Package configs is responsible for loading and parsing the application's configuration settings.

All settings are read from operating system environment variables: server parameters,
CORS origins, the token signing secret and fixed claim identifiers, the validity window,
the optional degraded-mode fallback token, the credential registry file, and the
Proof-of-Work difficulty of the credential endpoints.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTokenValidity is the validity window of issued meeting tokens.
	DefaultTokenValidity = 10 * time.Hour

	developmentSecret = "your_default_insecure_secret_key_change_me"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment   string
	Port          int
	LogLevel      string
	PowDifficulty int

	// Security Settings
	AllowedOrigins []string

	// Token Settings
	JWTSecret        string
	AppID            string
	Audience         string
	MeetDomain       string
	TokenValidity    time.Duration
	GuestEmailDomain string
	FallbackToken    string

	// Credential Registry Settings
	RegistryFile string
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary type conversions and validation.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = envOr("ENVIRONMENT", "development")
	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	port, err := strconv.Atoi(envOr("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	if port < 1024 || port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", port, 1024, 65535)
	}
	cfg.Port = port

	difficulty, err := strconv.Atoi(envOr("POW_DIFFICULTY", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid POW_DIFFICULTY environment variable: %w", err)
	}
	if difficulty < 0 || difficulty > 8 {
		return nil, fmt.Errorf("POW_DIFFICULTY must be between 0 and 8, got %d", difficulty)
	}
	cfg.PowDifficulty = difficulty

	// --- Security Settings ---
	cfg.AllowedOrigins = []string{}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// --- Token Settings ---
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
		cfg.JWTSecret = developmentSecret
	}

	cfg.AppID = envOr("JWT_APP_ID", "mydeploy1")
	cfg.Audience = envOr("JWT_AUDIENCE", "jitsi")
	cfg.MeetDomain = envOr("MEET_DOMAIN", "jit.shancloudservice.com")
	cfg.GuestEmailDomain = envOr("GUEST_EMAIL_DOMAIN", "classroom.com")

	cfg.TokenValidity = DefaultTokenValidity
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		validity, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_VALIDITY environment variable: %w", err)
		}
		if validity <= 0 {
			return nil, fmt.Errorf("TOKEN_VALIDITY must be positive, got %s", validity)
		}
		cfg.TokenValidity = validity
	}

	// The fallback token is strictly opt-in; an empty value disables degraded mode.
	cfg.FallbackToken = strings.TrimSpace(os.Getenv("FALLBACK_TOKEN"))

	// --- Credential Registry Settings ---
	cfg.RegistryFile = os.Getenv("REGISTRY_FILE")

	return cfg, nil
}
