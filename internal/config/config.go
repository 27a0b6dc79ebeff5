package config

import (
	"os"
	"time"

	"hr-identity-service/internal/pkg/sessions"
)

type AppConfig struct {
	// Server
	HTTPAddr    string
	TLSCertFile string
	TLSKeyFile  string

	// Storage
	DatabaseURL string

	// Sessions
	SessionTTL time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8443"),
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		SessionTTL: getEnvDuration("SESSION_TTL", sessions.DefaultTTL),
	}
}

// TLSEnabled reports whether a certificate pair was configured.
func (c AppConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
