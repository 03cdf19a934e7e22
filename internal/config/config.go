// Package config builds the process-wide configuration once at startup.
// Everything that needs a setting receives the Config by reference; the
// rest of the codebase never reads environment variables directly.
package config

import (
	"errors"
	"os"
	"time"
)

// Config holds runtime settings for the wdconnect server.
//
// Fields:
//   - Port: HTTP listen port.
//   - MongoURI / MongoDatabase: document store connection settings.
//   - JWTSecret: HMAC secret for signing bearer tokens (HS256).
//   - JWTValidityDuration: bearer token lifetime, fixed at issuance.
//   - GithubClientID / GithubClientSecret: credentials for the GitHub
//     repository proxy route.
type Config struct {
	Port                string
	MongoURI            string
	MongoDatabase       string
	JWTSecret           string
	JWTValidityDuration time.Duration
	GithubClientID      string
	GithubClientSecret  string
}

// ErrMissingJWTSecret is returned by Load when no signing secret is set.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET not set")

// Load builds a Config from environment variables, applying defaults for
// everything except the signing secret, which has no safe default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "5000"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:       getEnv("MONGO_DB", "wdconnect"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTValidityDuration: 100 * time.Hour,
		GithubClientID:      os.Getenv("GITHUB_CLIENT_ID"),
		GithubClientSecret:  os.Getenv("GITHUB_CLIENT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, err
		}
		cfg.JWTValidityDuration = parsed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
