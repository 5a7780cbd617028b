// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration. The JWT secret deliberately lives
// here instead of a package-level variable: it is injected into the HTTP
// layer at startup so every signing/verification site shares one source.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	JWTSecret     string // secret used to sign access tokens
	TokenTTLHours int    // access token time-to-live in hours
	BcryptCost    int    // bcrypt cost for password hashing
}

// Load reads configuration from the environment. Required variables are
// enforced by must(); optional ones fall back to sane defaults.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "3000"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		JWTSecret:     must("JWT_SECRET"),
		TokenTTLHours: envInt("TOKEN_TTL_HOURS", 24),
		BcryptCost:    envInt("BCRYPT_COST", 10),
	}
}

// must retrieves a required environment variable or exits the process.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
