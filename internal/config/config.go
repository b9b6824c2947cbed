package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Startup configuration errors. These are fatal: the process must not
// start without a signing secret or a store to talk to.
var (
	ErrMissingSecret   = errors.New("JWT_SECRET is required")
	ErrMissingMongoURI = errors.New("MONGO_URI is required")
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string
	Env             string // dev or prod
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	TrustedOrigins  []string // CORS allowed origins
}

type MongoConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	// Secret signs HS256 tokens; any non-empty byte string is accepted
	Secret            []byte
	TokenExpiry       time.Duration
	MinPasswordLength int
}

type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
}

const (
	defaultTokenExpiry       = time.Hour
	defaultRateLimitWindow   = 60 * time.Second
	defaultRateLimitMax      = 20
	defaultMinPasswordLength = 8
	defaultMongoDatabase     = "adventure"
)

// Load reads configuration from environment variables.
// A .env file is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Env:             getEnv("APP_ENV", "dev"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			TrustedOrigins:  getSliceEnv("TRUSTED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DB", defaultMongoDatabase),
		},
		Auth: AuthConfig{
			Secret:            []byte(getEnv("JWT_SECRET", "")),
			TokenExpiry:       getExpiryEnv("TOKEN_EXPIRY", defaultTokenExpiry),
			MinPasswordLength: getIntEnv("MIN_PASSWORD_LENGTH", defaultMinPasswordLength),
		},
		RateLimit: RateLimitConfig{
			Window:      getMillisEnv("RATE_LIMIT_WINDOW_MS", defaultRateLimitWindow),
			MaxRequests: getIntEnv("RATE_LIMIT_MAX", defaultRateLimitMax),
		},
	}

	if len(cfg.Auth.Secret) == 0 {
		return nil, ErrMissingSecret
	}
	if cfg.Mongo.URI == "" {
		return nil, ErrMissingMongoURI
	}

	return cfg, nil
}

// IsDevelopment returns true if the environment is set to dev
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "dev"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return time.Duration(seconds) * time.Second
}

func getMillisEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	millis, err := strconv.Atoi(value)
	if err != nil || millis <= 0 {
		return defaultValue
	}

	return time.Duration(millis) * time.Millisecond
}

// getExpiryEnv accepts either plain integer seconds ("3600") or a
// unit-suffixed duration ("90m", "1h30m"). Anything else falls back
// to the default.
func getExpiryEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds <= 0 {
			return defaultValue
		}
		return time.Duration(seconds) * time.Second
	}

	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}

	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
