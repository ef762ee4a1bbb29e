package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultSessionSecret = "change-me-session-secret"
	defaultAdminToken    = "change-me-admin-token"
)

// Config holds every runtime parameter of the gallery backend.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"dev"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"evermore.db"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Gallery session tokens.
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"2h"`

	// Access-gate rate limiting (advisory, keyed per client).
	RateLimitMaxAttempts int           `env:"RATE_LIMIT_MAX_ATTEMPTS" envDefault:"5"`
	RateLimitBlock       time.Duration `env:"RATE_LIMIT_BLOCK" envDefault:"15m"`

	// Admin surface.
	AdminToken        string `env:"ADMIN_TOKEN"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Image delivery and original storage.
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME" envDefault:"djrsrxkls"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3UseSSL    bool   `env:"S3_USE_SSL"`

	ZipCompressionLevel int `env:"ZIP_COMPRESSION_LEVEL" envDefault:"6"`
}

// Load reads a local .env when present, then parses the environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = defaultSessionSecret
	}
	if cfg.AdminToken == "" {
		cfg.AdminToken = defaultAdminToken
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.RateLimitMaxAttempts <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX_ATTEMPTS must be > 0")
	}
	if cfg.RateLimitBlock <= 0 {
		return fmt.Errorf("RATE_LIMIT_BLOCK must be > 0")
	}
	if cfg.ZipCompressionLevel < 0 || cfg.ZipCompressionLevel > 9 {
		return fmt.Errorf("ZIP_COMPRESSION_LEVEL must be in 0..9")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.SessionSecret, defaultSessionSecret) {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.AdminToken, defaultAdminToken) {
			return fmt.Errorf("in prod/release ADMIN_TOKEN must be set and not default")
		}
	}

	return nil
}

// S3Configured reports whether originals live in the object store; otherwise
// the bundler fetches originals from the CDN.
func (c *Config) S3Configured() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != "" && c.S3Bucket != ""
}

func isProdLike(envName string) bool {
	envName = strings.ToLower(strings.TrimSpace(envName))
	return envName == "prod" || envName == "production" || envName == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
