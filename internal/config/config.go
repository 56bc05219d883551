package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Admin     AdminConfig     `yaml:"admin"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Storage   StorageConfig   `yaml:"storage"`
	Cache     CacheConfig     `yaml:"cache"`
	Email     EmailConfig     `yaml:"email"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host                string `yaml:"host" env:"SERVER_HOST"`
	Port                int    `yaml:"port" env:"SERVER_PORT"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds" env:"SERVER_READ_TIMEOUT_SECONDS"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds" env:"SERVER_WRITE_TIMEOUT_SECONDS"`
	SeedDemoData        bool   `yaml:"seed_demo_data" env:"SEED_DEMO_DATA"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Database string `yaml:"database" env:"DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
	MaxConns int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" env:"LOG_FORMAT"` // "json" or "text"
}

// AdminConfig holds the single administrator credential and token settings
type AdminConfig struct {
	Username           string `yaml:"username" env:"ADMIN_USERNAME"`
	PasswordHash       string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"` // bcrypt
	TokenSecret        string `yaml:"token_secret" env:"ADMIN_TOKEN_SECRET"`
	TokenExpiryMinutes int    `yaml:"token_expiry_minutes" env:"ADMIN_TOKEN_EXPIRY_MINUTES"`
}

// CORSConfig lists origins allowed to call the API from a browser
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// RateLimitConfig throttles the public submission endpoints per client
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"`
	Burst             int     `yaml:"burst" env:"RATE_LIMIT_BURST"`
}

// StorageConfig contains image storage settings
type StorageConfig struct {
	UploadDir      string   `yaml:"upload_dir" env:"UPLOAD_DIR"`
	BaseURL        string   `yaml:"base_url" env:"STORAGE_BASE_URL"`
	MaxImageSizeMB int64    `yaml:"max_image_size_mb" env:"STORAGE_MAX_IMAGE_SIZE_MB"`
	AllowedTypes   []string `yaml:"allowed_types" env:"STORAGE_ALLOWED_TYPES" envSeparator:","`
}

// CacheConfig configures the Redis read cache for public listings
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled" env:"CACHE_ENABLED"`
	Address    string `yaml:"address" env:"REDIS_ADDRESS"`
	Password   string `yaml:"password" env:"REDIS_PASSWORD"`
	DB         int    `yaml:"db" env:"REDIS_DB"`
	TTLSeconds int    `yaml:"ttl_seconds" env:"CACHE_TTL_SECONDS"`
}

// EmailConfig contains SendGrid settings for administrator notifications
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
	From           string `yaml:"from" env:"EMAIL_FROM"`
	FromName       string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
	AdminRecipient string `yaml:"admin_recipient" env:"EMAIL_ADMIN_RECIPIENT"`
}

// SchedulerConfig contains cron schedule settings.
// InProcess runs the jobs inside the API server; leave it off when cmd/cronjob is deployed.
type SchedulerConfig struct {
	ModerationDigest string `yaml:"moderation_digest" env:"SCHEDULE_MODERATION_DIGEST"`
	InProcess        bool   `yaml:"in_process" env:"SCHEDULER_IN_PROCESS"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Environment variables win over the file; unset variables leave fields untouched.
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Admin.Username == "" {
		return fmt.Errorf("admin username is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("admin password hash is required")
	}
	if len(c.Admin.TokenSecret) < 32 {
		return fmt.Errorf("admin token secret must be at least 32 characters")
	}

	if c.Storage.UploadDir == "" {
		return fmt.Errorf("upload directory is required")
	}

	if c.Cache.Enabled && c.Cache.Address == "" {
		return fmt.Errorf("cache address is required when cache is enabled")
	}

	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeoutSeconds == 0 {
		c.Server.ReadTimeoutSeconds = 15
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		c.Server.WriteTimeoutSeconds = 30
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Admin.TokenExpiryMinutes == 0 {
		c.Admin.TokenExpiryMinutes = 24 * 60
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 1
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 5
	}
	if c.Storage.MaxImageSizeMB == 0 {
		c.Storage.MaxImageSizeMB = 5
	}
	if len(c.Storage.AllowedTypes) == 0 {
		c.Storage.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 300
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "Spartans Cricket Club"
	}
	if c.Scheduler.ModerationDigest == "" {
		c.Scheduler.ModerationDigest = "0 0 8 * * *" // 8 AM UTC daily
	}
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// TokenTTL returns the admin token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Admin.TokenExpiryMinutes) * time.Minute
}

// MaxImageBytes returns the upload limit in bytes
func (c *Config) MaxImageBytes() int64 {
	return c.Storage.MaxImageSizeMB << 20
}
