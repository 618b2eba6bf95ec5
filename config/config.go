package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Taxonomy  TaxonomyConfig  `mapstructure:"taxonomy"`
	Matching  MatchingConfig  `mapstructure:"matching"`
	Cache     CacheConfig     `mapstructure:"cache"`
	History   HistoryConfig   `mapstructure:"history"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TaxonomyConfig points at an optional YAML phrase list file.
// An empty path uses the built-in taxonomy.
type TaxonomyConfig struct {
	Path string `mapstructure:"path"`
}

// MatchingConfig holds the extraction pipeline parameters
type MatchingConfig struct {
	FuzzyThreshold     float64 `mapstructure:"fuzzy_threshold"`
	BrandProximity     int     `mapstructure:"brand_proximity"`
	ColorProximity     int     `mapstructure:"color_proximity"`
	QuantityProximity  int     `mapstructure:"quantity_proximity"`
	BudgetProximity    int     `mapstructure:"budget_proximity"`
	MergeWindow        int     `mapstructure:"merge_window"`
	MergeThreshold     float64 `mapstructure:"merge_threshold"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// HistoryConfig holds query history configuration
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Limit   int    `mapstructure:"limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
	Burst int `mapstructure:"burst"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/whispercart/")

	// Environment variable settings: WHISPERCART_CACHE_REDIS_URL -> cache.redis_url
	v.SetEnvPrefix("WHISPERCART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*", "http://localhost:*"})

	// Taxonomy defaults
	v.SetDefault("taxonomy.path", "")

	// Matching defaults
	v.SetDefault("matching.fuzzy_threshold", 70.0)
	v.SetDefault("matching.brand_proximity", 3)
	v.SetDefault("matching.color_proximity", 3)
	v.SetDefault("matching.quantity_proximity", 3)
	v.SetDefault("matching.budget_proximity", 5)
	v.SetDefault("matching.merge_window", 6)
	v.SetDefault("matching.merge_threshold", 85.0)
	v.SetDefault("matching.enable_debug_logging", false)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "24h")

	// History defaults
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "queries.db")
	v.SetDefault("history.limit", 10)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	m := config.Matching
	if m.FuzzyThreshold <= 0 || m.FuzzyThreshold > 100 {
		return fmt.Errorf("matching.fuzzy_threshold must be in (0, 100], got: %v", m.FuzzyThreshold)
	}
	if m.MergeThreshold <= 0 || m.MergeThreshold > 100 {
		return fmt.Errorf("matching.merge_threshold must be in (0, 100], got: %v", m.MergeThreshold)
	}
	if m.BrandProximity <= 0 || m.ColorProximity <= 0 || m.QuantityProximity <= 0 || m.BudgetProximity <= 0 {
		return fmt.Errorf("proximity thresholds must be positive")
	}
	if m.MergeWindow <= 0 {
		return fmt.Errorf("matching.merge_window must be positive, got: %d", m.MergeWindow)
	}

	if config.History.Enabled && config.History.Path == "" {
		return fmt.Errorf("history path is required when history is enabled")
	}

	// 0 disables rate limiting
	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("ratelimit.per_ip must not be negative, got: %d", config.RateLimit.PerIP)
	}

	return nil
}

// loadEnvFile exports KEY=VALUE pairs from ./.env without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(".env")
}
