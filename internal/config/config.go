package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	CatalogSourceSeed     = "seed"
	CatalogSourcePostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Database  DatabaseConfig  `yaml:"database"`
	Session   SessionConfig   `yaml:"session"`
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains listener settings for the HTTP API and the gRPC health endpoint
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	GRPCPort int    `yaml:"grpc_port"`
}

// CatalogConfig selects where the vehicle catalog is loaded from at startup
type CatalogConfig struct {
	Source       string `yaml:"source"`    // "seed" or "postgres"
	SeedFile     string `yaml:"seed_file"` // optional override of the embedded seed
	ProjectorCap int    `yaml:"projector_cache_size"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SessionConfig contains browsing session settings
type SessionConfig struct {
	Secret      string `yaml:"secret"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// HTTPConfig contains HTTP middleware settings
type HTTPConfig struct {
	CORSOrigin     string  `yaml:"cors_origin"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	EvictIdleSessions string `yaml:"evict_idle_sessions"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse builds a configuration from YAML bytes, applies env overrides and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("GRPC_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.GRPCPort)
	}

	// Catalog
	if val := os.Getenv("CATALOG_SOURCE"); val != "" {
		c.Catalog.Source = val
	}
	if val := os.Getenv("CATALOG_SEED_FILE"); val != "" {
		c.Catalog.SeedFile = val
	}

	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Session
	if val := os.Getenv("SESSION_SECRET"); val != "" {
		c.Session.Secret = val
	}
	if val := os.Getenv("SESSION_IDLE_MINUTES"); val != "" {
		fmt.Sscanf(val, "%d", &c.Session.IdleMinutes)
	}

	// HTTP
	if val := os.Getenv("CORS_ORIGIN"); val != "" {
		c.HTTP.CORSOrigin = val
	}
	if val := os.Getenv("RATE_LIMIT_RPS"); val != "" {
		fmt.Sscanf(val, "%g", &c.HTTP.RateLimitRPS)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = c.Server.Port + 1
	}
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 || c.Server.GRPCPort == c.Server.Port {
		return fmt.Errorf("invalid gRPC port: %d", c.Server.GRPCPort)
	}

	// Catalog validation
	c.Catalog.Source = strings.ToLower(c.Catalog.Source)
	if c.Catalog.Source == "" {
		c.Catalog.Source = CatalogSourceSeed
	}
	switch c.Catalog.Source {
	case CatalogSourceSeed:
	case CatalogSourcePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	default:
		return fmt.Errorf("unknown catalog source: %q", c.Catalog.Source)
	}
	if c.Catalog.ProjectorCap < 0 {
		return fmt.Errorf("projector cache size must not be negative")
	}
	if c.Catalog.ProjectorCap == 0 {
		c.Catalog.ProjectorCap = 128
	}

	// Session validation
	if c.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters")
	}
	if c.Session.IdleMinutes <= 0 {
		c.Session.IdleMinutes = 30
	}

	// HTTP defaults
	if c.HTTP.CORSOrigin == "" {
		c.HTTP.CORSOrigin = "*"
	}
	// A zero rate disables limiting
	if c.HTTP.RateLimitRPS < 0 {
		return fmt.Errorf("invalid rate limit: %v", c.HTTP.RateLimitRPS)
	}
	if c.HTTP.RateLimitRPS > 0 && c.HTTP.RateLimitBurst <= 0 {
		c.HTTP.RateLimitBurst = max(1, int(math.Ceil(2*c.HTTP.RateLimitRPS)))
	}

	// Scheduler defaults
	if c.Scheduler.EvictIdleSessions == "" {
		c.Scheduler.EvictIdleSessions = "0 */5 * * * *" // every 5 minutes
	}

	return nil
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

// GetServerAddress returns the HTTP API address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC health endpoint address
func (c *Config) GetGRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}
