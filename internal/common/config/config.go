// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Catalog       CatalogConfig      `mapstructure:"catalog"`
	Users         UsersConfig        `mapstructure:"users"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Metrics       MetricsConfig      `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
	Environment     string `mapstructure:"environment"`
	DefaultLanguage string `mapstructure:"default_language"`
}

type ServerConfig struct {
	Address         string   `mapstructure:"address"`
	RequestTimeout  int      `mapstructure:"request_timeout"`  // milliseconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // milliseconds
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

// CatalogConfig points at an optional scheme dataset on disk. When Path is
// empty the dataset compiled into the binary is used.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// UsersConfig selects the user profile store: "memory" or "redis".
type UsersConfig struct {
	Store     string `mapstructure:"store"`
	TTL       int    `mapstructure:"ttl"` // seconds, 0 keeps profiles until eviction
	KeyPrefix string `mapstructure:"key_prefix"`
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address      string `mapstructure:"address"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

// NotificationConfig holds settings for SMS delivery of eligibility summaries.
type NotificationConfig struct {
	SMS struct {
		Enabled  bool   `mapstructure:"enabled"`
		SenderID string `mapstructure:"sender_id"`
		MaxItems int    `mapstructure:"max_items"`
		Timeout  int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// UsesRedis reports whether user profiles are kept in Redis.
func (c *Config) UsesRedis() bool {
	return c.Users.Store == StoreRedis
}

// UserTTL returns the configured profile expiry.
func (u UsersConfig) UserTTL() time.Duration {
	return time.Duration(u.TTL) * time.Second
}

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)
