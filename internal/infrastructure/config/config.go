package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Dashboard   DashboardConfig `mapstructure:"dashboard"`
	Window      WindowConfig    `mapstructure:"window"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// DashboardConfig tunes the transaction dashboard and order queue
type DashboardConfig struct {
	PageSize               int    `mapstructure:"pageSize"`
	SearchDebounceMs       int    `mapstructure:"searchDebounceMs"`
	FreshnessWindowSeconds int    `mapstructure:"freshnessWindowSeconds"`
	FetchTimeoutSeconds    int    `mapstructure:"fetchTimeoutSeconds"`
	SearchResultCap        int    `mapstructure:"searchResultCap"`
	Location               string `mapstructure:"location"`
	RefreshSchedule        string `mapstructure:"refreshSchedule"`
	CacheCleanupMinutes    int    `mapstructure:"cacheCleanupMinutes"`
}

// WindowConfig tunes the virtual scroll window
type WindowConfig struct {
	RowHeight  float64 `mapstructure:"rowHeight"`
	BufferRows int     `mapstructure:"bufferRows"`
	ThrottleMs int     `mapstructure:"throttleMs"`
	Threshold  int     `mapstructure:"threshold"`
}

// RateLimitConfig limits requests per client IP
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond"`
	Burst             int     `mapstructure:"burst"`
}

// LoadLocation resolves the configured dashboard time zone; blank means UTC
func (d DashboardConfig) LoadLocation() (*time.Location, error) {
	if d.Location == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(d.Location)
}
