package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "LD"

// ErrNoDotEnv is returned when no .env file exists in the search paths
var ErrNoDotEnv = errors.New("no .env file found in search paths")

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside development
	_ = loadDotEnvFile()

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first path that has it and applies
// environment overrides on top
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return ErrNoDotEnv
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, exports can be large
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 10)    // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")

	v.SetDefault("dashboard.pageSize", 500)
	v.SetDefault("dashboard.searchDebounceMs", 150)
	v.SetDefault("dashboard.freshnessWindowSeconds", 30)
	v.SetDefault("dashboard.fetchTimeoutSeconds", 30)
	v.SetDefault("dashboard.searchResultCap", 1000)
	v.SetDefault("dashboard.location", "UTC")
	v.SetDefault("dashboard.refreshSchedule", "@every 30s")
	v.SetDefault("dashboard.cacheCleanupMinutes", 10)

	v.SetDefault("window.rowHeight", 48)
	v.SetDefault("window.bufferRows", 10)
	v.SetDefault("window.throttleMs", 16)
	v.SetDefault("window.threshold", 5)

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerSecond", 20)
	v.SetDefault("rateLimit.burst", 40)
}

// getEnvironment determines the environment from LD_ENV, development when unset
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over the config file
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"LD_DB_HOST":               "database.host",
		"LD_DB_PORT":               "database.port",
		"LD_DB_USERNAME":           "database.username",
		"LD_DB_PASSWORD":           "database.password",
		"LD_DB_NAME":               "database.database",
		"LD_DB_SSL_MODE":           "database.sslMode",
		"LD_SERVER_HOST":           "server.host",
		"LD_LOGGER_LEVEL":          "logger.level",
		"LD_DASHBOARD_LOCATION":    "dashboard.location",
		"LD_DASHBOARD_SCHEDULE":    "dashboard.refreshSchedule",
		"LD_RATE_LIMIT_ENABLED":    "rateLimit.enabled",
		"LD_RATE_LIMIT_PER_SECOND": "rateLimit.requestsPerSecond",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	positiveIntOverrides := map[string]string{
		"LD_SERVER_PORT":                   "server.port",
		"LD_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"LD_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"LD_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"LD_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"LD_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"LD_DASHBOARD_PAGE_SIZE":           "dashboard.pageSize",
		"LD_DASHBOARD_FETCH_TIMEOUT":       "dashboard.fetchTimeoutSeconds",
		"LD_DASHBOARD_SEARCH_RESULT_CAP":   "dashboard.searchResultCap",
		"LD_RATE_LIMIT_BURST":              "rateLimit.burst",
	}
	for env, key := range positiveIntOverrides {
		if value := getEnvInt(env, 0); value > 0 {
			v.Set(key, value)
		}
	}

	if retryAttempts := getEnvInt("LD_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if retryDelay := getEnvInt("LD_DB_RETRY_DELAY_SECONDS", -1); retryDelay >= 0 {
		v.Set("database.retryDelay", retryDelay)
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw unit counts read from YAML into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}
