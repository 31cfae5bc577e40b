package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverPostgres  = "postgres"
	DriverSQLServer = "sqlserver"
	DriverSQLite    = "sqlite"
)

// ErrUnknownDriver is returned when DB_DRIVER names a driver we do not ship.
var ErrUnknownDriver = errors.New("unknown database driver")

// Config holds the application configuration.
type Config struct {
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBServer          string        `mapstructure:"DB_SERVER"`
	DBPort            int           `mapstructure:"DB_PORT"`
	DBName            string        `mapstructure:"DB_DATABASE"`
	DBSSLMode         string        `mapstructure:"DB_SSLMODE"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBAutoMigrate     bool          `mapstructure:"DB_AUTO_MIGRATE"`

	Port     int    `mapstructure:"PORT"`
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	GamesListLimit     int      `mapstructure:"GAMES_LIST_LIMIT"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLServer, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DBDriver)
	}
	if c.DBName == "" && c.DBDriver != DriverSQLite {
		return errors.New("DB_DATABASE is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.GamesListLimit < 1 {
		return fmt.Errorf("GAMES_LIST_LIMIT must be positive: %d", c.GamesListLimit)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_SERVER", "localhost")
	v.SetDefault("DB_PORT", 0)
	v.SetDefault("DB_DATABASE", "")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("PORT", 3000)
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", time.Minute)
	v.SetDefault("GAMES_LIST_LIMIT", 20)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
}

// Load reads the configuration from a .env file in dir (if present) and
// from environment variables. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
