package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/barkeep/cocktail-api/pkg/database"
)

const (
	sslModeDisable = "disable"
	sslModeRequire = "require"
)

// Config is the full environment configuration of the service.
type Config struct {
	Host        string `mapstructure:"HOST"`
	Port        string `mapstructure:"PORT"`
	SwaggerHost string `mapstructure:"SWAGGER_HOST"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// AuthEnabled mounts the bearer-token gate on the favorites and pantry
	// routers. Off by default: the catalog is a public API unless the
	// deployment opts in.
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`
	AuthSecret  string `mapstructure:"AUTH_SECRET"`

	// KafkaBrokers is a comma-separated broker list; empty disables event
	// publishing entirely.
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`

	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

// New loads configuration from environment variables with defaults.
func New() (*Config, error) {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("SWAGGER_HOST", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "cocktaildb")
	viper.SetDefault("DB_SSL_MODE", sslModeDisable)
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	keys := []string{
		"HOST", "PORT", "SWAGGER_HOST",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"AUTH_ENABLED", "AUTH_SECRET", "KAFKA_BROKERS",
		"ENVIRONMENT", "LOG_LEVEL",
	}
	for _, key := range keys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Database returns the connection settings for pkg/database.
func (c *Config) Database() database.Config {
	return database.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func validate(cfg *Config) error {
	switch cfg.DBSSLMode {
	case sslModeDisable, sslModeRequire:
	default:
		return fmt.Errorf("DB SSL mode is invalid: %s", cfg.DBSSLMode)
	}
	if cfg.AuthEnabled && cfg.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET is required when AUTH_ENABLED is set")
	}
	return nil
}
