package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full service configuration
type Config struct {
	App struct {
		Name        string `mapstructure:"name"`
		Environment string `mapstructure:"environment"`
		LogLevel    string `mapstructure:"log_level"`
	} `mapstructure:"app"`

	HTTP struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"http"`

	Database struct {
		Driver   string `mapstructure:"driver"`
		Path     string `mapstructure:"path"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`

	Auth struct {
		// Bcrypt hash of the household password. Plaintext passwords are
		// never stored in config.
		PasswordHash string `mapstructure:"password_hash"`
		JWTSecret    string `mapstructure:"jwt_secret"`
		TokenTTLHrs  int    `mapstructure:"token_ttl_hours"`
	} `mapstructure:"auth"`

	Redis struct {
		Enabled bool   `mapstructure:"enabled"`
		Addr    string `mapstructure:"addr"`
	} `mapstructure:"redis"`

	Tracing struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"tracing"`
}

// Load reads configuration from an optional config file with PANTRY_*
// environment variable overrides.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "pantry-service")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("http.port", "8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "inventory.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "pantrydb")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("auth.token_ttl_hours", 168)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("tracing.enabled", false)

	v.SetEnvPrefix("PANTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if c.Auth.PasswordHash == "" {
		return fmt.Errorf("auth.password_hash is required (bcrypt hash of the household password)")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("auth.jwt_secret must be at least 16 characters")
	}
	return nil
}
