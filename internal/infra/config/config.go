package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "PRODUCTHUB"

type Config struct {
	Env    string `mapstructure:"env"`
	Seed   bool   `mapstructure:"seed"`
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

// Load reads ./config/config.yaml when present and overlays PRODUCTHUB_*
// environment variables (PRODUCTHUB_DATABASE_DSN, PRODUCTHUB_SERVER_PORT, ...).
// A missing config file is not an error; defaults cover local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("env", "dev")
	v.SetDefault("seed", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "user:pass@tcp(localhost:3306)/producthub?parseTime=true")
	v.SetDefault("cors.allowed_origins", []string{})

	v.AddConfigPath("./config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.Database.Driver {
	case "mysql", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q (supported: mysql, postgres)", cfg.Database.Driver)
	}

	return &cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env != "prod"
}
