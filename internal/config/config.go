package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config captures the configuration surface of the exocli tool.
type Config struct {
	Exotel    ExotelConfig    `mapstructure:"exotel"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ExotelConfig holds the account credentials every request is built from.
type ExotelConfig struct {
	SID     string `mapstructure:"sid"`
	Key     string `mapstructure:"key"`
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type TelemetryConfig struct {
	Endpoint       string  `mapstructure:"endpoint"`
	ServiceName    string  `mapstructure:"service_name"`
	SampleRatio    float64 `mapstructure:"sample_ratio"`
	TracingEnabled bool    `mapstructure:"tracing_enabled"`
}

// Load reads configuration from file and environment variables. EXOTEL_*
// variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvPrefix("EXOTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("logging.level", "info")
	v.SetDefault("telemetry.service_name", "exocli")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if cfg.Exotel.SID == "" || cfg.Exotel.Key == "" || cfg.Exotel.Token == "" {
		return nil, errors.New("config: exotel sid, key and token are required")
	}
	return cfg, nil
}
