// Package config provides application configuration loading and management.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	DataDir        string `mapstructure:"DATA_DIR"`
	StorePrefix    string `mapstructure:"STORE_PREFIX"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	Env            string `mapstructure:"APP_ENV"`
	SeedSampleData bool   `mapstructure:"SEED_SAMPLE_DATA"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("STORE_PREFIX", "socialapp_")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SEED_SAMPLE_DATA", true)

	// The config file is optional; defaults and environment variables are
	// enough to run.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR must not be empty")
	}

	return &cfg, nil
}
