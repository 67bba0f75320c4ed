package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// serveConfig holds the HTTP server settings.
type serveConfig struct {
	Listen      string `mapstructure:"listen"`
	ChartWidth  int    `mapstructure:"chart_width"`
	ChartHeight int    `mapstructure:"chart_height"`
}

// loadServeConfig reads the server configuration from an optional config file
// and the environment. Environment variables override file values and use the
// HC prefix, e.g. HC_LISTEN, HC_CHART_WIDTH.
func loadServeConfig(path string) (*serveConfig, error) {
	v := viper.New()

	v.SetDefault("listen", ":8723")
	v.SetDefault("chart_width", 1100)
	v.SetDefault("chart_height", 687)

	v.SetEnvPrefix("HC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var cfg serveConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.ChartWidth < 1 || cfg.ChartHeight < 1 {
		return nil, fmt.Errorf("chart size must be positive, got %dx%d", cfg.ChartWidth, cfg.ChartHeight)
	}
	return &cfg, nil
}
