package config

import (
	"github.com/multiversx/mx-chain-core-go/core"
)

// SortingConfig holds the configurable elements of the sort engine
type SortingConfig struct {
	MinRunPolicy string
}

// LogsConfig holds the log level configuration
type LogsConfig struct {
	LogLevel string
}

// Config holds the sorter configuration
type Config struct {
	Sorting SortingConfig
	Logs    LogsConfig
}

// LoadConfig returns a Config by reading it from the provided toml file
func LoadConfig(filePath string) (*Config, error) {
	cfg := &Config{}
	err := core.LoadTomlFile(cfg, filePath)
	if err != nil {
		return nil, err
	}

	if len(cfg.Sorting.MinRunPolicy) == 0 {
		cfg.Sorting.MinRunPolicy = "classic"
	}
	if len(cfg.Logs.LogLevel) == 0 {
		cfg.Logs.LogLevel = "*:INFO"
	}

	return cfg, nil
}
