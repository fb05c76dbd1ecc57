// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration shared by all logtools commands.
type Config struct {
	// ConfigFile is the optional YAML file the values were overlaid from.
	ConfigFile string

	DurationFile    string
	DurationPattern string

	FilterInput   string
	FilterOutput  string
	FilterPattern string

	WindowStartOffset time.Duration
	WindowEndOffset   time.Duration
}

// fileConfig mirrors the layout of the optional YAML config file.
type fileConfig struct {
	Duration struct {
		File    string `yaml:"file"`
		Pattern string `yaml:"pattern"`
	} `yaml:"duration"`
	Filter struct {
		Input   string `yaml:"input"`
		Output  string `yaml:"output"`
		Pattern string `yaml:"pattern"`
	} `yaml:"filter"`
	Window struct {
		StartOffset string `yaml:"start_offset"`
		EndOffset   string `yaml:"end_offset"`
	} `yaml:"window"`
}

// Load reads configuration from the .env file, the optional YAML file named by
// LOGTOOLS_CONFIG and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	file := fileConfig{}

	configPath := os.Getenv("LOGTOOLS_CONFIG")
	if configPath != "" {
		parsed, err := loadFile(configPath)
		if err != nil {
			return nil, err
		}
		file = *parsed
	}

	cfg := &Config{
		ConfigFile:      configPath,
		DurationFile:    getEnv("LOGTOOLS_DURATION_FILE", orDefault(file.Duration.File, DefaultDurationFile)),
		DurationPattern: getEnv("LOGTOOLS_DURATION_PATTERN", orDefault(file.Duration.Pattern, DefaultDurationPattern)),
		FilterInput:     getEnv("LOGTOOLS_FILTER_INPUT", orDefault(file.Filter.Input, DefaultFilterInput)),
		FilterOutput:    getEnv("LOGTOOLS_FILTER_OUTPUT", orDefault(file.Filter.Output, DefaultFilterOutput)),
		FilterPattern:   getEnv("LOGTOOLS_FILTER_PATTERN", orDefault(file.Filter.Pattern, DefaultFilterPattern)),
	}

	// Parse offsets
	startOffset, err := time.ParseDuration(
		getEnv("LOGTOOLS_WINDOW_START_OFFSET", orDefault(file.Window.StartOffset, DefaultWindowStartOffset.String())),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGTOOLS_WINDOW_START_OFFSET: %w", err)
	}
	cfg.WindowStartOffset = startOffset

	endOffset, err := time.ParseDuration(
		getEnv("LOGTOOLS_WINDOW_END_OFFSET", orDefault(file.Window.EndOffset, DefaultWindowEndOffset.String())),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGTOOLS_WINDOW_END_OFFSET: %w", err)
	}
	cfg.WindowEndOffset = endOffset

	return cfg, nil
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	return &file, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func orDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	configFileDisplay := c.ConfigFile
	if configFileDisplay == "" {
		configFileDisplay = "(not set)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Config File:          %s
Duration File:        %s
Duration Pattern:     %s
Filter Input:         %s
Filter Output:        %s
Filter Pattern:       %s
Window Start Offset:  %s
Window End Offset:    %s`,
		configFileDisplay,
		c.DurationFile,
		c.DurationPattern,
		c.FilterInput,
		c.FilterOutput,
		c.FilterPattern,
		c.WindowStartOffset,
		c.WindowEndOffset,
	)
}
