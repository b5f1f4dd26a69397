// Package config provides Viper-based hierarchical configuration management
// for the budget tracker: defaults, then an optional YAML config file, then
// BUDGET_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Logger is the global logger instance shared across the application.
var Logger = logrus.New()

var envOnce sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		// Directory overrides the default store location
		// (<home>/.local/share/budget-tracker). Empty means default.
		Directory string `mapstructure:"directory" yaml:"directory"`
		File      string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"data" yaml:"data"`

	Editor struct {
		Command string `mapstructure:"command" yaml:"command"`
	} `mapstructure:"editor" yaml:"editor"`
}

// Load initializes Viper configuration with hierarchical loading.
func Load() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budget-tracker")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
		// Missing config file is fine, defaults and env vars apply
	}

	// 5. The conventional EDITOR variable always wins for the editor command
	if err := v.BindEnv("editor.command", "BUDGET_EDITOR", "EDITOR"); err != nil {
		Logger.Warnf("Failed to bind EDITOR environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("data.directory", "")
	v.SetDefault("data.file", "expenses.csv")
	v.SetDefault("editor.command", "nano")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(strings.ToLower(config.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level '%s'", config.Log.Level)
	}
	if config.Data.File == "" {
		return fmt.Errorf("data file name must not be empty")
	}
	if config.Editor.Command == "" {
		return fmt.Errorf("editor command must not be empty")
	}
	return nil
}

// ConfigureLogging applies the log level and format from configuration to
// the global logger and returns it.
func ConfigureLogging(config *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}

// LoadEnv loads environment variables from a .env file if one exists in the
// working directory. It runs at most once per process.
func LoadEnv() {
	envOnce.Do(func() {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return
		}
		if err := godotenv.Load(".env"); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Debug("Loaded environment variables from .env")
	})
}
