// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Addr            string   `mapstructure:"addr" yaml:"addr"`
		AllowedOrigins  []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
		MaxUploadSizeMB int      `mapstructure:"max_upload_size_mb" yaml:"max_upload_size_mb"`
	} `mapstructure:"server" yaml:"server"`

	Upload struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"upload" yaml:"upload"`

	Journal struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"journal" yaml:"journal"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Cleaner struct {
		PhraseFile string `mapstructure:"phrase_file" yaml:"phrase_file"`
	} `mapstructure:"cleaner" yaml:"cleaner"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-extract")
	v.AddConfigPath(".statement-extract")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Server defaults
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_upload_size_mb", 20)

	// Upload defaults
	v.SetDefault("upload.directory", "uploads")

	// Journal defaults
	v.SetDefault("journal.path", "transaction_log.md")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Cleaner defaults
	v.SetDefault("cleaner.phrase_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}

	if config.Server.MaxUploadSizeMB < 1 || config.Server.MaxUploadSizeMB > 1024 {
		return fmt.Errorf("server.max_upload_size_mb must be between 1 and 1024, got: %d", config.Server.MaxUploadSizeMB)
	}

	if config.Upload.Directory == "" {
		return fmt.Errorf("upload.directory must not be empty")
	}

	if config.Journal.Path == "" {
		return fmt.Errorf("journal.path must not be empty")
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
