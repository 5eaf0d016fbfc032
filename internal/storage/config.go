package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jacksmith/deck/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".deckconfig.yaml"

	// Default configuration values
	DefaultFile     = "deck.txt"
	DefaultListen   = "127.0.0.1:8080"
	DefaultLogLevel = "info"
)

// Config represents user configuration from .deckconfig.yaml.
// This file is user-managed and never written by deck.
type Config struct {
	// DefaultFile is the deck used when --file is not specified.
	DefaultFile string `yaml:"default_file"`

	// DeckName is the name written into freshly created decks.
	DeckName string `yaml:"deck_name"`

	// Listen is the address `deck serve` binds to.
	Listen string `yaml:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DefaultFile: DefaultFile,
		DeckName:    model.DefaultDeckName,
		Listen:      DefaultListen,
		LogLevel:    DefaultLogLevel,
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultFile, validation.Required),
		validation.Field(&c.DeckName, validation.Required),
		validation.Field(&c.Listen, validation.Required, validation.By(hostPort)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// SlogLevel returns the configured level as a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoadConfig loads .deckconfig.yaml from dir if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := ConfigPath(dir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}

func hostPort(value interface{}) error {
	s, _ := value.(string)
	i := strings.LastIndex(s, ":")
	if i < 0 || i == len(s)-1 {
		return validation.NewError("validation_host_port", "must be host:port")
	}
	return nil
}
