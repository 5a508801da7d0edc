package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"docfind/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version" env:"-"`
	Endpoint    string     `toml:"endpoint" env:"DOCFIND_ENDPOINT"`
	CustomerID  string     `toml:"customer_id" env:"DOCFIND_CUSTOMER_ID"`
	CorpusID    string     `toml:"corpus_id" env:"DOCFIND_CORPUS_ID"`
	APIKey      string     `toml:"api_key" env:"DOCFIND_API_KEY"`
	HistorySize int        `toml:"history_size" env:"DOCFIND_HISTORY_SIZE"`
	DebounceMS  int        `toml:"debounce_ms" env:"DOCFIND_DEBOUNCE_MS"`
	NumResults  int        `toml:"num_results" env:"DOCFIND_NUM_RESULTS"`
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowScores  bool `toml:"show_scores"`
	ShowHistory bool `toml:"show_history"`
}

// Debounce returns the debounce window as a duration
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// Create docfind config directory
	docfindDir := filepath.Join(configDir, "docfind")
	os.MkdirAll(docfindDir, 0755)

	return &configService{
		filePath: filepath.Join(docfindDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path, applying
// environment overrides on top of whatever the file provides
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = DefaultConfig()
	}

	// Environment always wins over the file
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Clamp nonsense values back to defaults
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = defaultHistorySize
	}
	if cfg.DebounceMS <= 0 {
		cfg.DebounceMS = defaultDebounceMS
	}
	if cfg.NumResults <= 0 {
		cfg.NumResults = defaultNumResults
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays DOCFIND_* environment variables onto a config
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

const (
	defaultHistorySize = 10
	defaultDebounceMS  = 500
	defaultNumResults  = 10
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		HistorySize: defaultHistorySize,
		DebounceMS:  defaultDebounceMS,
		NumResults:  defaultNumResults,
		UISettings: UISettings{
			ShowScores:  false,
			ShowHistory: true,
		},
	}
}
