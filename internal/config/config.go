package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"reelview/internal/eventbus"
)

const (
	currentVersion = 1

	DefaultItemGap         = 3
	DefaultPosterAspect    = 0.5
	DefaultMaxPosterHeight = 12
)

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	CatalogPath string     `toml:"catalog_path,omitempty"` // empty means the builtin dataset
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ItemGap         int     `toml:"item_gap"`          // columns between carousel posters
	PosterAspect    float64 `toml:"poster_aspect"`     // poster height as a fraction of its width
	MaxPosterHeight int     `toml:"max_poster_height"` // rows
	HelpInPager     bool    `toml:"help_in_pager"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "reelview", "config.toml")
}

// NewConfigService creates a config service for path; an empty path means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from the file keep sane values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize replaces zero or out-of-range values with defaults
func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = currentVersion
	}
	if c.UISettings.ItemGap < 0 {
		c.UISettings.ItemGap = DefaultItemGap
	}
	if c.UISettings.PosterAspect <= 0 || c.UISettings.PosterAspect > 2 {
		c.UISettings.PosterAspect = DefaultPosterAspect
	}
	if c.UISettings.MaxPosterHeight <= 0 {
		c.UISettings.MaxPosterHeight = DefaultMaxPosterHeight
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: currentVersion,
		UISettings: UISettings{
			ItemGap:         DefaultItemGap,
			PosterAspect:    DefaultPosterAspect,
			MaxPosterHeight: DefaultMaxPosterHeight,
			HelpInPager:     true,
		},
	}
}
