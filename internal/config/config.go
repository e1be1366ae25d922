package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	appDir             = "gopher-flexi"
	configFile         = "config.yaml"
	mappingFile        = "mapping.flexi"
	defaultRefresh     = 50
	defaultStep        = 1.0
	defaultSensitivity = 0.5
)

// DeviceConfig holds the ports of the controller being mapped
type DeviceConfig struct {
	ID      string `yaml:"id"`       // Unique identifier
	Name    string `yaml:"name"`     // User-friendly name
	InPort  string `yaml:"in_port"`  // MIDI input port name
	OutPort string `yaml:"out_port"` // MIDI output port name, empty for no feedback
}

// NewDeviceConfig creates a new device config with a generated ID
func NewDeviceConfig() DeviceConfig {
	return DeviceConfig{
		ID:   uuid.New().String(),
		Name: "Generic Controller",
	}
}

// KnobConfig tunes the RELATIVE_2 and RELATIVE_3 encoder changers
type KnobConfig struct {
	Step        float64 `yaml:"step"`
	Sensitivity float64 `yaml:"sensitivity"`
	Slow        bool    `yaml:"slow"` // Scale by sensitivity instead of step
}

// Config holds application configuration
type Config struct {
	OpenAtStartup     bool         `yaml:"open_at_startup"`
	Device            DeviceConfig `yaml:"device"`
	MappingFile       string       `yaml:"mapping_file"`
	WatchMappingFile  bool         `yaml:"watch_mapping_file"`
	RefreshIntervalMs int          `yaml:"refresh_interval_ms"`
	Knob              KnobConfig   `yaml:"knob"`

	path string
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, appDir), nil
}

// ConfigPath returns the full path to the default config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Default returns the settings used when no config file exists. The mapping
// file sits next to the config file at path.
func Default(path string) *Config {
	return &Config{
		Device:            NewDeviceConfig(),
		MappingFile:       filepath.Join(filepath.Dir(path), mappingFile),
		RefreshIntervalMs: defaultRefresh,
		Knob: KnobConfig{
			Step:        defaultStep,
			Sensitivity: defaultSensitivity,
		},
		path: path,
	}
}

// Load reads the config from the default location, returning defaults if not found
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at path, returning defaults if not found
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(path), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default(path)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Fill in what an older or hand-written file left out
	if cfg.Device.ID == "" {
		cfg.Device.ID = uuid.New().String()
	}
	if cfg.MappingFile == "" {
		cfg.MappingFile = filepath.Join(filepath.Dir(path), mappingFile)
	}
	if cfg.RefreshIntervalMs <= 0 {
		cfg.RefreshIntervalMs = defaultRefresh
	}
	if cfg.Knob.Step <= 0 {
		cfg.Knob.Step = defaultStep
	}
	if cfg.Knob.Sensitivity <= 0 {
		cfg.Knob.Sensitivity = defaultSensitivity
	}

	return cfg, nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to the file it was loaded from
func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := ConfigPath()
		if err != nil {
			return err
		}
		c.path = configPath
	}
	return c.SaveTo(c.path)
}

// SaveTo writes the config to path and remembers it
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	c.path = path
	return nil
}
