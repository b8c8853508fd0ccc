package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dbmsviz/internal/field"
)

const (
	DefaultFPS          = 60
	DefaultTheme        = "slate"
	DefaultPixelScale   = 4.0
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Theme      string       `yaml:"theme"`
	Section    string       `yaml:"section"`
	FPS        int          `yaml:"fps"`
	Seed       uint64       `yaml:"seed"`
	Background bool         `yaml:"background"`
	PixelScale float64      `yaml:"pixel_scale"`
	Window     WindowConfig `yaml:"window"`
	Field      field.Params `yaml:"field"`
	Log        LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:      DefaultTheme,
		Section:    "architecture",
		FPS:        DefaultFPS,
		Background: true,
		PixelScale: DefaultPixelScale,
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Field: field.DefaultParams(),
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.PixelScale <= 0 {
		return fmt.Errorf("%w: pixel_scale must be positive, got %v", ErrInvalidConfig, c.PixelScale)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if err := c.Field.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
