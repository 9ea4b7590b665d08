// Package config loads viewer configuration from file, environment and flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Backends
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config represents the full viewer configuration
type Config struct {
	Window   WindowConfig `yaml:"window" mapstructure:"window"`
	Settings Settings     `yaml:"settings" mapstructure:"settings"`
	Scene    SceneConfig  `yaml:"scene" mapstructure:"scene"`
	Log      LogConfig    `yaml:"log" mapstructure:"log"`
}

// WindowConfig contains the presentation options
type WindowConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"`
	Width   int    `yaml:"width" mapstructure:"width"`
	Height  int    `yaml:"height" mapstructure:"height"`
	Title   string `yaml:"title" mapstructure:"title"`
}

// SceneConfig selects the initial population
type SceneConfig struct {
	Kind   string  `yaml:"kind" mapstructure:"kind"`
	Count  int     `yaml:"count" mapstructure:"count"`
	Seed   int64   `yaml:"seed" mapstructure:"seed"`
	Radius float64 `yaml:"radius" mapstructure:"radius"`
}

// LogConfig controls logging output
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend: BackendWindow,
			Width:   800,
			Height:  600,
			Title:   "Gravity Sandbox",
		},
		Settings: DefaultSettings(),
		Scene: SceneConfig{
			Kind:   "empty",
			Count:  40,
			Seed:   1,
			Radius: 250,
		},
		Log: LogConfig{
			Level: "info",
			File:  "gravity-sandbox.log",
		},
	}
}

// DefaultDir returns $HOME/.gravity-sandbox
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".gravity-sandbox")
}

// New creates a viper instance with defaults, search paths and environment binding.
// An empty path searches DefaultDir and the working directory for config.yaml.
func New(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GRAVITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file into v, if any, and decodes the result.
// A missing file is only an error when it was named explicitly.
func Read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}
	return Decode(v)
}

// Decode unmarshals the current state of v
func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load is New followed by Read
func Load(path string) (*Config, *viper.Viper, error) {
	v := New(path)
	cfg, err := Read(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Save writes cfg as YAML, creating the parent directory
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create config directory for %s", path)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("window.backend", d.Window.Backend)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)

	v.SetDefault("settings."+SimSpeed, d.Settings.SimSpeed)
	v.SetDefault("settings."+Mass, d.Settings.Mass)
	v.SetDefault("settings."+TrailLength, d.Settings.TrailLength)
	v.SetDefault("settings."+Elasticity, d.Settings.Elasticity)
	v.SetDefault("settings."+Gravity, d.Settings.Gravity)
	v.SetDefault("settings."+AbsorbMode, d.Settings.AbsorbMode)

	v.SetDefault("scene.kind", d.Scene.Kind)
	v.SetDefault("scene.count", d.Scene.Count)
	v.SetDefault("scene.seed", d.Scene.Seed)
	v.SetDefault("scene.radius", d.Scene.Radius)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}
