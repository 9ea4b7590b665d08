// Package app assembles a session from configuration.
package app

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/config"
	"github.com/olivierh59500/gravity-sandbox/internal/engine"
	"github.com/olivierh59500/gravity-sandbox/internal/scene"
	"github.com/olivierh59500/gravity-sandbox/internal/sim"
)

// FlagKeys maps command line flags to config keys
var FlagKeys = map[string]string{
	"backend":   "window.backend",
	"log-level": "log.level",
	"log-file":  "log.file",
	"scene":     "scene.kind",
	"seed":      "scene.seed",
}

// DefaultConfigPath is where `config init` writes without an argument
func DefaultConfigPath() string {
	return filepath.Join(config.DefaultDir(), "config.yaml")
}

// WriteDefaultConfig saves the defaults to path, refusing to overwrite
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("%s already exists", path)
	}
	return config.Save(config.Default(), path)
}

// BindFlags lets the flags in FlagKeys take precedence over file and env
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	for name, key := range FlagKeys {
		f := fs.Lookup(name)
		if f == nil {
			return errors.Errorf("flag --%s is not defined", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind --%s", name)
		}
	}
	return nil
}

// NewSession builds the engine and session and loads the initial scene
// around the middle of the canvas
func NewSession(cfg *config.Config, log zerolog.Logger) (*sim.Session, error) {
	gravity := engine.NewGravity(engine.DefaultOptions())

	session := sim.New(gravity, sim.Options{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Settings: cfg.Settings,
		Log:      log,
	})

	center := r2.Vec{X: float64(cfg.Window.Width) / 2, Y: float64(cfg.Window.Height) / 2}
	n, err := scene.Populate(session, cfg.Scene, center, cfg.Settings.G())
	if err != nil {
		return nil, err
	}
	log.Info().Str("scene", cfg.Scene.Kind).Int("particles", n).Msg("scene loaded")
	return session, nil
}
