package config

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Setting names, as used in config files and Setting events
const (
	SimSpeed    = "sim_speed"
	Mass        = "mass"
	TrailLength = "trail_length"
	Elasticity  = "elasticity"
	Gravity     = "gravity"
	AbsorbMode  = "absorb_mode"
)

// GravityFactor scales the user-facing gravity setting into the engine's G
const GravityFactor = 200.0

// ErrUnknownSetting is returned for names that are not a setting
var ErrUnknownSetting = errors.New("unknown setting")

// Settings are the values a user may change while the viewer runs
type Settings struct {
	// SimSpeed multiplies the substep count per frame
	SimSpeed float64 `yaml:"sim_speed" mapstructure:"sim_speed"`
	// Mass is the user-entered size of the next particle; its mass is Mass²
	Mass        float64 `yaml:"mass" mapstructure:"mass"`
	TrailLength int     `yaml:"trail_length" mapstructure:"trail_length"`
	Elasticity  float64 `yaml:"elasticity" mapstructure:"elasticity"`
	// Gravity is forwarded to the engine multiplied by GravityFactor
	Gravity    float64 `yaml:"gravity" mapstructure:"gravity"`
	AbsorbMode bool    `yaml:"absorb_mode" mapstructure:"absorb_mode"`
}

// DefaultSettings returns the startup settings
func DefaultSettings() Settings {
	return Settings{
		SimSpeed:    1,
		Mass:        10,
		TrailLength: 100,
		Elasticity:  1,
		Gravity:     1,
	}
}

// NextMass is the mass given to the next created particle
func (s Settings) NextMass() float64 {
	return s.Mass * s.Mass
}

// G is the gravitational constant forwarded to the engine
func (s Settings) G() float64 {
	return GravityFactor * s.Gravity
}

// Validate rejects non-finite numbers
func (s Settings) Validate() error {
	for name, v := range map[string]float64{
		SimSpeed:   s.SimSpeed,
		Mass:       s.Mass,
		Elasticity: s.Elasticity,
		Gravity:    s.Gravity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("setting %s: %v is not a finite number", name, v)
		}
	}
	return nil
}

// Set parses raw and assigns it to the named setting.
// On error s is left unchanged. Negative trail lengths become 0.
func (s *Settings) Set(name, raw string) error {
	switch name {
	case SimSpeed, Mass, Elasticity, Gravity:
		v, err := parseFloat(name, raw)
		if err != nil {
			return err
		}
		switch name {
		case SimSpeed:
			s.SimSpeed = v
		case Mass:
			s.Mass = v
		case Elasticity:
			s.Elasticity = v
		case Gravity:
			s.Gravity = v
		}
	case TrailLength:
		v, err := cast.ToIntE(raw)
		if err != nil {
			return errors.Wrapf(err, "setting %s", name)
		}
		s.TrailLength = max(v, 0)
	case AbsorbMode:
		v, err := cast.ToBoolE(raw)
		if err != nil {
			return errors.Wrapf(err, "setting %s", name)
		}
		s.AbsorbMode = v
	default:
		return errors.Wrapf(ErrUnknownSetting, "%q", name)
	}
	return nil
}

func parseFloat(name, raw string) (float64, error) {
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "setting %s", name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("setting %s: %q is not a finite number", name, raw)
	}
	return v, nil
}
