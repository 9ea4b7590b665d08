// Package scene seeds a session with an initial population of particles.
package scene

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/config"
)

// Scene kinds
const (
	Empty = "empty"
	Orbit = "orbit"
	Noise = "noise"
)

// Noise field parameters
const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseFrequency = 0.01
	noiseThreshold = 0.1
	noiseMaxMass   = 60.0
)

// Spawner is the part of a session scenes need
type Spawner interface {
	Spawn(pos, vel r2.Vec, mass float64) int
}

// ErrUnknownKind is returned for an unsupported scene kind
var ErrUnknownKind = errors.New("unknown scene kind")

// Populate adds the particles described by cfg around center.
// g is the engine's gravitational constant, used for orbital speeds.
func Populate(sp Spawner, cfg config.SceneConfig, center r2.Vec, g float64) (int, error) {
	switch cfg.Kind {
	case "", Empty:
		return 0, nil
	case Orbit:
		return orbit(sp, cfg, center, g), nil
	case Noise:
		return noise(sp, cfg, center), nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", cfg.Kind)
}

// orbit places a heavy body at center and cfg.Count light bodies on circular
// orbits around it, v = sqrt(G*M/r), perpendicular to the radius
func orbit(sp Spawner, cfg config.SceneConfig, center r2.Vec, g float64) int {
	const (
		centralMass = 2500.0
		bodyMass    = 4.0
	)
	rng := rand.New(rand.NewSource(cfg.Seed))
	sp.Spawn(center, r2.Vec{}, centralMass)

	inner := math.Sqrt(centralMass) * 2
	for i := 0; i < cfg.Count; i++ {
		r := inner + rng.Float64()*math.Max(cfg.Radius-inner, 0)
		theta := rng.Float64() * 2 * math.Pi
		dir := r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
		pos := r2.Add(center, r2.Scale(r, dir))

		speed := 0.0
		if g > 0 {
			speed = math.Sqrt(g * centralMass / r)
		}
		vel := r2.Scale(speed, r2.Vec{X: -dir.Y, Y: dir.X})
		sp.Spawn(pos, vel, bodyMass)
	}
	return cfg.Count + 1
}

// noise samples a square grid around center and spawns a resting body where the
// Perlin field exceeds a threshold, heavier where the field is stronger.
// At most cfg.Count bodies are placed.
func noise(sp Spawner, cfg config.SceneConfig, center r2.Vec) int {
	if cfg.Count <= 0 {
		return 0
	}
	field := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, cfg.Seed)

	side := int(math.Ceil(math.Sqrt(float64(cfg.Count)))) * 2
	spacing := 2 * cfg.Radius / float64(side)
	origin := r2.Sub(center, r2.Vec{X: cfg.Radius, Y: cfg.Radius})

	placed := 0
	for y := 0; y < side && placed < cfg.Count; y++ {
		for x := 0; x < side && placed < cfg.Count; x++ {
			pos := r2.Add(origin, r2.Vec{X: (float64(x) + 0.5) * spacing, Y: (float64(y) + 0.5) * spacing})
			v := field.Noise2D(pos.X*noiseFrequency, pos.Y*noiseFrequency)
			if v < noiseThreshold {
				continue
			}
			sp.Spawn(pos, r2.Vec{}, 1+v*noiseMaxMass)
			placed++
		}
	}
	return placed
}
