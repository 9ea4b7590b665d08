// Package sim owns the viewer state and drives it from input events and frame ticks.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/config"
	"github.com/olivierh59500/gravity-sandbox/internal/engine"
	"github.com/olivierh59500/gravity-sandbox/internal/trail"
	"github.com/olivierh59500/gravity-sandbox/internal/viewport"
)

// Frame and interaction constants
const (
	// FrameTime is the physical time advanced per frame at speed 1
	FrameTime = 0.1
	// Substeps is the nominal number of engine rounds per frame
	Substeps = 100

	// LaunchDivisor converts a drag length to a launch velocity
	LaunchDivisor = 5.0

	WheelZoom = 1.07
	KeyZoom   = 1.1
	KeyPan    = 10.0

	colorMin = 100
	colorMax = 255

	fpsSamples = 30
)

// Options configures a Session
type Options struct {
	Width, Height int
	Settings      config.Settings
	// Rand drives particle colors; seeded from the clock when nil
	Rand *rand.Rand
	// Clock measures frame intervals; time.Now when nil
	Clock func() time.Time
	Log   zerolog.Logger
}

// Session is the single owner of viewer state. It is not safe for concurrent use:
// events and ticks must be delivered from one goroutine.
type Session struct {
	bridge   engine.Bridge
	view     *viewport.Viewport
	trails   []*trail.Buffer[r2.Vec]
	settings config.Settings

	// velocity drag
	dragging   bool
	anchor     r2.Vec
	current    r2.Vec
	hasCurrent bool

	// camera drag
	panning bool
	last    r2.Vec

	focus   int
	focused bool

	rng       *rand.Rand
	now       func() time.Time
	lastFrame time.Time
	fps       *trail.Buffer[float64]
	samples   []float64
	path      []r2.Vec

	log zerolog.Logger
}

// New creates a session over bridge and pushes the initial settings to it
func New(bridge engine.Bridge, opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	s := &Session{
		bridge:   bridge,
		view:     viewport.New(opts.Width, opts.Height),
		settings: opts.Settings,
		rng:      rng,
		now:      clock,
		fps:      trail.New[float64](fpsSamples),
		log:      opts.Log,
	}
	s.settings.TrailLength = max(s.settings.TrailLength, 0)
	s.bridge.SetElasticity(s.settings.Elasticity)
	s.bridge.SetGravitationalConstant(s.settings.G())
	s.bridge.SetAbsorbMode(s.settings.AbsorbMode)
	s.alignTrails(bridge.ParticleCount())
	return s
}

// Viewport exposes the camera
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// Settings returns the active settings
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Focus returns the followed particle, if any
func (s *Session) Focus() (int, bool) {
	return s.focus, s.focused
}

// Trail returns the position history of particle i
func (s *Session) Trail(i int) *trail.Buffer[r2.Vec] {
	return s.trails[i]
}

// TrailCount returns the number of trail buffers
func (s *Session) TrailCount() int {
	return len(s.trails)
}

// Spawn adds a particle of the given mass with radius sqrt(mass) and a random
// light color, and starts its trail. It returns the particle index.
func (s *Session) Spawn(pos, vel r2.Vec, mass float64) int {
	s.alignTrails(s.bridge.ParticleCount())

	radius := math.Sqrt(mass)
	color := s.randomColor()
	s.bridge.AddParticle(pos, vel, mass, radius, color)
	s.trails = append(s.trails, trail.New[r2.Vec](s.settings.TrailLength))

	idx := len(s.trails) - 1
	s.log.Debug().
		Int("index", idx).
		Float64("x", pos.X).Float64("y", pos.Y).
		Float64("vx", vel.X).Float64("vy", vel.Y).
		Float64("mass", mass).
		Msg("particle added")
	return idx
}

func (s *Session) randomColor() uint32 {
	channel := func() uint8 {
		return uint8(colorMin + s.rng.Intn(colorMax-colorMin+1))
	}
	r := channel()
	g := channel()
	b := channel()
	return engine.PackColor(r, g, b)
}

// alignTrails appends empty trails for particles the engine gained on its own
func (s *Session) alignTrails(n int) {
	for len(s.trails) < n {
		s.trails = append(s.trails, trail.New[r2.Vec](s.settings.TrailLength))
	}
}

// ApplySetting parses a raw user value and applies it.
// Malformed values are rejected and the previous value is kept.
func (s *Session) ApplySetting(name, raw string) error {
	next := s.settings
	if err := next.Set(name, raw); err != nil {
		s.log.Warn().Err(err).Str("setting", name).Str("value", raw).Msg("setting rejected")
		return err
	}
	s.apply(next, name)
	return nil
}

// Apply replaces all settings, forwarding the ones that changed
func (s *Session) Apply(next config.Settings) {
	if err := next.Validate(); err != nil {
		s.log.Warn().Err(err).Msg("settings rejected")
		return
	}
	s.apply(next, "")
}

// apply installs next. Settings differing from the current ones are forwarded,
// as is the one named by force even when unchanged.
func (s *Session) apply(next config.Settings, force string) {
	next.TrailLength = max(next.TrailLength, 0)
	prev := s.settings
	s.settings = next

	changed := func(name string, differs bool) bool {
		if !differs && name != force {
			return false
		}
		s.log.Debug().Str("setting", name).Msg("setting changed")
		return true
	}

	changed(config.SimSpeed, prev.SimSpeed != next.SimSpeed)
	changed(config.Mass, prev.Mass != next.Mass)
	if changed(config.TrailLength, prev.TrailLength != next.TrailLength) {
		for _, t := range s.trails {
			t.SetCapacity(next.TrailLength)
		}
	}
	if changed(config.Elasticity, prev.Elasticity != next.Elasticity) {
		s.bridge.SetElasticity(next.Elasticity)
	}
	if changed(config.Gravity, prev.Gravity != next.Gravity) {
		s.bridge.SetGravitationalConstant(next.G())
	}
	if changed(config.AbsorbMode, prev.AbsorbMode != next.AbsorbMode) {
		s.bridge.SetAbsorbMode(next.AbsorbMode)
	}
}
