// Package enginetest provides an in-memory engine.Bridge for tests.
package enginetest

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/engine"
)

// Particle is one slot of the fake engine
type Particle struct {
	Pos, Vel r2.Vec
	Mass     float64
	Radius   float64
	Color    uint32
}

// StepCall records the arguments of one Step call
type StepCall struct {
	DT       float64
	Substeps int
}

// Fake is a scripted Bridge. Step does not move particles unless OnStep is set.
type Fake struct {
	Particles []Particle
	Steps     []StepCall

	G          float64
	Elasticity float64
	Absorb     bool

	// OnStep runs after a Step call is recorded
	OnStep func(f *Fake, dt float64, substeps int)
}

var _ engine.Bridge = (*Fake)(nil)

// New returns an empty Fake with engine defaults
func New() *Fake {
	return &Fake{G: engine.DefaultG, Elasticity: engine.DefaultElasticity}
}

func (f *Fake) AddParticle(pos, vel r2.Vec, mass, radius float64, color uint32) {
	f.Particles = append(f.Particles, Particle{Pos: pos, Vel: vel, Mass: mass, Radius: radius, Color: color})
}

func (f *Fake) Step(dt float64, substeps int) {
	f.Steps = append(f.Steps, StepCall{DT: dt, Substeps: substeps})
	if f.OnStep != nil {
		f.OnStep(f, dt, substeps)
	}
}

func (f *Fake) ParticleCount() int                 { return len(f.Particles) }
func (f *Fake) Position(i int) r2.Vec              { return f.Particles[i].Pos }
func (f *Fake) Mass(i int) float64                 { return f.Particles[i].Mass }
func (f *Fake) Radius(i int) float64               { return f.Particles[i].Radius }
func (f *Fake) Color(i int) uint32                 { return f.Particles[i].Color }
func (f *Fake) SetGravitationalConstant(g float64) { f.G = g }
func (f *Fake) SetElasticity(e float64)            { f.Elasticity = e }
func (f *Fake) SetAbsorbMode(on bool)              { f.Absorb = on }

// Drift moves every particle by its velocity times dt*substeps
func Drift(f *Fake, dt float64, substeps int) {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Pos = r2.Add(p.Pos, r2.Scale(dt*float64(substeps), p.Vel))
	}
}
