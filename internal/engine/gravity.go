package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Engine defaults
const (
	DefaultG          = 200.0
	DefaultElasticity = 1.0

	// maxSeparationSteps bounds the post-bounce push apart of overlapping bodies
	maxSeparationSteps = 1000
)

// Options configures a Gravity engine
type Options struct {
	G          float64
	Elasticity float64
	Absorb     bool
}

// DefaultOptions returns the engine defaults
func DefaultOptions() Options {
	return Options{G: DefaultG, Elasticity: DefaultElasticity}
}

type body struct {
	pos, vel, force r2.Vec
	mass, radius    float64
	color           uint32
}

// Gravity is an in-process pairwise Newtonian engine with bounce or merge collisions
type Gravity struct {
	bodies     []*body
	g          float64
	elasticity float64
	absorb     bool
}

var _ Bridge = (*Gravity)(nil)

// NewGravity creates an empty engine
func NewGravity(opts Options) *Gravity {
	return &Gravity{
		g:          opts.G,
		elasticity: opts.Elasticity,
		absorb:     opts.Absorb,
	}
}

func (e *Gravity) AddParticle(pos, vel r2.Vec, mass, radius float64, color uint32) {
	e.bodies = append(e.bodies, &body{
		pos:    pos,
		vel:    vel,
		mass:   mass,
		radius: radius,
		color:  color,
	})
}

func (e *Gravity) ParticleCount() int      { return len(e.bodies) }
func (e *Gravity) Position(i int) r2.Vec   { return e.bodies[i].pos }
func (e *Gravity) Mass(i int) float64      { return e.bodies[i].mass }
func (e *Gravity) Radius(i int) float64    { return e.bodies[i].radius }
func (e *Gravity) Color(i int) uint32      { return e.bodies[i].color }
func (e *Gravity) SetElasticity(v float64) { e.elasticity = v }
func (e *Gravity) SetAbsorbMode(on bool)   { e.absorb = on }

func (e *Gravity) SetGravitationalConstant(g float64) { e.g = g }

// Step advances the simulation by substeps rounds of dt each
func (e *Gravity) Step(dt float64, substeps int) {
	for i := 0; i < substeps; i++ {
		e.accumulateForces()
		e.integrate(dt)
		e.collide(dt)
	}
}

func (e *Gravity) accumulateForces() {
	for _, b := range e.bodies {
		b.force = r2.Vec{}
	}
	for i, p1 := range e.bodies {
		if p1.mass == 0 {
			continue
		}
		for _, p2 := range e.bodies[i+1:] {
			if p2.mass == 0 {
				continue
			}
			diff := r2.Sub(p1.pos, p2.pos)
			// overlapping pairs are left to collision handling
			if r2.Norm(diff) < p1.radius+p2.radius {
				continue
			}
			f := r2.Scale(e.g*p1.mass*p2.mass/r2.Norm2(diff), r2.Unit(diff))
			p1.force = r2.Sub(p1.force, f)
			p2.force = r2.Add(p2.force, f)
		}
	}
}

// integrate uses semi-implicit Euler: velocity first, then position
func (e *Gravity) integrate(dt float64) {
	for _, b := range e.bodies {
		if b.mass == 0 {
			continue
		}
		b.vel = r2.Add(b.vel, r2.Scale(dt/b.mass, b.force))
		b.pos = r2.Add(b.pos, r2.Scale(dt, b.vel))
	}
}

func (e *Gravity) collide(dt float64) {
	for i, p1 := range e.bodies {
		if p1.mass == 0 {
			continue
		}
		for _, p2 := range e.bodies[i+1:] {
			if p1.mass == 0 {
				break
			}
			if p2.mass == 0 {
				continue
			}
			if r2.Norm(r2.Sub(p1.pos, p2.pos)) >= p1.radius+p2.radius {
				continue
			}
			if e.absorb {
				merge(p1, p2)
			} else {
				e.bounce(p1, p2, dt)
			}
		}
	}
}

// merge folds the lighter body into the heavier one in place,
// so particle indices stay stable. The lighter body keeps its slot with
// zero mass and radius.
func merge(p1, p2 *body) {
	heavy, light := p1, p2
	if p1.mass < p2.mass {
		heavy, light = p2, p1
	}
	total := heavy.mass + light.mass

	heavy.pos = r2.Scale(1/total, r2.Add(r2.Scale(heavy.mass, heavy.pos), r2.Scale(light.mass, light.pos)))
	heavy.vel = r2.Scale(1/total, r2.Add(r2.Scale(heavy.mass, heavy.vel), r2.Scale(light.mass, light.vel)))

	hr, hg, hb := UnpackColor(heavy.color)
	lr, lg, lb := UnpackColor(light.color)
	blend := func(a, b uint8) uint8 {
		return uint8((float64(a)*heavy.mass + float64(b)*light.mass) / total)
	}
	heavy.color = PackColor(blend(hr, lr), blend(hg, lg), blend(hb, lb))

	heavy.mass = total
	heavy.radius = math.Sqrt(total)
	light.mass = 0
	light.radius = 0
	light.vel = r2.Vec{}
	light.force = r2.Vec{}
}

func (e *Gravity) bounce(p1, p2 *body, dt float64) {
	diff := r2.Sub(p1.pos, p2.pos)
	dir := r2.Vec{X: 1}
	if n := r2.Norm(diff); n > 0 {
		dir = r2.Scale(1/n, diff)
	}

	strength := r2.Dot(r2.Sub(p1.vel, p2.vel), dir)
	strength *= p1.mass * p2.mass * (1 + e.elasticity)
	strength /= p1.mass + p2.mass

	impulse := r2.Scale(strength, dir)
	p1.vel = r2.Sub(p1.vel, r2.Scale(1/p1.mass, impulse))
	p2.vel = r2.Add(p2.vel, r2.Scale(1/p2.mass, impulse))

	// TODO: three or more touching bodies can still end up overlapping after this
	for n := 0; n < maxSeparationSteps && r2.Norm(r2.Sub(p1.pos, p2.pos)) < p1.radius+p2.radius; n++ {
		p1.pos = r2.Add(p1.pos, r2.Scale(dt, p1.vel))
		p2.pos = r2.Add(p2.pos, r2.Scale(dt, p2.vel))
	}
}
