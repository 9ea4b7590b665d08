// Package engine defines the physics engine capability consumed by the viewer
// and provides a pairwise gravity implementation of it.
package engine

import "gonum.org/v1/gonum/spatial/r2"

// Bridge is the synchronous call interface to a physics engine.
// Particles are addressed by dense indices that never move; a radius of 0
// marks a particle as no longer renderable.
type Bridge interface {
	AddParticle(pos, vel r2.Vec, mass, radius float64, color uint32)
	Step(dt float64, substeps int)
	ParticleCount() int
	Position(i int) r2.Vec
	Mass(i int) float64
	Radius(i int) float64
	Color(i int) uint32

	SetGravitationalConstant(g float64)
	SetElasticity(e float64)
	SetAbsorbMode(on bool)
}

// PackColor packs 8-bit channels as r<<16 | g<<8 | b
func PackColor(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackColor splits a packed color into channels
func UnpackColor(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}
