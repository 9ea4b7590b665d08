package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestPackColorRoundTrip(t *testing.T) {
	c := PackColor(200, 150, 100)
	assert.Equal(t, uint32(200*65536+150*256+100), c)

	r, g, b := UnpackColor(c)
	assert.Equal(t, [3]uint8{200, 150, 100}, [3]uint8{r, g, b})
}

func TestBodiesAttract(t *testing.T) {
	e := NewGravity(DefaultOptions())
	e.AddParticle(r2.Vec{X: 0}, r2.Vec{}, 10, 1, 0)
	e.AddParticle(r2.Vec{X: 100}, r2.Vec{}, 10, 1, 0)

	e.Step(0.001, 100)

	assert.Greater(t, e.Position(0).X, 0.0)
	assert.Less(t, e.Position(1).X, 100.0)
	// equal masses pull symmetrically
	assert.InDelta(t, e.Position(0).X, 100-e.Position(1).X, 1e-9)
}

func TestStepZeroSubstepsIsNoop(t *testing.T) {
	e := NewGravity(DefaultOptions())
	e.AddParticle(r2.Vec{X: 1, Y: 2}, r2.Vec{X: 5}, 10, 1, 0)
	e.Step(0.1, 0)
	assert.Equal(t, r2.Vec{X: 1, Y: 2}, e.Position(0))
}

func TestAbsorbKeepsIndices(t *testing.T) {
	e := NewGravity(DefaultOptions())
	e.SetAbsorbMode(true)
	e.SetGravitationalConstant(0)
	e.AddParticle(r2.Vec{X: 0}, r2.Vec{X: 1}, 1, 1, PackColor(255, 0, 0))
	e.AddParticle(r2.Vec{X: 1}, r2.Vec{}, 3, math.Sqrt(3), PackColor(0, 0, 255))

	e.Step(0.01, 1)

	require.Equal(t, 2, e.ParticleCount())
	// lighter body stays in slot 0 but is no longer renderable
	assert.Zero(t, e.Mass(0))
	assert.Zero(t, e.Radius(0))
	assert.Equal(t, 4.0, e.Mass(1))
	assert.InDelta(t, 2.0, e.Radius(1), 1e-12)

	r, _, b := UnpackColor(e.Color(1))
	assert.Equal(t, uint8(63), r)
	assert.Equal(t, uint8(191), b)
}

func TestBounceConservesMomentum(t *testing.T) {
	e := NewGravity(DefaultOptions())
	e.SetGravitationalConstant(0)
	e.AddParticle(r2.Vec{X: 0}, r2.Vec{X: 2}, 2, 1, 0)
	e.AddParticle(r2.Vec{X: 1.5}, r2.Vec{X: -1}, 1, 1, 0)

	before := 2*2.0 + 1*-1.0
	e.Step(0.01, 1)

	// positions were integrated before the bounce, so velocities carry the exchange
	after := 2*velocityX(e, 0) + 1*velocityX(e, 1)
	assert.InDelta(t, before, after, 1e-9)
	assert.Less(t, velocityX(e, 0), 2.0)
	assert.GreaterOrEqual(t, r2.Norm(r2.Sub(e.Position(0), e.Position(1))), 2.0)
}

func TestForcesFollowInverseSquare(t *testing.T) {
	e := NewGravity(DefaultOptions())
	e.AddParticle(r2.Vec{X: 0, Y: 0}, r2.Vec{}, 50, 1, 0)
	e.AddParticle(r2.Vec{X: 300, Y: 0}, r2.Vec{}, 5, 1, 0)
	e.AddParticle(r2.Vec{X: 0, Y: 300}, r2.Vec{}, 5, 1, 0)

	const dt = 0.001
	e.Step(dt, 1)

	// G*m1*m2/r² from each light body, along its own axis
	force := DefaultG * 50 * 5 / (300 * 300)
	want := force / 50 * dt
	assert.InDelta(t, want, velocityX(e, 0), 1e-12)
	assert.InDelta(t, want, velocityY(e, 0), 1e-12)
}

func TestOverlappingPairsExertNoForce(t *testing.T) {
	e := NewGravity(DefaultOptions())
	e.AddParticle(r2.Vec{X: 0}, r2.Vec{}, 4, 2, 0)
	e.AddParticle(r2.Vec{X: 10}, r2.Vec{}, 4, 20, 0)

	e.accumulateForces()
	assert.Equal(t, r2.Vec{}, e.bodies[0].force)
	assert.Equal(t, r2.Vec{}, e.bodies[1].force)
}

func velocityX(e *Gravity, i int) float64 {
	return e.bodies[i].vel.X
}

func velocityY(e *Gravity, i int) float64 {
	return e.bodies[i].vel.Y
}
