package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/config"
	"github.com/olivierh59500/gravity-sandbox/internal/engine/enginetest"
	"github.com/olivierh59500/gravity-sandbox/internal/input"
	"github.com/olivierh59500/gravity-sandbox/internal/render"
)

func TestTickStepsEngine(t *testing.T) {
	fake := enginetest.New()
	s := newTestSession(t, fake)
	dl := render.NewDisplayList(800, 600)

	s.Tick(dl)
	s.Handle(setting(config.SimSpeed, "0.5"))
	s.Tick(dl)
	s.Handle(setting(config.SimSpeed, "-1"))
	s.Tick(dl)

	require.Len(t, fake.Steps, 3)
	assert.InDelta(t, 0.001, fake.Steps[0].DT, 1e-15)
	assert.Equal(t, 100, fake.Steps[0].Substeps)
	assert.InDelta(t, 0.001, fake.Steps[1].DT, 1e-15)
	assert.Equal(t, 50, fake.Steps[1].Substeps)
	assert.Equal(t, 0, fake.Steps[2].Substeps)
}

func TestTickDrawsTrailsBeforeBodies(t *testing.T) {
	fake := enginetest.New()
	fake.OnStep = enginetest.Drift
	s := newTestSession(t, fake)
	s.Spawn(r2.Vec{X: 100, Y: 100}, r2.Vec{X: 10}, 4)
	s.Spawn(r2.Vec{X: 200, Y: 100}, r2.Vec{Y: 10}, 9)
	dl := render.NewDisplayList(800, 600)

	for i := 0; i < 3; i++ {
		s.Tick(dl)
	}

	ops := dl.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, render.OpClear, ops[0].Kind)
	assert.Equal(t, render.OpText, ops[len(ops)-1].Kind)

	var strokes, circles int
	for _, op := range ops[1 : len(ops)-1] {
		switch op.Kind {
		case render.OpStroke:
			require.Zero(t, circles, "trail drawn after a body")
			strokes++
		case render.OpCircle:
			circles++
		}
	}
	assert.Equal(t, 2, strokes)
	assert.Equal(t, 2, circles)

	circle := ops[len(ops)-2]
	assert.Equal(t, 3.0, circle.Radius)
	assert.Equal(t, render.RGB(fake.Particles[1].Color), circle.Color)
}

func TestTrailRecordsPhysicalPositions(t *testing.T) {
	fake := enginetest.New()
	fake.OnStep = enginetest.Drift
	s := newTestSession(t, fake)
	s.Spawn(r2.Vec{}, r2.Vec{X: 10}, 1)
	s.Viewport().Zoom(3, r2.Vec{X: 7, Y: 9})
	dl := render.NewDisplayList(800, 600)

	for i := 0; i < 4; i++ {
		s.Tick(dl)
	}

	// each tick drifts by velocity * 0.001 * 100
	tr := s.Trail(0)
	require.Equal(t, 4, tr.Len())
	for i := 0; i < 4; i++ {
		assertVec(t, r2.Vec{X: float64(i + 1)}, tr.Get(i), "entry %d", i)
	}

	var stroke render.Op
	for _, op := range dl.Ops() {
		if op.Kind == render.OpStroke {
			stroke = op
		}
	}
	pts := dl.Points(stroke)
	require.Len(t, pts, 3, "the newest position is pushed after the trail is drawn")
	assertVec(t, s.Viewport().Visual(r2.Vec{X: 1}), pts[0])
}

func TestAbsorbedParticleTrailShrinks(t *testing.T) {
	fake := enginetest.New()
	s := newTestSession(t, fake)
	s.Spawn(r2.Vec{X: 5, Y: 5}, r2.Vec{}, 16)
	dl := render.NewDisplayList(800, 600)

	for i := 0; i < 5; i++ {
		s.Tick(dl)
	}
	require.Equal(t, 5, s.Trail(0).Len())

	fake.Particles[0].Radius = 0
	fake.Particles[0].Mass = 0
	for want := 4; want >= 0; want-- {
		s.Tick(dl)
		assert.Equal(t, want, s.Trail(0).Len())
		for _, op := range dl.Ops() {
			assert.NotEqual(t, render.OpCircle, op.Kind)
		}
	}

	// an empty trail is left alone
	s.Tick(dl)
	assert.Zero(t, s.Trail(0).Len())
}

func TestTrailsFollowEngineCount(t *testing.T) {
	fake := enginetest.New()
	fake.AddParticle(r2.Vec{}, r2.Vec{}, 1, 1, 0)
	fake.AddParticle(r2.Vec{}, r2.Vec{}, 1, 1, 0)
	s := newTestSession(t, fake)
	assert.Equal(t, 2, s.TrailCount())

	fake.AddParticle(r2.Vec{}, r2.Vec{}, 1, 1, 0)
	s.Tick(render.NewDisplayList(800, 600))
	assert.Equal(t, fake.ParticleCount(), s.TrailCount())

	fake.AddParticle(r2.Vec{}, r2.Vec{}, 1, 1, 0)
	idx := s.Spawn(r2.Vec{}, r2.Vec{}, 1)
	assert.Equal(t, 4, idx)
	assert.Equal(t, fake.ParticleCount(), s.TrailCount())
}

func TestTrailLengthSettingTrimsExisting(t *testing.T) {
	fake := enginetest.New()
	fake.OnStep = enginetest.Drift
	s := newTestSession(t, fake)
	s.Spawn(r2.Vec{}, r2.Vec{X: 10}, 1)
	dl := render.NewDisplayList(800, 600)

	for i := 0; i < 150; i++ {
		s.Tick(dl)
	}
	require.Equal(t, 100, s.Trail(0).Len())

	s.Handle(setting(config.TrailLength, "10"))

	tr := s.Trail(0)
	require.Equal(t, 10, tr.Len())
	for i := 0; i < 10; i++ {
		assertVec(t, r2.Vec{X: float64(141 + i)}, tr.Get(i))
	}

	idx := s.Spawn(r2.Vec{}, r2.Vec{}, 1)
	assert.Equal(t, 10, s.Trail(idx).Cap())
}

func TestFocusKeepsParticleCentered(t *testing.T) {
	fake := enginetest.New()
	fake.OnStep = enginetest.Drift
	s := newTestSession(t, fake)
	s.Spawn(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 30, Y: -20}, 1)
	s.Spawn(r2.Vec{X: 50, Y: 50}, r2.Vec{}, 400)
	dl := render.NewDisplayList(800, 600)

	s.Handle(key(input.KeyCenter))
	i, ok := s.Focus()
	require.True(t, ok)
	require.Equal(t, 1, i)

	s.Handle(down(input.Auxiliary, 10, 10))
	i, _ = s.Focus()
	require.Equal(t, 0, i)

	for n := 0; n < 5; n++ {
		if n == 2 {
			s.Handle(input.Event{Kind: input.Wheel, DeltaY: -1, Point: r2.Vec{X: 20, Y: 30}})
		}
		s.Tick(dl)
		assertVec(t, s.Viewport().Mid(), s.Viewport().Visual(fake.Position(0)), "tick %d", n)
	}
}

func TestDragLineDrawnWhilePending(t *testing.T) {
	fake := enginetest.New()
	s := newTestSession(t, fake)
	dl := render.NewDisplayList(800, 600)

	s.Handle(down(input.Primary, 10, 10))
	s.Tick(dl)
	for _, op := range dl.Ops() {
		assert.NotEqual(t, render.OpStroke, op.Kind, "no line before the pointer moves")
	}

	s.Handle(move(input.HeldPrimary, 40, 50))
	s.Tick(dl)
	ops := dl.Ops()
	require.GreaterOrEqual(t, len(ops), 2)
	require.Equal(t, render.OpStroke, ops[1].Kind)
	assert.Equal(t, []r2.Vec{{X: 10, Y: 10}, {X: 40, Y: 50}}, dl.Points(ops[1]))
}

func TestTickTracksCanvasSize(t *testing.T) {
	s := newTestSession(t, enginetest.New())
	dl := render.NewDisplayList(1000, 500)

	s.Tick(dl)
	assertVec(t, r2.Vec{X: 500, Y: 250}, s.Viewport().Mid())
}

func TestFPSReadout(t *testing.T) {
	s := newTestSession(t, enginetest.New())
	dl := render.NewDisplayList(800, 600)

	s.Tick(dl)
	text := dl.Ops()[len(dl.Ops())-1]
	assert.Equal(t, "0 FPS", text.Text)

	for i := 0; i < 3; i++ {
		s.Tick(dl)
	}
	text = dl.Ops()[len(dl.Ops())-1]
	assert.Equal(t, render.OpText, text.Kind)
	assert.Equal(t, "50 FPS", text.Text)
	assert.Equal(t, 740, text.X)
	assert.Equal(t, 30, text.Y)
}
