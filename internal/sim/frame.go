package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/olivierh59500/gravity-sandbox/internal/render"
	"github.com/olivierh59500/gravity-sandbox/internal/trail"
)

// Tick advances the engine by one frame and draws it on dst.
// Trails are drawn before any body so bodies end up on top.
func (s *Session) Tick(dst render.Surface) {
	s.measureFrame()

	dst.Clear()
	w, h := dst.Size()
	s.view.Resize(w, h)

	if s.dragging && s.hasCurrent {
		dst.StrokePath([]r2.Vec{s.anchor, s.current}, render.White)
	}

	s.bridge.Step(FrameTime/Substeps, s.substeps())

	n := s.bridge.ParticleCount()
	if s.focused {
		if s.focus < n {
			s.view.CenterOn(s.bridge.Position(s.focus))
		} else {
			s.focused = false
		}
	}

	s.alignTrails(n)
	for i := 0; i < n; i++ {
		s.drawTrail(dst, s.trails[i])
	}

	scale := s.view.Scale()
	for i := 0; i < n; i++ {
		pos := s.bridge.Position(i)
		radius := s.bridge.Radius(i)
		t := s.trails[i]

		// absorbed particles shrink their trail away instead of growing it
		if radius == 0 {
			if t.Len() > 0 {
				t.Pop()
			}
			continue
		}
		t.Push(pos)
		dst.FillCircle(s.view.Visual(pos), radius*scale, render.RGB(s.bridge.Color(i)))
	}

	dst.Text(fmt.Sprintf("%d FPS", s.FPS()), w-60, 30, render.White)
}

// FPS returns the frame rate averaged over recent ticks
func (s *Session) FPS() int {
	if s.fps.Len() == 0 {
		return 0
	}
	s.samples = s.fps.AppendTo(s.samples[:0])
	return int(math.Round(stat.Mean(s.samples, nil)))
}

func (s *Session) measureFrame() {
	now := s.now()
	if !s.lastFrame.IsZero() {
		if dt := now.Sub(s.lastFrame).Seconds(); dt > 0 {
			s.fps.Push(1 / dt)
		}
	}
	s.lastFrame = now
}

// substeps scales the nominal round count by the speed setting
func (s *Session) substeps() int {
	n := Substeps * s.settings.SimSpeed
	if !(n > 0) || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}

func (s *Session) drawTrail(dst render.Surface, t *trail.Buffer[r2.Vec]) {
	if t.Len() < 2 {
		return
	}
	s.path = s.path[:0]
	t.Each(func(_ int, p r2.Vec) {
		s.path = append(s.path, s.view.Visual(p))
	})
	dst.StrokePath(s.path, render.White)
}
