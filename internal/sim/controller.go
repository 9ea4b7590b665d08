package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/input"
)

// Handle dispatches one input event.
//
// A primary press starts a velocity drag that becomes a particle on release
// or when the pointer leaves the canvas. A secondary press drags the camera.
// An auxiliary press follows the particle under the pointer.
func (s *Session) Handle(ev input.Event) {
	switch ev.Kind {
	case input.PointerDown:
		s.pointerDown(ev.Button, ev.Point)
	case input.PointerMove:
		s.pointerMove(ev.Buttons, ev.Point)
	case input.PointerUp, input.PointerLeave:
		s.release()
	case input.Wheel:
		s.wheel(ev.DeltaY, ev.Point)
	case input.KeyDown:
		s.key(ev.Key)
	case input.Setting:
		// rejection is logged by ApplySetting
		_ = s.ApplySetting(ev.Name, ev.Value)
	default:
		s.log.Warn().Stringer("kind", ev.Kind).Msg("ignoring input event")
	}
}

// Dragging reports the pending velocity drag, if any.
// end equals start until the pointer has moved.
func (s *Session) Dragging() (start, end r2.Vec, ok bool) {
	if !s.dragging {
		return r2.Vec{}, r2.Vec{}, false
	}
	end = s.anchor
	if s.hasCurrent {
		end = s.current
	}
	return s.anchor, end, true
}

func (s *Session) pointerDown(b input.Button, pt r2.Vec) {
	switch b {
	case input.Primary:
		s.dragging = true
		s.anchor = pt
		s.hasCurrent = false
	case input.Secondary:
		s.panning = true
		s.last = pt
	case input.Auxiliary:
		s.focusAt(pt)
	}
}

func (s *Session) pointerMove(held input.Buttons, pt r2.Vec) {
	switch {
	case held.Has(input.Primary) && s.dragging:
		s.current = pt
		s.hasCurrent = true
	case held.Has(input.Secondary) && s.panning:
		s.view.Pan(r2.Sub(pt, s.last))
		s.last = pt
	}
}

// release launches a pending velocity drag and ends every gesture
func (s *Session) release() {
	if start, end, ok := s.Dragging(); ok {
		p0 := s.view.Physical(start)
		p1 := s.view.Physical(end)
		vel := r2.Scale(1/LaunchDivisor, r2.Sub(p1, p0))
		s.Spawn(p0, vel, s.settings.NextMass())
	}
	s.dragging = false
	s.hasCurrent = false
	s.panning = false
}

func (s *Session) wheel(deltaY float64, pt r2.Vec) {
	switch {
	case deltaY > 0:
		s.view.Zoom(s.view.Scale()/WheelZoom, pt)
	case deltaY < 0:
		s.view.Zoom(s.view.Scale()*WheelZoom, pt)
	}
}

func (s *Session) key(k input.Key) {
	switch k {
	case input.KeyArrowUp:
		s.view.Pan(r2.Vec{Y: KeyPan})
	case input.KeyArrowDown:
		s.view.Pan(r2.Vec{Y: -KeyPan})
	case input.KeyArrowLeft:
		s.view.Pan(r2.Vec{X: KeyPan})
	case input.KeyArrowRight:
		s.view.Pan(r2.Vec{X: -KeyPan})
	case input.KeyZoomIn:
		s.view.ZoomCenter(s.view.Scale() * KeyZoom)
	case input.KeyZoomOut:
		s.view.ZoomCenter(s.view.Scale() / KeyZoom)
	case input.KeyCenter:
		s.toggleFocus()
	}
}

// focusAt follows the first particle whose disc contains pt
func (s *Session) focusAt(pt r2.Vec) {
	p := s.view.Physical(pt)
	n := s.bridge.ParticleCount()
	for i := 0; i < n; i++ {
		if r2.Norm(r2.Sub(s.bridge.Position(i), p)) < s.bridge.Radius(i) {
			s.setFocus(i)
			return
		}
	}
}

// toggleFocus stops following, or follows the heaviest particle
func (s *Session) toggleFocus() {
	if s.focused {
		s.focused = false
		s.log.Debug().Int("index", s.focus).Msg("focus cleared")
		return
	}
	heaviest := 0.0
	for i, n := 0, s.bridge.ParticleCount(); i < n; i++ {
		if m := s.bridge.Mass(i); m > heaviest {
			heaviest = m
			s.setFocus(i)
		}
	}
}

func (s *Session) setFocus(i int) {
	s.focus = i
	s.focused = true
	s.log.Debug().Int("index", i).Msg("focus set")
}
