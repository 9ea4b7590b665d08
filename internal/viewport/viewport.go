// Package viewport converts between physical (simulation) and visual (screen) coordinates.
package viewport

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Viewport is a camera over the physical plane.
// Scaling happens about the canvas midpoint, then the camera offset is applied.
type Viewport struct {
	Camera r2.Vec
	scale  float64
	mid    r2.Vec
}

// New returns a viewport at scale 1 with no camera offset for a w x h canvas
func New(w, h int) *Viewport {
	v := &Viewport{scale: 1}
	v.Resize(w, h)
	return v
}

// Resize updates the fixed point to the middle of a w x h canvas
func (v *Viewport) Resize(w, h int) {
	v.mid = r2.Vec{X: float64(w) / 2, Y: float64(h) / 2}
}

// Mid returns the canvas midpoint
func (v *Viewport) Mid() r2.Vec {
	return v.mid
}

// Scale returns the current zoom factor
func (v *Viewport) Scale() float64 {
	return v.scale
}

// Physical maps a visual point to the physical point it currently displays
func (v *Viewport) Physical(p r2.Vec) r2.Vec {
	d := r2.Sub(r2.Sub(p, v.Camera), v.mid)
	return r2.Add(r2.Scale(1/v.scale, d), v.mid)
}

// Visual maps a physical point to the screen
func (v *Viewport) Visual(p r2.Vec) r2.Vec {
	d := r2.Scale(v.scale, r2.Sub(p, v.mid))
	return r2.Add(r2.Add(v.mid, d), v.Camera)
}

// Pan shifts the camera by a raw screen-space delta
func (v *Viewport) Pan(d r2.Vec) {
	v.Camera = r2.Add(v.Camera, d)
}

// Zoom sets the scale while keeping the physical point under anchor on the same pixel.
// Non-positive or NaN scales are ignored.
func (v *Viewport) Zoom(scale float64, anchor r2.Vec) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return
	}
	p := v.Physical(anchor)
	v.scale = scale
	v.Camera = r2.Add(v.Camera, r2.Sub(anchor, v.Visual(p)))
}

// ZoomCenter zooms about the canvas midpoint
func (v *Viewport) ZoomCenter(scale float64) {
	v.Zoom(scale, v.mid)
}

// CenterOn moves the camera so p is drawn at the canvas midpoint
func (v *Viewport) CenterOn(p r2.Vec) {
	v.Camera = r2.Add(v.Camera, r2.Sub(v.mid, v.Visual(p)))
}
