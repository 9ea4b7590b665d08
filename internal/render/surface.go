// Package render describes the immediate-mode drawing surface a frame is emitted to.
package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Surface is an abstract 2D canvas in visual (pixel) coordinates
type Surface interface {
	// Size returns the current canvas size in pixels
	Size() (w, h int)
	Clear()
	// StrokePath draws a polyline through pts
	StrokePath(pts []r2.Vec, clr color.Color)
	FillCircle(center r2.Vec, radius float64, clr color.Color)
	// Text draws s in a fixed-width font with its baseline at y
	Text(s string, x, y int, clr color.Color)
}

// White is used for trails, the drag line and text
var White = color.RGBA{255, 255, 255, 255}

// RGB converts a packed r<<16 | g<<8 | b color to an opaque color.RGBA
func RGB(c uint32) color.RGBA {
	return color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 255}
}
