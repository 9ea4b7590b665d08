package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpStroke
	OpCircle
	OpText
)

// Op is one recorded draw call
type Op struct {
	Kind   OpKind
	Color  color.Color
	from   int
	to     int
	Center r2.Vec
	Radius float64
	Text   string
	X, Y   int
}

// DisplayList is a Surface that records one frame so it can be replayed
// later, on another surface, possibly more than once.
// Clear drops previously recorded calls.
type DisplayList struct {
	w, h int
	ops  []Op
	pts  []r2.Vec
}

var _ Surface = (*DisplayList)(nil)

// NewDisplayList creates an empty list for a w x h canvas
func NewDisplayList(w, h int) *DisplayList {
	return &DisplayList{w: w, h: h}
}

// SetSize updates the reported canvas size
func (d *DisplayList) SetSize(w, h int) {
	d.w, d.h = w, h
}

func (d *DisplayList) Size() (int, int) {
	return d.w, d.h
}

func (d *DisplayList) Clear() {
	d.ops = d.ops[:0]
	d.pts = d.pts[:0]
	d.ops = append(d.ops, Op{Kind: OpClear})
}

func (d *DisplayList) StrokePath(pts []r2.Vec, clr color.Color) {
	from := len(d.pts)
	d.pts = append(d.pts, pts...)
	d.ops = append(d.ops, Op{Kind: OpStroke, Color: clr, from: from, to: len(d.pts)})
}

func (d *DisplayList) FillCircle(center r2.Vec, radius float64, clr color.Color) {
	d.ops = append(d.ops, Op{Kind: OpCircle, Color: clr, Center: center, Radius: radius})
}

func (d *DisplayList) Text(s string, x, y int, clr color.Color) {
	d.ops = append(d.ops, Op{Kind: OpText, Color: clr, Text: s, X: x, Y: y})
}

// Ops returns the recorded calls in order
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Points returns the polyline of a stroke op
func (d *DisplayList) Points(op Op) []r2.Vec {
	return d.pts[op.from:op.to]
}

// Replay issues every recorded call on dst
func (d *DisplayList) Replay(dst Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpStroke:
			dst.StrokePath(d.Points(op), op.Color)
		case OpCircle:
			dst.FillCircle(op.Center, op.Radius, op.Color)
		case OpText:
			dst.Text(op.Text, op.X, op.Y, op.Color)
		}
	}
}
