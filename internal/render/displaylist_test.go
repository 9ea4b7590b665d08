package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestReplayPreservesOrder(t *testing.T) {
	src := NewDisplayList(800, 600)
	src.Clear()
	src.StrokePath([]r2.Vec{{X: 1, Y: 1}, {X: 2, Y: 2}}, White)
	src.FillCircle(r2.Vec{X: 5, Y: 5}, 3, color.RGBA{1, 2, 3, 255})
	src.StrokePath([]r2.Vec{{X: 9, Y: 9}}, White)
	src.Text("60 FPS", 740, 30, White)

	dst := NewDisplayList(0, 0)
	src.Replay(dst)

	ops := dst.Ops()
	require.Len(t, ops, 5)
	kinds := make([]OpKind, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	assert.Equal(t, []OpKind{OpClear, OpStroke, OpCircle, OpStroke, OpText}, kinds)
	assert.Equal(t, []r2.Vec{{X: 1, Y: 1}, {X: 2, Y: 2}}, dst.Points(ops[1]))
	assert.Equal(t, []r2.Vec{{X: 9, Y: 9}}, dst.Points(ops[3]))
	assert.Equal(t, "60 FPS", ops[4].Text)
}

func TestClearDropsPreviousFrame(t *testing.T) {
	d := NewDisplayList(10, 10)
	d.Clear()
	d.FillCircle(r2.Vec{}, 1, White)
	d.Clear()

	require.Len(t, d.Ops(), 1)
	assert.Equal(t, OpClear, d.Ops()[0].Kind)
}

func TestStrokeCopiesPoints(t *testing.T) {
	d := NewDisplayList(10, 10)
	pts := []r2.Vec{{X: 1}, {X: 2}}
	d.StrokePath(pts, White)
	pts[0].X = 99

	assert.Equal(t, 1.0, d.Points(d.Ops()[0])[0].X)
}

func TestRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 255}, RGB(0x123456))
}
