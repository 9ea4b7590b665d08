package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/render"
)

// One terminal cell covers CellWidth x CellHeight canvas pixels
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	runeTrail = '·'
	runeBody  = '█'
	runeSmall = '•'
)

// surface draws on a tcell screen, one character per cell
type surface struct {
	screen tcell.Screen
}

var _ render.Surface = (*surface)(nil)

func style(clr color.Color) tcell.Style {
	r, g, b, _ := clr.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

func (s *surface) Size() (int, int) {
	cols, rows := s.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

func (s *surface) Clear() {
	s.screen.Clear()
}

func (s *surface) set(x, y int, r rune, st tcell.Style) {
	cols, rows := s.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	s.screen.SetContent(x, y, r, nil, st)
}

func (s *surface) StrokePath(pts []r2.Vec, clr color.Color) {
	st := style(clr)
	for i := 1; i < len(pts); i++ {
		s.line(pts[i-1], pts[i], st)
	}
}

// line rasterizes a segment with Bresenham after clipping it to the screen
func (s *surface) line(a, b r2.Vec, st tcell.Style) {
	cols, rows := s.screen.Size()
	a = r2.Vec{X: a.X / CellWidth, Y: a.Y / CellHeight}
	b = r2.Vec{X: b.X / CellWidth, Y: b.Y / CellHeight}
	a, b, ok := clip(a, b, float64(cols), float64(rows))
	if !ok {
		return
	}

	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		s.set(x0, y0, runeTrail, st)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *surface) FillCircle(center r2.Vec, radius float64, clr color.Color) {
	st := style(clr)
	cols, rows := s.screen.Size()

	x0 := max(int(math.Floor((center.X-radius)/CellWidth)), 0)
	x1 := min(int(math.Floor((center.X+radius)/CellWidth)), cols-1)
	y0 := max(int(math.Floor((center.Y-radius)/CellHeight)), 0)
	y1 := min(int(math.Floor((center.Y+radius)/CellHeight)), rows-1)

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r2.Norm(r2.Sub(cellCenter(x, y), center)) <= radius {
				s.set(x, y, runeBody, st)
				drawn = true
			}
		}
	}
	// bodies smaller than a cell still get a marker
	if !drawn {
		s.set(int(math.Floor(center.X/CellWidth)), int(math.Floor(center.Y/CellHeight)), runeSmall, st)
	}
}

func (s *surface) Text(str string, x, y int, clr color.Color) {
	st := style(clr)
	col, row := x/CellWidth, y/CellHeight
	for i, r := range []rune(str) {
		s.set(col+i, row, r, st)
	}
}

// clip restricts segment ab to [0,w) x [0,h) (Liang-Barsky)
func clip(a, b r2.Vec, w, h float64) (r2.Vec, r2.Vec, bool) {
	for _, v := range [4]float64{a.X, a.Y, b.X, b.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return a, b, false
		}
	}
	d := r2.Sub(b, a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X},
		{d.X, w - 1e-9 - a.X},
		{-d.Y, a.Y},
		{d.Y, h - 1e-9 - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return r2.Add(a, r2.Scale(t0, d)), r2.Add(a, r2.Scale(t1, d)), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
