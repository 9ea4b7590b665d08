package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/render"
)

const strokeWidth = 1

var face = text.NewGoXFace(basicfont.Face7x13)

// surface draws on an ebiten image
type surface struct {
	img *ebiten.Image
}

var _ render.Surface = (*surface)(nil)

func (s *surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *surface) Clear() {
	s.img.Fill(color.Black)
}

func (s *surface) StrokePath(pts []r2.Vec, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, clr, true)
	}
}

func (s *surface) FillCircle(center r2.Vec, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (s *surface) Text(str string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	// y is the baseline
	op.GeoM.Translate(float64(x), float64(y)-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.img, str, face, op)
}
