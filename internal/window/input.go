package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/input"
)

var mouseButtons = []struct {
	mouse ebiten.MouseButton
	held  input.Buttons
}{
	{ebiten.MouseButtonLeft, input.HeldPrimary},
	{ebiten.MouseButtonRight, input.HeldSecondary},
	{ebiten.MouseButtonMiddle, input.HeldAuxiliary},
}

var keys = []struct {
	key ebiten.Key
	to  input.Key
}{
	{ebiten.KeyArrowUp, input.KeyArrowUp},
	{ebiten.KeyArrowDown, input.KeyArrowDown},
	{ebiten.KeyArrowLeft, input.KeyArrowLeft},
	{ebiten.KeyArrowRight, input.KeyArrowRight},
	{ebiten.KeyZ, input.KeyZoomIn},
	{ebiten.KeyX, input.KeyZoomOut},
	{ebiten.KeyC, input.KeyCenter},
}

// snapshot samples this tick's Ebitengine input state
func (g *Game) snapshot() input.Snapshot {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()

	s := input.Snapshot{
		Cursor:   r2.Vec{X: float64(mx), Y: float64(my)},
		Width:    g.Width,
		Height:   g.Height,
		WheelY:   wy,
		KeyTicks: g.keyTicks,
	}
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.mouse) {
			s.Held |= b.held
		}
	}
	for _, k := range keys {
		s.KeyTicks[k.to] = inpututil.KeyPressDuration(k.key)
	}
	return s
}
