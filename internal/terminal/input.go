package terminal

import (
	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/gravity-sandbox/internal/input"
)

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button input.Button
	held   input.Buttons
}{
	{tcell.Button1, input.Primary, input.HeldPrimary},
	{tcell.Button2, input.Secondary, input.HeldSecondary},
	{tcell.Button3, input.Auxiliary, input.HeldAuxiliary},
}

const pressMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// translator turns tcell's level-triggered mouse reports into edge events
type translator struct {
	pressed tcell.ButtonMask
	last    r2.Vec
	seen    bool
}

// cellCenter maps a cell to the canvas pixel at its center
func cellCenter(x, y int) r2.Vec {
	return r2.Vec{
		X: (float64(x) + 0.5) * CellWidth,
		Y: (float64(y) + 0.5) * CellHeight,
	}
}

func (t *translator) mouse(ev *tcell.EventMouse) []input.Event {
	x, y := ev.Position()
	pt := cellCenter(x, y)
	btn := ev.Buttons()

	var out []input.Event
	if btn&tcell.WheelUp != 0 {
		out = append(out, input.Event{Kind: input.Wheel, DeltaY: -1, Point: pt})
	}
	if btn&tcell.WheelDown != 0 {
		out = append(out, input.Event{Kind: input.Wheel, DeltaY: 1, Point: pt})
	}

	pressed := btn & pressMask
	var held input.Buttons
	for _, b := range mouseButtons {
		if pressed&b.mask == 0 {
			continue
		}
		held |= b.held
		if t.pressed&b.mask == 0 {
			out = append(out, input.Event{Kind: input.PointerDown, Button: b.button, Point: pt})
		}
	}

	if !t.seen || pt != t.last {
		out = append(out, input.Event{Kind: input.PointerMove, Buttons: held, Point: pt})
	}
	if t.pressed&^pressed != 0 {
		out = append(out, input.Event{Kind: input.PointerUp, Point: pt})
	}

	t.pressed = pressed
	t.last = pt
	t.seen = true
	return out
}

// key maps a key press to a viewer key; ok is false for unmapped keys
func key(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyArrowUp, true
	case tcell.KeyDown:
		return input.KeyArrowDown, true
	case tcell.KeyLeft:
		return input.KeyArrowLeft, true
	case tcell.KeyRight:
		return input.KeyArrowRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z':
			return input.KeyZoomIn, true
		case 'x', 'X':
			return input.KeyZoomOut, true
		case 'c', 'C':
			return input.KeyCenter, true
		}
	}
	return input.KeyNone, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
