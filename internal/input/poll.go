package input

import "gonum.org/v1/gonum/spatial/r2"

// Key repeat timing, in ticks
const (
	RepeatDelay    = 30
	RepeatInterval = 3
)

// Snapshot is the input state a polling toolkit reports for one tick
type Snapshot struct {
	Cursor        r2.Vec
	Width, Height int
	Held          Buttons
	// WheelY is positive when scrolling up
	WheelY float64
	// KeyTicks is how many ticks each key has been held, 0 when released
	KeyTicks map[Key]int
}

func (s Snapshot) inside() bool {
	return s.Cursor.X >= 0 && s.Cursor.Y >= 0 &&
		s.Cursor.X < float64(s.Width) && s.Cursor.Y < float64(s.Height)
}

var pollButtons = [...]struct {
	button Button
	held   Buttons
}{
	{Primary, HeldPrimary},
	{Secondary, HeldSecondary},
	{Auxiliary, HeldAuxiliary},
}

// Poller turns successive snapshots into events
type Poller struct {
	held   Buttons
	last   r2.Vec
	inside bool
	seen   bool
}

// Next returns the events between the previous snapshot and s
func (p *Poller) Next(s Snapshot) []Event {
	var out []Event
	inside := s.inside()

	if inside {
		pressed := s.Held &^ p.held
		for _, b := range pollButtons {
			if pressed&b.held != 0 {
				out = append(out, Event{Kind: PointerDown, Button: b.button, Point: s.Cursor})
			}
		}
	}

	if !p.seen || s.Cursor != p.last {
		out = append(out, Event{Kind: PointerMove, Buttons: s.Held, Point: s.Cursor})
	}

	if p.held&^s.Held != 0 {
		out = append(out, Event{Kind: PointerUp, Point: s.Cursor})
	}

	if p.seen && p.inside && !inside {
		out = append(out, Event{Kind: PointerLeave, Point: s.Cursor})
	}

	if s.WheelY != 0 && inside {
		out = append(out, Event{Kind: Wheel, DeltaY: -s.WheelY, Point: s.Cursor})
	}

	for k := KeyArrowUp; k <= KeyCenter; k++ {
		if repeats(s.KeyTicks[k]) {
			out = append(out, Event{Kind: KeyDown, Key: k})
		}
	}

	p.held = s.Held
	p.last = s.Cursor
	p.inside = inside
	p.seen = true
	return out
}

// repeats reports whether a key held for d ticks fires this tick
func repeats(d int) bool {
	return d == 1 || (d >= RepeatDelay && (d-RepeatDelay)%RepeatInterval == 0)
}
