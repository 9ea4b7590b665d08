// Package input defines toolkit-independent pointer, key and settings events.
package input

import "gonum.org/v1/gonum/spatial/r2"

// Kind discriminates events
type Kind uint8

const (
	KindNone Kind = iota
	PointerDown
	PointerMove
	PointerUp
	PointerLeave
	Wheel
	KeyDown
	Setting
)

var kindNames = [...]string{
	KindNone:     "none",
	PointerDown:  "pointer-down",
	PointerMove:  "pointer-move",
	PointerUp:    "pointer-up",
	PointerLeave: "pointer-leave",
	Wheel:        "wheel",
	KeyDown:      "key-down",
	Setting:      "setting",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Button identifies a pointer button
type Button uint8

const (
	ButtonNone Button = iota
	Primary
	Secondary
	Auxiliary
)

// Buttons is a mask of held buttons
type Buttons uint8

const (
	HeldPrimary Buttons = 1 << iota
	HeldSecondary
	HeldAuxiliary
)

// Has reports whether b is held
func (m Buttons) Has(b Button) bool {
	switch b {
	case Primary:
		return m&HeldPrimary != 0
	case Secondary:
		return m&HeldSecondary != 0
	case Auxiliary:
		return m&HeldAuxiliary != 0
	}
	return false
}

// Key is a semantic key, already mapped from the toolkit's key code
type Key uint8

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyZoomIn
	KeyZoomOut
	KeyCenter
)

// Event is a single input. Fields not used by Kind are zero.
type Event struct {
	Kind Kind

	// Pointer events
	Button  Button
	Buttons Buttons
	Point   r2.Vec

	// Wheel
	DeltaY float64

	// KeyDown
	Key Key

	// Setting: raw, untyped value as entered by the user
	Name  string
	Value string
}
