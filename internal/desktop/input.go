package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/input"
)

// TouchMode selects how touches are turned into input.
type TouchMode int

const (
	// TouchZones splits the window into thirds: left and right steer, the middle fires.
	TouchZones TouchMode = iota
	// TouchPointer makes the first touch behave like the left mouse button.
	TouchPointer
)

// readKeys fills the held-key fields of in from the keyboard state.
func readKeys(pressed func(ebiten.Key) bool, in *input.Input) {
	in.Left = pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA)
	in.Right = pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD)
	in.Up = pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW)
	in.Down = pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS)
	in.Space = pressed(ebiten.KeySpace)
	in.Enter = pressed(ebiten.KeyEnter) || pressed(ebiten.KeyNumpadEnter)
	in.Escape = pressed(ebiten.KeyEscape)
	in.Quit = pressed(ebiten.KeyQ)
}

// typedBytes appends the printable ASCII characters typed this frame to dst.
// Hotkeys are ASCII, so anything else is dropped.
func typedBytes(dst []byte, chars []rune) []byte {
	for _, r := range chars {
		if r >= ' ' && r <= '~' {
			dst = append(dst, byte(r))
		}
	}
	return dst
}

// zoneInput sets the steering and fire keys for a touch at window column x.
func zoneInput(x, width int, in *input.Input) {
	if width <= 0 {
		return
	}
	switch third := x * 3 / width; {
	case third <= 0:
		in.Left = true
	case third >= 2:
		in.Right = true
	default:
		in.Space = true
	}
}

// pointerTracker turns a polled button state into press, drag and release events.
type pointerTracker struct {
	down bool
	last draw.Point
}

// update appends the events for the button being down (or not) at p.
func (t *pointerTracker) update(dst []input.PointerEvent, down bool, p draw.Point) []input.PointerEvent {
	switch {
	case down && !t.down:
		dst = append(dst, input.PointerEvent{X: p.X, Y: p.Y, Action: input.PointerDown})
	case down && p != t.last:
		dst = append(dst, input.PointerEvent{X: p.X, Y: p.Y, Action: input.PointerMove})
	case !down && t.down:
		dst = append(dst, input.PointerEvent{X: p.X, Y: p.Y, Action: input.PointerUp})
	}
	t.down = down
	t.last = p
	return dst
}
