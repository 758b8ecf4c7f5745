package input

// MouseButton identifies the button in a mouse report.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
	ButtonNone
)

// MouseAction is what happened in a mouse report.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseDrag
	MouseRelease
	MouseWheelUp
	MouseWheelDown
)

// MouseEvent is one terminal mouse report. Col and Row are 1-based terminal cells.
type MouseEvent struct {
	Col    int
	Row    int
	Button MouseButton
	Action MouseAction
}

// PointerAction is the phase of a primary-pointer gesture.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
)

// PointerEvent is a primary-pointer event in logical canvas coordinates.
type PointerEvent struct {
	X, Y   float64
	Action PointerAction
}

// PointerFromMouse converts left-button mouse events to pointer events using toLogical
// for the coordinate mapping. Other buttons and the wheel are ignored.
func PointerFromMouse(events []MouseEvent, toLogical func(col, row int) (float64, float64)) []PointerEvent {
	var out []PointerEvent
	for _, ev := range events {
		if ev.Button != ButtonLeft {
			continue
		}
		var action PointerAction
		switch ev.Action {
		case MousePress:
			action = PointerDown
		case MouseDrag:
			action = PointerMove
		case MouseRelease:
			action = PointerUp
		default:
			continue
		}
		x, y := toLogical(ev.Col, ev.Row)
		out = append(out, PointerEvent{X: x, Y: y, Action: action})
	}
	return out
}

// parseSGRMouse parses "ESC [ < b ; col ; row M|m" at the start of data.
// It returns the number of bytes consumed; n == 0 means the sequence is incomplete.
// ok is false for a complete but malformed or unsupported report.
func parseSGRMouse(data []byte) (ev MouseEvent, n int, ok bool) {
	const prefix = 3 // ESC [ <
	var fields [3]int
	field := 0
	digits := 0
	for i := prefix; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			if digits < 6 {
				fields[field] = fields[field]*10 + int(b-'0')
			}
			digits++
		case b == ';':
			if field == 2 || digits == 0 {
				return MouseEvent{}, i + 1, false
			}
			field++
			digits = 0
		case b == 'M' || b == 'm':
			if field != 2 || digits == 0 {
				return MouseEvent{}, i + 1, false
			}
			return decodeSGR(fields[0], fields[1], fields[2], b == 'm'), i + 1, true
		default:
			return MouseEvent{}, i + 1, false
		}
	}
	return MouseEvent{}, 0, false
}

// decodeSGR maps the SGR button code to a MouseEvent.
func decodeSGR(code, col, row int, release bool) MouseEvent {
	ev := MouseEvent{Col: col, Row: row, Button: MouseButton(code & 3)}
	switch {
	case code&64 != 0:
		ev.Button = ButtonNone
		if code&1 == 0 {
			ev.Action = MouseWheelUp
		} else {
			ev.Action = MouseWheelDown
		}
	case release:
		ev.Action = MouseRelease
	case code&32 != 0:
		ev.Action = MouseDrag
	default:
		ev.Action = MousePress
	}
	return ev
}
