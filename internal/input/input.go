package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Space   bool
	Enter   bool
	Escape  bool
	Pressed []byte // Raw bytes read this frame
	Typed   []byte // Plain key bytes this frame, escape sequences removed
	Mouse   []MouseEvent
	Pointer []PointerEvent // Left-button events in logical coordinates, filled by the presenter
	Closed  bool           // The underlying reader hit EOF or an error
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	up     time.Time
	down   time.Time
	space  time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	stop    sync.Once
	state   keyState
	pending []byte // Incomplete escape sequence carried to the next read
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine ends when r fails or Stop is called.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for {
			select {
			case <-s.done:
				return
			default:
			}
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine once nobody drains the stream. A goroutine blocked
// inside ReadByte still ends on the next byte or when the reader is closed.
func (s *Stream) Stop() {
	s.stop.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and mouse reports and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.process(buf, time.Now())
	in.Closed = s.closed
	return in
}

// ResetKeyInput forgets held keys and any partial escape sequence, so a key used to
// leave a screen does not leak into the next one.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
	s.pending = nil
}

// process parses buf (prefixed by any pending partial sequence) and builds the frame input.
func (s *Stream) process(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	data := buf
	if len(s.pending) > 0 {
		data = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(data); i++ {
		b := data[i]

		if b == '\x1b' && i+1 < len(data) && data[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			if i+2 >= len(data) {
				s.pending = append([]byte(nil), data[i:]...)
				break
			}
			switch data[i+2] {
			case 'A': // Up arrow
				s.state.up = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.down = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case '<': // SGR mouse report
				ev, n, ok := parseSGRMouse(data[i:])
				if n == 0 {
					s.pending = append([]byte(nil), data[i:]...)
					i = len(data)
					continue
				}
				if ok {
					in.Mouse = append(in.Mouse, ev)
				}
				i += n - 1
				continue
			}
		}

		applyByteToState(&s.state, b, now)
		if b != '\x1b' {
			in.Typed = append(in.Typed, b)
		}
	}

	in.Quit = now.Sub(s.state.quit) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Space = now.Sub(s.state.space) < keyHoldDuration
	in.Enter = now.Sub(s.state.enter) < keyHoldDuration
	in.Escape = now.Sub(s.state.escape) < keyHoldDuration
	return in
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
