package input

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestStream() *Stream {
	return &Stream{ch: make(chan byte)}
}

func TestProcessKeys(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		check func(Input) bool
	}{
		{"quit", "q", func(in Input) bool { return in.Quit }},
		{"left letter", "a", func(in Input) bool { return in.Left && !in.Right }},
		{"right arrow", "\x1b[C", func(in Input) bool { return in.Right && !in.Escape }},
		{"up arrow", "\x1b[A", func(in Input) bool { return in.Up }},
		{"space", " ", func(in Input) bool { return in.Space }},
		{"enter", "\r", func(in Input) bool { return in.Enter }},
		{"lone escape", "\x1b", func(in Input) bool { return in.Escape }},
		{"combination", "a \x1b[D", func(in Input) bool { return in.Left && in.Space }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream()
			got := s.process([]byte(tt.in), time.Now())
			if !tt.check(got) {
				t.Errorf("process(%q) = %+v", tt.in, got)
			}
		})
	}
}

func TestKeyHoldExpires(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	if in := s.process([]byte("d"), now); !in.Right {
		t.Fatal("right not held right after press")
	}
	if in := s.process(nil, now.Add(10*time.Millisecond)); !in.Right {
		t.Error("right released before hold duration")
	}
	if in := s.process(nil, now.Add(keyHoldDuration)); in.Right {
		t.Error("right still held after hold duration")
	}
}

func TestTypedSkipsEscapeSequences(t *testing.T) {
	s := newTestStream()
	in := s.process([]byte("c\x1b[Am+\x1b[<0;10;5M]"), time.Now())
	if got := string(in.Typed); got != "cm+]" {
		t.Errorf("Typed = %q, want %q", got, "cm+]")
	}
	if len(in.Pressed) != 17 {
		t.Errorf("Pressed has %d bytes, want the raw 17", len(in.Pressed))
	}
}

func TestSGRMouse(t *testing.T) {
	tests := []struct {
		in   string
		want MouseEvent
	}{
		{"\x1b[<0;12;7M", MouseEvent{Col: 12, Row: 7, Button: ButtonLeft, Action: MousePress}},
		{"\x1b[<32;13;7M", MouseEvent{Col: 13, Row: 7, Button: ButtonLeft, Action: MouseDrag}},
		{"\x1b[<0;13;8m", MouseEvent{Col: 13, Row: 8, Button: ButtonLeft, Action: MouseRelease}},
		{"\x1b[<2;1;1M", MouseEvent{Col: 1, Row: 1, Button: ButtonRight, Action: MousePress}},
		{"\x1b[<64;4;4M", MouseEvent{Col: 4, Row: 4, Button: ButtonNone, Action: MouseWheelUp}},
		{"\x1b[<65;4;4M", MouseEvent{Col: 4, Row: 4, Button: ButtonNone, Action: MouseWheelDown}},
	}
	for _, tt := range tests {
		s := newTestStream()
		in := s.process([]byte(tt.in), time.Now())
		if len(in.Mouse) != 1 {
			t.Errorf("%q: got %d events", tt.in, len(in.Mouse))
			continue
		}
		if in.Mouse[0] != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.in, in.Mouse[0], tt.want)
		}
		if in.Escape || len(in.Typed) != 0 {
			t.Errorf("%q leaked into keys: %+v", tt.in, in)
		}
	}
}

func TestSGRMouseSplitAcrossReads(t *testing.T) {
	s := newTestStream()
	now := time.Now()

	first := s.process([]byte("x\x1b[<0;1"), now)
	if len(first.Mouse) != 0 || string(first.Typed) != "x" {
		t.Fatalf("first read = %+v", first)
	}
	second := s.process([]byte("0;20M"), now)
	if len(second.Mouse) != 1 {
		t.Fatalf("second read produced %d events", len(second.Mouse))
	}
	if ev := second.Mouse[0]; ev.Col != 10 || ev.Row != 20 {
		t.Errorf("event = %+v, want col 10 row 20", ev)
	}
	if len(second.Typed) != 0 {
		t.Errorf("Typed = %q", second.Typed)
	}
}

func TestMalformedMouseIsDropped(t *testing.T) {
	s := newTestStream()
	in := s.process([]byte("\x1b[<0;;3Mz"), time.Now())
	if len(in.Mouse) != 0 {
		t.Errorf("malformed report produced %+v", in.Mouse)
	}
	if !strings.Contains(string(in.Typed), "z") {
		t.Errorf("bytes after malformed report lost: %q", in.Typed)
	}
}

func TestPointerFromMouse(t *testing.T) {
	events := []MouseEvent{
		{Col: 2, Row: 3, Button: ButtonLeft, Action: MousePress},
		{Col: 4, Row: 3, Button: ButtonLeft, Action: MouseDrag},
		{Col: 9, Row: 9, Button: ButtonRight, Action: MousePress},
		{Col: 5, Row: 3, Button: ButtonLeft, Action: MouseRelease},
		{Col: 5, Row: 3, Button: ButtonNone, Action: MouseWheelUp},
	}
	got := PointerFromMouse(events, func(col, row int) (float64, float64) {
		return float64(col * 10), float64(row * 10)
	})
	want := []PointerEvent{
		{X: 20, Y: 30, Action: PointerDown},
		{X: 40, Y: 30, Action: PointerMove},
		{X: 50, Y: 30, Action: PointerUp},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d pointer events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestResetKeyInput(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	s.process([]byte(" \x1b[<0;1"), now)
	ResetKeyInput(s)

	in := s.process(nil, now)
	if in.Space {
		t.Error("space still held after reset")
	}
	if len(s.pending) != 0 {
		t.Error("partial sequence kept after reset")
	}
}

func TestReadInputReportsClosedStream(t *testing.T) {
	s := StartStream(bufio.NewReader(bytes.NewReader([]byte("q"))))

	deadline := time.Now().Add(2 * time.Second)
	var sawQuit bool
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		sawQuit = sawQuit || in.Quit
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !sawQuit {
		t.Error("quit byte never delivered")
	}
	if in := ReadInput(s); !in.Closed {
		t.Error("stream not reported closed after EOF")
	}
}

// endless never runs out of bytes, like a client that keeps typing.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestStopReleasesBlockedReader(t *testing.T) {
	s := StartStream(bufio.NewReader(endless{}))

	deadline := time.Now().Add(2 * time.Second)
	for len(s.ch) < cap(s.ch) {
		if time.Now().After(deadline) {
			t.Fatal("stream buffer never filled")
		}
		time.Sleep(time.Millisecond)
	}

	s.Stop()
	s.Stop() // Safe to call twice

	deadline = time.Now().Add(2 * time.Second)
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		default:
			time.Sleep(time.Millisecond)
		}
		if time.Now().After(deadline) {
			t.Fatal("reader goroutine still running after Stop")
		}
	}
}
