package main

import (
	"testing"
	"time"
)

func TestProgramFromCommand(t *testing.T) {
	tests := []struct {
		cmd  []string
		want string
	}{
		{nil, "shooter"},
		{[]string{""}, "shooter"},
		{[]string{"kaleidoscope"}, "kaleidoscope"},
		{[]string{"kaleido", "extra"}, "kaleido"},
	}
	for _, tt := range tests {
		if got := programFromCommand(tt.cmd, "shooter"); got != tt.want {
			t.Errorf("programFromCommand(%q) = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Errorf("getSize = %d, %d, %v", w, h, err)
	}
}

func TestWaitForSessions(t *testing.T) {
	a := &arcade{}
	if !a.wait(time.Second) {
		t.Error("wait with no sessions timed out")
	}

	if !a.enter() {
		t.Fatal("session refused before shutdown")
	}
	if a.wait(10 * time.Millisecond) {
		t.Error("wait returned before the session ended")
	}
	a.sessions.Done()
	if !a.wait(time.Second) {
		t.Error("wait timed out after the session ended")
	}
}

func TestNoSessionsAfterClose(t *testing.T) {
	a := &arcade{}
	a.close()
	if a.enter() {
		a.sessions.Done()
		t.Fatal("session registered after shutdown began")
	}
	if !a.wait(time.Second) {
		t.Error("wait timed out with no sessions")
	}
}
