// Package loop drives a program (the shooter or the kaleidoscope) in a terminal.
package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/input"
	"github.com/tomz197/arcade/internal/kaleido"
	"github.com/tomz197/arcade/internal/shooter"
)

// Scene is a program the frame loop can run. The same scene runs in a terminal
// client and in the desktop window.
type Scene interface {
	// Update advances the scene by the wall time elapsed since the previous frame.
	Update(in input.Input, delta time.Duration) error
	// Draw paints the frame. Text goes to text in 1-based canvas cells.
	Draw(canvas *draw.Canvas, text draw.TextSink) error
	// LogicalSize is the coordinate space the scene draws in.
	LogicalSize() (width, height float64)
	// Background is the fill color of the logical area.
	Background() draw.Color
	// Done reports whether the user asked to quit.
	Done() bool
}

// Program names accepted by NewScene.
const (
	ProgramShooter      = "shooter"
	ProgramKaleidoscope = "kaleidoscope"
)

// Programs lists the program names in menu order.
var Programs = []string{ProgramShooter, ProgramKaleidoscope}

var (
	_ Scene = (*shooter.Game)(nil)
	_ Scene = (*kaleido.Board)(nil)
)

// NewScene creates the named program. Names are case-insensitive; "kaleido" is
// accepted for the kaleidoscope and an empty name selects the shooter.
// seed 0 picks a time based seed for the shooter.
func NewScene(name string, seed int64, logger *log.Logger) (Scene, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProgramShooter:
		return shooter.NewGame(seed, logger), nil
	case ProgramKaleidoscope, "kaleido":
		return kaleido.NewBoard(logger), nil
	}
	return nil, fmt.Errorf("unknown program %q (want one of %s)", name, strings.Join(Programs, ", "))
}
