// Package desktop shows a scene in a native window. The window renders the same
// half-block canvas as the terminal, one cell per CellWidth x CellHeight window pixels.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/input"
	"github.com/tomz197/arcade/internal/loop"
	"github.com/tomz197/arcade/internal/loop/config"
)

// Window pixels per canvas cell. A cell holds two square canvas pixels.
const (
	CellWidth  = 8
	CellHeight = 16
	pixelSize  = CellWidth

	debugCharWidth = 6 // Glyph advance of the ebitenutil debug font
)

// Options configures the window.
type Options struct {
	Cols, Rows int // Canvas size in cells
	Scale      int // Initial window scale
	Title      string
	Touch      TouchMode
	Logger     *log.Logger
}

// Game adapts a scene to ebiten.Game.
type Game struct {
	scene   loop.Scene
	canvas  *draw.Canvas
	overlay draw.TextBuffer
	frame   *ebiten.Image
	pixels  []byte
	opts    Options
	logger  *log.Logger

	lastUpdate time.Time
	pointer    pointerTracker
	chars      []rune
	touchIDs   []ebiten.TouchID
	drawErr    error
}

// NewGame wraps scene for the window. Zero options get defaults.
func NewGame(scene loop.Scene, opts Options) *Game {
	if opts.Cols <= 0 {
		opts.Cols = config.DesktopCols
	}
	if opts.Rows <= 0 {
		opts.Rows = config.DesktopRows
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	w, h := scene.LogicalSize()
	return &Game{
		scene:  scene,
		canvas: draw.NewScaledCanvas(opts.Cols, opts.Rows, w, h),
		opts:   opts,
		logger: opts.Logger,
	}
}

// Run opens the window and blocks until the scene is done or the window is closed.
func Run(scene loop.Scene, opts Options) error {
	g := NewGame(scene, opts)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowSize(g.opts.Cols*CellWidth*g.opts.Scale, g.opts.Rows*CellHeight*g.opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.ClientTargetFPS)

	g.logger.Info("window opened", "cols", g.opts.Cols, "rows", g.opts.Rows)
	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	g.logger.Info("window closed")
	return nil
}

// Update polls the keyboard, mouse and touches and advances the scene.
func (g *Game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}

	now := time.Now()
	delta := config.ClientTargetFrameTime
	if !g.lastUpdate.IsZero() {
		delta = now.Sub(g.lastUpdate)
	}
	g.lastUpdate = now

	var in input.Input
	readKeys(ebiten.IsKeyPressed, &in)
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	in.Typed = typedBytes(nil, g.chars)
	in.Pressed = in.Typed

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	touching := false

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for i, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		if g.opts.Touch == TouchZones {
			zoneInput(tx, g.opts.Cols*CellWidth, &in)
		} else if i == 0 {
			mx, my, touching = tx, ty, true
		}
	}

	px, py := g.canvas.PixelToLogical(float64(mx)/pixelSize, float64(my)/pixelSize)
	in.Pointer = g.pointer.update(in.Pointer, mouseDown || touching, draw.Point{X: px, Y: py})

	if err := g.scene.Update(in, delta); err != nil {
		return fmt.Errorf("update scene: %w", err)
	}
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the canvas scaled up to the window and the text on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetBackground(g.scene.Background())
	g.canvas.Clear()
	if err := g.scene.Draw(g.canvas, &g.overlay); err != nil {
		g.drawErr = fmt.Errorf("draw scene: %w", err)
		return
	}

	w, h := g.canvas.TerminalWidth(), g.canvas.PixelHeight()
	if g.frame == nil {
		g.frame = ebiten.NewImage(w, h)
	}
	g.pixels = g.canvas.RGBA(g.pixels)
	g.frame.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pixelSize, pixelSize)
	screen.DrawImage(g.frame, op)

	g.overlay.FlushTo(screenText{screen})
}

// Layout keeps the window at a fixed cell grid; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Cols * CellWidth, g.opts.Rows * CellHeight
}

// screenText draws overlay text with the debug font at cell positions.
type screenText struct {
	img *ebiten.Image
}

func (t screenText) WriteAt(col, row int, s string) {
	ebitenutil.DebugPrintAt(t.img, s, (col-1)*CellWidth, (row-1)*CellHeight)
}

func (t screenText) WriteStyledAt(col, row int, s string, style draw.TextStyle) {
	x, y := (col-1)*CellWidth, (row-1)*CellHeight
	vector.DrawFilledRect(t.img, float32(x), float32(y), float32(len(s)*debugCharWidth), CellHeight, style.Bg, false)
	ebitenutil.DebugPrintAt(t.img, s, x, y)
}

var (
	_ ebiten.Game   = (*Game)(nil)
	_ draw.TextSink = screenText{}
)
