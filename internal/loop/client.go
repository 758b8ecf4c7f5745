package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/input"
	"github.com/tomz197/arcade/internal/loop/config"
)

var warnStyle = draw.TextStyle{Fg: draw.ColorYellow, Bg: draw.ColorBlack, Bold: true}

// Client runs one scene in one terminal: a local tty or an SSH session.
type Client struct {
	scene        Scene
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	overlay      draw.TextBuffer   // Scene text, written after the canvas
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger

	inactivity bool
	mouse      bool

	running       bool
	delta         time.Duration
	lastInput     time.Time
	isInactive    bool
	wasInactive   bool
	shuttingDown  bool
	shutdownTimer float64 // Seconds left on the shutdown notice
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger

	// Inactivity warns and then disconnects idle users (SSH sessions).
	Inactivity bool
	// Mouse enables terminal mouse reporting for the session.
	Mouse bool
}

// NewClient creates a client that reads keys from r and draws scene to w.
func NewClient(scene Scene, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	logicalWidth, logicalHeight := scene.LogicalSize()
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, logicalWidth, logicalHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		scene:        scene,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		inactivity:   opts.Inactivity,
		mouse:        opts.Mouse,
		running:      true,
		lastInput:    time.Now(),
	}
}

// Run starts the frame loop. It blocks until the user quits, the input closes, or the
// shutdown notice shown after ctx is cancelled has run out.
func (c *Client) Run(ctx context.Context) error {
	defer c.inputStream.Stop()
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	if c.mouse {
		draw.EnableMouse(c.writer)
		defer draw.DisableMouse(c.writer)
	}
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.running {
		frameStart := time.Now()
		c.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if !c.shuttingDown && ctx.Err() != nil {
			c.shuttingDown = true
			c.shutdownTimer = config.ShutdownDisplaySeconds
			c.logger.Info("shutdown notice shown")
		}

		in := c.processInput()

		// Handle screen resize
		c.updateScreen()

		if c.shuttingDown {
			c.updateShutdownState()
		} else if !c.isInactive {
			if err := c.scene.Update(in, c.delta); err != nil {
				return fmt.Errorf("update scene: %w", err)
			}
			if c.scene.Done() {
				c.running = false
			}
		}

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads the frame's input and tracks inactivity.
func (c *Client) processInput() input.Input {
	in := input.ReadInput(c.inputStream)
	in.Pointer = input.PointerFromMouse(in.Mouse, c.canvas.TerminalToLogical)

	if len(in.Pressed) > 0 {
		c.lastInput = time.Now()
		if c.isInactive {
			// The key that dismissed the warning is not game input.
			c.isInactive = false
			input.ResetKeyInput(c.inputStream)
			in = input.Input{Closed: in.Closed}
		}
	} else if c.inactivity {
		idle := time.Since(c.lastInput).Seconds()
		if idle > config.InactivityDisconnectUser {
			c.logger.Info("disconnecting idle session", "idle", time.Since(c.lastInput).Round(time.Second))
			c.running = false
		} else if idle > config.InactivityWarnUser {
			c.isInactive = true
		}
	}

	if in.Closed {
		c.running = false
	}
	return in
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateShutdownState counts down the shutdown notice.
func (c *Client) updateShutdownState() {
	c.shutdownTimer -= c.delta.Seconds()
	if c.shutdownTimer <= 0 {
		c.running = false
	}
}

// drawFrame draws the scene, then the canvas, the border and the text on top.
func (c *Client) drawFrame() error {
	// Leaving or entering the warning clears its text from the terminal.
	if c.isInactive != c.wasInactive {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.wasInactive = c.isInactive
	}

	c.canvas.SetBackground(c.scene.Background())
	c.canvas.Clear()
	if err := c.scene.Draw(c.canvas, &c.overlay); err != nil {
		return fmt.Errorf("draw scene: %w", err)
	}

	switch {
	case c.shuttingDown:
		c.drawNotice("SERVER SHUTTING DOWN",
			fmt.Sprintf("The server is restarting. Disconnecting in %d seconds.", max(int(c.shutdownTimer+0.999), 0)),
			"Thanks for playing!")
	case c.isInactive:
		c.drawNotice("INACTIVITY WARNING",
			fmt.Sprintf("You have been inactive for too long. You will be disconnected in %d seconds.",
				int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds())),
			"Press any key to continue")
	}

	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.overlay.FlushTo(c.chunkWriter)
	return c.chunkWriter.Flush()
}

// drawNotice centers a three line message over the frame.
func (c *Client) drawNotice(title, msg, hint string) {
	centerY := c.canvas.TerminalHeight() / 2
	width := c.canvas.TerminalWidth()
	for i, line := range []string{title, msg, hint} {
		row := centerY - 2 + 2*i
		col := draw.CenteredCol(width, line)
		if line = c.canvas.FitText(col, row, line); line == "" {
			continue
		}
		c.overlay.WriteStyledAt(col, row, line, warnStyle)
		c.canvas.MarkTextDirty(col, row, len(line))
	}
}
