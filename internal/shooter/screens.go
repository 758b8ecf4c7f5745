package shooter

import (
	"fmt"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/loop/config"
	"github.com/tomz197/arcade/internal/object"
)

var (
	titleStyle  = draw.TextStyle{Fg: draw.ColorYellow, Bg: draw.ColorNight, Bold: true}
	hudStyle    = draw.TextStyle{Fg: draw.ColorWhite, Bg: draw.ColorNight}
	bossStyle   = draw.TextStyle{Fg: draw.ColorOrange, Bg: draw.ColorNight, Bold: true}
	powerStyle  = draw.TextStyle{Fg: draw.ColorCyan, Bg: draw.ColorNight}
	promptStyle = draw.TextStyle{Fg: draw.ColorGreen, Bg: draw.ColorNight}
)

// Draw renders the playfield and the overlay for the current phase.
func (g *Game) Draw(canvas *draw.Canvas, text draw.TextSink) error {
	ctx := object.DrawContext{Canvas: canvas, Text: text}

	if err := g.stars.Draw(ctx); err != nil {
		return err
	}

	switch g.Phase {
	case PhaseTitle:
		return g.drawTitle(ctx)
	case PhasePlaying:
		if err := g.world.Draw(ctx); err != nil {
			return err
		}
		return g.drawHUD(ctx)
	case PhaseGameOver:
		if err := g.world.Draw(ctx); err != nil {
			return err
		}
		return g.drawGameOver(ctx)
	}
	return nil
}

// drawLabels draws labels in order, stopping at the first error.
func drawLabels(ctx object.DrawContext, labels ...object.Label) error {
	for _, l := range labels {
		if err := l.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawTitle draws the title screen.
func (g *Game) drawTitle(ctx object.DrawContext) error {
	centerY := ctx.Canvas.TerminalHeight() / 2
	return drawLabels(ctx,
		object.Label{Row: centerY - 2, Value: "S P A C E   S H O O T E R", Style: &titleStyle},
		object.Label{Row: centerY + 1, Value: "Press SPACE to Start", Style: &promptStyle},
		object.Label{Row: centerY + 4, Value: "Controls: A/D or Arrows to move, SPACE to shoot, Q to quit", Style: &hudStyle},
		object.Label{Row: centerY + 5, Value: "Yellow: rapid fire   Cyan: Y-shot", Style: &powerStyle},
	)
}

// drawHUD draws score, lives, level, boss health and active power-ups.
func (g *Game) drawHUD(ctx object.DrawContext) error {
	termWidth := ctx.Canvas.TerminalWidth()
	termHeight := ctx.Canvas.TerminalHeight()

	scoreText := fmt.Sprintf("Score: %d", g.Score)
	livesText := fmt.Sprintf("Lives: %d", g.Lives)
	levelText := fmt.Sprintf("Level: %d", g.Level)

	labels := []object.Label{
		{Col: 2, Row: 1, Value: scoreText, Style: &hudStyle},
		{Row: 1, Value: levelText, Style: &hudStyle},
		{Col: max(termWidth-len(livesText), 1), Row: 1, Value: livesText, Style: &hudStyle},
	}
	if g.boss != nil {
		labels = append(labels, object.Label{Row: 2, Value: fmt.Sprintf("Boss HP: %d", g.boss.HP), Style: &bossStyle})
	}

	var power string
	if g.player.RapidFire(g.clock) {
		power += "RAPID FIRE "
	}
	if g.player.YShot(g.clock) {
		power += "Y-SHOT"
	}
	if power != "" {
		labels = append(labels, object.Label{Col: 2, Row: termHeight, Value: power, Style: &powerStyle})
	}
	return drawLabels(ctx, labels...)
}

// drawGameOver draws the final score screen.
func (g *Game) drawGameOver(ctx object.DrawContext) error {
	centerY := ctx.Canvas.TerminalHeight() / 2
	labels := []object.Label{
		{Row: centerY - 3, Value: "GAME OVER", Style: &titleStyle},
		{Row: centerY - 1, Value: fmt.Sprintf("Final Score: %d", g.Score), Style: &hudStyle},
		{Row: centerY, Value: fmt.Sprintf("Level Reached: %d", g.Level), Style: &hudStyle},
		{Row: centerY + 2, Value: g.ResultMessage(), Style: &powerStyle},
	}
	if g.overSince >= config.RestartDelay {
		labels = append(labels, object.Label{Row: centerY + 4, Value: "Press SPACE to Restart", Style: &promptStyle})
	}
	return drawLabels(ctx, labels...)
}
