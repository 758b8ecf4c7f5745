package object

import (
	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/physics"
)

// Boss properties.
const (
	BossWidth      = 100.0
	BossHeight     = 80.0
	BossTop        = 50.0
	BossHP         = 100
	BossSpeed      = 2.0
	BossFireChance = 0.05 // Per tick
)

// Boss bounces along the top of the screen and fires heavy bullets.
type Boss struct {
	physics.Rect
	VX        float64
	HP        int
	destroyed bool
}

// NewBoss creates a boss centered at the top of the screen.
func NewBoss(screen Screen) *Boss {
	return &Boss{
		Rect: physics.Rect{X: screen.Width/2 - BossWidth/2, Y: BossTop, W: BossWidth, H: BossHeight},
		VX:   BossSpeed,
		HP:   BossHP,
	}
}

// Bounds returns the boss hitbox.
func (b *Boss) Bounds() physics.Rect {
	return b.Rect
}

// Hit removes one hit point and reports whether the boss is defeated.
func (b *Boss) Hit() bool {
	b.HP--
	if b.HP <= 0 {
		b.destroyed = true
	}
	return b.destroyed
}

// MarkDestroyed marks the boss for removal.
func (b *Boss) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the boss was defeated.
func (b *Boss) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the boss sideways, reversing at the walls, and occasionally fires.
func (b *Boss) Update(ctx UpdateContext) (bool, error) {
	if b.destroyed {
		return true, nil
	}
	b.X += b.VX
	if b.X <= 0 || b.X >= ctx.Screen.Width-b.W {
		b.VX = -b.VX
	}

	if chance(ctx.Rand, BossFireChance) && ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewBossBullet(b.X+b.W/2, b.Y+b.H))
	}
	return false, nil
}

// Draw renders the boss hull with two red eyes.
func (b *Boss) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(b.X, b.Y, b.W, b.H, draw.ColorOrange)
	ctx.Canvas.FillRect(b.X+10, b.Y+10, 20, 20, draw.ColorRed)
	ctx.Canvas.FillRect(b.X+70, b.Y+10, 20, 20, draw.ColorRed)
	return nil
}
