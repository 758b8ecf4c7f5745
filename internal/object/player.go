package object

import (
	"time"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/loop/config"
	"github.com/tomz197/arcade/internal/physics"
)

// Player ship dimensions and speed.
const (
	PlayerWidth  = 40.0
	PlayerHeight = 40.0
	PlayerSpeed  = 5.0 // Units per tick
)

// Player is the ship at the bottom of the playfield.
type Player struct {
	physics.Rect
	Speed float64

	lastShot   time.Duration
	hasShot    bool
	rapidUntil time.Duration
	yShotUntil time.Duration
}

// NewPlayer places a ship centered near the bottom of the screen.
func NewPlayer(screen Screen) *Player {
	return &Player{
		Rect: physics.Rect{
			X: screen.Width/2 - PlayerWidth/2,
			Y: screen.Height - 100,
			W: PlayerWidth,
			H: PlayerHeight,
		},
		Speed: PlayerSpeed,
	}
}

// Bounds returns the player's hitbox.
func (p *Player) Bounds() physics.Rect {
	return p.Rect
}

// RapidFire reports whether the rapid fire power-up is active at now.
func (p *Player) RapidFire(now time.Duration) bool {
	return now < p.rapidUntil
}

// YShot reports whether the Y-shot power-up is active at now.
func (p *Player) YShot(now time.Duration) bool {
	return now < p.yShotUntil
}

// Cooldown returns the minimum time between shots at now.
func (p *Player) Cooldown(now time.Duration) time.Duration {
	if p.RapidFire(now) {
		return config.RapidShotCooldown
	}
	return config.ShotCooldown
}

// Collect applies a power-up. Collecting one that is already active restarts its timer.
func (p *Player) Collect(kind ItemKind, now time.Duration) {
	switch kind {
	case ItemRapidFire:
		p.rapidUntil = now + config.RapidFireDuration
	case ItemYShot:
		p.yShotUntil = now + config.YShotDuration
	}
}

// Update moves the ship and fires while the fire key is held.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	if ctx.Input.Left {
		p.X -= p.Speed
	}
	if ctx.Input.Right {
		p.X += p.Speed
	}
	p.Rect = p.ClampX(ctx.Screen.Width)

	if ctx.Input.Space {
		p.Fire(ctx)
	}
	return false, nil
}

// Fire spawns the player's bullets if the cooldown has elapsed. Returns true if it fired.
func (p *Player) Fire(ctx UpdateContext) bool {
	if ctx.Spawner == nil {
		return false
	}
	if p.hasShot && ctx.Now-p.lastShot < p.Cooldown(ctx.Now) {
		return false
	}
	p.lastShot = ctx.Now
	p.hasShot = true

	x := p.X + p.W/2
	if p.YShot(ctx.Now) {
		ctx.Spawner.Spawn(NewPlayerBullet(x, p.Y, -1))
		ctx.Spawner.Spawn(NewPlayerBullet(x, p.Y, 1))
	} else {
		ctx.Spawner.Spawn(NewPlayerBullet(x, p.Y, 0))
	}
	return true
}

// Draw renders the ship as a green square with a white cockpit.
func (p *Player) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(p.X, p.Y, p.W, p.H, draw.ColorGreen)
	ctx.Canvas.FillRect(p.X+5, p.Y+5, 10, 10, draw.ColorWhite)
	return nil
}
