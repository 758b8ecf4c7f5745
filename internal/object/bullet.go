package object

import (
	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/physics"
)

// BulletKind identifies who fired a bullet.
type BulletKind int

const (
	BulletPlayer BulletKind = iota
	BulletEnemy
	BulletBoss
)

// bulletSpec holds the size, speed and color of each bullet kind.
type bulletSpec struct {
	w, h   float64
	speed  float64
	spread float64 // Horizontal speed per unit of angle offset
	color  draw.Color
}

var bulletSpecs = map[BulletKind]bulletSpec{
	BulletPlayer: {w: 4, h: 10, speed: -8, spread: 2, color: draw.ColorGreen},
	BulletEnemy:  {w: 4, h: 8, speed: 4, color: draw.ColorRed},
	BulletBoss:   {w: 6, h: 12, speed: 6, color: draw.ColorOrange},
}

// Bullet is a projectile moving in a straight line.
type Bullet struct {
	physics.Rect
	VX, VY    float64
	Kind      BulletKind
	Color     draw.Color
	destroyed bool
}

func newBullet(kind BulletKind, x, y, angleOffset float64) *Bullet {
	spec := bulletSpecs[kind]
	return &Bullet{
		Rect:  physics.Rect{X: x, Y: y, W: spec.w, H: spec.h},
		VX:    angleOffset * spec.spread,
		VY:    spec.speed,
		Kind:  kind,
		Color: spec.color,
	}
}

// NewPlayerBullet creates a bullet flying up. angleOffset is -1, 0 or 1 and tilts it sideways.
func NewPlayerBullet(x, y, angleOffset float64) *Bullet {
	return newBullet(BulletPlayer, x, y, angleOffset)
}

// NewEnemyBullet creates a bullet fired by a regular enemy.
func NewEnemyBullet(x, y float64) *Bullet {
	return newBullet(BulletEnemy, x, y, 0)
}

// NewBossBullet creates a bullet fired by the boss.
func NewBossBullet(x, y float64) *Bullet {
	return newBullet(BulletBoss, x, y, 0)
}

// Hostile reports whether the bullet can hit the player.
func (b *Bullet) Hostile() bool {
	return b.Kind != BulletPlayer
}

// Bounds returns the bullet's hitbox.
func (b *Bullet) Bounds() physics.Rect {
	return b.Rect
}

// MarkDestroyed marks the bullet as consumed.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet has hit something.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet and removes it once it leaves the screen.
func (b *Bullet) Update(ctx UpdateContext) (bool, error) {
	if b.destroyed {
		return true, nil
	}
	b.X += b.VX
	b.Y += b.VY

	if b.Hostile() {
		return b.Y > ctx.Screen.Height, nil
	}
	return b.Y < -b.H, nil
}

// Draw renders the bullet.
func (b *Bullet) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(b.X, b.Y, b.W, b.H, b.Color)
	return nil
}
