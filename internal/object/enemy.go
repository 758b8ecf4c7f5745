package object

import (
	"math/rand"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/physics"
)

// Enemy properties.
const (
	EnemySize       = 30.0
	EnemyMinSpeed   = 2.0
	EnemySpeedRange = 2.0
	EnemyHP         = 1
	EnemyFireChance = 0.01 // Per tick
)

// Enemy is a fighter descending from the top of the screen.
type Enemy struct {
	physics.Rect
	Speed     float64
	HP        int
	destroyed bool
}

// NewEnemy creates an enemy just above the screen at x.
func NewEnemy(x, speed float64) *Enemy {
	return &Enemy{
		Rect:  physics.Rect{X: x, Y: -EnemySize, W: EnemySize, H: EnemySize},
		Speed: speed,
		HP:    EnemyHP,
	}
}

// NewRandomEnemy creates an enemy at a random column with a random speed.
func NewRandomEnemy(screen Screen, rng *rand.Rand) *Enemy {
	x := rng.Float64() * (screen.Width - EnemySize)
	speed := EnemyMinSpeed + rng.Float64()*EnemySpeedRange
	return NewEnemy(x, speed)
}

// Bounds returns the enemy's hitbox.
func (e *Enemy) Bounds() physics.Rect {
	return e.Rect
}

// Hit removes one hit point and reports whether the enemy is dead.
func (e *Enemy) Hit() bool {
	e.HP--
	if e.HP <= 0 {
		e.destroyed = true
	}
	return e.destroyed
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for destruction.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// Update moves the enemy down and occasionally fires.
func (e *Enemy) Update(ctx UpdateContext) (bool, error) {
	if e.destroyed {
		return true, nil
	}
	e.Y += e.Speed
	if e.Y > ctx.Screen.Height {
		return true, nil
	}

	if chance(ctx.Rand, EnemyFireChance) && ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewEnemyBullet(e.X+e.W/2, e.Y+e.H))
	}
	return false, nil
}

// Draw renders the enemy as a red square.
func (e *Enemy) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(e.X, e.Y, e.W, e.H, draw.ColorRed)
	return nil
}
