package object

import (
	"math/rand"
	"sync"

	"github.com/tomz197/arcade/internal/draw"
)

// Particle burst properties.
const (
	BurstCount       = 5
	BurstSpeed       = 4.0 // Velocity spread per axis
	ParticleLifetime = 30  // Ticks
	ParticleSize     = 2.0
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived spark that fades out.
type Particle struct {
	X, Y   float64    // Position
	VX, VY float64    // Velocity per tick
	Life   int        // Ticks remaining
	Color  draw.Color // Color at full opacity
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, col draw.Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Life = ParticleLifetime
	p.Color = col
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnBurst creates a small burst of particles at (x, y).
func SpawnBurst(x, y float64, col draw.Color, rng *rand.Rand, spawner Spawner) {
	if spawner == nil {
		return
	}
	for i := 0; i < BurstCount; i++ {
		vx := (rng.Float64() - 0.5) * BurstSpeed
		vy := (rng.Float64() - 0.5) * BurstSpeed
		spawner.Spawn(NewParticle(x, y, vx, vy, col))
	}
}

// Alpha returns the remaining opacity in [0, 1].
func (p *Particle) Alpha() float64 {
	return float64(p.Life) / ParticleLifetime
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(_ UpdateContext) (bool, error) {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	return p.Life <= 0, nil
}

// Draw renders the particle blended toward the background by its remaining life.
func (p *Particle) Draw(ctx DrawContext) error {
	col := ctx.Canvas.Background().Blend(p.Color, p.Alpha())
	ctx.Canvas.FillRect(p.X, p.Y, ParticleSize, ParticleSize, col)
	return nil
}
