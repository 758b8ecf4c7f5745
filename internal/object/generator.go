package object

import (
	"github.com/tomz197/arcade/internal/loop/config"
)

// Generator spawns enemies and power-ups at random. Enemies come faster at higher levels.
type Generator struct {
	Level int
}

// NewGenerator creates a generator for level 1.
func NewGenerator() *Generator {
	return &Generator{Level: config.InitialLevel}
}

// EnemyChance returns the per-tick probability of a new enemy at the current level.
func (g *Generator) EnemyChance() float64 {
	p := config.EnemySpawnChance
	if g.Level > 1 {
		p += float64(g.Level-1) * config.EnemySpawnChancePerLevel
	}
	if p > config.EnemySpawnChanceMax {
		p = config.EnemySpawnChanceMax
	}
	return p
}

// Update rolls for one enemy and one item.
func (g *Generator) Update(ctx UpdateContext) (bool, error) {
	if ctx.Spawner == nil {
		return false, nil
	}
	if chance(ctx.Rand, g.EnemyChance()) {
		ctx.Spawner.Spawn(NewRandomEnemy(ctx.Screen, ctx.Rand))
	}
	if chance(ctx.Rand, config.ItemSpawnChance) {
		ctx.Spawner.Spawn(NewRandomItem(ctx.Screen, ctx.Rand))
	}
	return false, nil
}

// Draw is a no-op; the generator is not visible.
func (g *Generator) Draw(_ DrawContext) error {
	return nil
}
