package shooter

import (
	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/loop/config"
	"github.com/tomz197/arcade/internal/object"
)

// checkCollisions resolves every hit of this tick. It stops early once the last life is lost.
func (g *Game) checkCollisions() {
	g.world.collectCollidables()
	bullets := g.world.bulletCache
	enemies := g.world.enemyCache
	items := g.world.itemCache

	// Player bullets against enemies, then the boss. A bullet is consumed by its first hit.
	for i := len(bullets) - 1; i >= 0; i-- {
		b := bullets[i]
		if b.IsDestroyed() || b.Hostile() {
			continue
		}
		for j := len(enemies) - 1; j >= 0; j-- {
			e := enemies[j]
			if e.IsDestroyed() || !b.Bounds().Overlaps(e.Bounds()) {
				continue
			}
			b.MarkDestroyed()
			cx, cy := e.Center()
			object.SpawnBurst(cx, cy, draw.ColorRed, g.rng, g.world)
			if e.Hit() {
				g.Score += config.ScoreEnemy
			}
			break
		}
		if b.IsDestroyed() {
			continue
		}

		if g.boss != nil && b.Bounds().Overlaps(g.boss.Bounds()) {
			b.MarkDestroyed()
			object.SpawnBurst(b.X, b.Y, draw.ColorOrange, g.rng, g.world)
			if g.boss.Hit() {
				g.bossDefeated()
			}
		}
	}

	player := g.player.Bounds()
	px, py := player.Center()

	for _, b := range bullets {
		if b.IsDestroyed() || !b.Hostile() || !b.Bounds().Overlaps(player) {
			continue
		}
		b.MarkDestroyed()
		object.SpawnBurst(px, py, draw.ColorWhite, g.rng, g.world)
		if g.damage() {
			return
		}
	}

	for _, e := range enemies {
		if e.IsDestroyed() || !e.Bounds().Overlaps(player) {
			continue
		}
		e.MarkDestroyed()
		object.SpawnBurst(px, py, draw.ColorWhite, g.rng, g.world)
		if g.damage() {
			return
		}
	}

	for _, it := range items {
		if it.IsDestroyed() || !it.Bounds().Overlaps(player) {
			continue
		}
		it.MarkDestroyed()
		g.player.Collect(it.Kind, g.clock)
		g.logger.Debug("power-up collected", "kind", it.Kind)
	}
}

// bossDefeated scores the boss kill and advances the level.
func (g *Game) bossDefeated() {
	g.Score += config.ScoreBoss
	g.Level++
	g.generator.Level = g.Level
	g.boss = nil
	g.logger.Info("boss defeated", "score", g.Score, "level", g.Level)
}

// damage takes one life and reports whether the game is over.
func (g *Game) damage() bool {
	g.Lives--
	if g.Lives <= 0 {
		g.gameOver()
		return true
	}
	return false
}
