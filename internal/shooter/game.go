// Package shooter implements the vertical shoot-em-up: a ship at the bottom of the screen,
// descending enemies, falling power-ups and a boss every few thousand points.
package shooter

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/input"
	"github.com/tomz197/arcade/internal/loop/config"
	"github.com/tomz197/arcade/internal/object"
)

// Phase is the screen the game is on.
type Phase int

const (
	PhaseTitle    Phase = iota // Title screen
	PhasePlaying               // Active gameplay
	PhaseGameOver              // Final score and restart prompt
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game is one single-player shooter session.
type Game struct {
	Phase Phase
	Score int
	Level int
	Lives int

	nextBossScore int

	world     *World
	player    *object.Player
	boss      *object.Boss
	generator *object.Generator
	stars     *object.StarField

	rng    *rand.Rand
	logger *log.Logger

	clock       time.Duration // Game time, advanced one tick at a time
	accumulator time.Duration // Frame time not yet simulated
	overSince   time.Duration // Real time spent on the game over screen
	startHeld   bool          // Start key was down last frame
	quit        bool
}

// NewGame creates a game on its title screen. A zero seed picks one from the clock.
// logger may be nil.
func NewGame(seed int64, logger *log.Logger) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := object.Screen{Width: config.FieldWidth, Height: config.FieldHeight}
	g := &Game{
		Phase:     PhaseTitle,
		world:     NewWorld(screen),
		generator: object.NewGenerator(),
		stars:     object.NewStarField(screen),
		rng:       rand.New(rand.NewSource(seed)),
		logger:    logger,
	}
	g.reset()
	return g
}

// reset restores the initial state of a new game.
func (g *Game) reset() {
	g.Score = 0
	g.Level = config.InitialLevel
	g.Lives = config.InitialLives
	g.nextBossScore = config.BossScoreInterval

	g.world.Reset()
	g.player = object.NewPlayer(g.world.Screen)
	g.world.AddObject(g.player)
	g.boss = nil
	g.generator.Level = g.Level

	g.clock = 0
	g.accumulator = 0
	g.overSince = 0
}

// Start begins a new game from the title or game over screen.
func (g *Game) Start() {
	g.reset()
	g.Phase = PhasePlaying
	g.logger.Info("game started")
}

// gameOver ends the current game.
func (g *Game) gameOver() {
	g.Phase = PhaseGameOver
	g.overSince = 0
	g.logger.Info("game over", "score", g.Score, "level", g.Level)
}

// Update handles one frame of input and advances the simulation by delta.
func (g *Game) Update(in input.Input, delta time.Duration) error {
	if in.Quit {
		g.quit = true
		return nil
	}

	startDown := in.Space || in.Enter
	startPressed := startDown && !g.startHeld
	g.startHeld = startDown

	switch g.Phase {
	case PhaseTitle:
		if startPressed {
			g.Start()
		}
	case PhasePlaying:
		return g.advance(in, delta)
	case PhaseGameOver:
		g.overSince += delta
		if startPressed && g.overSince >= config.RestartDelay {
			g.Start()
		}
	}
	return nil
}

// advance runs as many fixed ticks as delta covers, up to the catch-up limit.
func (g *Game) advance(in input.Input, delta time.Duration) error {
	g.accumulator += delta
	if limit := config.MaxTicksPerFrame * config.TickTime; g.accumulator > limit {
		g.accumulator = limit
	}
	for g.accumulator >= config.TickTime && g.Phase == PhasePlaying {
		g.accumulator -= config.TickTime
		if err := g.Tick(in); err != nil {
			return err
		}
	}
	return nil
}

// Tick advances the game by exactly one fixed step.
func (g *Game) Tick(in input.Input) error {
	ctx := object.UpdateContext{
		Now:     g.clock,
		Input:   in,
		Screen:  g.world.Screen,
		Spawner: g.world,
		Rand:    g.rng,
	}

	if err := g.world.Update(ctx); err != nil {
		return err
	}
	g.world.FlushSpawned()

	g.checkCollisions()
	if g.Phase != PhasePlaying {
		return nil
	}

	if _, err := g.generator.Update(ctx); err != nil {
		return err
	}
	g.checkBoss()
	g.world.FlushSpawned()

	g.clock += config.TickTime
	return nil
}

// checkBoss brings in a boss once the score reaches the next threshold.
func (g *Game) checkBoss() {
	if g.boss != nil || g.Score < g.nextBossScore {
		return
	}
	g.boss = object.NewBoss(g.world.Screen)
	g.world.Spawn(g.boss)
	g.nextBossScore += config.BossScoreInterval
	g.logger.Info("boss spawned", "score", g.Score, "level", g.Level)
}

// Boss returns the active boss, or nil.
func (g *Game) Boss() *object.Boss {
	return g.boss
}

// Player returns the player's ship.
func (g *Game) Player() *object.Player {
	return g.player
}

// World returns the live objects.
func (g *Game) World() *World {
	return g.world
}

// Clock returns the simulated game time.
func (g *Game) Clock() time.Duration {
	return g.clock
}

// ResultMessage returns the closing remark for the current score.
func (g *Game) ResultMessage() string {
	switch {
	case g.Score > config.ResultGreatScore:
		return "Magnificent battle!"
	case g.Score > config.ResultGoodScore:
		return "Well fought!"
	default:
		return "Better luck next time!"
	}
}

// LogicalSize returns the playfield size.
func (g *Game) LogicalSize() (float64, float64) {
	return g.world.Screen.Width, g.world.Screen.Height
}

// Background returns the playfield color.
func (g *Game) Background() draw.Color {
	return draw.ColorNight
}

// Done reports whether the player asked to quit.
func (g *Game) Done() bool {
	return g.quit
}
