// Package config centralizes all tunable game parameters.
package config

import "time"

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Simulation tick rate. Entity speeds are expressed per tick.
const (
	TickRate         = 60
	TickTime         = time.Second / TickRate
	MaxTicksPerFrame = 5 // Catch-up limit after a stalled frame
)

// Max render resolution in terminal cells. Larger terminals get a centered, bordered area.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Desktop window canvas in cells
const (
	DesktopCols = 120
	DesktopRows = 45
)

// Inactivity (SSH sessions only)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// ShutdownDisplaySeconds is how long the shutdown notice stays up before the session ends.
const ShutdownDisplaySeconds = 3

// Shooter playfield in logical units.
const (
	FieldWidth  = 800
	FieldHeight = 600
)

// Shooter rules
const (
	InitialLives      = 3
	InitialLevel      = 1
	ScoreEnemy        = 100
	ScoreBoss         = 1000
	BossScoreInterval = 5000 // A boss appears every time the score crosses the next multiple

	EnemySpawnChance         = 0.02 // Per tick
	EnemySpawnChancePerLevel = 0.004
	EnemySpawnChanceMax      = 0.06
	ItemSpawnChance          = 0.005 // Per tick

	ResultGreatScore = 10000
	ResultGoodScore  = 5000

	RestartDelay = time.Second // Game over screen ignores the start keys this long
)

// Shooter power-ups
const (
	ShotCooldown      = 700 * time.Millisecond
	RapidShotCooldown = 200 * time.Millisecond
	RapidFireDuration = 10 * time.Second
	YShotDuration     = 15 * time.Second
)

// Kaleidoscope board in logical units.
const (
	BoardWidth  = 160
	BoardHeight = 120
)

// Kaleidoscope brush and symmetry
const (
	DefaultSegments   = 8
	MinSegments       = 1
	MaxSegments       = 24
	DefaultBrushSize  = 2.0
	MinBrushSize      = 1.0
	MaxBrushSize      = 8.0
	MaxStrokeSegments = 60000 // Oldest replicated segments are dropped past this
	HueStep           = 3.0   // Degrees per painted segment while cycling
	BrushSaturation   = 0.8
	BrushValue        = 1.0
	PenSpeed          = 60.0 // Keyboard pen, logical units per second
)
