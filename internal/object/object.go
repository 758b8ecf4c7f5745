// Package object holds the shooter's entities and the contexts they are updated and drawn with.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/input"
	"github.com/tomz197/arcade/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during one fixed tick.
// Velocities are expressed per tick.
type UpdateContext struct {
	Now     time.Duration // Game clock at this tick
	Input   Input
	Screen  Screen
	Spawner Spawner
	Rand    *rand.Rand
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas  // Playfield in logical coordinates
	Text   draw.TextSink // Overlay text in terminal cells
}

// Screen is the size of the playfield in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (s Screen) Center() (x, y float64) {
	return s.Width / 2, s.Height / 2
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one tick. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Text for text.
	Draw(ctx DrawContext) error
}

// Collider is implemented by objects that take part in box collisions.
type Collider interface {
	Bounds() physics.Rect
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next update cycle.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// chance reports whether an event with probability p happens this tick.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
