package shooter

import (
	"fmt"

	"github.com/tomz197/arcade/internal/object"
)

// Update and draw layers, in order.
const (
	layerPlayer = iota
	layerBullet
	layerEnemy
	layerItem
	layerParticle
	layerBoss
	layerOther
	layerCount
)

// layerOf returns the pass in which obj is updated and drawn.
func layerOf(obj object.Object) int {
	switch obj.(type) {
	case *object.Player:
		return layerPlayer
	case *object.Bullet:
		return layerBullet
	case *object.Enemy:
		return layerEnemy
	case *object.Item:
		return layerItem
	case *object.Particle:
		return layerParticle
	case *object.Boss:
		return layerBoss
	default:
		return layerOther
	}
}

// World holds the live objects of one game.
type World struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after current update cycle
	removed []bool          // Scratch flags reused by Update
	Screen  object.Screen

	// Reusable caches for collision detection (avoids allocations)
	bulletCache []*object.Bullet
	enemyCache  []*object.Enemy
	itemCache   []*object.Item
}

// NewWorld creates an empty world for a playfield of the given size.
func NewWorld(screen object.Screen) *World {
	return &World{
		Objects: []object.Object{},
		Screen:  screen,
	}
}

// AddObject adds an object to the game world.
func (w *World) AddObject(obj object.Object) {
	w.Objects = append(w.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (w *World) FlushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	w.toSpawn = w.toSpawn[:0]
}

// Reset drops every object and returns pooled ones to their pools.
func (w *World) Reset() {
	for _, obj := range w.Objects {
		object.ReleaseObject(obj)
	}
	for _, obj := range w.toSpawn {
		object.ReleaseObject(obj)
	}
	clear(w.Objects)
	w.Objects = w.Objects[:0]
	w.toSpawn = w.toSpawn[:0]
}

// Update advances every object one tick, layer by layer, then drops the ones that asked
// to be removed.
func (w *World) Update(ctx object.UpdateContext) error {
	if cap(w.removed) < len(w.Objects) {
		w.removed = make([]bool, len(w.Objects))
	}
	w.removed = w.removed[:len(w.Objects)]
	clear(w.removed)

	for layer := 0; layer < layerCount; layer++ {
		for i, obj := range w.Objects {
			if layerOf(obj) != layer {
				continue
			}
			remove, err := obj.Update(ctx)
			if err != nil {
				return fmt.Errorf("update %T: %w", obj, err)
			}
			w.removed[i] = remove
		}
	}

	kept := w.Objects[:0]
	for i, obj := range w.Objects {
		if w.removed[i] {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.Objects[len(kept):])
	w.Objects = kept
	return nil
}

// Draw draws every live object, layer by layer.
func (w *World) Draw(ctx object.DrawContext) error {
	for layer := 0; layer < layerCount; layer++ {
		for _, obj := range w.Objects {
			if layerOf(obj) != layer {
				continue
			}
			if d, ok := obj.(object.Destructible); ok && d.IsDestroyed() {
				continue
			}
			if err := obj.Draw(ctx); err != nil {
				return fmt.Errorf("draw %T: %w", obj, err)
			}
		}
	}
	return nil
}

// collectCollidables extracts bullets, enemies and items from the object list.
// Uses pre-allocated slices to avoid allocations.
func (w *World) collectCollidables() {
	w.bulletCache = w.bulletCache[:0]
	w.enemyCache = w.enemyCache[:0]
	w.itemCache = w.itemCache[:0]

	for _, obj := range w.Objects {
		switch o := obj.(type) {
		case *object.Bullet:
			w.bulletCache = append(w.bulletCache, o)
		case *object.Enemy:
			w.enemyCache = append(w.enemyCache, o)
		case *object.Item:
			w.itemCache = append(w.itemCache, o)
		}
	}
}
