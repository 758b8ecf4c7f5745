package object

import (
	"math/rand"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/physics"
)

// ItemKind is the power-up an item grants.
type ItemKind int

const (
	ItemRapidFire ItemKind = iota
	ItemYShot
)

func (k ItemKind) String() string {
	switch k {
	case ItemRapidFire:
		return "rapid fire"
	case ItemYShot:
		return "y-shot"
	default:
		return "unknown"
	}
}

// Item properties.
const (
	ItemSize      = 20.0
	ItemFallSpeed = 2.0
)

// Item is a falling power-up.
type Item struct {
	physics.Rect
	Kind      ItemKind
	destroyed bool
}

// NewItem creates an item of kind just above the screen at x.
func NewItem(x float64, kind ItemKind) *Item {
	return &Item{
		Rect: physics.Rect{X: x, Y: -ItemSize, W: ItemSize, H: ItemSize},
		Kind: kind,
	}
}

// NewRandomItem creates an item at a random column; both kinds are equally likely.
func NewRandomItem(screen Screen, rng *rand.Rand) *Item {
	x := rng.Float64() * (screen.Width - ItemSize)
	kind := ItemYShot
	if rng.Float64() < 0.5 {
		kind = ItemRapidFire
	}
	return NewItem(x, kind)
}

// Bounds returns the item's hitbox.
func (it *Item) Bounds() physics.Rect {
	return it.Rect
}

// MarkDestroyed marks the item as collected.
func (it *Item) MarkDestroyed() {
	it.destroyed = true
}

// IsDestroyed returns true if the item was collected.
func (it *Item) IsDestroyed() bool {
	return it.destroyed
}

// Update lets the item fall.
func (it *Item) Update(ctx UpdateContext) (bool, error) {
	if it.destroyed {
		return true, nil
	}
	it.Y += ItemFallSpeed
	return it.Y > ctx.Screen.Height, nil
}

// Draw renders rapid fire in yellow and Y-shot in cyan.
func (it *Item) Draw(ctx DrawContext) error {
	col := draw.ColorCyan
	if it.Kind == ItemRapidFire {
		col = draw.ColorYellow
	}
	ctx.Canvas.FillRect(it.X, it.Y, it.W, it.H, col)
	return nil
}
