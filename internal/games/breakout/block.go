package breakout

import (
	"fmt"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// Block is a static, destructible rectangle.
type Block struct {
	dimensions core.Vec2
	origin     core.Vec2 // bottom-left corner
}

var (
	_ core.Shape     = Block{}
	_ core.Rectangle = Block{}
	_ core.Movable   = (*Block)(nil)
)

// NewBlock creates a block from its size and bottom-left corner.
func NewBlock(dimensions, origin core.Vec2) Block {
	return Block{
		dimensions: dimensions,
		origin:     origin,
	}
}

// NewBlockCentered creates a block from its size and midpoint.
func NewBlockCentered(dimensions, center core.Vec2) Block {
	return NewBlock(dimensions, center.Sub(dimensions.Mul(0.5)))
}

// Dimensions returns the block's width and height.
func (b Block) Dimensions() core.Vec2 {
	return b.dimensions
}

// Origin returns the block's bottom-left corner.
func (b Block) Origin() core.Vec2 {
	return b.origin
}

// Location returns the block's bottom-left corner.
func (b Block) Location() core.Vec2 {
	return b.origin
}

// Velocity is always zero.
func (b Block) Velocity() core.Vec2 {
	return core.Vec2{}
}

// SetLocation accepts only the location the block already has.
// Anything else is a caller bug and panics with ErrImmovable.
func (b *Block) SetLocation(loc core.Vec2) {
	if loc != b.origin {
		panic(fmt.Errorf("%w: SetLocation(%v) on block at %v", ErrImmovable, loc, b.origin))
	}
}

// SetVelocity accepts only the zero vector.
// Anything else is a caller bug and panics with ErrImmovable.
func (b *Block) SetVelocity(vel core.Vec2) {
	if vel != (core.Vec2{}) {
		panic(fmt.Errorf("%w: SetVelocity(%v) on block at %v", ErrImmovable, vel, b.origin))
	}
}

// BoundingBox returns the block's rectangle.
func (b Block) BoundingBox() core.Box {
	return core.RectBounds(b)
}
