package drawpass

import "fmt"

// PaintersOrder is a compressed painter's-algorithm key. Lower values paint
// earlier. Zero is reserved for "nothing drawn yet" so bounds managers can
// use it as their empty answer; the first real order is FirstPaintersOrder.
type PaintersOrder uint16

// FirstPaintersOrder is the order of the first draw on a clean destination.
const FirstPaintersOrder PaintersOrder = 1

// Next returns the order painting immediately above o.
func (o PaintersOrder) Next() PaintersOrder {
	return o + 1
}

// StencilIndex distinguishes disjoint stencil sets. Draws with different
// stencil indices never share stencil buffer state, so two stencil-and-fill
// draws with equal painters order but different indices are still
// well-ordered with respect to the stencil buffer.
type StencilIndex uint16

// DrawOrder establishes where a buffered draw paints relative to every other
// draw in the same pass, independent of submission order. The painters order
// is the primary key; the stencil index breaks ties between stencil sets.
// Draws with fully equal keys keep their submission-relative order.
type DrawOrder struct {
	paintOrder PaintersOrder
	stencil    StencilIndex
}

// MakeDrawOrder returns a DrawOrder painting at the given painters order.
func MakeDrawOrder(paint PaintersOrder) DrawOrder {
	return DrawOrder{paintOrder: paint}
}

// WithStencilIndex returns a copy of o in the given disjoint stencil set.
func (o DrawOrder) WithStencilIndex(s StencilIndex) DrawOrder {
	o.stencil = s
	return o
}

// PaintOrder returns the painters order key.
func (o DrawOrder) PaintOrder() PaintersOrder {
	return o.paintOrder
}

// StencilIndex returns the disjoint stencil set index.
func (o DrawOrder) StencilIndex() StencilIndex {
	return o.stencil
}

// Less reports whether o paints strictly before other.
func (o DrawOrder) Less(other DrawOrder) bool {
	if o.paintOrder != other.paintOrder {
		return o.paintOrder < other.paintOrder
	}
	return o.stencil < other.stencil
}

// String returns a compact debug representation.
func (o DrawOrder) String() string {
	return fmt.Sprintf("order(%d/%d)", o.paintOrder, o.stencil)
}
