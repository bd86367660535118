package drawpass

import (
	"image"

	"github.com/gogpu/drawpass/geom"
)

// DrawKind identifies the rendering technique a buffered draw requests.
type DrawKind uint8

const (
	// KindStencilAndFill renders arbitrary (possibly concave) geometry by
	// stenciling winding counts and filling covered pixels.
	KindStencilAndFill DrawKind = iota
	// KindConvexFill renders convex geometry directly, no stencil needed.
	KindConvexFill
	// KindStroke renders the outline of the geometry.
	KindStroke
)

// String returns a human-readable name for the kind.
func (k DrawKind) String() string {
	switch k {
	case KindStencilAndFill:
		return "StencilAndFill"
	case KindConvexFill:
		return "ConvexFill"
	case KindStroke:
		return "Stroke"
	default:
		return "Unknown"
	}
}

// Draw is one recorded intent to render a shape. It carries everything a
// pass needs to resolve the draw later: technique, local-to-device
// transform, shape, destination-space scissor, order key, and paint/stroke
// state. Paint and stroke are stored by value; nil submissions are recorded
// as absent.
type Draw struct {
	Kind          DrawKind
	LocalToDevice geom.Transform
	Shape         geom.Shape
	Scissor       image.Rectangle
	Order         DrawOrder

	Paint    PaintParams
	HasPaint bool

	Stroke    StrokeParams
	HasStroke bool
}

// DrawList is an append-only, unordered buffer of pending draws targeting
// one destination. It performs no ordering, deduplication, or geometry
// validation; all of that is DrawPass's job at snapshot time.
//
// A DrawList is consumed exactly once by MakeDrawPass. Appending to or
// re-consuming a consumed list is a programming error and panics; the move
// discipline keeps snapshot output immutable without copying.
//
// DrawList is not safe for concurrent use.
type DrawList struct {
	draws    []Draw
	consumed bool
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{draws: make([]Draw, 0, 64)}
}

// Count returns the number of buffered draws.
func (l *DrawList) Count() int {
	return len(l.draws)
}

// StencilAndFillPath appends a stencil-then-fill draw for arbitrary geometry.
func (l *DrawList) StencilAndFillPath(localToDevice geom.Transform, shape geom.Shape,
	scissor image.Rectangle, order DrawOrder, paint *PaintParams) {
	l.append(Draw{
		Kind:          KindStencilAndFill,
		LocalToDevice: localToDevice,
		Shape:         shape,
		Scissor:       scissor,
		Order:         order,
	}, paint, nil)
}

// FillConvexPath appends a direct fill draw for convex geometry.
func (l *DrawList) FillConvexPath(localToDevice geom.Transform, shape geom.Shape,
	scissor image.Rectangle, order DrawOrder, paint *PaintParams) {
	l.append(Draw{
		Kind:          KindConvexFill,
		LocalToDevice: localToDevice,
		Shape:         shape,
		Scissor:       scissor,
		Order:         order,
	}, paint, nil)
}

// StrokePath appends a stroke draw.
func (l *DrawList) StrokePath(localToDevice geom.Transform, shape geom.Shape,
	stroke StrokeParams, scissor image.Rectangle, order DrawOrder, paint *PaintParams) {
	l.append(Draw{
		Kind:          KindStroke,
		LocalToDevice: localToDevice,
		Shape:         shape,
		Scissor:       scissor,
		Order:         order,
	}, paint, &stroke)
}

// append records the draw, copying optional paint and stroke state.
func (l *DrawList) append(d Draw, paint *PaintParams, stroke *StrokeParams) {
	if l.consumed {
		panic("drawpass: append to a consumed DrawList")
	}
	if paint != nil {
		d.Paint = *paint
		d.HasPaint = true
	}
	if stroke != nil {
		d.Stroke = *stroke
		d.HasStroke = true
	}
	l.draws = append(l.draws, d)
}

// consume marks the list consumed and hands its storage to the caller.
// Called exactly once, by MakeDrawPass.
func (l *DrawList) consume() []Draw {
	if l.consumed {
		panic("drawpass: DrawList consumed twice")
	}
	l.consumed = true
	draws := l.draws
	l.draws = nil
	return draws
}
