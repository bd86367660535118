package drawpass

import (
	"sort"

	"github.com/gogpu/drawpass/geom"
)

// DrawOp is one resolved operation in a DrawPass: the originating draw plus
// its device-space bounds (transform-mapped shape bounds intersected with
// the scissor and the target), computed once at snapshot time.
type DrawOp struct {
	Draw

	// DeviceBounds is the conservative device-space footprint of the op.
	// Empty when the draw is scissored away entirely; such ops are kept in
	// the pass (backends may still need their stencil side effects) but
	// never record occlusion coverage.
	DeviceBounds geom.Rect
}

// DrawPass is an immutable, ordered snapshot of a DrawList against one
// destination. Ops are sorted by DrawOrder with ties keeping their
// submission-relative order; an optional occlusion culler may have dropped
// ops that were fully hidden under later opaque draws.
//
// A DrawPass is created at most once per snapshot and never mutated after
// construction.
type DrawPass struct {
	target Target
	ops    []DrawOp
}

// MakeDrawPass consumes list and builds an ordered pass against target.
//
// The culler is advisory and may be nil, in which case the pass degrades to
// pure DrawOrder sequencing. Culling never reorders surviving draws, so the
// output is pixel-identical to the uncalled sequence by construction.
//
// The list must not be used again after this call.
func MakeDrawPass(list *DrawList, target Target, culler geom.OcclusionCuller) *DrawPass {
	draws := list.consume()

	targetBounds := geom.Rect{
		MinX: 0,
		MinY: 0,
		MaxX: float32(target.Width()),
		MaxY: float32(target.Height()),
	}

	ops := make([]DrawOp, len(draws))
	for i, d := range draws {
		ops[i] = DrawOp{Draw: d, DeviceBounds: deviceBounds(d, targetBounds)}
	}

	// Stable sort: equal keys preserve submission order.
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Order.Less(ops[j].Order)
	})

	culled := 0
	if culler != nil {
		ops, culled = cullOccluded(ops, culler)
	}

	Logger().Debug("snapped draw pass",
		"draws", len(draws),
		"culled", culled,
		"target", []int{target.Width(), target.Height()})

	return &DrawPass{target: target, ops: ops}
}

// deviceBounds computes the conservative device-space footprint of a draw.
func deviceBounds(d Draw, targetBounds geom.Rect) geom.Rect {
	b := d.LocalToDevice.MapRect(d.Shape.Bounds())
	if d.Kind == KindStroke && d.HasStroke {
		b = b.Outset(d.Stroke.HalfWidthOutset(d.LocalToDevice.MaxScaleFactor()))
	}
	b = b.Intersect(targetBounds)
	// An empty scissor means "unclipped"; the zero rectangle is the
	// conventional no-scissor value.
	if !d.Scissor.Empty() {
		b = b.Intersect(geom.RectFromImage(d.Scissor))
	}
	return b
}

// cullOccluded walks ops from topmost to bottommost, dropping any op whose
// device bounds the culler reports fully covered and recording coverage for
// ops that are guaranteed to overwrite every pixel in their bounds.
func cullOccluded(ops []DrawOp, culler geom.OcclusionCuller) ([]DrawOp, int) {
	keep := make([]bool, len(ops))
	culled := 0
	for i := len(ops) - 1; i >= 0; i-- {
		op := &ops[i]
		if !op.DeviceBounds.IsEmpty() && culler.Occluded(op.DeviceBounds) {
			culled++
			continue
		}
		keep[i] = true
		if coversDeviceBounds(op) {
			culler.RecordDraw(op.DeviceBounds)
		}
	}
	if culled == 0 {
		return ops, 0
	}
	out := ops[:0]
	for i := range ops {
		if keep[i] {
			out = append(out, ops[i])
		}
	}
	return out, culled
}

// coversDeviceBounds reports whether an op is guaranteed to opaquely write
// every pixel inside its device bounds. Only axis-aligned rectangle fills
// under axis-preserving transforms qualify; everything else (strokes,
// rounded corners, arbitrary paths, rotated rects) covers a subset of its
// bounds and must not feed the culler.
func coversDeviceBounds(op *DrawOp) bool {
	if op.Kind == KindStroke {
		return false
	}
	if !op.HasPaint || !op.Paint.Opaque() {
		return false
	}
	if op.Shape.Kind() != geom.KindRect {
		return false
	}
	t := op.LocalToDevice
	return t.B == 0 && t.D == 0
}

// Target returns the destination of the pass.
func (p *DrawPass) Target() Target {
	return p.target
}

// Len returns the number of ops in the pass.
func (p *DrawPass) Len() int {
	return len(p.ops)
}

// Op returns the i-th op in paint order. The returned pointer aliases the
// pass's storage; callers must treat it as read-only.
func (p *DrawPass) Op(i int) *DrawOp {
	return &p.ops[i]
}

// Ops returns the ordered op sequence. The slice aliases the pass's storage
// and must not be modified.
func (p *DrawPass) Ops() []DrawOp {
	return p.ops
}
