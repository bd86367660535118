package drawpass

import (
	"image"

	"github.com/gogpu/drawpass/geom"
	"github.com/gogpu/gputypes"
)

// DrawContext buffers draw commands against one destination target and
// snapshots them into immutable, ordered DrawPasses.
//
// The context cycles through three phases: open (accepting draws),
// snapshotting (SnapDrawPass freezes the open list into a pass), and
// finalized (SnapRenderPassTask extracts all passes into a Task), after
// which it is immediately open again for a new task.
//
// A context must be drained before it is discarded: Close panics if any
// buffered draws or snapped passes remain. The design deliberately does not
// auto-flush, forcing callers to make the draw lifecycle explicit.
//
// DrawContext is not safe for concurrent use.
type DrawContext struct {
	target       Target
	imageInfo    ImageInfo
	pendingDraws *DrawList
	drawPasses   []*DrawPass
}

// MakeDrawContext creates a context recording against target. The image
// info is derived from the target's pixel dimensions combined with the
// requested color type, alpha type, and color space.
//
// Returns nil when target is nil; callers must check before use.
func MakeDrawContext(target Target, cs ColorSpace, ct gputypes.TextureFormat, at AlphaType) *DrawContext {
	if target == nil {
		return nil
	}
	return &DrawContext{
		target:       target,
		imageInfo:    MakeImageInfo(target.Width(), target.Height(), ct, at, cs),
		pendingDraws: NewDrawList(),
	}
}

// Target returns the destination the context records against.
func (dc *DrawContext) Target() Target {
	return dc.target
}

// ImageInfo returns the derived pixel interpretation of the destination.
func (dc *DrawContext) ImageInfo() ImageInfo {
	return dc.imageInfo
}

// PendingCount returns the number of draws buffered since the last snap.
func (dc *DrawContext) PendingCount() int {
	return dc.pendingDraws.Count()
}

// PassCount returns the number of snapped passes awaiting finalize.
func (dc *DrawContext) PassCount() int {
	return len(dc.drawPasses)
}

// StencilAndFillPath buffers a stencil-then-fill draw for arbitrary
// geometry. Purely a buffering operation: no validation, no computation.
func (dc *DrawContext) StencilAndFillPath(localToDevice geom.Transform, shape geom.Shape,
	scissor image.Rectangle, order DrawOrder, paint *PaintParams) {
	dc.pendingDraws.StencilAndFillPath(localToDevice, shape, scissor, order, paint)
}

// FillConvexPath buffers a direct fill draw for convex geometry.
func (dc *DrawContext) FillConvexPath(localToDevice geom.Transform, shape geom.Shape,
	scissor image.Rectangle, order DrawOrder, paint *PaintParams) {
	dc.pendingDraws.FillConvexPath(localToDevice, shape, scissor, order, paint)
}

// StrokePath buffers a stroke draw.
func (dc *DrawContext) StrokePath(localToDevice geom.Transform, shape geom.Shape,
	stroke StrokeParams, scissor image.Rectangle, order DrawOrder, paint *PaintParams) {
	dc.pendingDraws.StrokePath(localToDevice, shape, stroke, scissor, order, paint)
}

// SnapDrawPass freezes the open draw list into an immutable DrawPass and
// appends it to the pass history, replacing the open list with a fresh one.
// This is the sole transition where buffered commands become ordered output.
//
// A snap with nothing buffered is a no-op, not an error: no pass is
// appended. The culler is advisory and may be nil.
func (dc *DrawContext) SnapDrawPass(culler geom.OcclusionCuller) {
	if dc.pendingDraws.Count() == 0 {
		return
	}
	pass := MakeDrawPass(dc.pendingDraws, dc.target, culler)
	dc.drawPasses = append(dc.drawPasses, pass)
	dc.pendingDraws = NewDrawList()
}

// SnapRenderPassTask flushes any pending draws (an implicit SnapDrawPass)
// and assembles the full pass history into one Task, transferring ownership
// to the caller. The context's history is cleared, so it is immediately
// reusable for a new task.
//
// Returns nil when nothing was ever drawn; two consecutive calls with no
// draws in between yield a task then nil.
func (dc *DrawContext) SnapRenderPassTask(culler geom.OcclusionCuller) Task {
	dc.SnapDrawPass(culler)
	if len(dc.drawPasses) == 0 {
		return nil
	}
	passes := dc.drawPasses
	dc.drawPasses = nil
	return MakeRenderPassTask(passes)
}

// Close verifies the context has been drained. Discarding a context with
// buffered draws or unextracted passes loses work silently, so it is
// treated as a programming defect: Close panics rather than flushing.
// Close is legal immediately after a finalize or before any draw.
func (dc *DrawContext) Close() {
	if dc.pendingDraws.Count() != 0 {
		panic("drawpass: DrawContext closed with pending draws; snap them first")
	}
	if len(dc.drawPasses) != 0 {
		panic("drawpass: DrawContext closed with unextracted passes; finalize them first")
	}
}
