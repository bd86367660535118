// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/drawpass"
	"github.com/gogpu/drawpass/geom"
	"github.com/gogpu/gputypes"
)

// Software execution errors.
var (
	// ErrUnsupportedTarget is returned when a pass targets something other
	// than a PixmapTarget.
	ErrUnsupportedTarget = errors.New("render: software executor requires a PixmapTarget")

	// ErrNoActivePass is returned when Record or EndRenderPass is called
	// outside a BeginRenderPass/EndRenderPass bracket.
	ErrNoActivePass = errors.New("render: no render pass is active")

	// ErrPassAlreadyOpen is returned when BeginRenderPass is called while
	// a pass is still open.
	ErrPassAlreadyOpen = errors.New("render: render pass already open")
)

// SoftwareExecutor replays finalized tasks on the CPU. It implements
// drawpass.CommandRecorder, rasterizing fill coverage with
// golang.org/x/image/vector and compositing into the pass's PixmapTarget.
//
// Stencil-and-fill and convex-fill ops rasterize identically here: the
// stencil technique only matters to GPU backends, and the scanline
// rasterizer handles concave geometry directly.
//
// SoftwareExecutor is not safe for concurrent use.
type SoftwareExecutor struct {
	target *PixmapTarget
	ras    *vector.Rasterizer
}

// NewSoftwareExecutor creates a CPU executor.
func NewSoftwareExecutor() *SoftwareExecutor {
	return &SoftwareExecutor{ras: &vector.Rasterizer{}}
}

// SubmitTask executes a finalized task to completion. A nil task (finalize
// with nothing drawn) is a no-op.
func (e *SoftwareExecutor) SubmitTask(task drawpass.Task) error {
	if task == nil {
		return nil
	}
	return task.AddCommands(e)
}

// BeginRenderPass opens a pass against target, clearing it when requested.
func (e *SoftwareExecutor) BeginRenderPass(target drawpass.Target, load gputypes.LoadOp, clear gputypes.Color) error {
	if e.target != nil {
		return ErrPassAlreadyOpen
	}
	pm, ok := target.(*PixmapTarget)
	if !ok {
		return ErrUnsupportedTarget
	}
	e.target = pm
	if load == gputypes.LoadOpClear {
		pm.Clear(rgbaFromColor(clear))
	}
	return nil
}

// EndRenderPass closes the open pass.
func (e *SoftwareExecutor) EndRenderPass() error {
	if e.target == nil {
		return ErrNoActivePass
	}
	e.target = nil
	return nil
}

// Record rasterizes one resolved op into the open pass's target.
func (e *SoftwareExecutor) Record(op *drawpass.DrawOp) error {
	if e.target == nil {
		return ErrNoActivePass
	}
	if op.DeviceBounds.IsEmpty() || !op.HasPaint {
		// Scissored-out or paintless ops contribute no pixels on the CPU
		// path; only GPU stencil state would care.
		return nil
	}

	clip := op.DeviceBounds.ToImage().Intersect(e.target.Image().Bounds())
	if clip.Empty() {
		return nil
	}

	e.ras.Reset(clip.Dx(), clip.Dy())
	off := geom.Translate(float32(-clip.Min.X), float32(-clip.Min.Y))
	toDevice := off.Multiply(op.LocalToDevice)

	switch op.Kind {
	case drawpass.KindStencilAndFill, drawpass.KindConvexFill:
		rasterizePath(e.ras, op.Shape.ToPath(), toDevice)
	case drawpass.KindStroke:
		stroke := op.Stroke
		if !op.HasStroke {
			stroke = drawpass.DefaultStrokeParams()
		}
		rasterizeStroke(e.ras, op.Shape.ToPath(), toDevice, stroke)
	}

	src, dop := sourceForPaint(op.Paint)
	e.ras.DrawOp = dop
	e.ras.Draw(e.target.Image(), clip, src, image.Point{})
	return nil
}

// rasterizePath feeds a path through the transform into the rasterizer.
// Affine transforms map Bezier control points exactly, so curves go in as
// curves with no flattening.
func rasterizePath(ras *vector.Rasterizer, p *geom.Path, t geom.Transform) {
	var open bool
	for verb, pts := range p.Elements() {
		switch verb {
		case geom.VerbMoveTo:
			if open {
				ras.ClosePath()
			}
			x, y := t.MapPoint(pts[0], pts[1])
			ras.MoveTo(x, y)
			open = true
		case geom.VerbLineTo:
			x, y := t.MapPoint(pts[0], pts[1])
			ras.LineTo(x, y)
		case geom.VerbQuadTo:
			cx, cy := t.MapPoint(pts[0], pts[1])
			x, y := t.MapPoint(pts[2], pts[3])
			ras.QuadTo(cx, cy, x, y)
		case geom.VerbCubicTo:
			c1x, c1y := t.MapPoint(pts[0], pts[1])
			c2x, c2y := t.MapPoint(pts[2], pts[3])
			x, y := t.MapPoint(pts[4], pts[5])
			ras.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case geom.VerbClose:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		ras.ClosePath()
	}
}

// rasterizeStroke flattens the path to device-space polylines and emits one
// quad per segment into the rasterizer. Coverage saturates within a single
// mask, so overlapping segment quads blend as one stroke. Caps are butt and
// joins are bevel-like; the batching layer does not promise more from the
// CPU fallback.
func rasterizeStroke(ras *vector.Rasterizer, p *geom.Path, t geom.Transform, stroke drawpass.StrokeParams) {
	half := stroke.HalfWidthOutset(t.MaxScaleFactor())
	var sx, sy, cx, cy float32
	var hasStart bool

	emit := func(x, y float32) {
		if hasStart {
			strokeSegment(ras, cx, cy, x, y, half)
		}
		cx, cy = x, y
	}

	for verb, pts := range p.Elements() {
		switch verb {
		case geom.VerbMoveTo:
			x, y := t.MapPoint(pts[0], pts[1])
			sx, sy = x, y
			cx, cy = x, y
			hasStart = true
		case geom.VerbLineTo:
			x, y := t.MapPoint(pts[0], pts[1])
			emit(x, y)
		case geom.VerbQuadTo:
			qcx, qcy := t.MapPoint(pts[0], pts[1])
			x, y := t.MapPoint(pts[2], pts[3])
			for _, pt := range flattenQuad(cx, cy, qcx, qcy, x, y) {
				emit(pt[0], pt[1])
			}
		case geom.VerbCubicTo:
			c1x, c1y := t.MapPoint(pts[0], pts[1])
			c2x, c2y := t.MapPoint(pts[2], pts[3])
			x, y := t.MapPoint(pts[4], pts[5])
			for _, pt := range flattenCubic(cx, cy, c1x, c1y, c2x, c2y, x, y) {
				emit(pt[0], pt[1])
			}
		case geom.VerbClose:
			if hasStart {
				emit(sx, sy)
			}
		}
	}
}

// strokeSegment emits the oriented quad covering one stroked segment.
func strokeSegment(ras *vector.Rasterizer, x0, y0, x1, y1, half float32) {
	dx := x1 - x0
	dy := y1 - y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Unit normal scaled to half width.
	nx := -dy / length * half
	ny := dx / length * half
	ras.MoveTo(x0+nx, y0+ny)
	ras.LineTo(x1+nx, y1+ny)
	ras.LineTo(x1-nx, y1-ny)
	ras.LineTo(x0-nx, y0-ny)
	ras.ClosePath()
}

// flattenTolerance bounds the chord error of flattened curves, in pixels.
const flattenTolerance = 0.25

// flattenQuad subdivides a quadratic Bezier into line endpoints.
func flattenQuad(x0, y0, cx, cy, x1, y1 float32) [][2]float32 {
	n := segmentsForDeviation(deviation(x0, y0, cx, cy, x1, y1))
	out := make([][2]float32, 0, n)
	for i := 1; i <= n; i++ {
		u := float32(i) / float32(n)
		v := 1 - u
		x := v*v*x0 + 2*v*u*cx + u*u*x1
		y := v*v*y0 + 2*v*u*cy + u*u*y1
		out = append(out, [2]float32{x, y})
	}
	return out
}

// flattenCubic subdivides a cubic Bezier into line endpoints.
func flattenCubic(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float32) [][2]float32 {
	d := max32f(deviation(x0, y0, c1x, c1y, x1, y1), deviation(x0, y0, c2x, c2y, x1, y1))
	n := segmentsForDeviation(d)
	out := make([][2]float32, 0, n)
	for i := 1; i <= n; i++ {
		u := float32(i) / float32(n)
		v := 1 - u
		x := v*v*v*x0 + 3*v*v*u*c1x + 3*v*u*u*c2x + u*u*u*x1
		y := v*v*v*y0 + 3*v*v*u*c1y + 3*v*u*u*c2y + u*u*u*y1
		out = append(out, [2]float32{x, y})
	}
	return out
}

// deviation estimates how far a control point pulls the curve off the chord.
func deviation(x0, y0, cx, cy, x1, y1 float32) float32 {
	mx := (x0 + x1) / 2
	my := (y0 + y1) / 2
	return float32(math.Hypot(float64(cx-mx), float64(cy-my)))
}

// segmentsForDeviation picks a segment count keeping chord error under the
// flatten tolerance.
func segmentsForDeviation(d float32) int {
	if d <= flattenTolerance {
		return 1
	}
	n := int(math.Ceil(math.Sqrt(float64(d / flattenTolerance))))
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}
	return n
}

// sourceForPaint maps paint params to a uniform source image and a draw op.
// Unsupported blend modes fall back to source-over with a warning; the CPU
// path promises correct output for the SrcOver/Src/Clear subset.
func sourceForPaint(p drawpass.PaintParams) (image.Image, draw.Op) {
	switch p.Blend {
	case drawpass.BlendSrc:
		return image.NewUniform(rgbaFromColor(p.Color)), draw.Src
	case drawpass.BlendClear:
		return image.NewUniform(color.RGBA{}), draw.Src
	case drawpass.BlendSrcOver:
		return image.NewUniform(rgbaFromColor(p.Color)), draw.Over
	default:
		drawpass.Logger().Warn("unsupported blend mode on CPU path, using source-over",
			"blend", p.Blend.String())
		return image.NewUniform(rgbaFromColor(p.Color)), draw.Over
	}
}

// rgbaFromColor converts a [0,1] float color to premultiplied 8-bit RGBA.
func rgbaFromColor(c gputypes.Color) color.RGBA {
	a := clamp01(float64(c.A))
	return color.RGBA{
		R: uint8(clamp01(float64(c.R)) * a * 255), //nolint:gosec // G115: clamped to [0,255]
		G: uint8(clamp01(float64(c.G)) * a * 255), //nolint:gosec // G115
		B: uint8(clamp01(float64(c.B)) * a * 255), //nolint:gosec // G115
		A: uint8(a * 255),                         //nolint:gosec // G115
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max32f(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
