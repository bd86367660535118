package drawpass

import (
	"github.com/gogpu/gputypes"
)

// BlendMode selects how a draw's color combines with the destination.
// Only the Porter-Duff subset the batching layer needs to reason about
// opacity is modeled; backends may support more.
type BlendMode uint8

const (
	// BlendSrcOver composites source over destination (the default).
	BlendSrcOver BlendMode = iota
	// BlendSrc replaces the destination with the source.
	BlendSrc
	// BlendClear writes transparent black.
	BlendClear
	// BlendMultiply multiplies source and destination.
	BlendMultiply
)

// String returns a human-readable name for the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendSrcOver:
		return "SrcOver"
	case BlendSrc:
		return "Src"
	case BlendClear:
		return "Clear"
	case BlendMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}

// PaintParams carries the color and blend state of a draw. It is a value
// type: DrawList copies it on append so callers may reuse one PaintParams
// across submissions.
type PaintParams struct {
	// Color is the source color with components in [0, 1].
	Color gputypes.Color
	// Blend is the compositing mode.
	Blend BlendMode
}

// Opaque reports whether a draw with these params fully replaces every
// pixel it covers. Occlusion culling may only record coverage for opaque
// draws; anything else must let lower draws show through.
func (p PaintParams) Opaque() bool {
	switch p.Blend {
	case BlendSrc:
		return true
	case BlendSrcOver:
		return float32(p.Color.A) >= 1
	default:
		return false
	}
}

// LineCap specifies the shape of stroke endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of stroke joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// StrokeParams carries the stroking state of a stroke draw.
type StrokeParams struct {
	// Width is the stroke width in local space. Zero requests a hairline.
	Width float32
	// Cap is the shape of line endpoints.
	Cap LineCap
	// Join is the shape of line joins.
	Join LineJoin
	// MiterLimit is the limit for miter joins.
	MiterLimit float32
}

// DefaultStrokeParams returns stroke params with the conventional defaults:
// 1px width, butt caps, miter joins, limit 4.
func DefaultStrokeParams() StrokeParams {
	return StrokeParams{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4,
	}
}

// HalfWidthOutset returns the device-space outset stroke geometry adds to a
// shape's bounds: half the width scaled by the transform's maximum scale,
// with a minimum of half a pixel for hairlines.
func (s StrokeParams) HalfWidthOutset(maxScale float32) float32 {
	w := s.Width * maxScale / 2
	if w < 0.5 {
		w = 0.5
	}
	return w
}
