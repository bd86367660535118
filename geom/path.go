// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "iter"

// PathVerb identifies a path construction command.
type PathVerb uint8

// Path verbs.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of coordinates this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2 // x, y
	case VerbQuadTo:
		return 4 // cx, cy, x, y
	case VerbCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	default:
		return 0
	}
}

// Path is a vector path in local space. Verbs and coordinate data are
// stored separately for compact iteration during pass resolution.
type Path struct {
	verbs  []PathVerb
	points []float32
	bounds Rect
	start  [2]float32 // Start of current subpath for Close
	cursor [2]float32 // Current position
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float32, 0, 64),
		bounds: EmptyRect(),
	}
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	p.start = [2]float32{x, y}
	p.cursor = [2]float32{x, y}
	return p
}

// LineTo draws a line from the current point.
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	p.cursor = [2]float32{x, y}
	return p
}

// QuadTo draws a quadratic Bezier curve from the current point.
// The bounds include the control point, which is conservative.
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	p.bounds = p.bounds.UnionPoint(cx, cy).UnionPoint(x, y)
	p.cursor = [2]float32{x, y}
	return p
}

// CubicTo draws a cubic Bezier curve from the current point.
// The bounds include both control points, which is conservative.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.bounds = p.bounds.UnionPoint(c1x, c1y).UnionPoint(c2x, c2y).UnionPoint(x, y)
	p.cursor = [2]float32{x, y}
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Rectangle appends an axis-aligned rectangle as a closed subpath.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// VerbCount returns the number of verbs in the path.
func (p *Path) VerbCount() int {
	return len(p.verbs)
}

// IsEmpty reports whether the path contains no verbs.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Bounds returns the bounding rectangle of the path.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// Elements iterates the path as (verb, coordinates) pairs. The coordinate
// slice aliases the path's storage and must not be retained or modified.
func (p *Path) Elements() iter.Seq2[PathVerb, []float32] {
	return func(yield func(PathVerb, []float32) bool) {
		i := 0
		for _, v := range p.verbs {
			n := v.PointCount()
			if !yield(v, p.points[i:i+n]) {
				return
			}
			i += n
		}
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{
		verbs:  make([]PathVerb, len(p.verbs)),
		points: make([]float32, len(p.points)),
		bounds: p.bounds,
		start:  p.start,
		cursor: p.cursor,
	}
	copy(out.verbs, p.verbs)
	copy(out.points, p.points)
	return out
}
