// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// ShapeKind identifies the geometry carried by a Shape.
type ShapeKind uint8

// Shape kinds.
const (
	// KindRect is an axis-aligned rectangle.
	KindRect ShapeKind = iota
	// KindRRect is a rectangle with a uniform corner radius.
	KindRRect
	// KindPath is an arbitrary vector path.
	KindPath
)

// String returns a human-readable name for the kind.
func (k ShapeKind) String() string {
	switch k {
	case KindRect:
		return "Rect"
	case KindRRect:
		return "RRect"
	case KindPath:
		return "Path"
	default:
		return "Unknown"
	}
}

// Shape describes what a draw renders, independent of how it is painted.
// A Shape is a small tagged union over the geometry kinds the pipeline
// batches; it is treated as an opaque value by DrawList and DrawPass and
// only interpreted by executors.
//
// The zero Shape is an empty rectangle.
type Shape struct {
	kind   ShapeKind
	rect   Rect
	radius float32
	path   *Path
}

// RectShape returns a rectangle shape.
func RectShape(r Rect) Shape {
	return Shape{kind: KindRect, rect: r}
}

// RRectShape returns a rounded-rectangle shape with a uniform corner radius.
// The radius is clamped to half the smaller dimension.
func RRectShape(r Rect, radius float32) Shape {
	maxR := min32(r.Width(), r.Height()) / 2
	if radius > maxR {
		radius = maxR
	}
	if radius < 0 {
		radius = 0
	}
	return Shape{kind: KindRRect, rect: r, radius: radius}
}

// PathShape returns a path shape. The path is not copied; callers must not
// mutate it after handing it to a draw.
func PathShape(p *Path) Shape {
	return Shape{kind: KindPath, path: p}
}

// Kind returns the geometry kind.
func (s Shape) Kind() ShapeKind {
	return s.kind
}

// Rect returns the rectangle for KindRect and KindRRect shapes.
func (s Shape) Rect() Rect {
	return s.rect
}

// Radius returns the corner radius for KindRRect shapes.
func (s Shape) Radius() float32 {
	return s.radius
}

// Path returns the path for KindPath shapes, or nil otherwise.
func (s Shape) Path() *Path {
	return s.path
}

// Bounds returns the local-space bounding rectangle of the shape.
func (s Shape) Bounds() Rect {
	if s.kind == KindPath {
		if s.path == nil {
			return EmptyRect()
		}
		return s.path.Bounds()
	}
	return s.rect
}

// IsEmpty reports whether the shape has no geometry.
func (s Shape) IsEmpty() bool {
	if s.kind == KindPath {
		return s.path == nil || s.path.IsEmpty()
	}
	return s.rect.IsEmpty()
}

// IsConvex reports whether the shape is known to be convex.
// Paths are conservatively reported non-convex; rectangle and
// rounded-rectangle shapes are always convex.
func (s Shape) IsConvex() bool {
	return s.kind != KindPath
}

// ToPath converts the shape to a path. Rectangle kinds are expanded;
// path kinds return the underlying path unchanged.
func (s Shape) ToPath() *Path {
	switch s.kind {
	case KindRect:
		return NewPath().Rectangle(s.rect.MinX, s.rect.MinY, s.rect.Width(), s.rect.Height())
	case KindRRect:
		return rrectPath(s.rect, s.radius)
	default:
		if s.path == nil {
			return NewPath()
		}
		return s.path
	}
}

// kappa is the cubic Bezier approximation constant for a quarter circle,
// 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// rrectPath expands a rounded rectangle into a closed path of lines and
// cubic corner arcs.
func rrectPath(r Rect, radius float32) *Path {
	if radius <= 0 {
		return NewPath().Rectangle(r.MinX, r.MinY, r.Width(), r.Height())
	}
	k := radius * kappa
	p := NewPath()
	p.MoveTo(r.MinX+radius, r.MinY)
	p.LineTo(r.MaxX-radius, r.MinY)
	p.CubicTo(r.MaxX-radius+k, r.MinY, r.MaxX, r.MinY+radius-k, r.MaxX, r.MinY+radius)
	p.LineTo(r.MaxX, r.MaxY-radius)
	p.CubicTo(r.MaxX, r.MaxY-radius+k, r.MaxX-radius+k, r.MaxY, r.MaxX-radius, r.MaxY)
	p.LineTo(r.MinX+radius, r.MaxY)
	p.CubicTo(r.MinX+radius-k, r.MaxY, r.MinX, r.MaxY-radius+k, r.MinX, r.MaxY-radius)
	p.LineTo(r.MinX, r.MinY+radius)
	p.CubicTo(r.MinX, r.MinY+radius-k, r.MinX+radius-k, r.MinY, r.MinX+radius, r.MinY)
	p.Close()
	return p
}
