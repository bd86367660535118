// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in device space.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// MakeRect returns the rectangle spanning the two corner points.
// The corners may be given in any order.
func MakeRect(x0, y0, x1, y1 float32) Rect {
	return Rect{
		MinX: min32(x0, x1),
		MinY: min32(y0, y1),
		MaxX: max32(x0, x1),
		MaxY: max32(y0, y1),
	}
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		MinX: float32(r.Min.X),
		MinY: float32(r.Min.Y),
		MaxX: float32(r.Max.X),
		MaxY: float32(r.Max.Y),
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// isInverted reports whether the rectangle's bounds are reversed, as in the
// EmptyRect sentinel. Degenerate rects (zero width or height at a real
// position) are not inverted; line geometry produces them and they still
// carry a location that outsets can grow.
func (r Rect) isInverted() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min32(r.MinX, other.MinX),
		MinY: min32(r.MinY, other.MinY),
		MaxX: max32(r.MaxX, other.MaxX),
		MaxY: max32(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(x, y float32) Rect {
	return Rect{
		MinX: min32(r.MinX, x),
		MinY: min32(r.MinY, y),
		MaxX: max32(r.MaxX, x),
		MaxY: max32(r.MaxY, y),
	}
}

// Intersect returns the overlap of r and other.
// The result is empty if the rectangles do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		MinX: max32(r.MinX, other.MinX),
		MinY: max32(r.MinY, other.MinY),
		MaxX: min32(r.MaxX, other.MaxX),
		MaxY: min32(r.MaxY, other.MaxY),
	}
	if out.IsEmpty() {
		return EmptyRect()
	}
	return out
}

// Intersects reports whether r and other overlap with positive area.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Contains reports whether other lies entirely within r.
// An empty rectangle contains nothing and is contained by nothing.
func (r Rect) Contains(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.MinX <= other.MinX && r.MinY <= other.MinY &&
		r.MaxX >= other.MaxX && r.MaxY >= other.MaxY
}

// Outset returns the rectangle grown by d on every side. Degenerate rects
// (a line's bounds) grow into real area; only inverted rects stay empty.
func (r Rect) Outset(d float32) Rect {
	if r.isInverted() {
		return EmptyRect()
	}
	return Rect{
		MinX: r.MinX - d,
		MinY: r.MinY - d,
		MaxX: r.MaxX + d,
		MaxY: r.MaxY + d,
	}
}

// ToImage returns the smallest integer rectangle containing r.
func (r Rect) ToImage() image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(float64(r.MinX))),
		int(math.Floor(float64(r.MinY))),
		int(math.Ceil(float64(r.MaxX))),
		int(math.Ceil(float64(r.MaxY))),
	)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
