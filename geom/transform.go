// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math"

// Transform is a 2D affine local-to-device transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// representing the mapping:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Transform struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate returns a translation transform.
func Translate(x, y float32) Transform {
	return Transform{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale returns a scaling transform.
func Scale(sx, sy float32) Transform {
	return Transform{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Rotate returns a rotation transform (angle in radians).
func Rotate(angle float32) Transform {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply returns t * other, applying other before t.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// MapPoint applies the transform to a point.
func (t Transform) MapPoint(x, y float32) (float32, float32) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}

// MapRect returns the device-space bounding rectangle of r under t.
// For rotated or sheared transforms this is the bounds of the mapped
// corners, which may be larger than the mapped shape itself. Degenerate
// rects map to degenerate rects; only inverted rects collapse to empty.
func (t Transform) MapRect(r Rect) Rect {
	if r.isInverted() {
		return EmptyRect()
	}
	out := EmptyRect()
	corners := [4][2]float32{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
	}
	for _, c := range corners {
		x, y := t.MapPoint(c[0], c[1])
		out = out.UnionPoint(x, y)
	}
	return out
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Invert returns the inverse transform and true, or the identity and
// false when t is singular.
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.E - t.B*t.D
	if det == 0 {
		return Identity(), false
	}
	inv := 1 / det
	return Transform{
		A: t.E * inv,
		B: -t.B * inv,
		C: (t.B*t.F - t.E*t.C) * inv,
		D: -t.D * inv,
		E: t.A * inv,
		F: (t.D*t.C - t.A*t.F) * inv,
	}, true
}

// MaxScaleFactor returns an upper bound on how much t scales distances.
// Used to convert local-space stroke widths to device space.
func (t Transform) MaxScaleFactor() float32 {
	sx := float32(math.Hypot(float64(t.A), float64(t.D)))
	sy := float32(math.Hypot(float64(t.B), float64(t.E)))
	return max32(sx, sy)
}
