// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// OcclusionCuller answers whether a region of the destination is already
// fully covered by opaque geometry. DrawPass construction walks draws from
// topmost to bottommost, recording the device bounds of each opaque draw and
// culling any earlier draw whose bounds are reported occluded.
//
// Cullers are advisory: an implementation may always answer false, but it
// must never report a region occluded unless every pixel in it is covered by
// recorded geometry, since culled draws are dropped outright.
//
// Implementations are not safe for concurrent use.
type OcclusionCuller interface {
	// RecordDraw notes that bounds is fully covered by an opaque draw.
	RecordDraw(bounds Rect)

	// Occluded reports whether bounds is entirely covered by previously
	// recorded draws.
	Occluded(bounds Rect) bool

	// Reset clears all recorded coverage so the culler can be reused.
	Reset()
}

// NullCuller is the degraded baseline: it records nothing and never reports
// occlusion, so pass construction falls back to pure draw-order sequencing.
type NullCuller struct{}

// RecordDraw is a no-op.
func (NullCuller) RecordDraw(Rect) {}

// Occluded always returns false.
func (NullCuller) Occluded(Rect) bool { return false }

// Reset is a no-op.
func (NullCuller) Reset() {}

// BruteForceCuller keeps every recorded rectangle and reports occlusion only
// when a single recorded rectangle contains the query. This is conservative
// (overlapping rects that jointly cover a region are not combined) but exact
// for the common full-screen and large-backdrop cases, and has no setup cost.
type BruteForceCuller struct {
	rects []Rect
}

// NewBruteForceCuller creates an empty brute-force culler.
func NewBruteForceCuller() *BruteForceCuller {
	return &BruteForceCuller{rects: make([]Rect, 0, 16)}
}

// RecordDraw records the bounds of an opaque draw.
func (c *BruteForceCuller) RecordDraw(bounds Rect) {
	if bounds.IsEmpty() {
		return
	}
	c.rects = append(c.rects, bounds)
}

// Occluded reports whether any single recorded rectangle contains bounds.
func (c *BruteForceCuller) Occluded(bounds Rect) bool {
	if bounds.IsEmpty() {
		return false
	}
	for _, r := range c.rects {
		if r.Contains(bounds) {
			return true
		}
	}
	return false
}

// Reset clears all recorded coverage.
func (c *BruteForceCuller) Reset() {
	c.rects = c.rects[:0]
}
