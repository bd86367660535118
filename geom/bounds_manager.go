// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// BoundsManager tracks the highest paint-order value drawn over regions of
// the destination. Callers use it to assign new draws a paint order above
// everything they overlap, which lets otherwise-unordered draws that touch
// disjoint regions share the same order value and batch together.
//
// Order values are opaque to the manager; it only compares them. Zero means
// "nothing drawn here yet".
//
// Implementations are not safe for concurrent use.
type BoundsManager interface {
	// RecordDraw notes that a draw with the given paint order covers bounds.
	RecordDraw(bounds Rect, order uint16)

	// MaxOrder returns the highest order recorded over any part of bounds,
	// or zero when nothing recorded intersects it.
	MaxOrder(bounds Rect) uint16

	// Reset clears all recorded draws.
	Reset()
}

// BruteForceBoundsManager stores every recorded draw and answers queries by
// linear scan. Exact, and fast enough for the list sizes a single pass sees.
type BruteForceBoundsManager struct {
	rects  []Rect
	orders []uint16
}

// NewBruteForceBoundsManager creates an empty brute-force bounds manager.
func NewBruteForceBoundsManager() *BruteForceBoundsManager {
	return &BruteForceBoundsManager{
		rects:  make([]Rect, 0, 32),
		orders: make([]uint16, 0, 32),
	}
}

// RecordDraw records a draw covering bounds with the given order.
func (m *BruteForceBoundsManager) RecordDraw(bounds Rect, order uint16) {
	if bounds.IsEmpty() {
		return
	}
	m.rects = append(m.rects, bounds)
	m.orders = append(m.orders, order)
}

// MaxOrder returns the highest order intersecting bounds.
func (m *BruteForceBoundsManager) MaxOrder(bounds Rect) uint16 {
	var maxOrder uint16
	if bounds.IsEmpty() {
		return 0
	}
	for i, r := range m.rects {
		if r.Intersects(bounds) && m.orders[i] > maxOrder {
			maxOrder = m.orders[i]
		}
	}
	return maxOrder
}

// Reset clears all recorded draws.
func (m *BruteForceBoundsManager) Reset() {
	m.rects = m.rects[:0]
	m.orders = m.orders[:0]
}

// GridBoundsManager divides the destination into a fixed grid of cells and
// tracks the maximum order per cell. Queries and updates touch only the
// cells a rectangle overlaps, trading exactness at cell granularity for
// constant-time behavior on dense draw sets.
type GridBoundsManager struct {
	cells         []uint16
	cols, rows    int
	cellW, cellH  float32
	width, height float32
}

// NewGridBoundsManager creates a grid covering a width x height destination
// with the given number of columns and rows. Dimensions and grid counts must
// be positive.
func NewGridBoundsManager(width, height float32, cols, rows int) *GridBoundsManager {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &GridBoundsManager{
		cells:  make([]uint16, cols*rows),
		cols:   cols,
		rows:   rows,
		cellW:  width / float32(cols),
		cellH:  height / float32(rows),
		width:  width,
		height: height,
	}
}

// cellRange returns the inclusive cell index range overlapped by bounds,
// clamped to the grid.
func (m *GridBoundsManager) cellRange(bounds Rect) (c0, r0, c1, r1 int, ok bool) {
	b := bounds.Intersect(Rect{MinX: 0, MinY: 0, MaxX: m.width, MaxY: m.height})
	if b.IsEmpty() {
		return 0, 0, 0, 0, false
	}
	c0 = int(b.MinX / m.cellW)
	r0 = int(b.MinY / m.cellH)
	c1 = int(b.MaxX / m.cellW)
	r1 = int(b.MaxY / m.cellH)
	if c1 >= m.cols {
		c1 = m.cols - 1
	}
	if r1 >= m.rows {
		r1 = m.rows - 1
	}
	return c0, r0, c1, r1, true
}

// RecordDraw raises the max order of every cell bounds overlaps.
func (m *GridBoundsManager) RecordDraw(bounds Rect, order uint16) {
	c0, r0, c1, r1, ok := m.cellRange(bounds)
	if !ok {
		return
	}
	for r := r0; r <= r1; r++ {
		row := m.cells[r*m.cols : (r+1)*m.cols]
		for c := c0; c <= c1; c++ {
			if row[c] < order {
				row[c] = order
			}
		}
	}
}

// MaxOrder returns the highest order over the cells bounds overlaps.
func (m *GridBoundsManager) MaxOrder(bounds Rect) uint16 {
	c0, r0, c1, r1, ok := m.cellRange(bounds)
	if !ok {
		return 0
	}
	var maxOrder uint16
	for r := r0; r <= r1; r++ {
		row := m.cells[r*m.cols : (r+1)*m.cols]
		for c := c0; c <= c1; c++ {
			if row[c] > maxOrder {
				maxOrder = row[c]
			}
		}
	}
	return maxOrder
}

// Reset clears all cells.
func (m *GridBoundsManager) Reset() {
	clear(m.cells)
}
