// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"image"
	"testing"
)

func TestMakeRectNormalizesCorners(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float32
		want           Rect
	}{
		{"ordered", 1, 2, 3, 4, Rect{1, 2, 3, 4}},
		{"swapped x", 3, 2, 1, 4, Rect{1, 2, 3, 4}},
		{"swapped y", 1, 4, 3, 2, Rect{1, 2, 3, 4}},
		{"both swapped", 3, 4, 1, 2, Rect{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeRect(tt.x0, tt.y0, tt.x1, tt.y1)
			if got != tt.want {
				t.Errorf("MakeRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"empty rect constant", EmptyRect(), true},
		{"zero value", Rect{}, true},
		{"positive area", Rect{0, 0, 10, 10}, false},
		{"zero width", Rect{5, 0, 5, 10}, true},
		{"zero height", Rect{0, 5, 10, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{1, 2, 4, 8}
	if got := r.Width(); got != 3 {
		t.Errorf("Width() = %v, want 3", got)
	}
	if got := r.Height(); got != 6 {
		t.Errorf("Height() = %v, want 6", got)
	}

	// Empty rects report zero dimensions, not negative.
	e := EmptyRect()
	if got := e.Width(); got != 0 {
		t.Errorf("EmptyRect().Width() = %v, want 0", got)
	}
	if got := e.Height(); got != 0 {
		t.Errorf("EmptyRect().Height() = %v, want 0", got)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 20, 15}
	want := Rect{0, 0, 20, 15}
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}

	// Union with the empty rect is the identity.
	if got := a.Union(EmptyRect()); got != a {
		t.Errorf("Union(EmptyRect()) = %v, want %v", got, a)
	}
}

func TestRectUnionPoint(t *testing.T) {
	r := EmptyRect().UnionPoint(3, 4).UnionPoint(-1, 7)
	want := Rect{-1, 4, 3, 7}
	if r != want {
		t.Errorf("UnionPoint chain = %v, want %v", r, want)
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 20, 20}, Rect{5, 5, 10, 10}},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 8, 8}, Rect{2, 2, 8, 8}},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 30, 30}, EmptyRect()},
		{"touching edge", Rect{0, 0, 10, 10}, Rect{10, 0, 20, 10}, EmptyRect()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{0, 0, 100, 100}
	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"strictly inside", Rect{10, 10, 90, 90}, true},
		{"equal", outer, true},
		{"overhangs right", Rect{50, 50, 120, 90}, false},
		{"disjoint", Rect{200, 200, 300, 300}, false},
		{"empty inner", EmptyRect(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}

	if EmptyRect().Contains(Rect{1, 1, 2, 2}) {
		t.Error("empty rect must contain nothing")
	}
}

func TestRectOutset(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	want := Rect{8, 8, 22, 22}
	if got := r.Outset(2); got != want {
		t.Errorf("Outset(2) = %v, want %v", got, want)
	}
	if got := EmptyRect().Outset(5); !got.IsEmpty() {
		t.Errorf("Outset on empty rect = %v, want empty", got)
	}
}

func TestRectToImage(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want image.Rectangle
	}{
		{"integral", Rect{1, 2, 3, 4}, image.Rect(1, 2, 3, 4)},
		{"fractional rounds outward", Rect{0.5, 0.5, 2.5, 2.5}, image.Rect(0, 0, 3, 3)},
		{"negative", Rect{-1.5, -1.5, 1.5, 1.5}, image.Rect(-2, -2, 2, 2)},
		{"empty", EmptyRect(), image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.ToImage(); got != tt.want {
				t.Errorf("ToImage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFromImage(t *testing.T) {
	got := RectFromImage(image.Rect(1, 2, 3, 4))
	want := Rect{1, 2, 3, 4}
	if got != want {
		t.Errorf("RectFromImage() = %v, want %v", got, want)
	}
}
