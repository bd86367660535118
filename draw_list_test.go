package drawpass

import (
	"image"
	"testing"

	"github.com/gogpu/drawpass/geom"
	"github.com/gogpu/gputypes"
)

func testPaint() *PaintParams {
	return &PaintParams{
		Color: gputypes.Color{R: 1, G: 0, B: 0, A: 1},
		Blend: BlendSrcOver,
	}
}

func TestDrawListAppend(t *testing.T) {
	l := NewDrawList()
	if got := l.Count(); got != 0 {
		t.Errorf("Count() on new list = %d, want 0", got)
	}

	shape := geom.RectShape(geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	l.StencilAndFillPath(geom.Identity(), shape, image.Rectangle{}, MakeDrawOrder(1), testPaint())
	l.FillConvexPath(geom.Identity(), shape, image.Rectangle{}, MakeDrawOrder(2), testPaint())
	l.StrokePath(geom.Identity(), shape, DefaultStrokeParams(), image.Rectangle{}, MakeDrawOrder(3), testPaint())

	if got := l.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}

	draws := l.consume()
	wantKinds := []DrawKind{KindStencilAndFill, KindConvexFill, KindStroke}
	for i, want := range wantKinds {
		if draws[i].Kind != want {
			t.Errorf("draw %d Kind = %v, want %v", i, draws[i].Kind, want)
		}
	}
	if !draws[2].HasStroke {
		t.Error("stroke draw should carry stroke params")
	}
	if draws[0].HasStroke || draws[1].HasStroke {
		t.Error("fill draws should not carry stroke params")
	}
}

func TestDrawListCopiesPaint(t *testing.T) {
	l := NewDrawList()
	paint := testPaint()
	shape := geom.RectShape(geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	l.FillConvexPath(geom.Identity(), shape, image.Rectangle{}, MakeDrawOrder(1), paint)

	// Mutating the caller's paint after append must not affect the draw.
	paint.Color = gputypes.Color{R: 0, G: 1, B: 0, A: 1}

	draws := l.consume()
	if float32(draws[0].Paint.Color.R) != 1 {
		t.Error("appended draw should hold a copy of the paint, not a reference")
	}
}

func TestDrawListNilPaint(t *testing.T) {
	l := NewDrawList()
	shape := geom.RectShape(geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	l.FillConvexPath(geom.Identity(), shape, image.Rectangle{}, MakeDrawOrder(1), nil)
	draws := l.consume()
	if draws[0].HasPaint {
		t.Error("nil paint should be recorded as absent")
	}
}

func TestDrawListAppendAfterConsumePanics(t *testing.T) {
	l := NewDrawList()
	l.consume()

	defer func() {
		if recover() == nil {
			t.Error("append to a consumed list did not panic")
		}
	}()
	shape := geom.RectShape(geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	l.FillConvexPath(geom.Identity(), shape, image.Rectangle{}, MakeDrawOrder(1), testPaint())
}

func TestDrawListConsumeTwicePanics(t *testing.T) {
	l := NewDrawList()
	l.consume()

	defer func() {
		if recover() == nil {
			t.Error("consuming a list twice did not panic")
		}
	}()
	l.consume()
}
