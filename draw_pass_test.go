package drawpass

import (
	"image"
	"testing"

	"github.com/gogpu/drawpass/geom"
	"github.com/gogpu/gputypes"
)

// testTarget is a minimal in-memory Target for pass and task tests.
type testTarget struct {
	width  int
	height int
	format gputypes.TextureFormat
}

func newTestTarget(w, h int) *testTarget {
	return &testTarget{width: w, height: h, format: gputypes.TextureFormatRGBA8Unorm}
}

func (t *testTarget) Width() int                     { return t.width }
func (t *testTarget) Height() int                    { return t.height }
func (t *testTarget) Format() gputypes.TextureFormat { return t.format }

func opaqueRect(r geom.Rect) geom.Shape {
	return geom.RectShape(r)
}

func TestMakeDrawPassSortsByOrder(t *testing.T) {
	l := NewDrawList()
	shape := opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})

	// Submit out of paint order: the fill at order 2 first, then a stroke
	// at order 1. The pass must replay the stroke before the fill.
	l.FillConvexPath(geom.Identity(), shape, image.Rectangle{}, MakeDrawOrder(2), testPaint())
	l.StrokePath(geom.Identity(), shape, DefaultStrokeParams(), image.Rectangle{}, MakeDrawOrder(1), testPaint())

	pass := MakeDrawPass(l, newTestTarget(100, 100), nil)
	if pass.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", pass.Len())
	}
	if pass.Op(0).Kind != KindStroke {
		t.Errorf("op 0 Kind = %v, want KindStroke", pass.Op(0).Kind)
	}
	if pass.Op(1).Kind != KindConvexFill {
		t.Errorf("op 1 Kind = %v, want KindConvexFill", pass.Op(1).Kind)
	}
}

func TestMakeDrawPassStableOnEqualOrders(t *testing.T) {
	l := NewDrawList()
	order := MakeDrawOrder(1)

	// Four draws with identical keys, distinguishable by their bounds.
	for i := 0; i < 4; i++ {
		r := geom.Rect{MinX: float32(i), MinY: 0, MaxX: float32(i + 1), MaxY: 1}
		l.FillConvexPath(geom.Identity(), opaqueRect(r), image.Rectangle{}, order, testPaint())
	}

	pass := MakeDrawPass(l, newTestTarget(100, 100), nil)
	for i := 0; i < 4; i++ {
		if got := pass.Op(i).Shape.Rect().MinX; got != float32(i) {
			t.Errorf("op %d MinX = %v, want %d (submission order not preserved)", i, got, i)
		}
	}
}

func TestMakeDrawPassStencilIndexBreaksTies(t *testing.T) {
	l := NewDrawList()
	shape := opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5})

	l.StencilAndFillPath(geom.Identity(), shape, image.Rectangle{},
		MakeDrawOrder(1).WithStencilIndex(2), testPaint())
	l.StencilAndFillPath(geom.Identity(), shape, image.Rectangle{},
		MakeDrawOrder(1).WithStencilIndex(1), testPaint())

	pass := MakeDrawPass(l, newTestTarget(100, 100), nil)
	if got := pass.Op(0).Order.StencilIndex(); got != 1 {
		t.Errorf("op 0 stencil index = %d, want 1", got)
	}
	if got := pass.Op(1).Order.StencilIndex(); got != 2 {
		t.Errorf("op 1 stencil index = %d, want 2", got)
	}
}

func TestMakeDrawPassDeviceBounds(t *testing.T) {
	tests := []struct {
		name  string
		build func(l *DrawList)
		want  geom.Rect
	}{
		{
			"transform maps bounds",
			func(l *DrawList) {
				l.FillConvexPath(geom.Translate(10, 20),
					opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}),
					image.Rectangle{}, MakeDrawOrder(1), testPaint())
			},
			geom.Rect{MinX: 10, MinY: 20, MaxX: 15, MaxY: 25},
		},
		{
			"clamped to target",
			func(l *DrawList) {
				l.FillConvexPath(geom.Identity(),
					opaqueRect(geom.Rect{MinX: -50, MinY: -50, MaxX: 200, MaxY: 200}),
					image.Rectangle{}, MakeDrawOrder(1), testPaint())
			},
			geom.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
		},
		{
			"scissor clips",
			func(l *DrawList) {
				l.FillConvexPath(geom.Identity(),
					opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}),
					image.Rect(10, 10, 30, 30), MakeDrawOrder(1), testPaint())
			},
			geom.Rect{MinX: 10, MinY: 10, MaxX: 30, MaxY: 30},
		},
		{
			"stroke outsets by half width",
			func(l *DrawList) {
				stroke := DefaultStrokeParams()
				stroke.Width = 4
				l.StrokePath(geom.Identity(),
					opaqueRect(geom.Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}),
					stroke, image.Rectangle{}, MakeDrawOrder(1), testPaint())
			},
			geom.Rect{MinX: 8, MinY: 8, MaxX: 22, MaxY: 22},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewDrawList()
			tt.build(l)
			pass := MakeDrawPass(l, newTestTarget(100, 100), nil)
			if got := pass.Op(0).DeviceBounds; got != tt.want {
				t.Errorf("DeviceBounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMakeDrawPassScissoredOutKeepsOp(t *testing.T) {
	l := NewDrawList()
	// Scissor entirely outside the shape: the op survives with empty bounds.
	l.FillConvexPath(geom.Identity(),
		opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}),
		image.Rect(50, 50, 60, 60), MakeDrawOrder(1), testPaint())

	pass := MakeDrawPass(l, newTestTarget(100, 100), nil)
	if pass.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", pass.Len())
	}
	if !pass.Op(0).DeviceBounds.IsEmpty() {
		t.Errorf("DeviceBounds = %v, want empty", pass.Op(0).DeviceBounds)
	}
}

func TestMakeDrawPassCullsOccluded(t *testing.T) {
	l := NewDrawList()
	small := opaqueRect(geom.Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20})
	big := opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})

	// The small fill paints first, then an opaque full-coverage rect paints
	// over it. With a culler the hidden draw is dropped.
	l.FillConvexPath(geom.Identity(), small, image.Rectangle{}, MakeDrawOrder(1), testPaint())
	l.FillConvexPath(geom.Identity(), big, image.Rectangle{}, MakeDrawOrder(2), testPaint())

	pass := MakeDrawPass(l, newTestTarget(100, 100), geom.NewBruteForceCuller())
	if pass.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (occluded draw not culled)", pass.Len())
	}
	if got := pass.Op(0).Order.PaintOrder(); got != 2 {
		t.Errorf("surviving op paint order = %d, want 2", got)
	}
}

func TestMakeDrawPassNoCullerKeepsAll(t *testing.T) {
	l := NewDrawList()
	small := opaqueRect(geom.Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20})
	big := opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})
	l.FillConvexPath(geom.Identity(), small, image.Rectangle{}, MakeDrawOrder(1), testPaint())
	l.FillConvexPath(geom.Identity(), big, image.Rectangle{}, MakeDrawOrder(2), testPaint())

	pass := MakeDrawPass(l, newTestTarget(100, 100), nil)
	if pass.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (nil culler must not drop draws)", pass.Len())
	}
}

func TestMakeDrawPassTranslucentDoesNotOcclude(t *testing.T) {
	l := NewDrawList()
	small := opaqueRect(geom.Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20})
	big := opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})

	translucent := &PaintParams{
		Color: gputypes.Color{R: 1, G: 0, B: 0, A: 0.5},
		Blend: BlendSrcOver,
	}
	l.FillConvexPath(geom.Identity(), small, image.Rectangle{}, MakeDrawOrder(1), testPaint())
	l.FillConvexPath(geom.Identity(), big, image.Rectangle{}, MakeDrawOrder(2), translucent)

	pass := MakeDrawPass(l, newTestTarget(100, 100), geom.NewBruteForceCuller())
	if pass.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (translucent cover must not cull)", pass.Len())
	}
}

func TestMakeDrawPassRotatedRectDoesNotOcclude(t *testing.T) {
	l := NewDrawList()
	small := opaqueRect(geom.Rect{MinX: 40, MinY: 40, MaxX: 60, MaxY: 60})
	big := opaqueRect(geom.Rect{MinX: -100, MinY: -100, MaxX: 100, MaxY: 100})

	l.FillConvexPath(geom.Identity(), small, image.Rectangle{}, MakeDrawOrder(1), testPaint())
	// Rotated rect: its device bounds exceed its true coverage, so it must
	// not record occlusion even though it is opaque.
	l.FillConvexPath(geom.Rotate(0.3), big, image.Rectangle{}, MakeDrawOrder(2), testPaint())

	pass := MakeDrawPass(l, newTestTarget(100, 100), geom.NewBruteForceCuller())
	if pass.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (rotated cover must not cull)", pass.Len())
	}
}

func TestMakeDrawPassStrokeDoesNotOcclude(t *testing.T) {
	l := NewDrawList()
	small := opaqueRect(geom.Rect{MinX: 40, MinY: 40, MaxX: 60, MaxY: 60})
	big := opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})

	l.FillConvexPath(geom.Identity(), small, image.Rectangle{}, MakeDrawOrder(1), testPaint())
	l.StrokePath(geom.Identity(), big, DefaultStrokeParams(), image.Rectangle{}, MakeDrawOrder(2), testPaint())

	pass := MakeDrawPass(l, newTestTarget(100, 100), geom.NewBruteForceCuller())
	if pass.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (stroke outline must not cull)", pass.Len())
	}
}

func TestMakeDrawPassCullingPreservesSurvivorOrder(t *testing.T) {
	l := NewDrawList()
	hidden := opaqueRect(geom.Rect{MinX: 45, MinY: 45, MaxX: 55, MaxY: 55})
	cover := opaqueRect(geom.Rect{MinX: 40, MinY: 40, MaxX: 60, MaxY: 60})
	left := opaqueRect(geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	right := opaqueRect(geom.Rect{MinX: 90, MinY: 0, MaxX: 100, MaxY: 10})

	l.FillConvexPath(geom.Identity(), left, image.Rectangle{}, MakeDrawOrder(1), testPaint())
	l.FillConvexPath(geom.Identity(), hidden, image.Rectangle{}, MakeDrawOrder(2), testPaint())
	l.FillConvexPath(geom.Identity(), cover, image.Rectangle{}, MakeDrawOrder(3), testPaint())
	l.FillConvexPath(geom.Identity(), right, image.Rectangle{}, MakeDrawOrder(4), testPaint())

	pass := MakeDrawPass(l, newTestTarget(100, 100), geom.NewBruteForceCuller())
	if pass.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", pass.Len())
	}
	wantOrders := []PaintersOrder{1, 3, 4}
	for i, want := range wantOrders {
		if got := pass.Op(i).Order.PaintOrder(); got != want {
			t.Errorf("op %d paint order = %d, want %d", i, got, want)
		}
	}
}

func TestDrawPassTarget(t *testing.T) {
	target := newTestTarget(64, 32)
	pass := MakeDrawPass(NewDrawList(), target, nil)
	if pass.Target() != Target(target) {
		t.Error("Target() should return the construction target")
	}
	if pass.Len() != 0 {
		t.Errorf("empty list pass Len() = %d, want 0", pass.Len())
	}
	if got := pass.Ops(); len(got) != 0 {
		t.Errorf("Ops() length = %d, want 0", len(got))
	}
}
