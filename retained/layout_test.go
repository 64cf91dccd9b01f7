package retained

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func block(w, h float32) Node { return NewBlock(V2(w, h), color.RGBA{A: 0xff}) }

func TestDistributeLinear(t *testing.T) {
	tests := []struct {
		name      string
		available float32
		desired   []float32
		growth    []Growth
		want      []float32
	}{
		{
			name:      "only fit absorbs slack evenly",
			available: 300,
			desired:   []float32{50, 50, 50},
			growth:    []Growth{Fit(), Fit(), Fit()},
			want:      []float32{100, 100, 100},
		},
		{
			name:      "fill suppresses value",
			available: 300,
			desired:   []float32{50, 50, 50},
			growth:    []Growth{Fill(), Val(1), Val(1)},
			want:      []float32{200, 50, 50},
		},
		{
			name:      "fill splits slack",
			available: 300,
			desired:   []float32{50, 50, 100},
			growth:    []Growth{Fill(), Fill(), Fit()},
			want:      []float32{100, 100, 100},
		},
		{
			name:      "value weights",
			available: 400,
			desired:   []float32{0, 0, 0},
			growth:    []Growth{Val(1), Val(3), Fit()},
			want:      []float32{100, 300, 0},
		},
		{
			name:      "zero weights behave like fit",
			available: 200,
			desired:   []float32{50, 50},
			growth:    []Growth{Val(0), Val(0)},
			want:      []float32{100, 100},
		},
		{
			name:      "overflow keeps desired",
			available: 100,
			desired:   []float32{80, 80},
			growth:    []Growth{Fill(), Val(2)},
			want:      []float32{80, 80},
		},
		{
			name:      "exact fit",
			available: 100,
			desired:   []float32{40, 60},
			growth:    []Growth{Fit(), Fill()},
			want:      []float32{40, 60},
		},
		{
			name:      "empty",
			available: 100,
			desired:   nil,
			growth:    nil,
			want:      []float32{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distributeLinear(tt.available, tt.desired, tt.growth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("extents mismatch (-want +got):\n%s", diff)
			}

			var sum, required float32
			for i := range got {
				sum += got[i]
				required += tt.desired[i]
			}
			if len(got) > 0 && sum != max(tt.available, required) {
				t.Errorf("sum = %v, want max(%v, %v)", sum, tt.available, required)
			}
		})
	}
}

func TestLinearRowPlacement(t *testing.T) {
	a, b, c := block(50, 10), block(50, 20), block(50, 30)
	row := NewRow().Slot(a, Fit()).Slot(b, Fill()).Slot(c, Fit()).Build()

	if got, want := row.DesiredSize(), V2(150, 30); got != want {
		t.Errorf("DesiredSize() = %v, want %v", got, want)
	}

	arranged(row, V2(300, 40))
	type place struct{ Pos, Size Vec2 }
	var got []place
	for _, wa := range row.ArrangedChildren() {
		got = append(got, place{wa.Geometry.LocalPos(), wa.Geometry.LocalSize()})
	}
	want := []place{
		{V2(0, 0), V2(50, 40)},
		{V2(50, 0), V2(200, 40)},
		{V2(250, 0), V2(50, 40)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}

	if got, want := c.CachedGeometry().AbsolutePos(), V2(250, 0); got != want {
		t.Errorf("child cached AbsolutePos() = %v, want %v", got, want)
	}
}

func TestLinearColumn(t *testing.T) {
	col := NewColumn().Slot(block(10, 20), Fit()).Slot(block(30, 20), Val(1)).Build()
	if got, want := col.DesiredSize(), V2(30, 40); got != want {
		t.Errorf("DesiredSize() = %v, want %v", got, want)
	}
	arranged(col, V2(30, 100))
	got := col.ArrangedChildren()
	if pos, size := got[1].Geometry.LocalPos(), got[1].Geometry.LocalSize(); pos != V2(0, 20) || size != V2(30, 80) {
		t.Errorf("second child at %v size %v", pos, size)
	}
}

func TestBoxAlignment(t *testing.T) {
	tests := []struct {
		name     string
		h        HorizontalAlignment
		v        VerticalAlignment
		wantPos  Vec2
		wantSize Vec2
	}{
		{"center", AlignHCenter, AlignVCenter, V2(40, 40), V2(20, 20)},
		{"top-left", AlignLeft, AlignTop, V2(0, 0), V2(20, 20)},
		{"bottom-right", AlignRight, AlignBottom, V2(80, 80), V2(20, 20)},
		{"fill", AlignHFill, AlignVFill, V2(0, 0), V2(100, 100)},
		{"fill width, bottom", AlignHFill, AlignBottom, V2(0, 80), V2(100, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewBox(block(20, 20)).HAlign(tt.h).VAlign(tt.v).Build()
			arranged(box, V2(100, 100))
			g := box.ArrangedChildren()[0].Geometry
			if g.LocalPos() != tt.wantPos || g.LocalSize() != tt.wantSize {
				t.Errorf("child at %v size %v, want %v size %v", g.LocalPos(), g.LocalSize(), tt.wantPos, tt.wantSize)
			}
		})
	}
}

func TestBoxOverride(t *testing.T) {
	box := NewBox(block(20, 20)).OverrideX(50).Build()
	if got, want := box.DesiredSize(), V2(50, 20); got != want {
		t.Errorf("DesiredSize() = %v, want %v", got, want)
	}
}

func TestOverlayStacksChildren(t *testing.T) {
	overlay := NewOverlay().Slot(block(10, 40)).Slot(block(30, 20)).Build()
	if got, want := overlay.DesiredSize(), V2(30, 40); got != want {
		t.Errorf("DesiredSize() = %v, want %v", got, want)
	}
	arranged(overlay, V2(60, 60))
	for i, wa := range overlay.ArrangedChildren() {
		if wa.Geometry.LocalPos() != (Vec2{}) || wa.Geometry.LocalSize() != V2(60, 60) {
			t.Errorf("child %d at %v size %v", i, wa.Geometry.LocalPos(), wa.Geometry.LocalSize())
		}
	}
}

func TestArrangedBeforeArrangeIsZero(t *testing.T) {
	row := NewRow().Slot(block(1, 1), Fit()).Build()
	if got := row.ArrangedChildren(); len(got) != 0 {
		t.Errorf("ArrangedChildren() before arrange = %v", got)
	}
	if got := row.CachedGeometry(); got != (Geometry{}) {
		t.Errorf("CachedGeometry() before arrange = %v", got)
	}
}

func TestNodeSlicePool(t *testing.T) {
	buf := acquireNodeSlice(40)
	if len(*buf) != 0 || cap(*buf) < 40 {
		t.Fatalf("acquire(40) len %d cap %d", len(*buf), cap(*buf))
	}
	*buf = append(*buf, block(1, 1), block(2, 2))
	releaseNodeSlice(buf)

	again := acquireNodeSlice(1)
	defer releaseNodeSlice(again)
	if len(*again) != 0 {
		t.Errorf("reacquired slice has len %d", len(*again))
	}
	for _, n := range (*again)[:cap(*again)] {
		if !n.IsNil() {
			t.Fatal("pooled slice retains nodes")
		}
	}
}
