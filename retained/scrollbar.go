package retained

import (
	"image/color"

	"github.com/agiangrant/panes/paint"
)

// HandleSize is the length of a scroll bar handle in value units.
type HandleSize struct {
	absolute bool
	amount   float64
}

// HandleAbsolute is a handle of a fixed length in range units.
func HandleAbsolute(size float64) HandleSize { return HandleSize{absolute: true, amount: size} }

// HandleFraction is a handle whose length is a fraction of the range.
func HandleFraction(f float64) HandleSize { return HandleSize{amount: f} }

func (h HandleSize) size(length float64) float64 {
	if h.absolute {
		return h.amount
	}
	return h.amount * length
}

type dragStart struct {
	value float64
	pos   Vec2
}

// ScrollBar is a draggable bar whose value runs from 0 to 1. Its range is
// the amount of content the bar scrolls over; a Scroll panel sets it to the
// hidden extent on every arrangement.
type ScrollBar struct {
	LeafEmbed

	axis       Axis
	lo, hi     float64
	value      float64
	handleSize HandleSize
	handle     color.RGBA
	tray       color.RGBA
	drag       *dragStart
}

// ScrollBarBuilder configures a ScrollBar.
type ScrollBarBuilder struct {
	bar *ScrollBar
}

// NewScrollBar starts a vertical bar with range [0, 100].
func NewScrollBar() *ScrollBarBuilder {
	return &ScrollBarBuilder{bar: &ScrollBar{
		axis:       Vertical,
		hi:         100,
		handleSize: HandleFraction(0.1),
		handle:     color.RGBA{R: 0x60, G: 0x80, B: 0xd0, A: 0xff},
		tray:       color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	}}
}

func (b *ScrollBarBuilder) Axis(a Axis) *ScrollBarBuilder {
	b.bar.axis = a
	return b
}

func (b *ScrollBarBuilder) HandleSize(h HandleSize) *ScrollBarBuilder {
	b.bar.handleSize = h
	return b
}

func (b *ScrollBarBuilder) Colors(handle, tray color.RGBA) *ScrollBarBuilder {
	b.bar.handle = handle
	b.bar.tray = tray
	return b
}

func (b *ScrollBarBuilder) Build() Node { return NewNode(b.bar) }

func (s *ScrollBar) Axis() Axis { return s.axis }

// Value returns the scroll position in [0, 1].
func (s *ScrollBar) Value() float64 { return s.value }

// SetValue sets the scroll position, clamped to [0, 1].
func (s *ScrollBar) SetValue(v float64) { s.value = min(max(v, 0), 1) }

// Range returns the scrolled-over extent.
func (s *ScrollBar) Range() (lo, hi float64) { return s.lo, s.hi }

func (s *ScrollBar) SetRange(lo, hi float64) {
	s.lo, s.hi = lo, hi
}

func (s *ScrollBar) SetHandleSize(h HandleSize) { s.handleSize = h }

func (s *ScrollBar) Dragging() bool { return s.drag != nil }

func (s *ScrollBar) DesiredSize() Vec2 { return V2(10, 10) }

// handleSpan returns the handle start and end along the bar's axis, in local
// pixels, for a bar of the given axis length.
func (s *ScrollBar) handleSpan(axisLen float64) (start, end float64) {
	length := s.hi - s.lo
	handle := s.handleSize.size(length)
	if length+handle <= 0 {
		return 0, axisLen
	}
	ppv := axisLen / (length + handle)
	return length * s.value * ppv, (length*s.value + handle) * ppv
}

func (s *ScrollBar) Paint(g Geometry, layer int, p paint.Painter) int {
	size := g.LocalSize()
	p.FillRect(paint.RectXYWH(0, 0, size.X, size.Y), s.tray)

	start, end := s.handleSpan(float64(s.axis.Main(size)))
	origin := s.axis.Vec(float32(start), 0)
	extent := s.axis.Vec(float32(end-start), s.axis.Cross(size))
	p.FillRect(paint.RectXYWH(origin.X, origin.Y, extent.X, extent.Y), s.handle)
	return layer + 1
}

func (s *ScrollBar) OnEvent(ev Event) Reply {
	switch e := ev.(type) {
	case MouseDownEvent:
		s.drag = &dragStart{value: s.value, pos: e.Pos}
		return Handled().CaptureCursor(e.Mouse)
	case CursorMoveEvent:
		if s.drag == nil {
			return Unhandled()
		}
		s.dragTo(e.Pos)
		return Handled()
	case MouseUpEvent:
		s.drag = nil
		return Handled().ReleaseCursor(e.Mouse)
	}
	return Unhandled()
}

func (s *ScrollBar) dragTo(pos Vec2) {
	axisLen := float64(s.axis.Main(s.CachedGeometry().LocalSize()))
	length := s.hi - s.lo
	if axisLen <= 0 || length <= 0 {
		return
	}
	valuePerLocal := (length + s.handleSize.size(length)) / axisLen
	diff := float64(s.axis.Main(pos.Sub(s.drag.pos)))
	s.SetValue(s.drag.value + diff*valuePerLocal/length)
}
