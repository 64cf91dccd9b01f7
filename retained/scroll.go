package retained

import "github.com/agiangrant/panes/paint"

// ============================================================================
// Scroll Panel
// ============================================================================

// Scroll shows one content child through a viewport. Space for a vertical
// bar (right edge) and a horizontal bar (bottom edge) is reserved when the
// bar is configured. An axis scrolls only when the content overflows the
// viewport on it and that axis has a bar.
type Scroll struct {
	PanelEmbed

	content Node
	vbar    Node
	hbar    Node
}

// ScrollBuilder configures a Scroll panel.
type ScrollBuilder struct {
	panel *Scroll
}

// NewScroll starts a Scroll panel around content with no bars. content may be
// nil, which scrolls nothing.
func NewScroll(content Node) *ScrollBuilder {
	return &ScrollBuilder{panel: &Scroll{content: content}}
}

// VerticalBar sets the bar controlling the y offset. bar must hold a
// *ScrollBar.
func (b *ScrollBuilder) VerticalBar(bar Node) *ScrollBuilder {
	b.panel.vbar = bar
	return b
}

// HorizontalBar sets the bar controlling the x offset. bar must hold a
// *ScrollBar.
func (b *ScrollBuilder) HorizontalBar(bar Node) *ScrollBuilder {
	b.panel.hbar = bar
	return b
}

// DefaultBars adds default-styled bars for the requested axes.
func (b *ScrollBuilder) DefaultBars(horizontal, vertical bool) *ScrollBuilder {
	if horizontal {
		b.HorizontalBar(NewScrollBar().Axis(Horizontal).Build())
	}
	if vertical {
		b.VerticalBar(NewScrollBar().Axis(Vertical).Build())
	}
	return b
}

func (b *ScrollBuilder) Build() Node {
	n := NewNode(b.panel)
	attach(n, b.panel.Children()...)
	return n
}

// Content returns the scrolled child.
func (s *Scroll) Content() Node { return s.content }

// VerticalBar returns the vertical bar node, which may be nil.
func (s *Scroll) VerticalBar() Node { return s.vbar }

// HorizontalBar returns the horizontal bar node, which may be nil.
func (s *Scroll) HorizontalBar() Node { return s.hbar }

func (s *Scroll) Children() []Node {
	var children []Node
	if !s.content.IsNil() {
		children = append(children, s.content)
	}
	if !s.vbar.IsNil() {
		children = append(children, s.vbar)
	}
	if !s.hbar.IsNil() {
		children = append(children, s.hbar)
	}
	return children
}

// DesiredSize is the content's desired size plus the space reserved for bars.
func (s *Scroll) DesiredSize() Vec2 {
	return s.contentSize().Add(s.reserved())
}

func (s *Scroll) contentSize() Vec2 {
	if s.content.IsNil() {
		return Vec2{}
	}
	return s.content.DesiredSize()
}

// reserved is the space taken by the configured bars.
func (s *Scroll) reserved() Vec2 {
	var r Vec2
	if !s.vbar.IsNil() {
		r.X = s.vbar.DesiredSize().X
	}
	if !s.hbar.IsNil() {
		r.Y = s.hbar.DesiredSize().Y
	}
	return r
}

// Viewport returns the area available to content inside a panel of size.
func (s *Scroll) Viewport(size Vec2) Vec2 {
	return size.Sub(s.reserved()).Max(Vec2{})
}

// Overflow returns how far the content exceeds the viewport on each axis.
func (s *Scroll) Overflow(size Vec2) Vec2 {
	return s.contentSize().Sub(s.Viewport(size)).Max(Vec2{})
}

func (s *Scroll) RearrangeChildren(g Geometry) []WidgetArrangement {
	size := g.LocalSize()
	viewport := s.Viewport(size)
	overflow := s.contentSize().Sub(viewport).Max(Vec2{})

	var offset Vec2
	if v, ok := s.prepareBar(s.hbar, overflow.X, viewport.X); ok {
		offset.X = -overflow.X * float32(v)
	}
	if v, ok := s.prepareBar(s.vbar, overflow.Y, viewport.Y); ok {
		offset.Y = -overflow.Y * float32(v)
	}

	var arranged []WidgetArrangement
	if !s.content.IsNil() {
		arranged = append(arranged, g.ChildWidget(s.content, offset, s.contentSize().Max(viewport)))
	}

	if !s.vbar.IsNil() {
		arranged = append(arranged, g.ChildWidget(s.vbar, V2(viewport.X, 0), V2(size.X-viewport.X, viewport.Y)))
	}
	if !s.hbar.IsNil() {
		arranged = append(arranged, g.ChildWidget(s.hbar, V2(0, viewport.Y), V2(viewport.X, size.Y-viewport.Y)))
	}
	return arranged
}

// prepareBar updates bar's range to the hidden extent and its handle to the
// visible extent, and returns its value. ok is false when the axis is not
// active.
func (s *Scroll) prepareBar(bar Node, overflow, visible float32) (value float64, ok bool) {
	if bar.IsNil() {
		return 0, false
	}
	Mutate(bar, func(b *ScrollBar) {
		b.SetRange(0, float64(overflow))
		b.SetHandleSize(HandleAbsolute(float64(visible)))
		value = b.Value()
	})
	return value, overflow > 0
}

func (s *Scroll) ArrangeChildren(g Geometry) { ArrangePanel(s, g) }

// Paint draws the content clipped to the viewport, then the bars on top
// without the viewport clip.
func (s *Scroll) Paint(g Geometry, layer int, p paint.Painter) int {
	arranged := s.ArrangedChildren()
	if len(arranged) == 0 {
		return layer
	}
	viewport := s.Viewport(g.LocalSize())

	content := 0
	if !s.content.IsNil() {
		content = 1
	}
	p.Save()
	p.ClipRect(paint.RectXYWH(0, 0, viewport.X, viewport.Y))
	layer = paintArranged(arranged[:content], layer, p)
	p.Restore()

	return paintArranged(arranged[content:], layer, p)
}
