package retained

import "github.com/agiangrant/panes/paint"

// Box holds a single child and aligns it on each axis independently.
type Box struct {
	PanelEmbed

	child     Node
	hAlign    HorizontalAlignment
	vAlign    VerticalAlignment
	overrideX *float32
	overrideY *float32
}

// BoxBuilder configures a Box before it is attached.
type BoxBuilder struct {
	box *Box
}

// NewBox starts a Box around child, aligned top-left by default. child may be
// nil, which leaves the box empty.
func NewBox(child Node) *BoxBuilder {
	return &BoxBuilder{box: &Box{child: child, hAlign: AlignLeft, vAlign: AlignTop}}
}

func (b *BoxBuilder) HAlign(a HorizontalAlignment) *BoxBuilder {
	b.box.hAlign = a
	return b
}

func (b *BoxBuilder) VAlign(a VerticalAlignment) *BoxBuilder {
	b.box.vAlign = a
	return b
}

// OverrideX replaces the child's desired width.
func (b *BoxBuilder) OverrideX(x float32) *BoxBuilder {
	b.box.overrideX = &x
	return b
}

// OverrideY replaces the child's desired height.
func (b *BoxBuilder) OverrideY(y float32) *BoxBuilder {
	b.box.overrideY = &y
	return b
}

// OverrideSize replaces both desired extents.
func (b *BoxBuilder) OverrideSize(size Vec2) *BoxBuilder {
	return b.OverrideX(size.X).OverrideY(size.Y)
}

// Build creates the node and attaches the child.
func (b *BoxBuilder) Build() Node {
	n := NewNode(b.box)
	attach(n, b.box.child)
	return n
}

func (b *Box) Children() []Node {
	if b.child.IsNil() {
		return nil
	}
	return []Node{b.child}
}

// DesiredSize is the child's desired size with overrides substituted.
func (b *Box) DesiredSize() Vec2 {
	var size Vec2
	if !b.child.IsNil() {
		size = b.child.DesiredSize()
	}
	if b.overrideX != nil {
		size.X = *b.overrideX
	}
	if b.overrideY != nil {
		size.Y = *b.overrideY
	}
	return size
}

func (b *Box) RearrangeChildren(g Geometry) []WidgetArrangement {
	if b.child.IsNil() {
		return nil
	}
	avail := g.LocalSize()
	size := b.DesiredSize()
	var pos Vec2

	switch b.hAlign {
	case AlignHCenter:
		pos.X = (avail.X - size.X) / 2
	case AlignRight:
		pos.X = avail.X - size.X
	case AlignHFill:
		size.X = avail.X
	}

	switch b.vAlign {
	case AlignVCenter:
		pos.Y = (avail.Y - size.Y) / 2
	case AlignBottom:
		pos.Y = avail.Y - size.Y
	case AlignVFill:
		size.Y = avail.Y
	}

	return []WidgetArrangement{g.ChildWidget(b.child, pos, size)}
}

func (b *Box) ArrangeChildren(g Geometry) { ArrangePanel(b, g) }

func (b *Box) Paint(g Geometry, layer int, p paint.Painter) int {
	return PaintPanel(b, g, layer, p)
}
