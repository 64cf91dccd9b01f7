package retained

import "github.com/agiangrant/panes/paint"

// Overlay stacks every child at the origin with the panel's full size.
// Later children paint on top and are hit-tested first.
type Overlay struct {
	PanelEmbed

	children []Node
}

// OverlayBuilder configures an Overlay before it is attached.
type OverlayBuilder struct {
	panel *Overlay
}

func NewOverlay() *OverlayBuilder {
	return &OverlayBuilder{panel: &Overlay{}}
}

// Slot appends a child above the previous ones. A nil child is ignored.
func (b *OverlayBuilder) Slot(child Node) *OverlayBuilder {
	if child.IsNil() {
		return b
	}
	b.panel.children = append(b.panel.children, child)
	return b
}

func (b *OverlayBuilder) Build() Node {
	n := NewNode(b.panel)
	attach(n, b.panel.children...)
	return n
}

func (o *Overlay) Children() []Node { return o.children }

// DesiredSize is the component-wise maximum of the children's desired sizes.
func (o *Overlay) DesiredSize() Vec2 {
	var size Vec2
	for _, c := range o.children {
		size = size.Max(c.DesiredSize())
	}
	return size
}

func (o *Overlay) RearrangeChildren(g Geometry) []WidgetArrangement {
	arranged := make([]WidgetArrangement, len(o.children))
	for i, c := range o.children {
		arranged[i] = g.ChildWidget(c, Vec2{}, g.LocalSize())
	}
	return arranged
}

func (o *Overlay) ArrangeChildren(g Geometry) { ArrangePanel(o, g) }

func (o *Overlay) Paint(g Geometry, layer int, p paint.Painter) int {
	clipToLocal(g, p)
	return PaintPanel(o, g, layer, p)
}
