package retained

import "github.com/agiangrant/panes/paint"

// ============================================================================
// Panel Orchestration
// ============================================================================

// Panel is a container that only supplies child placement. ArrangePanel and
// PaintPanel give every panel the same caching and painting behavior.
type Panel interface {
	Widget

	// RearrangeChildren computes child placement inside g. It must not cache
	// anything or arrange the children itself.
	RearrangeChildren(g Geometry) []WidgetArrangement

	panelState() *PanelEmbed
}

// PanelEmbed holds the cached arrangement shared by all panels. Embedders
// implement RearrangeChildren, DesiredSize and Children, and forward
// ArrangeChildren and Paint to ArrangePanel and PaintPanel.
type PanelEmbed struct {
	WidgetState
	arranged []WidgetArrangement
}

func (e *PanelEmbed) panelState() *PanelEmbed { return e }

// ArrangedChildren returns the cache written by the last ArrangePanel call.
func (e *PanelEmbed) ArrangedChildren() []WidgetArrangement { return e.arranged }

// OnEvent leaves every event unhandled so it bubbles to the parent.
func (e *PanelEmbed) OnEvent(Event) Reply { return Unhandled() }

// ArrangePanel runs p's placement rule, arranges every placed child with the
// geometry it was given, then caches both the placement and g.
func ArrangePanel(p Panel, g Geometry) {
	arranged := p.RearrangeChildren(g)
	for _, a := range arranged {
		a.Widget.ArrangeChildren(a.Geometry)
	}
	s := p.panelState()
	s.arranged = arranged
	s.geometry = g
}

// PaintPanel paints p's cached children in order, each translated to its
// local position inside a save/restore pair.
func PaintPanel(p Panel, _ Geometry, layer int, painter paint.Painter) int {
	return paintArranged(p.panelState().arranged, layer, painter)
}

func paintArranged(arranged []WidgetArrangement, layer int, painter paint.Painter) int {
	for _, a := range arranged {
		pos := a.Geometry.LocalPos()
		painter.Save()
		painter.Translate(pos.X, pos.Y)
		next := a.Widget.Paint(a.Geometry, layer, painter)
		painter.Restore()
		// Every child consumes at least one layer, even if it drew nothing.
		layer = max(next, layer+1)
	}
	return layer
}

// clipToLocal clips painter to the area of g in its own frame.
func clipToLocal(g Geometry, painter paint.Painter) {
	size := g.LocalSize()
	painter.ClipRect(paint.RectXYWH(0, 0, size.X, size.Y))
}
