// Package retained provides a retained-mode widget tree: shared node
// handles, geometry, container layouts and input event routing.
//
// A frame runs in three steps, all on the goroutine that owns the platform
// event loop:
//   - ArrangeChildren walks the tree top-down and caches, per container,
//     where each child goes (WidgetArrangement).
//   - Paint walks the cached arrangements and draws into a paint.Painter.
//   - Input is routed by EventContext, which hit-tests the same cached
//     arrangements and delivers events to Widget.OnEvent.
//
// Reading arrangements or painting before the first ArrangeChildren yields
// zero geometry; the caller is responsible for ordering.
package retained

import "github.com/agiangrant/panes/paint"

// Widget is the capability every node in the tree implements.
//
// Concrete widgets embed LeafEmbed or PanelEmbed and override what they need.
type Widget interface {
	// DesiredSize is a pure function of the widget's current state.
	DesiredSize() Vec2

	// Children returns the declared children in order.
	Children() []Node

	// ArrangeChildren places the children inside g, caches the result and
	// recursively arranges each child.
	ArrangeChildren(g Geometry)

	// ArrangedChildren returns the cache written by the last ArrangeChildren.
	ArrangedChildren() []WidgetArrangement

	// Paint draws the widget and its arranged children. layer is the first
	// free layer id; the return value is the next free one.
	Paint(g Geometry, layer int, p paint.Painter) int

	// OnEvent handles one routed event.
	OnEvent(ev Event) Reply

	// CachedGeometry is the geometry passed to the last ArrangeChildren.
	CachedGeometry() Geometry

	Parent() (Node, bool)
	SetParent(parent Node)
}

// ============================================================================
// Embedded State
// ============================================================================

// WidgetState holds the fields every widget carries.
type WidgetState struct {
	parent   WeakNode
	geometry Geometry
}

// Parent returns the container this widget was attached to.
func (s *WidgetState) Parent() (Node, bool) { return s.parent.Upgrade() }

// SetParent records the attaching container. The reference does not keep the
// parent alive.
func (s *WidgetState) SetParent(parent Node) { s.parent = parent.Downgrade() }

// CachedGeometry returns the geometry of the last arrangement pass.
func (s *WidgetState) CachedGeometry() Geometry { return s.geometry }

// LeafEmbed provides defaults for widgets without children: zero desired
// size, no children, an ArrangeChildren that only caches its geometry,
// nothing painted and every event unhandled.
type LeafEmbed struct {
	WidgetState
}

func (e *LeafEmbed) DesiredSize() Vec2                     { return Vec2{} }
func (e *LeafEmbed) Children() []Node                      { return nil }
func (e *LeafEmbed) ArrangeChildren(g Geometry)            { e.geometry = g }
func (e *LeafEmbed) ArrangedChildren() []WidgetArrangement { return nil }
func (e *LeafEmbed) OnEvent(Event) Reply                   { return Unhandled() }

func (e *LeafEmbed) Paint(_ Geometry, layer int, _ paint.Painter) int {
	return layer
}

// ============================================================================
// Node Helpers
// ============================================================================

// DesiredSize borrows n shared and returns its desired size.
func (n Node) DesiredSize() Vec2 {
	r := n.Get()
	defer r.Release()
	return r.Widget().DesiredSize()
}

// ArrangeChildren borrows n exclusively and arranges it inside g.
func (n Node) ArrangeChildren(g Geometry) {
	r := n.GetMut()
	defer r.Release()
	r.Widget().ArrangeChildren(g)
}

// ArrangedChildren borrows n shared and returns a copy of its cached
// arrangement.
func (n Node) ArrangedChildren() []WidgetArrangement {
	r := n.Get()
	defer r.Release()
	return append([]WidgetArrangement(nil), r.Widget().ArrangedChildren()...)
}

// Paint borrows n shared and paints it.
func (n Node) Paint(g Geometry, layer int, p paint.Painter) int {
	r := n.Get()
	defer r.Release()
	return r.Widget().Paint(g, layer, p)
}

// CachedGeometry borrows n shared and returns its last arranged geometry.
func (n Node) CachedGeometry() Geometry {
	r := n.Get()
	defer r.Release()
	return r.Widget().CachedGeometry()
}

// Parent borrows n shared and returns its parent.
func (n Node) Parent() (Node, bool) {
	r := n.Get()
	defer r.Release()
	return r.Widget().Parent()
}

// Root follows parent links from n to the top of its tree.
func Root(n Node) Node {
	for {
		parent, ok := n.Parent()
		if !ok {
			return n
		}
		n = parent
	}
}

// Children borrows n shared and returns its declared children.
func (n Node) Children() []Node {
	r := n.Get()
	defer r.Release()
	return append([]Node(nil), r.Widget().Children()...)
}

// dispatch borrows n exclusively for the duration of one handler call.
func (n Node) dispatch(ev Event) Reply {
	r := n.GetMut()
	defer r.Release()
	return r.Widget().OnEvent(ev)
}

// attach sets parent as the parent of every child. Containers call this
// from Build once their own node exists.
func attach(parent Node, children ...Node) {
	for _, c := range children {
		if c.IsNil() {
			continue
		}
		c.WithMut(func(w Widget) { w.SetParent(parent) })
	}
}
