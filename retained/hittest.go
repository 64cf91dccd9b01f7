package retained

import "iter"

// ============================================================================
// Hit Testing
// ============================================================================

// WidgetPath is the tree of widgets under a point. Every overlapping branch
// is kept, not only the topmost leaf, and each branch bubbles on its own.
type WidgetPath struct {
	Widget   Node
	Children []*WidgetPath
}

// HitTest builds the path of widgets containing pos, starting from root
// arranged with g. It reads the arrangements cached by the last
// ArrangeChildren. Children are tested last-declared first, so widgets
// painted on top come first. It returns nil when pos is outside root.
func HitTest(root Node, g Geometry, pos Vec2) *WidgetPath {
	if root.IsNil() || !g.Contains(pos) {
		return nil
	}
	return hitTest(root, pos)
}

func hitTest(n Node, pos Vec2) *WidgetPath {
	path := &WidgetPath{Widget: n}
	arranged := n.ArrangedChildren()
	for i := len(arranged) - 1; i >= 0; i-- {
		a := arranged[i]
		if a.Widget.IsNil() || !a.Geometry.Contains(pos) {
			continue
		}
		path.Children = append(path.Children, hitTest(a.Widget, pos))
	}
	return path
}

// Bubble yields the widgets of the path deepest first: each child branch is
// exhausted (its descendants, then the branch widget) before the next, and
// the path's own widget comes last. A nil path yields nothing.
func (p *WidgetPath) Bubble() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		p.bubble(yield)
	}
}

func (p *WidgetPath) bubble(yield func(Node) bool) bool {
	if p == nil {
		return true
	}
	for _, c := range p.Children {
		if !c.bubble(yield) {
			return false
		}
	}
	return yield(p.Widget)
}

// Len returns the number of widgets in the path.
func (p *WidgetPath) Len() int {
	if p == nil {
		return 0
	}
	n := 1
	for _, c := range p.Children {
		n += c.Len()
	}
	return n
}

// BubbleEvent dispatches ev to each widget of path in bubbling order until
// one handles it. It returns the handling widget, if any. Replies are not
// applied; EventContext does that.
func BubbleEvent(path *WidgetPath, ev Event) (Node, bool) {
	for n := range path.Bubble() {
		if n.dispatch(ev).IsHandled() {
			return n, true
		}
	}
	return Node{}, false
}
