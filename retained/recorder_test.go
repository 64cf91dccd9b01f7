package retained

import (
	"fmt"

	"github.com/agiangrant/panes/paint"
)

// journal collects "name:event" entries from every recorder of one tree.
type journal struct {
	entries []string
}

func (j *journal) take() []string {
	out := j.entries
	j.entries = nil
	return out
}

// placed positions a child inside a recorder, at its desired size.
type placed struct {
	node Node
	at   Vec2
}

// recorder is a test widget that logs every event it receives and returns a
// configured reply per event type. Children sit at fixed offsets.
type recorder struct {
	PanelEmbed

	name     string
	journal  *journal
	size     Vec2
	children []placed
	replies  map[EventType]Reply
	hook     func(ev Event)
}

func (j *journal) leaf(name string, size Vec2, replies map[EventType]Reply) Node {
	return NewNode(&recorder{name: name, journal: j, size: size, replies: replies})
}

func (j *journal) panel(name string, size Vec2, replies map[EventType]Reply, children ...placed) Node {
	r := &recorder{name: name, journal: j, size: size, replies: replies, children: children}
	n := NewNode(r)
	attach(n, r.Children()...)
	return n
}

func (r *recorder) DesiredSize() Vec2 { return r.size }

func (r *recorder) Children() []Node {
	out := make([]Node, len(r.children))
	for i, c := range r.children {
		out[i] = c.node
	}
	return out
}

func (r *recorder) RearrangeChildren(g Geometry) []WidgetArrangement {
	out := make([]WidgetArrangement, len(r.children))
	for i, c := range r.children {
		out[i] = g.ChildWidget(c.node, c.at, c.node.DesiredSize())
	}
	return out
}

func (r *recorder) ArrangeChildren(g Geometry) { ArrangePanel(r, g) }

func (r *recorder) Paint(g Geometry, layer int, p paint.Painter) int {
	return PaintPanel(r, g, layer, p)
}

func (r *recorder) OnEvent(ev Event) Reply {
	r.journal.entries = append(r.journal.entries, fmt.Sprintf("%s:%s", r.name, ev.Type()))
	if r.hook != nil {
		r.hook(ev)
	}
	return r.replies[ev.Type()]
}

// arranged arranges root at size and returns its root geometry.
func arranged(root Node, size Vec2) Geometry {
	g := RootGeometry(size)
	root.ArrangeChildren(g)
	return g
}

// fakeCapturer records platform capture notifications.
type fakeCapturer struct {
	calls   []string
	holders []Node
}

func (f *fakeCapturer) SetCaptureCursor(widget Node, device DeviceID, capture bool) {
	f.calls = append(f.calls, fmt.Sprintf("%d:%t", device, capture))
	f.holders = append(f.holders, widget)
}
