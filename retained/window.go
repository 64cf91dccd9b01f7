package retained

import (
	"image/color"

	"github.com/agiangrant/panes/paint"
)

// WindowID is the opaque id a platform assigns to a top-level window.
type WindowID uint64

// Window is the root widget of a top-level window.
type Window interface {
	Widget

	// Draw clears the canvas, arranges the tree at the canvas size and
	// paints it.
	Draw(p paint.Painter)

	// ID returns the platform id, ok=false before the platform set one.
	ID() (WindowID, bool)
	SetID(id WindowID)
}

// WindowWidget is the default Window: a background color and one content
// child filling the whole canvas.
type WindowWidget struct {
	PanelEmbed

	title      string
	background color.RGBA
	content    Node
	id         WindowID
	hasID      bool
}

// WindowBuilder configures a WindowWidget.
type WindowBuilder struct {
	window *WindowWidget
}

// NewWindow starts a window around content, which may be nil.
func NewWindow(content Node) *WindowBuilder {
	return &WindowBuilder{window: &WindowWidget{
		background: color.RGBA{A: 0xff},
		content:    content,
	}}
}

func (b *WindowBuilder) Title(title string) *WindowBuilder {
	b.window.title = title
	return b
}

func (b *WindowBuilder) Background(c color.RGBA) *WindowBuilder {
	b.window.background = c
	return b
}

func (b *WindowBuilder) Build() Node {
	n := NewNode(b.window)
	attach(n, b.window.content)
	return n
}

func (w *WindowWidget) Title() string          { return w.title }
func (w *WindowWidget) Background() color.RGBA { return w.background }
func (w *WindowWidget) Content() Node          { return w.content }

func (w *WindowWidget) ID() (WindowID, bool) { return w.id, w.hasID }

func (w *WindowWidget) SetID(id WindowID) {
	w.id = id
	w.hasID = true
}

func (w *WindowWidget) Children() []Node {
	if w.content.IsNil() {
		return nil
	}
	return []Node{w.content}
}

func (w *WindowWidget) DesiredSize() Vec2 {
	if w.content.IsNil() {
		return Vec2{}
	}
	return w.content.DesiredSize()
}

func (w *WindowWidget) RearrangeChildren(g Geometry) []WidgetArrangement {
	if w.content.IsNil() {
		return nil
	}
	return []WidgetArrangement{g.ChildWidget(w.content, Vec2{}, g.LocalSize())}
}

func (w *WindowWidget) ArrangeChildren(g Geometry) { ArrangePanel(w, g) }

func (w *WindowWidget) Paint(g Geometry, layer int, p paint.Painter) int {
	return PaintPanel(w, g, layer, p)
}

func (w *WindowWidget) Draw(p paint.Painter) {
	width, height := p.Size()
	p.FillRect(paint.RectXYWH(0, 0, width, height), w.background)
	g := RootGeometry(V2(width, height))
	w.ArrangeChildren(g)
	w.Paint(g, 0, p)
}

// DrawWindow borrows n exclusively and draws it. It reports false when n is
// not a Window.
func DrawWindow(n Node, p paint.Painter) bool {
	return Mutate(n, func(w Window) { w.Draw(p) })
}

// WindowIDOf returns the platform id of the window held by n.
func WindowIDOf(n Node) (id WindowID, ok bool) {
	Read(n, func(w Window) { id, ok = w.ID() })
	return id, ok
}

// SetWindowID records the platform id on the window held by n.
func SetWindowID(n Node, id WindowID) bool {
	return Mutate(n, func(w Window) { w.SetID(id) })
}
