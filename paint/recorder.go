package paint

import (
	"fmt"
	"image/color"
)

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpFillRect OpKind = iota + 1
	OpLine
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill_rect"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("op(%d)", uint8(k))
	}
}

// Op is one drawing operation with translation already applied.
// Rect holds the absolute bounds for fills, the endpoints (X,Y)-(Right,Bottom)
// for lines and the baseline origin for text. Clip is the absolute clip that
// was active when the operation was issued.
type Op struct {
	Kind  OpKind
	Rect  Rect
	Clip  Rect
	Color color.RGBA
	Text  string
	Depth int
}

// Recorder is a Painter that stores operations instead of rasterizing them.
type Recorder struct {
	stack
	width, height float32
	ops           []Op
}

// NewRecorder creates a recorder with the given canvas size.
func NewRecorder(width, height float32) *Recorder {
	return &Recorder{stack: newStack(width, height), width: width, height: height}
}

func (r *Recorder) Save()                    { r.save() }
func (r *Recorder) Restore()                 { r.restore() }
func (r *Recorder) Translate(dx, dy float32) { r.translate(dx, dy) }
func (r *Recorder) ClipRect(rect Rect)       { r.clipRect(rect) }

func (r *Recorder) Size() (float32, float32) { return r.width, r.height }

func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.record(OpFillRect, r.resolve(rect), c, "")
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 float32, c color.Color) {
	from := r.resolve(Rect{X: x0, Y: y0})
	to := r.resolve(Rect{X: x1, Y: y1})
	r.record(OpLine, Rect{X: from.X, Y: from.Y, Width: to.X - from.X, Height: to.Y - from.Y}, c, "")
}

func (r *Recorder) DrawText(text string, x, y float32, c color.Color) {
	r.record(OpText, r.resolve(Rect{X: x, Y: y}), c, text)
}

func (r *Recorder) record(kind OpKind, rect Rect, c color.Color, text string) {
	r.ops = append(r.ops, Op{
		Kind:  kind,
		Rect:  rect,
		Clip:  r.cur.clip,
		Color: toRGBA(c),
		Text:  text,
		Depth: r.depth(),
	})
}

// Ops returns the recorded operations in issue order.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset drops all recorded operations and the save stack.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.stack = newStack(r.width, r.height)
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
