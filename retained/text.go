package retained

import (
	"image/color"
	"unicode/utf8"

	"github.com/agiangrant/panes/paint"
)

var defaultTextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// ============================================================================
// Label
// ============================================================================

// Label is a single line of static text sized to its measured extent.
type Label struct {
	LeafEmbed

	text  string
	color color.RGBA
}

// NewLabel creates a Label node.
func NewLabel(text string) Node {
	return NewNode(&Label{text: text, color: defaultTextColor})
}

func (l *Label) Text() string        { return l.text }
func (l *Label) SetText(text string) { l.text = text }

func (l *Label) DesiredSize() Vec2 {
	w, h := paint.MeasureText(l.text)
	return V2(w, h)
}

func (l *Label) Paint(g Geometry, layer int, p paint.Painter) int {
	p.DrawText(l.text, 0, paint.Ascent(), l.color)
	return layer + 1
}

// ============================================================================
// Text Edit
// ============================================================================

// textPadding is the horizontal inset of text inside a TextEdit.
const textPadding = 10

// TextEdit is an editable single line of text. Clicking it takes focus on
// the keyboard with the clicking mouse's id; typed characters are inserted
// at the caret.
type TextEdit struct {
	LeafEmbed

	text    string
	caret   int // byte offset into text
	focused bool
	color   color.RGBA
}

// NewTextEdit creates a TextEdit node holding text, caret at the end.
func NewTextEdit(text string) Node {
	return NewNode(&TextEdit{text: text, caret: len(text), color: defaultTextColor})
}

func (t *TextEdit) Text() string  { return t.text }
func (t *TextEdit) Caret() int    { return t.caret }
func (t *TextEdit) Focused() bool { return t.focused }

// DesiredSize measures the text, or a placeholder glyph when empty so the
// field never collapses.
func (t *TextEdit) DesiredSize() Vec2 {
	text := t.text
	if text == "" {
		text = "#"
	}
	w, h := paint.MeasureText(text)
	return V2(w+2*textPadding, h)
}

func (t *TextEdit) Paint(g Geometry, layer int, p paint.Painter) int {
	size := g.LocalSize()
	baseline := (size.Y-fontHeight())/2 + paint.Ascent()
	p.DrawText(t.text, textPadding, baseline, t.color)
	if t.focused {
		w, _ := paint.MeasureText(t.text[:t.caret])
		x := textPadding + w
		p.DrawLine(x, 0, x, size.Y, t.color)
	}
	return layer + 1
}

func (t *TextEdit) OnEvent(ev Event) Reply {
	switch e := ev.(type) {
	case ClickEvent:
		return Handled().TakeFocus(KeyboardList(e.Mouse))
	case FocusEvent:
		t.focused = true
		return Handled()
	case UnfocusEvent:
		t.focused = false
		return Handled()
	case TextEvent:
		if e.Char < 0x20 || e.Char == 0x7f {
			return Unhandled()
		}
		t.insert(e.Char)
		return Handled()
	case KeyDownEvent:
		return t.key(e.Key)
	}
	return Unhandled()
}

func (t *TextEdit) insert(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	t.text = t.text[:t.caret] + string(buf[:n]) + t.text[t.caret:]
	t.caret += n
}

func (t *TextEdit) key(k Key) Reply {
	switch k {
	case KeyBackspace:
		if t.caret > 0 {
			_, n := utf8.DecodeLastRuneInString(t.text[:t.caret])
			t.text = t.text[:t.caret-n] + t.text[t.caret:]
			t.caret -= n
		}
	case KeyDelete:
		if t.caret < len(t.text) {
			_, n := utf8.DecodeRuneInString(t.text[t.caret:])
			t.text = t.text[:t.caret] + t.text[t.caret+n:]
		}
	case KeyLeft:
		if t.caret > 0 {
			_, n := utf8.DecodeLastRuneInString(t.text[:t.caret])
			t.caret -= n
		}
	case KeyRight:
		if t.caret < len(t.text) {
			_, n := utf8.DecodeRuneInString(t.text[t.caret:])
			t.caret += n
		}
	case KeyHome:
		t.caret = 0
	case KeyEnd:
		t.caret = len(t.text)
	default:
		return Unhandled()
	}
	return Handled()
}

func fontHeight() float32 {
	_, h := paint.MeasureText("")
	return h
}
