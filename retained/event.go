package retained

import "fmt"

// ============================================================================
// Event Types
// ============================================================================

// DeviceID identifies a pointer or keyboard device. Pointer and keyboard ids
// share one numbering, so a widget clicked by mouse 0 can take focus on
// keyboard 0.
type DeviceID int

// EventType identifies the kind of event.
type EventType uint8

const (
	// Cursor events
	EventCursorEnter EventType = iota + 1
	EventCursorMove
	EventCursorLeave

	// Button events
	EventMouseDown
	EventMouseUp
	EventClick

	// Keyboard events
	EventKeyDown
	EventKeyUp
	EventText

	// Focus events
	EventFocus
	EventUnfocus
)

var eventTypeNames = map[EventType]string{
	EventCursorEnter: "cursor_enter",
	EventCursorMove:  "cursor_move",
	EventCursorLeave: "cursor_leave",
	EventMouseDown:   "mouse_down",
	EventMouseUp:     "mouse_up",
	EventClick:       "click",
	EventKeyDown:     "key_down",
	EventKeyUp:       "key_up",
	EventText:        "text",
	EventFocus:       "focus",
	EventUnfocus:     "unfocus",
}

func (t EventType) String() string {
	if s, ok := eventTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("event(%d)", uint8(t))
}

// MouseButton identifies a mouse button. Buttons other than left, right and
// middle carry their platform code, see MouseButtonOther.
type MouseButton uint32

const (
	MouseButtonLeft MouseButton = iota + 1
	MouseButtonRight
	MouseButtonMiddle

	mouseButtonOtherBase MouseButton = 1 << 16
)

// MouseButtonOther returns the button for a platform-specific code.
func MouseButtonOther(code uint16) MouseButton {
	return mouseButtonOtherBase + MouseButton(code)
}

// OtherCode returns the platform code of an Other button.
func (b MouseButton) OtherCode() (uint16, bool) {
	if b < mouseButtonOtherBase {
		return 0, false
	}
	return uint16(b - mouseButtonOtherBase), true
}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	if code, ok := b.OtherCode(); ok {
		return fmt.Sprintf("other(%d)", code)
	}
	return fmt.Sprintf("button(%d)", uint32(b))
}

// Key is a symbolic key. KeyNone means the platform reported only a
// physical scan code.
type Key uint16

const (
	KeyNone Key = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeySpace:     "space",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// ============================================================================
// Widget Events
// ============================================================================

// Event is delivered to Widget.OnEvent. The concrete types below are the
// complete set; switch on the type to read fields.
type Event interface {
	Type() EventType
}

// CursorEnterEvent is sent when a cursor starts hovering the widget.
type CursorEnterEvent struct {
	Mouse DeviceID
}

// CursorMoveEvent is sent to every hovered widget, or only to the capturing
// widget while the cursor is captured. Pos is in window coordinates.
type CursorMoveEvent struct {
	Mouse DeviceID
	Pos   Vec2
}

// CursorLeaveEvent is sent when a cursor stops hovering the widget.
type CursorLeaveEvent struct {
	Mouse DeviceID
}

// MouseDownEvent is sent when a button is pressed.
type MouseDownEvent struct {
	Mouse  DeviceID
	Button MouseButton
	Pos    Vec2
}

// MouseUpEvent is sent when a button is released.
type MouseUpEvent struct {
	Mouse  DeviceID
	Button MouseButton
	Pos    Vec2
}

// ClickEvent is sent when a press and release land on the same widget.
type ClickEvent struct {
	Mouse  DeviceID
	Button MouseButton
	Pos    Vec2
}

// KeyDownEvent is sent to the focused widget.
type KeyDownEvent struct {
	Keyboard DeviceID
	ScanCode uint32
	Key      Key
}

// KeyUpEvent is sent to the focused widget.
type KeyUpEvent struct {
	Keyboard DeviceID
	ScanCode uint32
	Key      Key
}

// TextEvent carries one input character for the focused widget.
type TextEvent struct {
	Keyboard DeviceID
	Char     rune
}

// FocusEvent is sent when the widget gains focus on a keyboard.
type FocusEvent struct {
	Keyboard DeviceID
}

// UnfocusEvent is sent when the widget loses focus on a keyboard.
type UnfocusEvent struct {
	Keyboard DeviceID
}

func (CursorEnterEvent) Type() EventType { return EventCursorEnter }
func (CursorMoveEvent) Type() EventType  { return EventCursorMove }
func (CursorLeaveEvent) Type() EventType { return EventCursorLeave }
func (MouseDownEvent) Type() EventType   { return EventMouseDown }
func (MouseUpEvent) Type() EventType     { return EventMouseUp }
func (ClickEvent) Type() EventType       { return EventClick }
func (KeyDownEvent) Type() EventType     { return EventKeyDown }
func (KeyUpEvent) Type() EventType       { return EventKeyUp }
func (TextEvent) Type() EventType        { return EventText }
func (FocusEvent) Type() EventType       { return EventFocus }
func (UnfocusEvent) Type() EventType     { return EventUnfocus }
