package retained

import (
	"maps"
	"slices"

	log "github.com/sirupsen/logrus"
)

// ============================================================================
// Event Context
// ============================================================================

// CursorCapturer is the platform side of pointer capture. The EventContext
// calls it after every successful capture or release with the widget that
// holds or held the capture.
type CursorCapturer interface {
	SetCaptureCursor(widget Node, device DeviceID, capture bool)
}

type cursorContext struct {
	over         []Node // bubble order of the last move
	captured     Node
	pendingClick map[Node]struct{}
}

type keyboardContext struct {
	focused Node
}

// EventContext routes input for every window of an application. It keeps
// per-device state shared by all trees: for pointers, the widgets under the
// cursor, the capturing widget and the press candidates for a click; for
// keyboards, the focused widget. A keyboard therefore focuses at most one
// widget across all windows.
//
// Every widget is dispatched to under an exclusive borrow that is released
// before its Reply is applied, so replies may freely touch other widgets.
// A handler that borrows a widget already being dispatched to panics with a
// *BorrowError.
type EventContext struct {
	capturer  CursorCapturer
	logger    *log.Entry
	cursors   map[DeviceID]*cursorContext
	keyboards map[DeviceID]*keyboardContext
}

// NewEventContext creates a router. capturer may be nil; logger defaults to
// the standard logger.
func NewEventContext(capturer CursorCapturer, logger *log.Entry) *EventContext {
	if logger == nil {
		logger = log.WithField("component", "events")
	}
	return &EventContext{
		capturer:  capturer,
		logger:    logger,
		cursors:   make(map[DeviceID]*cursorContext),
		keyboards: make(map[DeviceID]*keyboardContext),
	}
}

func (e *EventContext) cursor(device DeviceID) *cursorContext {
	c, ok := e.cursors[device]
	if !ok {
		c = &cursorContext{pendingClick: make(map[Node]struct{})}
		e.cursors[device] = c
	}
	return c
}

func (e *EventContext) keyboard(device DeviceID) *keyboardContext {
	k, ok := e.keyboards[device]
	if !ok {
		k = &keyboardContext{}
		e.keyboards[device] = k
	}
	return k
}

// send dispatches ev to n and applies the reply.
func (e *EventContext) send(n Node, ev Event) Reply {
	reply := n.dispatch(ev)
	e.apply(n, reply)
	return reply
}

// ============================================================================
// Cursor Events
// ============================================================================

// HandleCursorEnter registers device. Widgets learn about the cursor on the
// first move.
func (e *EventContext) HandleCursorEnter(device DeviceID) {
	e.cursor(device)
}

// HandleCursorLeave sends a leave to every widget the cursor is over and
// empties the over-set.
func (e *EventContext) HandleCursorLeave(device DeviceID) {
	c := e.cursor(device)
	over := c.over
	c.over = nil
	for _, n := range over {
		e.send(n, CursorLeaveEvent{Mouse: device})
	}
}

// HandleCursorMove routes a move to path. A captured device only reaches its
// capturer. Otherwise widgets new to the path get an enter, every widget on
// the path gets the move, and widgets no longer on it get a leave.
func (e *EventContext) HandleCursorMove(path *WidgetPath, device DeviceID, pos Vec2) {
	c := e.cursor(device)
	move := CursorMoveEvent{Mouse: device, Pos: pos}
	if !c.captured.IsNil() {
		e.send(c.captured, move)
		return
	}

	buf := acquireNodeSlice(path.Len())
	defer releaseNodeSlice(buf)
	for n := range path.Bubble() {
		*buf = append(*buf, n)
	}
	current := *buf

	previous := acquireNodeSet()
	defer releaseNodeSet(previous)
	for _, n := range c.over {
		previous[n] = struct{}{}
	}
	still := acquireNodeSet()
	defer releaseNodeSet(still)
	for _, n := range current {
		still[n] = struct{}{}
	}

	old := c.over
	c.over = slices.Clone(current)

	for _, n := range current {
		if _, ok := previous[n]; !ok {
			e.send(n, CursorEnterEvent{Mouse: device})
		}
	}
	for _, n := range current {
		e.send(n, move)
	}
	for _, n := range old {
		if _, ok := still[n]; !ok {
			e.send(n, CursorLeaveEvent{Mouse: device})
		}
	}
}

// ============================================================================
// Button Events
// ============================================================================

// HandleMouseButtonDown bubbles a press through path, or forwards it to the
// capturer. Every widget visited becomes a click candidate for the matching
// release.
func (e *EventContext) HandleMouseButtonDown(path *WidgetPath, device DeviceID, button MouseButton, pos Vec2) {
	c := e.cursor(device)
	down := MouseDownEvent{Mouse: device, Button: button, Pos: pos}
	if !c.captured.IsNil() {
		e.send(c.captured, down)
		return
	}

	clear(c.pendingClick)
	for n := range path.Bubble() {
		c.pendingClick[n] = struct{}{}
		if e.send(n, down).IsHandled() {
			break
		}
	}
}

// HandleMouseButtonUp bubbles a release through path, or forwards it to the
// capturer. While bubbling, each visited click candidate is offered a click
// until one handles it. Afterwards focus on the keyboard with the same id is
// cleared unless the confirmed click target holds it.
func (e *EventContext) HandleMouseButtonUp(path *WidgetPath, device DeviceID, button MouseButton, pos Vec2) {
	c := e.cursor(device)
	up := MouseUpEvent{Mouse: device, Button: button, Pos: pos}
	if !c.captured.IsNil() {
		e.send(c.captured, up)
		clear(c.pendingClick)
		return
	}

	var target Node
	confirmed := false
	for n := range path.Bubble() {
		handled := e.send(n, up).IsHandled()
		if _, pending := c.pendingClick[n]; pending && !confirmed {
			if e.send(n, ClickEvent{Mouse: device, Button: button, Pos: pos}).IsHandled() {
				target = n
				confirmed = true
			}
		}
		if handled {
			break
		}
	}
	clear(c.pendingClick)

	if !confirmed || target != e.keyboard(device).focused {
		e.setFocus(device, Node{})
	}
}

// ============================================================================
// Keyboard Events
// ============================================================================

// HandleKeyDown delivers a key press to the focused widget of keyboard. It
// reports whether the widget handled it.
func (e *EventContext) HandleKeyDown(keyboard DeviceID, scanCode uint32, key Key) bool {
	return e.sendFocused(keyboard, KeyDownEvent{Keyboard: keyboard, ScanCode: scanCode, Key: key})
}

// HandleKeyUp delivers a key release to the focused widget of keyboard.
func (e *EventContext) HandleKeyUp(keyboard DeviceID, scanCode uint32, key Key) bool {
	return e.sendFocused(keyboard, KeyUpEvent{Keyboard: keyboard, ScanCode: scanCode, Key: key})
}

// HandleText delivers a character to the focused widget of keyboard.
func (e *EventContext) HandleText(keyboard DeviceID, char rune) bool {
	return e.sendFocused(keyboard, TextEvent{Keyboard: keyboard, Char: char})
}

func (e *EventContext) sendFocused(keyboard DeviceID, ev Event) bool {
	focused := e.keyboard(keyboard).focused
	if focused.IsNil() {
		return false
	}
	return e.send(focused, ev).IsHandled()
}

// ============================================================================
// Reply Application
// ============================================================================

func (e *EventContext) apply(n Node, r Reply) {
	if r.takeFocus != nil {
		for _, kb := range e.targets(*r.takeFocus) {
			e.setFocus(kb, n)
		}
	}
	if r.freeFocus != nil {
		for _, kb := range e.targets(*r.freeFocus) {
			if e.keyboard(kb).focused == n {
				e.setFocus(kb, Node{})
			}
		}
	}
	if r.capture != nil {
		e.capture(n, *r.capture)
	}
	if r.release != nil {
		e.release(n, *r.release)
	}
}

// targets resolves a focus change to keyboard ids. AllKeyboards means every
// keyboard seen so far, in id order.
func (e *EventContext) targets(f FocusChange) []DeviceID {
	if f.All() {
		return slices.Sorted(maps.Keys(e.keyboards))
	}
	return f.Keyboards()
}

// setFocus moves focus on keyboard to n, which may be nil. The previous
// widget is unfocused before n is focused.
func (e *EventContext) setFocus(keyboard DeviceID, n Node) {
	k := e.keyboard(keyboard)
	old := k.focused
	if old == n {
		return
	}
	k.focused = n
	e.logger.WithFields(log.Fields{"keyboard": keyboard, "from": old, "to": n}).Debug("focus changed")
	if !old.IsNil() {
		e.send(old, UnfocusEvent{Keyboard: keyboard})
	}
	if !n.IsNil() {
		e.send(n, FocusEvent{Keyboard: keyboard})
	}
}

func (e *EventContext) capture(n Node, device DeviceID) {
	c := e.cursor(device)
	if !c.captured.IsNil() {
		e.logger.WithFields(log.Fields{"device": device, "holder": c.captured, "requester": n}).Debug("capture refused")
		return
	}
	c.captured = n
	e.logger.WithFields(log.Fields{"device": device, "widget": n}).Debug("cursor captured")
	if e.capturer != nil {
		e.capturer.SetCaptureCursor(n, device, true)
	}
}

func (e *EventContext) release(n Node, device DeviceID) {
	c := e.cursor(device)
	if c.captured != n {
		return
	}
	c.captured = Node{}
	e.logger.WithFields(log.Fields{"device": device, "widget": n}).Debug("cursor released")
	if e.capturer != nil {
		e.capturer.SetCaptureCursor(n, device, false)
	}
}

// Forget drops every reference to widgets in the tree rooted at root without
// sending events or capture notifications. Call it when a window closes.
func (e *EventContext) Forget(root Node) {
	inTree := func(n Node) bool { return !n.IsNil() && Root(n) == root }
	for _, c := range e.cursors {
		c.over = slices.DeleteFunc(c.over, inTree)
		if inTree(c.captured) {
			c.captured = Node{}
		}
		maps.DeleteFunc(c.pendingClick, func(n Node, _ struct{}) bool { return inTree(n) })
	}
	for _, k := range e.keyboards {
		if inTree(k.focused) {
			k.focused = Node{}
		}
	}
}

// ============================================================================
// Queries
// ============================================================================

// Focused returns the widget focused on keyboard.
func (e *EventContext) Focused(keyboard DeviceID) (Node, bool) {
	k, ok := e.keyboards[keyboard]
	if !ok || k.focused.IsNil() {
		return Node{}, false
	}
	return k.focused, true
}

// Captured returns the widget capturing device.
func (e *EventContext) Captured(device DeviceID) (Node, bool) {
	c, ok := e.cursors[device]
	if !ok || c.captured.IsNil() {
		return Node{}, false
	}
	return c.captured, true
}

// Hovered returns the widgets device is over, in bubbling order.
func (e *EventContext) Hovered(device DeviceID) []Node {
	c, ok := e.cursors[device]
	if !ok {
		return nil
	}
	return slices.Clone(c.over)
}

// Keyboards returns the known keyboard ids in order.
func (e *EventContext) Keyboards() []DeviceID {
	return slices.Sorted(maps.Keys(e.keyboards))
}
