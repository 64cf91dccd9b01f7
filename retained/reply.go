package retained

// FocusChange names the keyboards a focus request applies to.
type FocusChange struct {
	all       bool
	keyboards []DeviceID
}

// AllKeyboards targets every keyboard the EventContext knows about.
func AllKeyboards() FocusChange { return FocusChange{all: true} }

// KeyboardList targets the given keyboards.
func KeyboardList(ids ...DeviceID) FocusChange {
	return FocusChange{keyboards: append([]DeviceID(nil), ids...)}
}

// All reports whether the change targets every known keyboard.
func (f FocusChange) All() bool { return f.all }

// Keyboards returns the explicitly listed keyboards.
func (f FocusChange) Keyboards() []DeviceID { return f.keyboards }

// Reply is the result of Widget.OnEvent. Besides Handled, it carries
// requests the router applies after the handler returns, so handlers never
// touch routing state directly.
type Reply struct {
	handled bool

	takeFocus *FocusChange
	freeFocus *FocusChange
	capture   *DeviceID
	release   *DeviceID
}

// Handled returns a reply that stops bubbling.
func Handled() Reply { return Reply{handled: true} }

// Unhandled returns a reply that lets the event bubble on.
func Unhandled() Reply { return Reply{} }

// IsHandled reports whether the handler consumed the event.
func (r Reply) IsHandled() bool { return r.handled }

// TakeFocus requests keyboard focus for the replying widget.
func (r Reply) TakeFocus(f FocusChange) Reply {
	r.takeFocus = &f
	return r
}

// FreeFocus gives up focus on the given keyboards where the replying widget
// holds it.
func (r Reply) FreeFocus(f FocusChange) Reply {
	r.freeFocus = &f
	return r
}

// CaptureCursor requests that all further events of mouse go to the
// replying widget.
func (r Reply) CaptureCursor(mouse DeviceID) Reply {
	r.capture = &mouse
	return r
}

// ReleaseCursor ends a capture held by the replying widget.
func (r Reply) ReleaseCursor(mouse DeviceID) Reply {
	r.release = &mouse
	return r
}
