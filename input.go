package panes

import (
	"fmt"

	"github.com/agiangrant/panes/retained"
)

// Input is one platform input event for a window.
type Input interface {
	fmt.Stringer
	isInput()
}

// CursorMoved reports a pointer position in window coordinates.
type CursorMoved struct {
	Device retained.DeviceID
	Pos    retained.Vec2
}

// MouseInput reports a button transition.
type MouseInput struct {
	Device  retained.DeviceID
	Button  retained.MouseButton
	Pressed bool
	Pos     retained.Vec2
}

// CursorEntered reports that a pointer entered the window.
type CursorEntered struct {
	Device retained.DeviceID
}

// CursorLeft reports that a pointer left the window.
type CursorLeft struct {
	Device retained.DeviceID
}

// KeyInput reports a key transition. Key is KeyNone when the platform has
// no symbolic key for ScanCode.
type KeyInput struct {
	Keyboard retained.DeviceID
	ScanCode uint32
	Key      retained.Key
	Pressed  bool
}

// CharInput reports one typed character.
type CharInput struct {
	Keyboard retained.DeviceID
	Char     rune
}

// Resized reports the new window size.
type Resized struct {
	Size retained.Vec2
}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

func (CursorMoved) isInput()    {}
func (MouseInput) isInput()     {}
func (CursorEntered) isInput()  {}
func (CursorLeft) isInput()     {}
func (KeyInput) isInput()       {}
func (CharInput) isInput()      {}
func (Resized) isInput()        {}
func (CloseRequested) isInput() {}

func (i CursorMoved) String() string { return fmt.Sprintf("cursor_moved(%d, %v)", i.Device, i.Pos) }

func (i MouseInput) String() string {
	state := "released"
	if i.Pressed {
		state = "pressed"
	}
	return fmt.Sprintf("mouse(%d, %v %s, %v)", i.Device, i.Button, state, i.Pos)
}

func (i CursorEntered) String() string { return fmt.Sprintf("cursor_entered(%d)", i.Device) }
func (i CursorLeft) String() string    { return fmt.Sprintf("cursor_left(%d)", i.Device) }

func (i KeyInput) String() string {
	state := "released"
	if i.Pressed {
		state = "pressed"
	}
	return fmt.Sprintf("key(%d, %d/%v %s)", i.Keyboard, i.ScanCode, i.Key, state)
}

func (i CharInput) String() string    { return fmt.Sprintf("char(%d, %q)", i.Keyboard, i.Char) }
func (i Resized) String() string      { return fmt.Sprintf("resized%v", i.Size) }
func (CloseRequested) String() string { return "close_requested" }
