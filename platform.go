package panes

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/agiangrant/panes/paint"
	"github.com/agiangrant/panes/retained"
)

// Platform is the windowing backend an Application runs on. All methods are
// called from the goroutine running Run.
type Platform interface {
	// AddWindow opens a top-level window for the root widget window, which
	// must hold a retained.Window. The platform assigns the id and stores it
	// on the widget with retained.SetWindowID.
	AddWindow(window retained.Node, size retained.Vec2) (retained.WindowID, error)

	// RemoveWindow closes the window. It reports whether id was open.
	RemoveWindow(id retained.WindowID) bool

	// SetCaptureCursor grabs or releases OS pointer tracking for device in
	// window.
	SetCaptureCursor(window retained.WindowID, device retained.DeviceID, capture bool)

	// Run pumps platform events into sink until every window is closed, ctx
	// is done or the backend has nothing more to deliver.
	Run(ctx context.Context, sink InputSink) error
}

// InputSink receives what a Platform produces.
type InputSink interface {
	// HandleInput routes one input for a window.
	HandleInput(window retained.WindowID, in Input)

	// Redraw paints a window onto p, which covers the whole window.
	Redraw(window retained.WindowID, p paint.Painter)
}

// windowCapturer forwards capture changes to the platform window that
// contains the capturing widget.
type windowCapturer struct {
	platform Platform
	logger   *log.Entry
}

func (c windowCapturer) SetCaptureCursor(widget retained.Node, device retained.DeviceID, capture bool) {
	id, ok := retained.WindowIDOf(retained.Root(widget))
	if !ok {
		c.logger.WithFields(log.Fields{"widget": widget, "device": device}).Warn("capturing widget is not in an open window")
		return
	}
	c.platform.SetCaptureCursor(id, device, capture)
}
