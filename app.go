// Package panes runs retained widget trees on a Platform. An Application is
// created once by the program entry point and passed to whatever needs to
// open windows; there is no global instance.
package panes

import (
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/agiangrant/panes/paint"
	"github.com/agiangrant/panes/retained"
)

// Application owns the open windows and routes platform input into them.
// One EventContext serves every window, so focus and capture are exclusive
// across windows.
type Application struct {
	platform Platform
	cfg      Config
	logger   *log.Entry
	events   *retained.EventContext
	windows  map[retained.WindowID]*window
}

// window is the per-window arrangement state.
type window struct {
	id       retained.WindowID
	node     retained.Node
	size     retained.Vec2
	arranged bool
}

// New creates an Application on platform. A nil logger is built from
// cfg.Log writing to stderr, falling back to the logrus standard logger
// when cfg.Log is invalid.
func New(platform Platform, cfg Config, logger *log.Logger) *Application {
	if logger == nil {
		var err error
		if logger, err = NewLogger(cfg.Log, os.Stderr); err != nil {
			logger = log.StandardLogger()
			logger.WithError(err).Warn("invalid log config, using defaults")
		}
	}
	events := logger.WithField("component", "events")
	return &Application{
		platform: platform,
		cfg:      cfg,
		logger:   logger.WithField("component", "app"),
		events:   retained.NewEventContext(windowCapturer{platform: platform, logger: events}, events),
		windows:  make(map[retained.WindowID]*window),
	}
}

// Config returns the configuration the application was created with.
func (a *Application) Config() Config { return a.cfg }

// NewWindow builds a window widget around content using the configured
// title and background. It is not opened until AddWindow.
func (a *Application) NewWindow(content retained.Node) retained.Node {
	return retained.NewWindow(content).
		Title(a.cfg.Window.Title).
		Background(a.cfg.Window.BackgroundColor()).
		Build()
}

// AddWindow opens node, which must hold a retained.Window, at the
// configured size.
func (a *Application) AddWindow(node retained.Node) (retained.WindowID, error) {
	if node.IsNil() || !retained.Read(node, func(retained.Window) {}) {
		return 0, errors.Errorf("AddWindow: %v is not a window", node)
	}

	size := retained.V2(float32(a.cfg.Window.Width), float32(a.cfg.Window.Height))
	id, err := a.platform.AddWindow(node, size)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open window")
	}

	a.windows[id] = &window{id: id, node: node, size: size}
	a.logger.WithFields(log.Fields{"window": id, "size": size}).Debug("window added")
	return id, nil
}

// RemoveWindow closes the window with id. It reports whether it was open.
func (a *Application) RemoveWindow(id retained.WindowID) bool {
	w, ok := a.windows[id]
	if !ok {
		return false
	}
	delete(a.windows, id)
	a.events.Forget(w.node)
	a.platform.RemoveWindow(id)
	a.logger.WithField("window", id).Debug("window removed")
	return true
}

// Window returns the root widget of an open window.
func (a *Application) Window(id retained.WindowID) (retained.Node, bool) {
	w, ok := a.windows[id]
	if !ok {
		return retained.Node{}, false
	}
	return w.node, true
}

// Windows returns the number of open windows.
func (a *Application) Windows() int { return len(a.windows) }

// Events returns the router shared by all windows.
func (a *Application) Events() *retained.EventContext { return a.events }

// Run drives the platform event pump until it stops.
func (a *Application) Run(ctx context.Context) error {
	return a.platform.Run(ctx, a)
}

// HandleInput implements InputSink.
func (a *Application) HandleInput(id retained.WindowID, in Input) {
	w, ok := a.windows[id]
	if !ok {
		a.logger.WithFields(log.Fields{"window": id, "input": in}).Debug("input for unknown window")
		return
	}

	switch in := in.(type) {
	case Resized:
		w.size = in.Size
		w.arrange()
	case CloseRequested:
		a.RemoveWindow(id)
	case CursorEntered:
		a.events.HandleCursorEnter(in.Device)
	case CursorLeft:
		a.events.HandleCursorLeave(in.Device)
	case CursorMoved:
		a.events.HandleCursorMove(w.hitTest(in.Pos), in.Device, in.Pos)
	case MouseInput:
		path := w.hitTest(in.Pos)
		if in.Pressed {
			a.events.HandleMouseButtonDown(path, in.Device, in.Button, in.Pos)
		} else {
			a.events.HandleMouseButtonUp(path, in.Device, in.Button, in.Pos)
		}
	case KeyInput:
		if in.Pressed {
			a.events.HandleKeyDown(in.Keyboard, in.ScanCode, in.Key)
		} else {
			a.events.HandleKeyUp(in.Keyboard, in.ScanCode, in.Key)
		}
	case CharInput:
		a.events.HandleText(in.Keyboard, in.Char)
	}
}

// Redraw implements InputSink. Drawing arranges the window at the painter's
// size, so later hit tests use that arrangement.
func (a *Application) Redraw(id retained.WindowID, p paint.Painter) {
	w, ok := a.windows[id]
	if !ok {
		return
	}
	width, height := p.Size()
	w.size = retained.V2(width, height)
	retained.DrawWindow(w.node, p)
	w.arranged = true
}

func (w *window) arrange() {
	w.node.ArrangeChildren(retained.RootGeometry(w.size))
	w.arranged = true
}

// hitTest resolves pos against the last arrangement, arranging first if the
// window has never been arranged.
func (w *window) hitTest(pos retained.Vec2) *retained.WidgetPath {
	if !w.arranged {
		w.arrange()
	}
	return retained.HitTest(w.node, w.node.CachedGeometry(), pos)
}
