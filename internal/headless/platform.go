// Package headless is a Platform without OS windows. Input is scripted with
// Push and every window renders into an in-memory image, which makes it the
// backend for integration tests and offscreen rendering.
package headless

import (
	"context"
	"image"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/agiangrant/panes"
	"github.com/agiangrant/panes/paint"
	"github.com/agiangrant/panes/retained"
)

type scripted struct {
	window retained.WindowID
	input  panes.Input
}

type surface struct {
	node    retained.Node
	painter *paint.ImagePainter
	frames  int
}

type captureKey struct {
	window retained.WindowID
	device retained.DeviceID
}

// Platform implements panes.Platform. It is not safe for concurrent use;
// Push before or from within Run on the same goroutine.
type Platform struct {
	logger   *log.Entry
	nextID   retained.WindowID
	windows  map[retained.WindowID]*surface
	queue    []scripted
	captures map[captureKey]bool
}

// New creates a headless platform. A nil logger uses the logrus standard
// logger.
func New(logger *log.Logger) *Platform {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Platform{
		logger:   logger.WithField("component", "headless"),
		nextID:   1,
		windows:  make(map[retained.WindowID]*surface),
		captures: make(map[captureKey]bool),
	}
}

// Push queues in for delivery to window during Run.
func (p *Platform) Push(window retained.WindowID, in ...panes.Input) {
	for _, i := range in {
		p.queue = append(p.queue, scripted{window: window, input: i})
	}
}

// Pending returns the number of queued inputs.
func (p *Platform) Pending() int { return len(p.queue) }

func (p *Platform) AddWindow(node retained.Node, size retained.Vec2) (retained.WindowID, error) {
	if size.X < 0 || size.Y < 0 {
		return 0, errors.Errorf("invalid window size %v", size)
	}
	id := p.nextID
	if !retained.SetWindowID(node, id) {
		return 0, errors.Errorf("%v is not a window", node)
	}
	p.nextID++
	p.windows[id] = &surface{node: node, painter: newPainter(size)}
	p.logger.WithFields(log.Fields{"window": id, "size": size}).Debug("window opened")
	return id, nil
}

func (p *Platform) RemoveWindow(id retained.WindowID) bool {
	if _, ok := p.windows[id]; !ok {
		return false
	}
	delete(p.windows, id)
	for k := range p.captures {
		if k.window == id {
			delete(p.captures, k)
		}
	}
	p.logger.WithField("window", id).Debug("window closed")
	return true
}

func (p *Platform) SetCaptureCursor(window retained.WindowID, device retained.DeviceID, capture bool) {
	k := captureKey{window: window, device: device}
	if capture {
		p.captures[k] = true
	} else {
		delete(p.captures, k)
	}
	p.logger.WithFields(log.Fields{"window": window, "device": device, "capture": capture}).Debug("pointer capture")
}

// Captured reports whether device is grabbed in window.
func (p *Platform) Captured(window retained.WindowID, device retained.DeviceID) bool {
	return p.captures[captureKey{window: window, device: device}]
}

// Image returns the last frame rendered for window.
func (p *Platform) Image(window retained.WindowID) (*image.RGBA, bool) {
	s, ok := p.windows[window]
	if !ok {
		return nil, false
	}
	return s.painter.Image(), true
}

// Frames returns how many times window has been redrawn.
func (p *Platform) Frames(window retained.WindowID) int {
	if s, ok := p.windows[window]; ok {
		return s.frames
	}
	return 0
}

// Run draws every window once, then delivers queued input in order,
// redrawing the target window after each. It returns when the queue is
// empty, the last window is closed or ctx is done.
//
// A *retained.BorrowError raised by a widget is recovered, logged with its
// stack and returned. Other panics propagate.
func (p *Platform) Run(ctx context.Context, sink panes.InputSink) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		be, ok := r.(*retained.BorrowError)
		if !ok {
			panic(r)
		}
		p.logger.WithError(be).Errorf("aliasing violation: %+v", be)
		err = be
	}()

	for id, s := range p.windows {
		p.redraw(sink, id, s)
	}

	for len(p.queue) > 0 && len(p.windows) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		next := p.queue[0]
		p.queue = p.queue[1:]

		s, ok := p.windows[next.window]
		if !ok {
			p.logger.WithFields(log.Fields{"window": next.window, "input": next.input}).Warn("dropping input for closed window")
			continue
		}
		if r, ok := next.input.(panes.Resized); ok {
			s.painter = newPainter(r.Size)
		}

		sink.HandleInput(next.window, next.input)

		// The sink may have closed the window.
		if s, ok := p.windows[next.window]; ok {
			p.redraw(sink, next.window, s)
		}
	}
	return nil
}

func (p *Platform) redraw(sink panes.InputSink, id retained.WindowID, s *surface) {
	sink.Redraw(id, s.painter)
	s.frames++
}

func newPainter(size retained.Vec2) *paint.ImagePainter {
	return paint.NewImagePainter(image.NewRGBA(image.Rect(0, 0, int(size.X), int(size.Y))))
}
