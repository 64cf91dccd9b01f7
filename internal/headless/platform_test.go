package headless

import (
	"context"
	"errors"
	"image/color"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/agiangrant/panes"
	"github.com/agiangrant/panes/retained"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func setup(t *testing.T, content retained.Node) (*Platform, *panes.Application, retained.WindowID) {
	t.Helper()
	cfg := panes.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 40, 20
	logger := quietLogger()
	p := New(logger)
	app := panes.New(p, cfg, logger)
	id, err := app.AddWindow(app.NewWindow(content))
	if err != nil {
		t.Fatalf("AddWindow() error = %v", err)
	}
	return p, app, id
}

func TestRunRendersAndRoutes(t *testing.T) {
	edit := retained.NewTextEdit("")
	p, app, id := setup(t, retained.NewOverlay().
		Slot(retained.NewBlock(retained.V2(1, 1), red)).
		Slot(edit).
		Build())

	pos := retained.V2(5, 5)
	p.Push(id,
		panes.MouseInput{Device: 0, Button: retained.MouseButtonLeft, Pressed: true, Pos: pos},
		panes.MouseInput{Device: 0, Button: retained.MouseButtonLeft, Pos: pos},
		panes.CharInput{Keyboard: 0, Char: 'k'},
	)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := p.Frames(id); got != 4 {
		t.Errorf("Frames() = %d, want 4", got)
	}
	retained.Read(edit, func(w *retained.TextEdit) {
		if w.Text() != "k" {
			t.Errorf("Text() = %q, want %q", w.Text(), "k")
		}
	})

	img, ok := p.Image(id)
	if !ok {
		t.Fatal("no image for window")
	}
	if got := img.RGBAAt(39, 0); got != red {
		t.Errorf("pixel (39,0) = %v, want %v", got, red)
	}
}

func TestResizeReplacesSurface(t *testing.T) {
	p, app, id := setup(t, retained.NewBlock(retained.V2(1, 1), red))
	p.Push(id, panes.Resized{Size: retained.V2(64, 32)})
	if err := app.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	img, _ := p.Image(id)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("surface bounds = %v, want 64x32", b)
	}
	if got := img.RGBAAt(63, 31); got != red {
		t.Errorf("pixel (63,31) = %v, want %v", got, red)
	}
}

func TestCloseLastWindowEndsRun(t *testing.T) {
	p, app, id := setup(t, retained.Node{})
	p.Push(id, panes.CloseRequested{}, panes.CursorMoved{Pos: retained.V2(1, 1)})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if p.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", p.Pending())
	}
	if _, ok := p.Image(id); ok {
		t.Error("closed window should have no surface")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	p, app, id := setup(t, retained.Node{})
	p.Push(id, panes.CursorMoved{Pos: retained.V2(1, 1)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestCaptureBookkeeping(t *testing.T) {
	p, app, id := setup(t, retained.NewScrollBar().Build())
	pos := retained.V2(5, 5)
	p.Push(id, panes.MouseInput{Device: 1, Button: retained.MouseButtonLeft, Pressed: true, Pos: pos})
	if err := app.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !p.Captured(id, 1) {
		t.Error("device 1 should be captured after pressing the scroll bar")
	}

	p.Push(id, panes.MouseInput{Device: 1, Button: retained.MouseButtonLeft, Pos: pos})
	if err := app.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if p.Captured(id, 1) {
		t.Error("device 1 should be released")
	}
}

// reentrant borrows itself while handling an event.
type reentrant struct {
	retained.LeafEmbed
	self retained.Node
}

func (r *reentrant) OnEvent(retained.Event) retained.Reply {
	r.self.DesiredSize()
	return retained.Handled()
}

func TestRunRecoversBorrowError(t *testing.T) {
	w := &reentrant{}
	node := retained.NewNode(w)
	w.self = node

	p, app, id := setup(t, node)
	p.Push(id, panes.CursorMoved{Pos: retained.V2(1, 1)})

	err := app.Run(context.Background())
	var be *retained.BorrowError
	if !errors.As(err, &be) {
		t.Fatalf("Run() error = %v, want *retained.BorrowError", err)
	}

	// The failed dispatch released its borrow.
	node.GetMut().Release()
}
