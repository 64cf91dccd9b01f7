// Package paint defines the drawing capability the widget tree paints into.
//
// The retained package only decides when and where drawing happens. Pixels
// are produced by a Painter implementation supplied by the platform layer:
// ImagePainter rasterizes into an *image.RGBA, Recorder keeps a display list
// of resolved operations for tests and debugging.
package paint

import "image/color"

// Rect is an axis-aligned rectangle in painter coordinates.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// RectXYWH is shorthand for building a Rect.
func RectXYWH(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the overlap of r and o. The result is empty when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Painter is the 2D drawing capability handed to Widget.Paint.
//
// Coordinates passed to drawing calls are relative to the current
// translation. ClipRect intersects the current clip with the given rect.
// Save pushes translation and clip; Restore pops them.
type Painter interface {
	Save()
	Restore()
	Translate(dx, dy float32)
	ClipRect(r Rect)

	FillRect(r Rect, c color.Color)
	DrawLine(x0, y0, x1, y1 float32, c color.Color)
	DrawText(text string, x, y float32, c color.Color)

	// Size returns the canvas size in pixels.
	Size() (width, height float32)
}

// state is the save/restore stack entry shared by the implementations.
type state struct {
	dx, dy float32
	clip   Rect
}

// stack tracks translation and clip for a Painter implementation.
type stack struct {
	cur   state
	saved []state
}

func newStack(width, height float32) stack {
	return stack{cur: state{clip: Rect{Width: width, Height: height}}}
}

func (s *stack) save() { s.saved = append(s.saved, s.cur) }

func (s *stack) restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stack) translate(dx, dy float32) {
	s.cur.dx += dx
	s.cur.dy += dy
}

func (s *stack) clipRect(r Rect) {
	s.cur.clip = s.cur.clip.Intersect(r.Translate(s.cur.dx, s.cur.dy))
}

// resolve converts a rect in local coordinates to absolute canvas coordinates.
func (s *stack) resolve(r Rect) Rect {
	return r.Translate(s.cur.dx, s.cur.dy)
}

func (s *stack) depth() int { return len(s.saved) }
