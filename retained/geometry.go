package retained

import "fmt"

// Vec2 is a 2D vector of float32 components used for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Max returns the component-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{max(v.X, o.X), max(v.Y, o.Y)} }

func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// ============================================================================
// Geometry
// ============================================================================

// Geometry describes where a widget was placed by its parent.
//
// LocalPos and LocalSize are relative to the parent. AbsolutePos is relative
// to the window and is always derived from the parent's AbsolutePos, never
// computed on its own.
type Geometry struct {
	localPos    Vec2
	localSize   Vec2
	absolutePos Vec2
	scale       Vec2
}

// NewGeometry creates a geometry. Only roots should call this; children get
// theirs from Geometry.Child.
func NewGeometry(localPos, localSize, absolutePos, scale Vec2) Geometry {
	return Geometry{
		localPos:    localPos,
		localSize:   localSize,
		absolutePos: absolutePos,
		scale:       scale,
	}
}

// RootGeometry is the geometry of a window content area of the given size.
func RootGeometry(size Vec2) Geometry {
	return NewGeometry(Vec2{}, size, Vec2{}, V2(1, 1))
}

func (g Geometry) LocalPos() Vec2    { return g.localPos }
func (g Geometry) LocalSize() Vec2   { return g.localSize }
func (g Geometry) AbsolutePos() Vec2 { return g.absolutePos }
func (g Geometry) Scale() Vec2       { return g.scale }

// Child derives the geometry of a child placed at offset (relative to g) with
// the given size. The child's local position is the offset itself, so
// translating a painter by it moves from the parent's frame to the child's.
func (g Geometry) Child(offset, size Vec2) Geometry {
	return Geometry{
		localPos:    offset,
		localSize:   size,
		absolutePos: g.absolutePos.Add(offset),
		scale:       g.scale,
	}
}

// ChildWidget derives a child geometry and pairs it with the child node.
func (g Geometry) ChildWidget(child Node, offset, size Vec2) WidgetArrangement {
	return WidgetArrangement{Widget: child, Geometry: g.Child(offset, size)}
}

// Contains reports whether the absolute point p lies inside the geometry.
// Both edges are inclusive.
func (g Geometry) Contains(p Vec2) bool {
	return g.absolutePos.X <= p.X &&
		g.absolutePos.Y <= p.Y &&
		p.X <= g.absolutePos.X+g.localSize.X &&
		p.Y <= g.absolutePos.Y+g.localSize.Y
}

// LocalPoint converts an absolute point into this geometry's coordinate space.
func (g Geometry) LocalPoint(p Vec2) Vec2 {
	return p.Sub(g.absolutePos)
}

func (g Geometry) String() string {
	return fmt.Sprintf("Geometry{local=%v size=%v abs=%v scale=%v}", g.localPos, g.localSize, g.absolutePos, g.scale)
}

// WidgetArrangement records where one child was placed by an arrangement pass.
type WidgetArrangement struct {
	Widget   Node
	Geometry Geometry
}
