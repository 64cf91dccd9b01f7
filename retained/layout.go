package retained

import "fmt"

// ============================================================================
// Layout Enums
// ============================================================================

// HorizontalAlignment positions a child along the x axis of a Box.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignHCenter
	AlignRight
	AlignHFill
)

// VerticalAlignment positions a child along the y axis of a Box.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignVCenter
	AlignBottom
	AlignVFill
)

// Axis selects the x or y component of a vector.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Main returns the component of v along a.
func (a Axis) Main(v Vec2) float32 {
	if a == Vertical {
		return v.Y
	}
	return v.X
}

// Cross returns the component of v perpendicular to a.
func (a Axis) Cross(v Vec2) float32 {
	if a == Vertical {
		return v.X
	}
	return v.Y
}

// Vec builds a vector from components along and across a.
func (a Axis) Vec(main, cross float32) Vec2 {
	if a == Vertical {
		return Vec2{X: cross, Y: main}
	}
	return Vec2{X: main, Y: cross}
}

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// GrowthKind is the sizing policy of a Linear child.
type GrowthKind uint8

const (
	// GrowFit keeps the child at its desired size unless every sibling is
	// also Fit, in which case slack is shared evenly.
	GrowFit GrowthKind = iota
	// GrowFill splits all slack evenly among Fill siblings.
	GrowFill
	// GrowValue takes a share of slack proportional to its weight, unless a
	// Fill sibling exists.
	GrowValue
)

// Growth is a Linear child's sizing policy.
type Growth struct {
	Kind   GrowthKind
	Weight float32
}

// Fit, Fill and Val build Growth values.
func Fit() Growth               { return Growth{Kind: GrowFit} }
func Fill() Growth              { return Growth{Kind: GrowFill} }
func Val(weight float32) Growth { return Growth{Kind: GrowValue, Weight: weight} }

func (g Growth) String() string {
	switch g.Kind {
	case GrowFill:
		return "Fill"
	case GrowValue:
		return fmt.Sprintf("Val(%g)", g.Weight)
	default:
		return "Fit"
	}
}
