package retained

import "github.com/agiangrant/panes/paint"

// LinearSlot is one child of a Linear panel with its growth policy.
type LinearSlot struct {
	Widget Node
	Growth Growth
}

// Linear lays children out back-to-back along one axis (a row or a column)
// and distributes any slack according to each child's Growth. Every child
// spans the full cross axis.
type Linear struct {
	PanelEmbed

	axis  Axis
	slots []LinearSlot
}

// LinearBuilder configures a Linear panel before it is attached.
type LinearBuilder struct {
	panel *Linear
}

// NewLinear starts a Linear panel along axis.
func NewLinear(axis Axis) *LinearBuilder {
	return &LinearBuilder{panel: &Linear{axis: axis}}
}

// NewRow starts a horizontal Linear panel.
func NewRow() *LinearBuilder { return NewLinear(Horizontal) }

// NewColumn starts a vertical Linear panel.
func NewColumn() *LinearBuilder { return NewLinear(Vertical) }

// Slot appends a child. A nil child is ignored.
func (b *LinearBuilder) Slot(child Node, growth Growth) *LinearBuilder {
	if child.IsNil() {
		return b
	}
	b.panel.slots = append(b.panel.slots, LinearSlot{Widget: child, Growth: growth})
	return b
}

// Build creates the node and attaches every child.
func (b *LinearBuilder) Build() Node {
	n := NewNode(b.panel)
	for _, s := range b.panel.slots {
		attach(n, s.Widget)
	}
	return n
}

// Axis returns the primary axis.
func (l *Linear) Axis() Axis { return l.axis }

func (l *Linear) Children() []Node {
	children := make([]Node, len(l.slots))
	for i, s := range l.slots {
		children[i] = s.Widget
	}
	return children
}

// DesiredSize sums desired extents along the axis and takes the maximum
// across it.
func (l *Linear) DesiredSize() Vec2 {
	var main, cross float32
	for _, s := range l.slots {
		d := s.Widget.DesiredSize()
		main += l.axis.Main(d)
		cross = max(cross, l.axis.Cross(d))
	}
	return l.axis.Vec(main, cross)
}

func (l *Linear) RearrangeChildren(g Geometry) []WidgetArrangement {
	extents := distributeLinear(l.axis.Main(g.LocalSize()), l.desiredExtents(), l.growths())
	cross := l.axis.Cross(g.LocalSize())

	arranged := make([]WidgetArrangement, len(l.slots))
	var offset float32
	for i, s := range l.slots {
		pos := l.axis.Vec(offset, 0)
		size := l.axis.Vec(extents[i], cross)
		arranged[i] = g.ChildWidget(s.Widget, pos, size)
		offset += extents[i]
	}
	return arranged
}

func (l *Linear) ArrangeChildren(g Geometry) { ArrangePanel(l, g) }

func (l *Linear) Paint(g Geometry, layer int, p paint.Painter) int {
	return PaintPanel(l, g, layer, p)
}

func (l *Linear) desiredExtents() []float32 {
	out := make([]float32, len(l.slots))
	for i, s := range l.slots {
		out[i] = l.axis.Main(s.Widget.DesiredSize())
	}
	return out
}

func (l *Linear) growths() []Growth {
	out := make([]Growth, len(l.slots))
	for i, s := range l.slots {
		out[i] = s.Growth
	}
	return out
}

// distributeLinear assigns a primary-axis extent to each child given the
// available extent, the children's desired extents and their growth
// policies.
//
// With no slack every child gets exactly its desired extent and overflow is
// allowed. Otherwise a Fill child suppresses weighted growth, and Fit
// children only absorb slack when nothing else is left to claim it.
func distributeLinear(available float32, desired []float32, growth []Growth) []float32 {
	var required, sumWeight float32
	var fit, value, fill int
	bucket := make([]GrowthKind, len(desired))
	for i, d := range desired {
		required += d
		bucket[i] = growth[i].Kind
		switch growth[i].Kind {
		case GrowFill:
			fill++
		case GrowValue:
			value++
			sumWeight += growth[i].Weight
		default:
			fit++
		}
	}

	slack := available - required

	// Weights that cannot be normalized behave like Fit.
	if value > 0 && sumWeight <= 0 {
		foldInto(bucket, GrowValue, GrowFit, &value, &fit)
	}

	if slack <= 0 {
		foldInto(bucket, GrowFill, GrowFit, &fill, &fit)
		foldInto(bucket, GrowValue, GrowFit, &value, &fit)
	} else if fill > 0 {
		foldInto(bucket, GrowValue, GrowFit, &value, &fit)
	}

	sizedFitted := value == 0 && fill == 0

	out := make([]float32, len(desired))
	for i, d := range desired {
		switch bucket[i] {
		case GrowFit:
			if sizedFitted && slack > 0 {
				out[i] = d + slack/float32(fit)
			} else {
				out[i] = d
			}
		case GrowValue:
			out[i] = d + slack*(growth[i].Weight/sumWeight)
		case GrowFill:
			out[i] = d + slack/float32(fill)
		}
	}
	return out
}

// foldInto moves every child in bucket from to bucket to, updating counts.
func foldInto(bucket []GrowthKind, from, to GrowthKind, fromCount, toCount *int) {
	if *fromCount == 0 {
		return
	}
	for i, k := range bucket {
		if k == from {
			bucket[i] = to
		}
	}
	*toCount += *fromCount
	*fromCount = 0
}
