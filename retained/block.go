package retained

import (
	"image/color"

	"github.com/agiangrant/panes/paint"
)

// Block is a leaf that fills its area with a solid color and asks for a
// fixed size.
type Block struct {
	LeafEmbed

	size  Vec2
	color color.RGBA
}

// NewBlock creates a Block node.
func NewBlock(size Vec2, c color.RGBA) Node {
	return NewNode(&Block{size: size, color: c})
}

func (b *Block) DesiredSize() Vec2 { return b.size }

// SetSize changes the desired size. The next arrangement picks it up.
func (b *Block) SetSize(size Vec2) { b.size = size }

func (b *Block) Paint(g Geometry, layer int, p paint.Painter) int {
	size := g.LocalSize()
	p.FillRect(paint.RectXYWH(0, 0, size.X, size.Y), b.color)
	return layer + 1
}
