package paint

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DefaultFace is the face used for text drawing and measurement.
var DefaultFace font.Face = basicfont.Face7x13

// MeasureText returns the advance width and line height of text in
// DefaultFace.
func MeasureText(text string) (width, height float32) {
	adv := font.MeasureString(DefaultFace, text)
	m := DefaultFace.Metrics()
	return fixedToFloat(adv), fixedToFloat(m.Height)
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent() float32 {
	return fixedToFloat(DefaultFace.Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// ImagePainter rasterizes onto an *image.RGBA.
type ImagePainter struct {
	stack
	dst *image.RGBA
}

// NewImagePainter creates a painter drawing into dst.
func NewImagePainter(dst *image.RGBA) *ImagePainter {
	b := dst.Bounds()
	return &ImagePainter{stack: newStack(float32(b.Dx()), float32(b.Dy())), dst: dst}
}

// Image returns the destination image.
func (p *ImagePainter) Image() *image.RGBA { return p.dst }

func (p *ImagePainter) Save()                    { p.save() }
func (p *ImagePainter) Restore()                 { p.restore() }
func (p *ImagePainter) Translate(dx, dy float32) { p.translate(dx, dy) }
func (p *ImagePainter) ClipRect(r Rect)          { p.clipRect(r) }

func (p *ImagePainter) Size() (float32, float32) {
	b := p.dst.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

// clipBounds returns the active clip in pixel space.
func (p *ImagePainter) clipBounds() image.Rectangle {
	return pixelRect(p.cur.clip).Intersect(p.dst.Bounds())
}

func (p *ImagePainter) FillRect(r Rect, c color.Color) {
	area := pixelRect(p.resolve(r)).Intersect(p.clipBounds())
	if area.Empty() {
		return
	}
	draw.Draw(p.dst, area, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawLine strokes a one pixel wide line.
func (p *ImagePainter) DrawLine(x0, y0, x1, y1 float32, c color.Color) {
	clip := p.clipBounds()
	if clip.Empty() {
		return
	}
	from := p.resolve(Rect{X: x0, Y: y0})
	to := p.resolve(Rect{X: x1, Y: y1})

	dx, dy := to.X-from.X, to.Y-from.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Half-width normal of the stroke.
	nx, ny := -dy/length*0.5, dx/length*0.5

	ox, oy := float32(clip.Min.X), float32(clip.Min.Y)
	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(from.X+nx-ox, from.Y+ny-oy)
	z.LineTo(to.X+nx-ox, to.Y+ny-oy)
	z.LineTo(to.X-nx-ox, to.Y-ny-oy)
	z.LineTo(from.X-nx-ox, from.Y-ny-oy)
	z.ClosePath()
	z.Draw(p.dst, clip, image.NewUniform(c), image.Point{})
}

// DrawText draws text with its baseline at (x, y).
func (p *ImagePainter) DrawText(text string, x, y float32, c color.Color) {
	clip := p.clipBounds()
	if clip.Empty() {
		return
	}
	origin := p.resolve(Rect{X: x, Y: y})
	d := font.Drawer{
		Dst:  p.dst.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(c),
		Face: DefaultFace,
		Dot:  fixed.Point26_6{X: floatToFixed(origin.X), Y: floatToFixed(origin.Y)},
	}
	d.DrawString(text)
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

func pixelRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.X))),
		int(math.Floor(float64(r.Y))),
		int(math.Ceil(float64(r.Right()))),
		int(math.Ceil(float64(r.Bottom()))),
	)
}
