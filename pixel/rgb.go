package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// RGB is an 8-bit per channel RGB image without alpha, stored as a row-major
// height × width × 3 array.
type RGB struct {
	// Rect is the image bounding box; Min is always the origin.
	Rect image.Rectangle

	// Pix holds the red, green and blue bytes of each pixel.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// NewRGB returns a black w×h image.
func NewRGB(w, h int) *RGB {
	return &RGB{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, w*h*3),
		Stride: w * 3,
	}
}

// FromImage copies src into a new RGB image anchored at the origin. Alpha is discarded
// without blending, so translucent pixels keep their straight (non-premultiplied) color.
func FromImage(src image.Image) *RGB {
	b := src.Bounds()
	p := NewRGB(b.Dx(), b.Dy())

	switch src := src.(type) {
	case *RGB:
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(p.Pix[y*p.Stride:(y+1)*p.Stride], src.Pix[i:i+p.Stride])
		}
	case *image.NRGBA:
		p.copyRGBA(src.Pix, src.Stride, src.PixOffset(b.Min.X, b.Min.Y))
	case *image.RGBA:
		// Premultiplied, but identical to straight color for the opaque images we get.
		p.copyRGBA(src.Pix, src.Stride, src.PixOffset(b.Min.X, b.Min.Y))
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := y*p.Stride + x*3
				p.Pix[i+0] = c.R
				p.Pix[i+1] = c.G
				p.Pix[i+2] = c.B
			}
		}
	}
	return p
}

func (p *RGB) copyRGBA(pix []byte, stride, offset int) {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	for y := 0; y < h; y++ {
		s := pix[offset+y*stride:]
		d := p.Pix[y*p.Stride:]
		for x := 0; x < w; x++ {
			d[x*3+0] = s[x*4+0]
			d[x*3+1] = s[x*4+1]
			d[x*3+2] = s[x*4+2]
		}
	}
}

func (p *RGB) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB) ColorModel() color.Model {
	return color.RGBAModel
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	i := p.PixOffset(x, y)
	return color.RGBA{R: p.Pix[i+0], G: p.Pix[i+1], B: p.Pix[i+2], A: 0xff}
}

func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	v := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := p.PixOffset(x, y)
	p.Pix[i+0] = v.R
	p.Pix[i+1] = v.G
	p.Pix[i+2] = v.B
}

// Rotate returns a copy of p turned counter-clockwise by the given number of quarter
// turns. Negative turns rotate clockwise. Odd turns swap width and height.
func (p *RGB) Rotate(turns int) *RGB {
	turns = ((turns % 4) + 4) % 4
	w, h := p.Rect.Dx(), p.Rect.Dy()

	var out *RGB
	if turns%2 == 1 {
		out = NewRGB(h, w)
	} else {
		out = NewRGB(w, h)
	}
	ow, oh := out.Rect.Dx(), out.Rect.Dy()

	for r := 0; r < oh; r++ {
		for c := 0; c < ow; c++ {
			// Source row and column for output pixel (row r, column c).
			var sr, sc int
			switch turns {
			case 0:
				sr, sc = r, c
			case 1:
				sr, sc = c, w-1-r
			case 2:
				sr, sc = h-1-r, w-1-c
			case 3:
				sr, sc = h-1-c, r
			}
			copy(out.Pix[r*out.Stride+c*3:r*out.Stride+c*3+3], p.Pix[sr*p.Stride+sc*3:])
		}
	}
	return out
}

// RGB565 packs every pixel into two bytes in the given byte order, row by row.
func (p *RGB) RGB565(order binary.ByteOrder) []byte {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	out := make([]byte, w*h*2)
	for y := 0; y < h; y++ {
		row := p.Pix[y*p.Stride:]
		for x := 0; x < w; x++ {
			order.PutUint16(out[(y*w+x)*2:], Pack565(row[x*3+0], row[x*3+1], row[x*3+2]))
		}
	}
	return out
}

// Interface checks.
var _ draw.Image = (*RGB)(nil)
