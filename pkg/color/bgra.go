package color

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// ColorBgra is an 8-bit per channel color laid out B, G, R, A in memory,
// the order of most swapchain and DIB surfaces. Alpha is straight.
type ColorBgra struct {
	B, G, R, A uint8
}

// ColorBgraFromUint32 unpacks a value with B in the low byte.
func ColorBgraFromUint32(p uint32) ColorBgra {
	return ColorBgra{B: uint8(p), G: uint8(p >> 8), R: uint8(p >> 16), A: uint8(p >> 24)}
}

// NewColorBgra takes channels in R, G, B, A order.
func NewColorBgra(r, g, b, a uint8) ColorBgra {
	return ColorBgra{B: b, G: g, R: r, A: a}
}

// Uint32 packs the color with B in the low byte.
func (c ColorBgra) Uint32() uint32 {
	return uint32(c.B) | uint32(c.G)<<8 | uint32(c.R)<<16 | uint32(c.A)<<24
}

func (c ColorBgra) Color4() Color4 { return Color4FromBGRA(c.Uint32()) }

// RGBA implements image/color.Color.
func (c ColorBgra) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c ColorBgra) String() string {
	return fmt.Sprintf("{B:%d G:%d R:%d A:%d}", c.B, c.G, c.R, c.A)
}

// BgraModel converts any color to a ColorBgra.
var BgraModel color.Model = color.ModelFunc(bgraModel)

func bgraModel(c color.Color) color.Color {
	if c, ok := c.(ColorBgra); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorBgra{B: n.B, G: n.G, R: n.R, A: n.A}
}

// BgraImage is an in-memory image of little-endian packed BGRA pixels.
type BgraImage struct {
	Rect image.Rectangle
	Pix  []byte
}

// NewBgraImage allocates a zeroed image covering r.
func NewBgraImage(r image.Rectangle) *BgraImage {
	return &BgraImage{Rect: r, Pix: make([]byte, 4*r.Dx()*r.Dy())}
}

func (img *BgraImage) Bounds() image.Rectangle { return img.Rect }

func (img *BgraImage) ColorModel() color.Model { return BgraModel }

func (img *BgraImage) Stride() int { return 4 * img.Rect.Dx() }

func (img *BgraImage) PixOffset(x, y int) int {
	return (y-img.Rect.Min.Y)*img.Stride() + (x-img.Rect.Min.X)*4
}

func (img *BgraImage) At(x, y int) color.Color { return img.BgraAt(x, y) }

// BgraAt returns the pixel at (x, y), or the zero color outside Rect.
func (img *BgraImage) BgraAt(x, y int) ColorBgra {
	if !(image.Point{x, y}.In(img.Rect)) {
		return ColorBgra{}
	}
	i := img.PixOffset(x, y)
	return ColorBgraFromUint32(binary.LittleEndian.Uint32(img.Pix[i : i+4 : i+4]))
}

func (img *BgraImage) Set(x, y int, c color.Color) {
	img.SetBgra(x, y, bgraModel(c).(ColorBgra))
}

// SetBgra writes a pixel. Points outside Rect are ignored.
func (img *BgraImage) SetBgra(x, y int, c ColorBgra) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	i := img.PixOffset(x, y)
	binary.LittleEndian.PutUint32(img.Pix[i:i+4:i+4], c.Uint32())
}

// Opaque reports whether every pixel has full alpha.
func (img *BgraImage) Opaque() bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xFF {
			return false
		}
	}
	return true
}
