// Package color provides floating point colors, a byte-ordered BGRA color
// and the packed vector encodings used for vertex and texel data.
//
// Float colors hold straight (non-premultiplied) alpha. Every color type
// implements image/color.Color so it can be handed to image encoders and
// terminal drawing code directly.
package color

import (
	"fmt"
	"image/color"

	"github.com/taigrr/geomkit/pkg/math3d"
)

// Color3 is an RGB color with float components, nominally in [0, 1].
type Color3 struct {
	R, G, B float32
}

// Color4 is an RGBA color with float components, nominally in [0, 1].
type Color4 struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black       = Color4{0, 0, 0, 1}
	White       = Color4{1, 1, 1, 1}
	Transparent = Color4{}
)

func NewColor3(r, g, b float32) Color3 { return Color3{r, g, b} }

func NewColor4(r, g, b, a float32) Color4 { return Color4{r, g, b, a} }

// Color3FromVec3 reads X, Y, Z as R, G, B.
func Color3FromVec3(v math3d.Vec3) Color3 { return Color3{v.X, v.Y, v.Z} }

// Color4FromVec4 reads X, Y, Z, W as R, G, B, A.
func Color4FromVec4(v math3d.Vec4) Color4 { return Color4{v.X, v.Y, v.Z, v.W} }

// Color4FromRGBA unpacks a 32-bit RGBA value with R in the low byte.
func Color4FromRGBA(p uint32) Color4 {
	return Color4{
		R: UnpackUNorm(0xFF, p),
		G: UnpackUNorm(0xFF, p>>8),
		B: UnpackUNorm(0xFF, p>>16),
		A: UnpackUNorm(0xFF, p>>24),
	}
}

// Color4FromBGRA unpacks a 32-bit BGRA value with B in the low byte.
func Color4FromBGRA(p uint32) Color4 {
	return Color4{
		B: UnpackUNorm(0xFF, p),
		G: UnpackUNorm(0xFF, p>>8),
		R: UnpackUNorm(0xFF, p>>16),
		A: UnpackUNorm(0xFF, p>>24),
	}
}

func (c Color3) Vec3() math3d.Vec3 { return math3d.Vec3{X: c.R, Y: c.G, Z: c.B} }

// Color4 adds an alpha channel.
func (c Color3) Color4(a float32) Color4 { return Color4{c.R, c.G, c.B, a} }

func (c Color3) Add(o Color3) Color3      { return Color3{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Color3) Modulate(o Color3) Color3 { return Color3{c.R * o.R, c.G * o.G, c.B * o.B} }
func (c Color3) Scale(s float32) Color3   { return Color3{c.R * s, c.G * s, c.B * s} }

func (c Color3) Lerp(o Color3, t float32) Color3 {
	return Color3FromVec3(c.Vec3().Lerp(o.Vec3(), t))
}

// RGBA implements image/color.Color as an opaque color.
func (c Color3) RGBA() (r, g, b, a uint32) { return c.Color4(1).RGBA() }

func (c Color3) String() string {
	return fmt.Sprintf("{R:%g G:%g B:%g}", c.R, c.G, c.B)
}

func (c Color4) Vec4() math3d.Vec4 { return math3d.Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A} }

func (c Color4) Color3() Color3 { return Color3{c.R, c.G, c.B} }

// ToRGBA packs the color into 8 bits per channel, R in the low byte.
func (c Color4) ToRGBA() uint32 {
	return PackUNorm(0xFF, c.R) |
		PackUNorm(0xFF, c.G)<<8 |
		PackUNorm(0xFF, c.B)<<16 |
		PackUNorm(0xFF, c.A)<<24
}

// ToBGRA packs the color into 8 bits per channel, B in the low byte.
func (c Color4) ToBGRA() uint32 {
	return PackUNorm(0xFF, c.B) |
		PackUNorm(0xFF, c.G)<<8 |
		PackUNorm(0xFF, c.R)<<16 |
		PackUNorm(0xFF, c.A)<<24
}

// Bgra converts to the 8-bit BGRA form.
func (c Color4) Bgra() ColorBgra { return ColorBgraFromUint32(c.ToBGRA()) }

func (c Color4) Add(o Color4) Color4 {
	return Color4{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c Color4) Sub(o Color4) Color4 {
	return Color4{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A}
}

// Modulate multiplies component-wise.
func (c Color4) Modulate(o Color4) Color4 {
	return Color4{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Scale multiplies every channel, alpha included, by s.
func (c Color4) Scale(s float32) Color4 {
	return Color4{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Negate returns 1 - c per channel.
func (c Color4) Negate() Color4 {
	return Color4{1 - c.R, 1 - c.G, 1 - c.B, 1 - c.A}
}

// Clamp limits each channel to [lo, hi] of the matching channel.
func (c Color4) Clamp(lo, hi Color4) Color4 {
	return Color4FromVec4(c.Vec4().Clamp(lo.Vec4(), hi.Vec4()))
}

// Saturate clamps every channel to [0, 1].
func (c Color4) Saturate() Color4 { return c.Clamp(Transparent, White) }

func (c Color4) Lerp(o Color4, t float32) Color4 {
	return Color4FromVec4(c.Vec4().Lerp(o.Vec4(), t))
}

// AdjustContrast scales the distance of each color channel from mid grey.
// Alpha is kept.
func (c Color4) AdjustContrast(contrast float32) Color4 {
	return Color4{
		R: 0.5 + contrast*(c.R-0.5),
		G: 0.5 + contrast*(c.G-0.5),
		B: 0.5 + contrast*(c.B-0.5),
		A: c.A,
	}
}

// Luminance returns the Rec.709 relative luminance.
func (c Color4) Luminance() float32 {
	return c.R*0.2125 + c.G*0.7154 + c.B*0.0721
}

// AdjustSaturation scales the distance of each color channel from the
// color's luminance. Zero gives grey, one leaves the color unchanged.
func (c Color4) AdjustSaturation(saturation float32) Color4 {
	grey := c.Luminance()
	return Color4{
		R: grey + saturation*(c.R-grey),
		G: grey + saturation*(c.G-grey),
		B: grey + saturation*(c.B-grey),
		A: c.A,
	}
}

// Premultiply multiplies the color channels by alpha.
func (c Color4) Premultiply() Color4 {
	return Color4{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// Transform applies a 5x4 color matrix.
func (c Color4) Transform(m math3d.Mat5x4) Color4 {
	return Color4FromVec4(m.Transform(c.Vec4()))
}

// NearEqual compares channels within tol.
func (c Color4) NearEqual(o Color4, tol float32) bool {
	return c.Vec4().NearEqual(o.Vec4(), tol)
}

// RGBA implements image/color.Color. Channels outside [0, 1] saturate.
func (c Color4) RGBA() (r, g, b, a uint32) {
	return c.nrgba64().RGBA()
}

func (c Color4) nrgba64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(PackUNorm(0xFFFF, c.R)),
		G: uint16(PackUNorm(0xFFFF, c.G)),
		B: uint16(PackUNorm(0xFFFF, c.B)),
		A: uint16(PackUNorm(0xFFFF, c.A)),
	}
}

func (c Color4) String() string {
	return fmt.Sprintf("{R:%g G:%g B:%g A:%g}", c.R, c.G, c.B, c.A)
}

// Color4Model converts any color to a Color4.
var Color4Model color.Model = color.ModelFunc(color4Model)

func color4Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Color4:
		return c
	case Color3:
		return c.Color4(1)
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color4{
		R: UnpackUNorm(0xFFFF, uint32(n.R)),
		G: UnpackUNorm(0xFFFF, uint32(n.G)),
		B: UnpackUNorm(0xFFFF, uint32(n.B)),
		A: UnpackUNorm(0xFFFF, uint32(n.A)),
	}
}
