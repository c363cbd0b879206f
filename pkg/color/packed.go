package color

import "github.com/taigrr/geomkit/pkg/math3d"

// Packed is implemented by every packed vector type. Components a format
// does not store unpack as 0, except a missing W which unpacks as 1.
type Packed interface {
	Vec4() math3d.Vec4
}

var (
	_ Packed = Half2(0)
	_ Packed = Half4(0)
	_ Packed = Byte4(0)
	_ Packed = NormalizedByte4(0)
	_ Packed = NormalizedShort2(0)
	_ Packed = Short2(0)
	_ Packed = Bgr565(0)
	_ Packed = Bgra5551(0)
	_ Packed = Bgra4444(0)
	_ Packed = Rgba1010102(0)
	_ Packed = Rg32(0)
	_ Packed = Rgba64(0)
)

// Byte4 stores four unsigned integers in [0, 255], X in the low byte.
type Byte4 uint32

func NewByte4(v math3d.Vec4) Byte4 {
	return Byte4(packUnsigned(0xFF, v.X) |
		packUnsigned(0xFF, v.Y)<<8 |
		packUnsigned(0xFF, v.Z)<<16 |
		packUnsigned(0xFF, v.W)<<24)
}

func (p Byte4) Vec4() math3d.Vec4 {
	return math3d.Vec4{
		X: float32(p & 0xFF),
		Y: float32(p >> 8 & 0xFF),
		Z: float32(p >> 16 & 0xFF),
		W: float32(p >> 24),
	}
}

// NormalizedByte4 stores four signed normalized bytes, X in the low byte.
type NormalizedByte4 uint32

func NewNormalizedByte4(v math3d.Vec4) NormalizedByte4 {
	return NormalizedByte4(PackSNorm(0xFF, v.X) |
		PackSNorm(0xFF, v.Y)<<8 |
		PackSNorm(0xFF, v.Z)<<16 |
		PackSNorm(0xFF, v.W)<<24)
}

func (p NormalizedByte4) Vec4() math3d.Vec4 {
	return math3d.Vec4{
		X: UnpackSNorm(0xFF, uint32(p)),
		Y: UnpackSNorm(0xFF, uint32(p>>8)),
		Z: UnpackSNorm(0xFF, uint32(p>>16)),
		W: UnpackSNorm(0xFF, uint32(p>>24)),
	}
}

// NormalizedShort2 stores two signed normalized 16-bit values.
type NormalizedShort2 uint32

func NewNormalizedShort2(x, y float32) NormalizedShort2 {
	return NormalizedShort2(PackSNorm(0xFFFF, x) | PackSNorm(0xFFFF, y)<<16)
}

func (p NormalizedShort2) Vec2() math3d.Vec2 {
	return math3d.Vec2{X: UnpackSNorm(0xFFFF, uint32(p)), Y: UnpackSNorm(0xFFFF, uint32(p>>16))}
}

func (p NormalizedShort2) Vec4() math3d.Vec4 {
	v := p.Vec2()
	return math3d.Vec4{X: v.X, Y: v.Y, Z: 0, W: 1}
}

// Short2 stores two signed 16-bit integers.
type Short2 uint32

func NewShort2(x, y float32) Short2 {
	return Short2(packSigned(0xFFFF, x) | packSigned(0xFFFF, y)<<16)
}

func (p Short2) Vec2() math3d.Vec2 {
	return math3d.Vec2{X: unpackSigned(0xFFFF, uint32(p)), Y: unpackSigned(0xFFFF, uint32(p>>16))}
}

func (p Short2) Vec4() math3d.Vec4 {
	v := p.Vec2()
	return math3d.Vec4{X: v.X, Y: v.Y, Z: 0, W: 1}
}

// Bgr565 stores a color as 5-6-5 bits with red in the high bits.
type Bgr565 uint16

func NewBgr565(c Color3) Bgr565 {
	return Bgr565(PackUNorm(31, c.R)<<11 | PackUNorm(63, c.G)<<5 | PackUNorm(31, c.B))
}

func (p Bgr565) Color3() Color3 {
	return Color3{
		R: UnpackUNorm(31, uint32(p>>11)),
		G: UnpackUNorm(63, uint32(p>>5)),
		B: UnpackUNorm(31, uint32(p)),
	}
}

func (p Bgr565) Vec4() math3d.Vec4 { return p.Color3().Color4(1).Vec4() }

// Bgra5551 stores 5 bits per color channel and a 1-bit alpha in the top bit.
type Bgra5551 uint16

func NewBgra5551(c Color4) Bgra5551 {
	return Bgra5551(PackUNorm(31, c.R)<<10 |
		PackUNorm(31, c.G)<<5 |
		PackUNorm(31, c.B) |
		PackUNorm(1, c.A)<<15)
}

func (p Bgra5551) Color4() Color4 {
	return Color4{
		R: UnpackUNorm(31, uint32(p>>10)),
		G: UnpackUNorm(31, uint32(p>>5)),
		B: UnpackUNorm(31, uint32(p)),
		A: UnpackUNorm(1, uint32(p>>15)),
	}
}

func (p Bgra5551) Vec4() math3d.Vec4 { return p.Color4().Vec4() }

// Bgra4444 stores 4 bits per channel, alpha in the top nibble.
type Bgra4444 uint16

func NewBgra4444(c Color4) Bgra4444 {
	return Bgra4444(PackUNorm(15, c.R)<<8 |
		PackUNorm(15, c.G)<<4 |
		PackUNorm(15, c.B) |
		PackUNorm(15, c.A)<<12)
}

func (p Bgra4444) Color4() Color4 {
	return Color4{
		R: UnpackUNorm(15, uint32(p>>8)),
		G: UnpackUNorm(15, uint32(p>>4)),
		B: UnpackUNorm(15, uint32(p)),
		A: UnpackUNorm(15, uint32(p>>12)),
	}
}

func (p Bgra4444) Vec4() math3d.Vec4 { return p.Color4().Vec4() }

// Rgba1010102 stores 10 bits each for R, G, B and 2 bits of alpha.
type Rgba1010102 uint32

func NewRgba1010102(c Color4) Rgba1010102 {
	return Rgba1010102(PackUNorm(1023, c.R) |
		PackUNorm(1023, c.G)<<10 |
		PackUNorm(1023, c.B)<<20 |
		PackUNorm(3, c.A)<<30)
}

func (p Rgba1010102) Color4() Color4 {
	return Color4{
		R: UnpackUNorm(1023, uint32(p)),
		G: UnpackUNorm(1023, uint32(p>>10)),
		B: UnpackUNorm(1023, uint32(p>>20)),
		A: UnpackUNorm(3, uint32(p>>30)),
	}
}

func (p Rgba1010102) Vec4() math3d.Vec4 { return p.Color4().Vec4() }

// Rg32 stores two unsigned normalized 16-bit values.
type Rg32 uint32

func NewRg32(x, y float32) Rg32 {
	return Rg32(PackUNorm(0xFFFF, x) | PackUNorm(0xFFFF, y)<<16)
}

func (p Rg32) Vec2() math3d.Vec2 {
	return math3d.Vec2{X: UnpackUNorm(0xFFFF, uint32(p)), Y: UnpackUNorm(0xFFFF, uint32(p>>16))}
}

func (p Rg32) Vec4() math3d.Vec4 {
	v := p.Vec2()
	return math3d.Vec4{X: v.X, Y: v.Y, Z: 0, W: 1}
}

// Rgba64 stores four unsigned normalized 16-bit channels, R lowest.
type Rgba64 uint64

func NewRgba64(c Color4) Rgba64 {
	return Rgba64(uint64(PackUNorm(0xFFFF, c.R)) |
		uint64(PackUNorm(0xFFFF, c.G))<<16 |
		uint64(PackUNorm(0xFFFF, c.B))<<32 |
		uint64(PackUNorm(0xFFFF, c.A))<<48)
}

func (p Rgba64) Color4() Color4 {
	return Color4{
		R: UnpackUNorm(0xFFFF, uint32(p)),
		G: UnpackUNorm(0xFFFF, uint32(p>>16)),
		B: UnpackUNorm(0xFFFF, uint32(p>>32)),
		A: UnpackUNorm(0xFFFF, uint32(p>>48)),
	}
}

func (p Rgba64) Vec4() math3d.Vec4 { return p.Color4().Vec4() }
