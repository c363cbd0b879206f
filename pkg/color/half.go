package color

import (
	"github.com/taigrr/geomkit/pkg/math3d"
	"github.com/x448/float16"
)

// Half is an IEEE 754 binary16 value stored as its bit pattern.
type Half uint16

// NewHalf rounds f to the nearest half, ties to even. Values beyond the
// half range become infinity.
func NewHalf(f float32) Half { return Half(float16.Fromfloat32(f).Bits()) }

func (h Half) Float32() float32 { return float16.Frombits(uint16(h)).Float32() }

func (h Half) IsNaN() bool { return float16.Frombits(uint16(h)).IsNaN() }

// Half2 packs two halves, X in the low 16 bits.
type Half2 uint32

func NewHalf2(x, y float32) Half2 {
	return Half2(uint32(NewHalf(x)) | uint32(NewHalf(y))<<16)
}

func (p Half2) Vec2() math3d.Vec2 {
	return math3d.Vec2{X: Half(p).Float32(), Y: Half(p >> 16).Float32()}
}

func (p Half2) Vec4() math3d.Vec4 {
	v := p.Vec2()
	return math3d.Vec4{X: v.X, Y: v.Y, Z: 0, W: 1}
}

// Half4 packs four halves, X in the low 16 bits.
type Half4 uint64

func NewHalf4(v math3d.Vec4) Half4 {
	return Half4(uint64(NewHalf(v.X)) |
		uint64(NewHalf(v.Y))<<16 |
		uint64(NewHalf(v.Z))<<32 |
		uint64(NewHalf(v.W))<<48)
}

func (p Half4) Vec4() math3d.Vec4 {
	return math3d.Vec4{
		X: Half(p).Float32(),
		Y: Half(p >> 16).Float32(),
		Z: Half(p >> 32).Float32(),
		W: Half(p >> 48).Float32(),
	}
}
