package color_test

import (
	"image"
	stdcolor "image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/math3d"
)

func TestClampAndRound(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)
	tests := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"nan", nan, -5, 5, 0},
		{"pos inf", inf, -5, 5, 5},
		{"neg inf", -inf, -5, 5, -5},
		{"pos inf wide range", inf, 0, 65535, 65535},
		{"max finite", math32.MaxFloat32, 0, 255, 255},
		{"below", -7, -5, 5, -5},
		{"above", 7, -5, 5, 5},
		{"half down to even", 2.5, 0, 10, 2},
		{"half up to even", 3.5, 0, 10, 4},
		{"negative half", -2.5, -10, 10, -2},
		{"plain", 1.2, 0, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, color.ClampAndRound(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestUNormRoundTrip(t *testing.T) {
	for i := range uint32(256) {
		f := color.UnpackUNorm(0xFF, i)
		require.Equal(t, i, color.PackUNorm(0xFF, f), "code %d", i)
	}
	require.Equal(t, uint32(128), color.PackUNorm(0xFF, 0.5))
	require.Equal(t, uint32(0), color.PackUNorm(0xFF, -3))
	require.Equal(t, uint32(0xFF), color.PackUNorm(0xFF, 3))
	require.Equal(t, float32(1), color.UnpackUNorm(0xFF, 0x1FF), "bits outside mask ignored")
}

func TestSNorm(t *testing.T) {
	require.Equal(t, uint32(0x7F), color.PackSNorm(0xFF, 1))
	require.Equal(t, uint32(0x81), color.PackSNorm(0xFF, -1))
	require.Equal(t, uint32(0x81), color.PackSNorm(0xFF, -4))
	require.Equal(t, uint32(0), color.PackSNorm(0xFF, 0))

	require.Equal(t, float32(1), color.UnpackSNorm(0xFF, 0x7F))
	require.Equal(t, float32(-1), color.UnpackSNorm(0xFF, 0x81))
	require.Equal(t, float32(-1), color.UnpackSNorm(0xFF, 0x80), "most negative code")

	for code := int32(-127); code <= 127; code++ {
		packed := uint32(code) & 0xFF
		f := color.UnpackSNorm(0xFF, packed)
		require.Equal(t, packed, color.PackSNorm(0xFF, f), "code %d", code)
	}
}

func TestColor4Packing(t *testing.T) {
	red := color.NewColor4(1, 0, 0, 1)
	require.Equal(t, uint32(0xFF0000FF), red.ToRGBA())
	require.Equal(t, uint32(0xFFFF0000), red.ToBGRA())
	require.Equal(t, red, color.Color4FromRGBA(0xFF0000FF))
	require.Equal(t, red, color.Color4FromBGRA(0xFFFF0000))
	require.Equal(t, color.ColorBgra{B: 0, G: 0, R: 255, A: 255}, red.Bgra())
	require.Equal(t, red, red.Bgra().Color4())
}

func TestColor4Ops(t *testing.T) {
	c := color.NewColor4(1, 0.5, 0, 0.5)

	require.Equal(t, color.NewColor4(0.5, 0.25, 0, 0.5), c.Premultiply())
	require.Equal(t, color.NewColor4(0, 0.5, 1, 0.5), c.Negate())
	require.Equal(t, color.NewColor4(0.5, 0.5, 0.5, 0.5), c.AdjustContrast(0))
	require.Equal(t, c, c.AdjustContrast(1))
	require.Equal(t, color.NewColor4(1, 0.25, 0, 0.25), c.Modulate(color.NewColor4(1, 0.5, 1, 0.5)))
	require.Equal(t, color.NewColor4(2, 1, 0, 1), c.Scale(2))
	require.Equal(t, color.NewColor4(1, 1, 0, 1), color.NewColor4(2, 1, -1, 3).Saturate())

	grey := color.NewColor4(1, 0, 0, 1).AdjustSaturation(0)
	require.True(t, grey.NearEqual(color.NewColor4(0.2125, 0.2125, 0.2125, 1), 1e-6))

	mid := color.Black.Lerp(color.White, 0.5)
	require.Equal(t, color.NewColor4(0.5, 0.5, 0.5, 1), mid)
}

func TestColor4Transform(t *testing.T) {
	c := color.NewColor4(0.2, 0.4, 0.6, 1)
	require.True(t, c.Transform(math3d.Mat5x4Identity()).NearEqual(c, 1e-6))

	half := c.Transform(math3d.Mat5x4Scale(math3d.V4(0.5, 0.5, 0.5, 1)))
	require.True(t, half.NearEqual(color.NewColor4(0.1, 0.2, 0.3, 1), 1e-6))

	shifted := c.Transform(math3d.Mat5x4Offset(math3d.V4(0.1, 0, 0, 0)))
	require.True(t, shifted.NearEqual(color.NewColor4(0.3, 0.4, 0.6, 1), 1e-6))

	grey := color.NewColor4(1, 0, 0, 1).Transform(math3d.Mat5x4Saturation(0))
	require.True(t, grey.NearEqual(color.NewColor4(0.299, 0.299, 0.299, 1), 1e-6))
}

func TestImageColorInterop(t *testing.T) {
	r, g, b, a := color.NewColor4(1, 0, 0, 1).RGBA()
	require.Equal(t, [4]uint32{0xFFFF, 0, 0, 0xFFFF}, [4]uint32{r, g, b, a})

	// Straight alpha in, premultiplied out.
	r, g, b, a = color.NewColor4(1, 1, 1, 0.5).RGBA()
	require.Equal(t, [4]uint32{0x8000, 0x8000, 0x8000, 0x8000}, [4]uint32{r, g, b, a})

	got := color.Color4Model.Convert(stdcolor.RGBA{R: 255, A: 255})
	require.Equal(t, color.NewColor4(1, 0, 0, 1), got)

	bgra := color.BgraModel.Convert(stdcolor.RGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xFF})
	require.Equal(t, color.NewColorBgra(0x80, 0x40, 0x20, 0xFF), bgra)

	r, g, b, a = color.NewColorBgra(0x80, 0x40, 0x20, 0xFF).RGBA()
	require.Equal(t, [4]uint32{0x8080, 0x4040, 0x2020, 0xFFFF}, [4]uint32{r, g, b, a})
}

func TestBgraImage(t *testing.T) {
	img := color.NewBgraImage(image.Rect(-1, -1, 3, 2))
	require.Len(t, img.Pix, 4*4*3)
	require.False(t, img.Opaque())

	px := color.NewColorBgra(0x80, 0x40, 0x20, 0xFF)
	img.SetBgra(-1, -1, px)
	require.Equal(t, []byte{0x20, 0x40, 0x80, 0xFF}, img.Pix[:4])
	require.Equal(t, px, img.BgraAt(-1, -1))

	img.Set(2, 1, stdcolor.White)
	require.Equal(t, color.NewColorBgra(0xFF, 0xFF, 0xFF, 0xFF), img.At(2, 1))

	// Out of bounds writes are dropped and reads are zero.
	img.SetBgra(3, 2, px)
	require.Equal(t, color.ColorBgra{}, img.BgraAt(3, 2))
}

func TestPackedColors(t *testing.T) {
	require.Equal(t, color.Bgr565(0xFFFF), color.NewBgr565(color.NewColor3(1, 1, 1)))
	require.Equal(t, color.Bgr565(0xF800), color.NewBgr565(color.NewColor3(1, 0, 0)))
	require.Equal(t, color.NewColor3(0, 1, 0), color.Bgr565(0x07E0).Color3())

	require.Equal(t, color.Bgra5551(0xFC00), color.NewBgra5551(color.NewColor4(1, 0, 0, 1)))
	require.Equal(t, color.Bgra4444(0xF00F), color.NewBgra4444(color.NewColor4(0, 0, 1, 1)))
	require.Equal(t, color.Rgba1010102(0xC00003FF), color.NewRgba1010102(color.NewColor4(1, 0, 0, 1)))

	c := color.NewColor4(0, 1, 0, 1)
	require.Equal(t, c, color.NewRgba64(c).Color4())
	require.Equal(t, c, color.NewBgra4444(c).Color4())
	require.Equal(t, c, color.NewBgra5551(c).Color4())
	require.Equal(t, c, color.NewRgba1010102(c).Color4())
}

func TestPackedVectors(t *testing.T) {
	require.Equal(t, color.Byte4(0xFF030201), color.NewByte4(math3d.V4(1, 2, 3, 300)))
	require.Equal(t, math3d.V4(1, 2, 3, 255), color.Byte4(0xFF030201).Vec4())

	s := color.NewShort2(-40000, 5.5)
	require.Equal(t, color.Short2(0x00068000), s)
	require.Equal(t, math3d.V2(-32768, 6), s.Vec2())
	require.Equal(t, math3d.V4(-32768, 6, 0, 1), s.Vec4())

	n := color.NewNormalizedShort2(1, -1)
	require.Equal(t, math3d.V2(1, -1), n.Vec2())

	nb := color.NewNormalizedByte4(math3d.V4(1, -1, 0, 1))
	require.Equal(t, color.NormalizedByte4(0x7F00817F), nb)
	require.Equal(t, math3d.V4(1, -1, 0, 1), nb.Vec4())

	rg := color.NewRg32(1, 0)
	require.Equal(t, color.Rg32(0xFFFF), rg)
	require.Equal(t, math3d.V4(1, 0, 0, 1), rg.Vec4())
}

func TestHalf(t *testing.T) {
	require.Equal(t, color.Half(0x3C00), color.NewHalf(1))
	require.Equal(t, color.Half(0xC000), color.NewHalf(-2))
	require.Equal(t, color.Half(0x7C00), color.NewHalf(1e6), "overflow becomes +Inf")
	require.True(t, color.NewHalf(math32.NaN()).IsNaN())
	require.InDelta(t, 1.0/3, color.NewHalf(1.0/3).Float32(), 1e-3)

	h2 := color.NewHalf2(0.5, -3)
	require.Equal(t, math3d.V2(0.5, -3), h2.Vec2())
	require.Equal(t, math3d.V4(0.5, -3, 0, 1), h2.Vec4())

	v := math3d.V4(0.25, 2, -8, 1024)
	require.Equal(t, v, color.NewHalf4(v).Vec4())
}

func TestPackedInterface(t *testing.T) {
	values := []color.Packed{
		color.NewHalf4(math3d.V4(1, 1, 1, 1)),
		color.NewRgba64(color.White),
		color.NewBgra4444(color.White),
		color.NewBgr565(color.NewColor3(1, 1, 1)),
	}
	for _, p := range values {
		require.Equal(t, math3d.V4(1, 1, 1, 1), p.Vec4(), "%T", p)
	}
}
