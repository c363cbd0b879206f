package render

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/math3d"
)

func TestTextureSampleNearest(t *testing.T) {
	black := color.NewColor4(0, 0, 0, 1)
	tex := NewCheckerTexture(4, 4, 2, black, color.White)

	tests := []struct {
		name string
		uv   math3d.Vec2
		want color.Color4
	}{
		{"top left", math3d.V2(0.1, 0.9), black},
		{"top right", math3d.V2(0.6, 0.9), color.White},
		{"bottom left", math3d.V2(0.1, 0.1), color.White},
		{"repeat", math3d.V2(1.1, 0.9), black},
		{"negative repeat", math3d.V2(-0.9, 0.9), black},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tex.Sample(tc.uv); got != tc.want {
				t.Errorf("Sample(%v) = %v, want %v", tc.uv, got, tc.want)
			}
		})
	}

	tex.WrapU = WrapClamp
	if got := tex.Sample(math3d.V2(5, 0.9)); got != color.White {
		t.Errorf("clamped = %v", got)
	}
}

func TestTextureSampleBilinear(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.SetPixel(0, 0, color.NewColor4(0, 0, 0, 1))
	tex.SetPixel(1, 0, color.White)
	tex.FilterMode = FilterBilinear
	tex.WrapU, tex.WrapV = WrapClamp, WrapClamp

	if got := tex.Sample(math3d.V2(0.5, 0.5)); !got.NearEqual(color.NewColor4(0.5, 0.5, 0.5, 1), tol) {
		t.Errorf("middle = %v", got)
	}
}

func TestGradientTexture(t *testing.T) {
	tex := NewGradientTexture(1, 3, color.White, color.NewColor4(0, 0, 0, 1))
	if got := tex.GetPixel(0, 1); !got.NearEqual(color.NewColor4(0.5, 0.5, 0.5, 1), tol) {
		t.Errorf("middle row = %v", got)
	}
}

func TestLoadTexture(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(1, 0, stdcolor.NRGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width != 2 || tex.Height != 1 {
		t.Fatalf("size = %dx%d", tex.Width, tex.Height)
	}
	if got := tex.GetPixel(1, 0); got != color.NewColor4(1, 0, 0, 1) {
		t.Errorf("pixel = %v", got)
	}
	if got := tex.GetPixel(0, 0); got != (color.Color4{}) {
		t.Errorf("transparent pixel = %v", got)
	}

	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.tga")); err == nil {
		t.Error("expected error for missing file")
	}
}
