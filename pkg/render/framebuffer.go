// Package render draws scenes of bounding volumes and meshes into a
// BGRA framebuffer by ray casting, and shows the result in a terminal or
// writes it to PNG or WebP.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/geom"
	xdraw "golang.org/x/image/draw"
)

// ErrUnknownFormat is returned when saving to an unsupported extension.
var ErrUnknownFormat = errors.New("render: unknown image format")

// Framebuffer is a BGRA pixel grid. In the terminal each cell shows two
// vertically stacked pixels, so the height is twice the row count.
type Framebuffer struct {
	Width  int
	Height int
	Image  *color.BgraImage
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Image:  color.NewBgraImage(image.Rect(0, 0, width, height)),
	}
}

// Bounds returns the framebuffer area as a rectangle at the origin.
func (fb *Framebuffer) Bounds() geom.RectI {
	return geom.Rt[int32](0, 0, int32(fb.Width), int32(fb.Height))
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.Color4) {
	px := c.Bgra()
	for y := range fb.Height {
		for x := range fb.Width {
			fb.Image.SetBgra(x, y, px)
		}
	}
}

// SetPixel sets a pixel at (x, y). Out of range points are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.ColorBgra) {
	fb.Image.SetBgra(x, y, c)
}

// GetPixel returns the color at (x, y), or transparent black outside.
func (fb *Framebuffer) GetPixel(x, y int) color.ColorBgra {
	return fb.Image.BgraAt(x, y)
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.ColorBgra) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect fills the part of r that lies inside the framebuffer.
func (fb *Framebuffer) DrawRect(r geom.RectI, c color.ColorBgra) {
	r, ok := geom.Intersect(r, fb.Bounds())
	if !ok {
		return
	}
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			fb.SetPixel(int(x), int(y), c)
		}
	}
}

// DrawRectOutline draws the one pixel border of r.
func (fb *Framebuffer) DrawRectOutline(r geom.RectI, c color.ColorBgra) {
	if r.IsEmpty() {
		return
	}
	x0, y0 := int(r.Left()), int(r.Top())
	x1, y1 := int(r.Right())-1, int(r.Bottom())-1
	fb.DrawLine(x0, y0, x1, y0, c)
	fb.DrawLine(x0, y1, x1, y1, c)
	fb.DrawLine(x0, y0, x0, y1, c)
	fb.DrawLine(x1, y0, x1, y1, c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DrawImage scales src into r with bilinear filtering.
func (fb *Framebuffer) DrawImage(src image.Image, r geom.RectI) {
	xdraw.ApproxBiLinear.Scale(fb.Image, r.Image(), src, src.Bounds(), xdraw.Over, nil)
}

// Downsample returns a copy shrunk by factor in each direction using a
// Catmull-Rom filter. A factor below 2 returns fb itself.
func (fb *Framebuffer) Downsample(factor int) *Framebuffer {
	if factor < 2 {
		return fb
	}
	dst := NewFramebuffer(max(fb.Width/factor, 1), max(fb.Height/factor, 1))
	xdraw.CatmullRom.Scale(dst.Image, dst.Image.Rect, fb.Image, fb.Image.Rect, xdraw.Src, nil)
	return dst
}

// ToImage returns the framebuffer as an image.Image.
func (fb *Framebuffer) ToImage() image.Image {
	return fb.Image
}

// Encode writes the framebuffer as "png" or "webp".
func (fb *Framebuffer) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, fb.Image)
	case "webp":
		return nativewebp.Encode(w, fb.Image, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes the framebuffer to path, choosing the format from the
// file extension.
func (fb *Framebuffer) Save(path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format != "png" && format != "webp" {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fb.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
