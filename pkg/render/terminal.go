package render

import (
	stdcolor "image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/geom"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. The framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(x, topY)),
					Bg: cellColor(fb.GetPixel(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor maps transparent pixels to the terminal default.
func cellColor(c color.ColorBgra) stdcolor.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// CellToPixel maps a terminal cell inside area to the framebuffer pixel
// at the center of its upper half.
func CellToPixel(area uv.Rectangle, col, row int) (geom.PointF, bool) {
	p := geom.Pt(float32(col-area.Min.X)+0.5, float32(row-area.Min.Y)*2+0.5)
	r := geom.FromImage(area)
	if !geom.Pt(int32(col), int32(row)).In(r) {
		return geom.PointF{}, false
	}
	return p, true
}

// FramebufferSize returns the pixel size that fills a width x height
// cell terminal.
func FramebufferSize(width, height int) (int, int) {
	return width, height * 2
}
