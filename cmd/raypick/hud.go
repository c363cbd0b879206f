package main

import (
	"fmt"
	"time"

	"github.com/taigrr/geomkit/pkg/format"
	"github.com/taigrr/geomkit/pkg/render"
)

// ANSI escape codes for positioning and styling
const (
	reset     = "\x1b[0m"
	bold      = "\x1b[1m"
	dim       = "\x1b[2m"
	bgBlack   = "\x1b[40m"
	fgWhite   = "\x1b[97m"
	fgGreen   = "\x1b[92m"
	fgYellow  = "\x1b[93m"
	fgCyan    = "\x1b[96m"
	clearLine = "\x1b[2K"
)

func moveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// HUD renders an overlay with the frame rate and the current pick.
type HUD struct {
	printer   *format.Printer
	title     string
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	visible   int
	status    string
	show      bool
}

// NewHUD creates a new HUD
func NewHUD(title string, printer *format.Printer) *HUD {
	return &HUD{
		printer: printer,
		title:   title,
		fpsTime: time.Now(),
		show:    true,
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// pickLine describes a pick, or gives a hint when nothing is selected.
func (h *HUD) pickLine(scene *render.Scene, pick *render.Pick) string {
	if pick == nil {
		return "click an object to pick it"
	}
	obj := scene.Objects[pick.Object]
	return fmt.Sprintf("%s at %s, distance %s, normal %s",
		obj.Name,
		h.printer.Vec3(pick.Point),
		h.printer.Float(pick.Distance),
		h.printer.Vec3(pick.Normal))
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, scene *render.Scene, pick *render.Pick) {
	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)
	if !h.show {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	titleCol := max((width-len(h.title)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.title, reset))

	visStr := fmt.Sprintf("%d/%d visible", h.visible, len(scene.Objects))
	fmt.Print(moveTo(1, max(width-len(visStr)-1, 1)) + fmt.Sprintf("%s%s%s %s %s", bgBlack, fgCyan, bold, visStr, reset))

	color := fgYellow
	if pick == nil {
		color = dim
	}
	fmt.Print(moveTo(height, 1) + fmt.Sprintf("%s%s %s %s", bgBlack, color, h.pickLine(scene, pick), reset))

	if h.status != "" {
		fmt.Print(moveTo(height, max(width-len(h.status)-1, 1)) + fmt.Sprintf("%s%s%s %s %s", bgBlack, dim, fgWhite, h.status, reset))
	}
}
