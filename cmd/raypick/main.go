// raypick - Terminal ray picking demo
// Renders a scene by ray casting and lets you pick objects with the mouse.
//
// Controls:
//
//	Mouse drag  - Orbit the camera
//	Click       - Pick the object under the cursor
//	Scroll      - Zoom in/out
//	W/S/A/D     - Orbit with the keyboard
//	B           - Toggle bounding boxes of visible objects
//	P           - Save a snapshot
//	R           - Reset view
//	?           - Toggle HUD overlay
//	+/-         - Adjust zoom
//	Esc         - Clear the pick, or quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/format"
	"github.com/taigrr/geomkit/pkg/math3d"
	"github.com/taigrr/geomkit/pkg/render"
	"golang.org/x/text/language"
)

var (
	texturePath  = flag.String("texture", "", "Path to texture image (PNG/JPG/TGA/WebP)")
	backdropPath = flag.String("backdrop", "", "Path to background image")
	targetFPS    = flag.Int("fps", 30, "Target FPS")
	bgColor      = flag.String("bg", "30,30,40", "Background color (R,G,B or #RRGGBB)")
	samples      = flag.Int("samples", 1, "Supersampling factor per axis")
	outPath      = flag.String("out", "", "Render one frame to this .png or .webp file and exit")
	outSize      = flag.String("size", "640x480", "Image size for -out (WxH)")
	snapshotPath = flag.String("snapshot", "raypick.png", "File written by the P key")
	lang         = flag.String("lang", "en", "Language tag for numbers in the HUD")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "raypick - Terminal ray picking demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: raypick [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model a demo scene is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit the camera\n")
		fmt.Fprintf(os.Stderr, "  Click       - Pick an object\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Orbit\n")
		fmt.Fprintf(os.Stderr, "  B           - Toggle bounding boxes\n")
		fmt.Fprintf(os.Stderr, "  P           - Save a snapshot\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Clear pick / quit\n")
	}
	flag.Parse()
	*targetFPS = max(*targetFPS, 1)

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelPath string) error {
	bg, err := format.ParseColor(*bgColor)
	if err != nil {
		return fmt.Errorf("parse -bg: %w", err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("parse -lang: %w", err)
	}

	texture := loadTexture(*texturePath)
	var scene *render.Scene
	title := "demo"
	if modelPath != "" {
		scene, err = modelScene(modelPath, texture)
		if err != nil {
			return err
		}
		title = scene.Objects[0].Name
	} else {
		scene = demoScene()
	}
	scene.Background = bg
	scene.Backdrop = loadTexture(*backdropPath)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if *outPath != "" {
		var w, h int
		if _, err := fmt.Sscanf(*outSize, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			return fmt.Errorf("invalid -size %q", *outSize)
		}
		return snapshot(ctx, scene, w, h, *outPath)
	}
	return interactive(ctx, cancel, scene, title, format.NewPrinter(tag))
}

// snapshot renders one frame from the default orbit and saves it.
func snapshot(ctx context.Context, scene *render.Scene, width, height int, path string) error {
	fb := render.NewFramebuffer(width, height)
	camera := render.NewCamera()
	camera.SetAspectRatio(float32(width) / float32(height))
	home := homeOrbit(scene)
	camera.Orbit(home.center, home.pos.Z, home.pos.X, home.pos.Y)

	r := render.NewRenderer(camera, scene)
	r.Samples = *samples
	if err := r.Render(ctx, fb); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := fb.Save(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", path, width, height)
	return nil
}

// orbitHome is the camera's starting point around the scene.
type orbitHome struct {
	center math3d.Vec3
	pos    math3d.Vec3 // pitch, yaw, distance
}

func homeOrbit(scene *render.Scene) orbitHome {
	box, ok := scene.Bounds()
	if !ok {
		return orbitHome{pos: math3d.V3(0.3, 0, 5)}
	}
	radius := max(box.Extent().Len(), 0.5)
	return orbitHome{
		center: box.Center(),
		pos:    math3d.V3(0.3, 0.4, radius*2.5),
	}
}

// viewer holds the interactive state (UI state, not library code).
type viewer struct {
	term     *uv.Terminal
	scene    *render.Scene
	camera   *render.Camera
	renderer *render.Renderer
	fb       *render.Framebuffer
	wire     *render.Wireframe
	hud      *HUD

	home  orbitHome
	orbit *math3d.Spring3 // pitch, yaw, distance

	width, height int
	pick          *render.Pick
	showBounds    bool
	mouseDown     bool
	dragged       bool
	lastMouseX    int
	lastMouseY    int
	quit          bool
}

func (v *viewer) resize(width, height int) {
	v.width, v.height = width, height
	fbWidth, fbHeight := render.FramebufferSize(width, height)
	v.fb = render.NewFramebuffer(fbWidth, fbHeight)
	v.wire = render.NewWireframe(v.camera, v.fb)
	v.camera.SetAspectRatio(float32(fbWidth) / float32(fbHeight))
}

func (v *viewer) nudge(dPitch, dYaw, zoom float32) {
	t := v.orbit.Target
	t.X = math3d.Clamp(t.X+dPitch, -1.5, 1.5)
	t.Y += dYaw
	t.Z = math3d.Clamp(t.Z*zoom, 1, 50)
	v.orbit.Target = t
}

func (v *viewer) pickAt(col, row int) {
	p, ok := render.CellToPixel(v.term.Bounds(), col, row)
	if !ok {
		return
	}
	ray := v.camera.ScreenRay(p.X, p.Y, v.fb.Width, v.fb.Height)
	if pick, ok := v.scene.Pick(ray); ok {
		v.pick = &pick
	} else {
		v.pick = nil
	}
}

func (v *viewer) handle(ev uv.Event) {
	const step = 0.1
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.term.Erase()
		v.term.Resize(ev.Width, ev.Height)
		v.resize(ev.Width, ev.Height)

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape"):
			if v.pick != nil {
				v.pick = nil
			} else {
				v.quit = true
			}
		case ev.MatchString("ctrl+c"):
			v.quit = true
		case ev.MatchString("r"):
			v.orbit.Target = v.home.pos
		case ev.MatchString("w", "up"):
			v.nudge(step, 0, 1)
		case ev.MatchString("s", "down"):
			v.nudge(-step, 0, 1)
		case ev.MatchString("a", "left"):
			v.nudge(0, -step, 1)
		case ev.MatchString("d", "right"):
			v.nudge(0, step, 1)
		case ev.MatchString("+", "="):
			v.nudge(0, 0, 0.9)
		case ev.MatchString("-", "_"):
			v.nudge(0, 0, 1.1)
		case ev.MatchString("b"):
			v.showBounds = !v.showBounds
		case ev.MatchString("p"):
			if err := v.fb.Save(*snapshotPath); err != nil {
				v.hud.status = err.Error()
			} else {
				v.hud.status = "saved " + *snapshotPath
			}
		case ev.MatchString("?"), ev.MatchString("shift+/"):
			v.hud.show = !v.hud.show
		}

	case uv.MouseClickEvent:
		v.mouseDown, v.dragged = true, false
		v.lastMouseX, v.lastMouseY = ev.X, ev.Y

	case uv.MouseReleaseEvent:
		if v.mouseDown && !v.dragged {
			v.pickAt(ev.X, ev.Y)
		}
		v.mouseDown = false

	case uv.MouseMotionEvent:
		if v.mouseDown {
			dx := ev.X - v.lastMouseX
			dy := ev.Y - v.lastMouseY
			if dx != 0 || dy != 0 {
				v.dragged = true
				v.nudge(float32(dy)*0.05, float32(-dx)*0.05, 1)
			}
			v.lastMouseX, v.lastMouseY = ev.X, ev.Y
		}

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			v.nudge(0, 0, 0.9)
		case uv.MouseWheelDown:
			v.nudge(0, 0, 1.1)
		}
	}
}

var (
	pickColor   = color.NewColorBgra(255, 220, 0, 255)
	normalColor = color.NewColorBgra(0, 255, 128, 255)
	boundsColor = color.NewColorBgra(0, 160, 255, 255)
)

// overlay draws bounds and the current pick over the rendered frame.
func (v *viewer) overlay(visible []int) {
	if v.showBounds {
		for _, i := range visible {
			v.wire.DrawBox(v.scene.Objects[i].Shape.Bounds(), boundsColor)
		}
	}
	if v.pick == nil {
		return
	}
	switch s := v.scene.Objects[v.pick.Object].Shape.(type) {
	case render.Sphere:
		v.wire.DrawSphere(s.BoundingSphere, 32, pickColor)
	default:
		v.wire.DrawBox(s.Bounds(), pickColor)
	}
	v.wire.DrawPoint(v.pick.Point, 0.1, pickColor)
	size := math32.Max(v.orbit.Pos.Z*0.1, 0.2)
	v.wire.DrawLine3D(v.pick.Point, v.pick.Point.Add(v.pick.Normal.Scale(size)), normalColor)
}

func interactive(ctx context.Context, cancel context.CancelFunc, scene *render.Scene, title string, printer *format.Printer) error {
	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	camera := render.NewCamera()
	camera.SetFOV(math32.Pi / 3)
	camera.SetClipPlanes(0.1, 200)

	home := homeOrbit(scene)
	v := &viewer{
		term:   term,
		scene:  scene,
		camera: camera,
		hud:    NewHUD(title, printer),
		home:   home,
		// Frequency 6.0 = quick but smooth, damping 1.0 = critically damped (no overshoot)
		orbit: math3d.NewSpring3(*targetFPS, 6.0, 1.0, home.pos),
	}
	v.renderer = render.NewRenderer(camera, scene)
	v.renderer.Samples = *samples
	v.resize(width, height)

	targetDuration := time.Second / time.Duration(*targetFPS)
	events := term.Events()

	for !v.quit {
		now := time.Now()

	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				v.handle(ev)
			default:
				break drain
			}
		}

		pos := v.orbit.Update()
		camera.Orbit(home.center, pos.Z, pos.X, pos.Y)

		if err := v.renderer.Render(ctx, v.fb); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("render: %w", err)
		}
		visible := scene.Visible(camera.Frustum())
		v.overlay(visible)

		term.Draw(v.fb)
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		v.hud.visible = len(visible)
		v.hud.UpdateFPS()
		v.hud.Render(v.width, v.height, scene, v.pick)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
	cancel()
	return nil
}
