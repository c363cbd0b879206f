package render

import (
	"context"
	"runtime"

	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/geom"
	"golang.org/x/sync/errgroup"
)

// Renderer ray casts a scene into a framebuffer, one tile per task.
type Renderer struct {
	Camera *Camera
	Scene  *Scene

	TileSize int // edge length of a square tile in pixels
	Workers  int // concurrent tiles; 0 means GOMAXPROCS
	Samples  int // supersampling factor per axis; 0 or 1 disables it
}

// NewRenderer creates a renderer with 32 pixel tiles and no supersampling.
func NewRenderer(camera *Camera, scene *Scene) *Renderer {
	return &Renderer{
		Camera:   camera,
		Scene:    scene,
		TileSize: 32,
	}
}

// Render draws the scene into fb. Objects outside the camera frustum are
// skipped before any ray is cast. The camera and scene must not change
// until Render returns. It stops early with ctx's error when ctx is done.
func (r *Renderer) Render(ctx context.Context, fb *Framebuffer) error {
	target := fb
	if r.Samples > 1 {
		target = NewFramebuffer(fb.Width*r.Samples, fb.Height*r.Samples)
	}

	visible := r.Scene.Visible(r.Camera.Frustum())
	if visible == nil {
		visible = []int{}
	}
	rays := r.Camera.rays(target.Width, target.Height)

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	size := int32(max(r.TileSize, 1))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for tile := range geom.Tile(target.Bounds(), geom.Sz(size, size)) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.renderTile(target, tile, visible, rays)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if target != fb {
		copy(fb.Image.Pix, target.Downsample(r.Samples).Image.Pix)
	}
	return nil
}

func (r *Renderer) renderTile(fb *Framebuffer, tile geom.RectI, visible []int, rays func(x, y float32) bounds.Ray) {
	w, h := float32(fb.Width), float32(fb.Height)
	for y := tile.Top(); y < tile.Bottom(); y++ {
		for x := tile.Left(); x < tile.Right(); x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			c := r.Scene.backgroundAt(px/w, py/h)
			if p, ok := r.Scene.pick(rays(px, py), visible); ok {
				shaded := r.Scene.Shade(p)
				if shaded.A >= 1 {
					c = shaded
				} else {
					c = c.Lerp(shaded, shaded.A)
				}
			}
			fb.SetPixel(int(x), int(y), c.Bgra())
		}
	}
}
