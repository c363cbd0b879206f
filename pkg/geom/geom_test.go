package geom_test

import (
	"image"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taigrr/geomkit/pkg/geom"
	"github.com/taigrr/geomkit/pkg/vecn"
)

func TestRectEdges(t *testing.T) {
	r := geom.Rt[int32](1, 2, 3, 4)
	require.Equal(t, int32(1), r.Left())
	require.Equal(t, int32(2), r.Top())
	require.Equal(t, int32(4), r.Right())
	require.Equal(t, int32(6), r.Bottom())
	require.Equal(t, geom.Pt[int32](1, 2), r.Location())
	require.Equal(t, geom.Sz[int32](3, 4), r.Size())
	require.Equal(t, geom.Pt[int32](4, 6), r.BottomRight())
	require.Equal(t, r, geom.FromLTRB[int32](1, 2, 4, 6))
	require.Equal(t, r, geom.FromPointSize(r.Location(), r.Size()))
}

func TestRectContains(t *testing.T) {
	r := geom.Rt[int32](0, 0, 10, 10)
	tests := []struct {
		p    geom.PointI
		want bool
	}{
		{geom.Pt[int32](0, 0), true},
		{geom.Pt[int32](9, 9), true},
		{geom.Pt[int32](10, 0), false},
		{geom.Pt[int32](0, 10), false},
		{geom.Pt[int32](-1, 5), false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, r.Contains(tt.p), "%v", tt.p)
		require.Equal(t, tt.want, tt.p.In(r), "%v", tt.p)
	}

	require.True(t, r.ContainsRect(geom.Rt[int32](2, 2, 8, 8)))
	require.False(t, r.ContainsRect(geom.Rt[int32](2, 2, 9, 8)))
	require.True(t, r.ContainsRect(geom.RectI{}), "empty rect")
}

func TestIntersect(t *testing.T) {
	a := geom.Rt[int32](0, 0, 10, 10)

	got, ok := geom.Intersect(a, geom.Rt[int32](5, 5, 10, 10))
	require.True(t, ok)
	require.Equal(t, geom.Rt[int32](5, 5, 5, 5), got)

	_, ok = geom.Intersect(a, geom.Rt[int32](10, 0, 5, 5))
	require.False(t, ok, "shared edge")
	require.False(t, a.Intersects(geom.Rt[int32](-5, -5, 5, 5)), "shared corner")

	inner := geom.Rt[int32](2, 3, 1, 1)
	got, ok = geom.Intersect(a, inner)
	require.True(t, ok)
	require.Equal(t, inner, got)
}

func TestUnion(t *testing.T) {
	a := geom.Rt[float32](0, 0, 2, 2)
	b := geom.Rt[float32](5, 5, 1, 1)
	require.Equal(t, geom.Rt[float32](0, 0, 6, 6), geom.Union(a, b))
	require.Equal(t, geom.Union(a, b), geom.Union(b, a))
	require.Equal(t, a, geom.Union(a, geom.RectF{}))
	require.Equal(t, b, geom.Union(geom.RectF{}, b))
}

func TestRectTransforms(t *testing.T) {
	r := geom.Rt[int32](2, 2, 4, 4)
	require.Equal(t, geom.Rt[int32](1, 0, 6, 8), r.Inflate(1, 2))
	require.Equal(t, geom.Rt[int32](3, 4, 2, 0), r.Inflate(-1, -2))
	require.True(t, r.Inflate(-1, -2).IsEmpty())
	require.Equal(t, geom.Rt[int32](5, 0, 4, 4), r.Offset(geom.Pt[int32](3, -2)))
	require.Equal(t, geom.Rt[int32](4, 4, 8, 8), r.Scale(2))
	require.Equal(t, geom.Rt[int32](6, 4, 4, 6), geom.Rt[int32](10, 10, -4, -6).Canon())
}

func TestCenter(t *testing.T) {
	require.Equal(t, geom.Pt[int32](2, 2), geom.Rt[int32](0, 0, 5, 5).Center())
	require.Equal(t, geom.Pt[float32](2.5, 2.5), geom.Rt[float32](0, 0, 5, 5).Center())
	require.Equal(t, geom.Rt[float32](-1, -1, 2, 2), geom.Rt[float32](7, 7, 2, 2).CenterAt(geom.PointF{}))
}

func TestImageInterop(t *testing.T) {
	r := geom.Rt[int32](1, 2, 3, 4)
	require.Equal(t, image.Rect(1, 2, 4, 6), r.Image())
	require.Equal(t, r, geom.FromImage(r.Image()))
	require.Equal(t, image.Rect(0, 0, 2, 3), geom.Rt[float32](0.5, 0.2, 1.9, 2.9).Image())
}

func TestAlign(t *testing.T) {
	outer := geom.Rt[int32](0, 0, 10, 10)
	inner := geom.Rt[int32](0, 0, 2, 2)

	tests := []struct {
		name  string
		edges geom.Edges
		want  geom.RectI
	}{
		{"none", geom.EdgeNone, geom.Rt[int32](4, 4, 2, 2)},
		{"top right", geom.EdgeTop | geom.EdgeRight, geom.Rt[int32](8, 0, 2, 2)},
		{"bottom left", geom.EdgeBottom | geom.EdgeLeft, geom.Rt[int32](0, 8, 2, 2)},
		{"stretch horizontally", geom.EdgeLeft | geom.EdgeRight, geom.Rt[int32](0, 4, 10, 2)},
		{"stretch vertically", geom.EdgeTop | geom.EdgeBottom, geom.Rt[int32](4, 0, 2, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, geom.Align(outer, inner, tt.edges))
		})
	}
}

func TestTiledEvenHorizontally(t *testing.T) {
	got := slices.Collect(geom.TiledEvenHorizontally(3, geom.Rt[int32](0, 0, 10, 4)))
	require.Equal(t, []geom.RectI{
		geom.Rt[int32](0, 0, 3, 4),
		geom.Rt[int32](3, 0, 3, 4),
		geom.Rt[int32](6, 0, 4, 4),
	}, got)

	require.Empty(t, slices.Collect(geom.TiledEvenHorizontally(0, geom.Rt[int32](0, 0, 10, 4))))
}

func TestTileEvenVertically(t *testing.T) {
	tiles := make([]geom.RectF, 2)
	geom.TileEvenVertically(tiles, geom.Rt[float32](0, 0, 1, 1))
	require.Equal(t, []geom.RectF{
		geom.Rt[float32](0, 0, 1, 0.5),
		geom.Rt[float32](0, 0.5, 1, 0.5),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.RectI, 5)
	geom.TileRows(tiles, geom.Rt[int32](0, 0, 6, 6), 2)
	require.Equal(t, []geom.RectI{
		geom.Rt[int32](0, 0, 3, 2),
		geom.Rt[int32](3, 0, 3, 2),
		geom.Rt[int32](0, 2, 3, 2),
		geom.Rt[int32](3, 2, 3, 2),
		geom.Rt[int32](0, 4, 6, 2),
	}, tiles)
}

func TestTile(t *testing.T) {
	r := geom.Rt[int32](0, 0, 5, 3)
	got := slices.Collect(geom.Tile(r, geom.Sz[int32](2, 2)))
	require.Equal(t, []geom.RectI{
		geom.Rt[int32](0, 0, 2, 2),
		geom.Rt[int32](2, 0, 2, 2),
		geom.Rt[int32](4, 0, 1, 2),
		geom.Rt[int32](0, 2, 2, 1),
		geom.Rt[int32](2, 2, 2, 1),
		geom.Rt[int32](4, 2, 1, 1),
	}, got)

	var area int32
	for _, tile := range got {
		area += tile.Size().Area()
	}
	require.Equal(t, r.Size().Area(), area)

	for range geom.Tile(r, geom.Sz[int32](1, 1)) {
		break
	}
	require.Empty(t, slices.Collect(geom.Tile(r, geom.SizeI{})))
}

func TestExtents(t *testing.T) {
	e := geom.Extent2D{Width: 4, Height: 3}
	require.Equal(t, uint64(12), e.Area())
	require.Equal(t, geom.Extent2D{Width: 1, Height: 1}, e.Mip(2))
	require.Equal(t, geom.RectI{X: 1, Y: 2, Width: 4, Height: 3}, e.Rect(geom.Offset2D{X: 1, Y: 2}))
	require.True(t, e.Contains(geom.Offset2D{X: 3, Y: 2}))
	require.False(t, e.Contains(geom.Offset2D{X: 4, Y: 0}))
	require.False(t, e.Contains(geom.Offset2D{X: -1, Y: 0}))
	require.Equal(t, geom.Extent2D{Width: 0, Height: 5}, geom.ExtentOf(geom.Sz[int32](-1, 5)))
	require.True(t, geom.ExtentOf(geom.Sz[int32](-1, 5)).IsEmpty())

	v := geom.Extent3D{Width: 2, Height: 3, Depth: 4}
	require.Equal(t, uint64(24), v.Volume())
	require.Equal(t, geom.Extent3D{Width: 1, Height: 1, Depth: 2}, v.Mip(1))
	require.True(t, v.Contains(geom.Offset3D{X: 1, Y: 2, Z: 3}))
	require.False(t, v.Contains(geom.Offset3D{X: 1, Y: 2, Z: 4}))
	require.Equal(t, vecn.UInt3{X: 2, Y: 3, Z: 4}, v.UInt3())
	require.Equal(t, "2x3x4", v.String())
}

func TestOffsets(t *testing.T) {
	a := geom.Offset3D{X: 1, Y: -2, Z: 3}
	b := geom.Offset3D{X: 4, Y: 5, Z: 6}
	require.Equal(t, geom.Offset3D{X: 5, Y: 3, Z: 9}, a.Add(b))
	require.Equal(t, geom.Offset3D{X: -3, Y: -7, Z: -3}, a.Sub(b))
	require.Equal(t, vecn.Int3{X: 1, Y: -2, Z: 3}, a.Int3())
	require.Equal(t, geom.Pt[int32](1, -2), a.Offset2D().Point())
}

func TestPointAndSize(t *testing.T) {
	p := geom.Pt[float32](1, 1)
	require.True(t, p.Within(geom.Pt[float32](1.05, 0.98), 0.1))
	require.False(t, p.Within(geom.Pt[float32](1.2, 1), 0.1))
	require.Equal(t, geom.Pt[int32](3, 1), geom.Pt[int32](1, 2).Add(geom.Pt[int32](2, -1)))
	require.Equal(t, "(1, 2)", geom.Pt[int32](1, 2).String())

	s := geom.Sz[int32](16, 9)
	require.InDelta(t, 16.0/9.0, s.Aspect(), 1e-12)
	require.Equal(t, "16x9", s.String())
	require.True(t, geom.Sz[int32](0, 3).IsEmpty())
}
