package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(Sz(w, r.Height))
	right = Rt(r.X+w, r.Y, r.Width-w, r.Height)
	return left, right
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	top = r.Resize(Sz(r.Width, h))
	bottom = Rt(r.X, r.Y+h, r.Width, r.Height-h)
	return top, bottom
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r.
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator. With integer rectangles the last
// tile absorbs the remainder so that the tiles cover r exactly.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}
		h := r.Height / T(numtiles)
		rem := r
		for range numtiles - 1 {
			var c Rect[T]
			c, rem = vsplit(rem, h)
			if !yield(c) {
				return
			}
		}
		yield(rem)
	}
}

// TileEvenHorizontally is the horizontal counterpart of
// [TileEvenVertically].
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}
		w := r.Width / T(numtiles)
		rem := r
		for range numtiles - 1 {
			var c Rect[T]
			c, rem = hsplit(rem, w)
			if !yield(c) {
				return
			}
		}
		yield(rem)
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if cols <= 0 {
			return
		}
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		for row := range TiledEvenVertically(numrows, r) {
			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// Tile covers r with tiles of the given size in row-major order. Tiles
// on the right and bottom edges are clipped to r.
func Tile[T Scalar](r Rect[T], size Size[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if r.IsEmpty() || size.IsEmpty() {
			return
		}
		for y := r.Y; y < r.Bottom(); y += size.Height {
			for x := r.X; x < r.Right(); x += size.Width {
				t := FromLTRB(x, y, min(x+size.Width, r.Right()), min(y+size.Height, r.Bottom()))
				if !yield(t) {
					return
				}
			}
		}
	}
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
