package engine

import "github.com/zyedidia/generic/mapset"

// emblem holds the (row, col) offsets of the "42" glyphs relative to the
// anchor. The first nine cells draw the 4, the remaining eleven the 2.
var emblem = [...][2]int{
	{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2},
	{1, 2}, {0, 2}, {3, 2}, {4, 2},
	{4, 4}, {4, 5}, {4, 6}, {3, 4}, {2, 4},
	{2, 5}, {2, 6}, {1, 6}, {0, 6}, {0, 5}, {0, 4},
}

// Overlay is the decorative emblem excluded from carving.
type Overlay struct {
	cells []Point
	set   mapset.Set[Point]
}

// ComputeOverlay places the emblem in the middle of a width x height grid.
// The overlay is absent when either dimension is below MinOverlaySize.
func ComputeOverlay(width, height int) Overlay {
	if height < MinOverlaySize || width < MinOverlaySize {
		return Overlay{}
	}

	row0 := (height - 5) / 2
	col0 := (width - 7) / 2

	cells := make([]Point, 0, len(emblem))
	set := mapset.New[Point]()
	for _, off := range emblem {
		p := Point{X: col0 + off[1], Y: row0 + off[0]}
		cells = append(cells, p)
		set.Put(p)
	}

	return Overlay{cells: cells, set: set}
}

// Present reports whether the grid was large enough to hold the emblem.
func (o Overlay) Present() bool {
	return len(o.cells) > 0
}

// Cells returns the emblem cells in drawing order.
func (o Overlay) Cells() []Point {
	out := make([]Point, len(o.cells))
	copy(out, o.cells)
	return out
}

// Len returns the number of emblem cells.
func (o Overlay) Len() int {
	return len(o.cells)
}

// Contains reports whether p is part of the emblem.
func (o Overlay) Contains(p Point) bool {
	if !o.Present() {
		return false
	}
	return o.set.Has(p)
}

// MarkVisited flags every emblem cell as explored so carving routes around it.
func (o Overlay) MarkVisited(g *Grid) {
	for _, p := range o.cells {
		if g.InBounds(p.X, p.Y) {
			g.MarkVisited(p.X, p.Y)
		}
	}
}

// Conflicts returns the first of the given points that lies inside the emblem.
func (o Overlay) Conflicts(points ...Point) (Point, bool) {
	for _, p := range points {
		if o.Contains(p) {
			return p, true
		}
	}
	return Point{}, false
}
