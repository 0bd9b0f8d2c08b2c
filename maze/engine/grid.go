package engine

import "fmt"

// Neighbor is an adjacent cell together with the direction leading to it.
type Neighbor struct {
	X, Y int
	Dir  Direction
}

// Grid is a rectangular array of cells indexed [y][x].
type Grid struct {
	Width  int
	Height int
	cells  [][]Cell
}

// NewGrid allocates a grid with every wall present
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidCoordinate, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{Walls: AllWalls}
		}
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cell returns a copy of the cell at (x, y). The caller must check bounds.
func (g *Grid) Cell(x, y int) Cell {
	return g.cells[y][x]
}

// Walls returns the wall mask of the cell at (x, y).
func (g *Grid) Walls(x, y int) uint8 {
	return g.cells[y][x].Walls
}

// SetWalls overwrites the wall mask of a cell. It is meant for decoding
// exported grids and does not keep neighbors in sync.
func (g *Grid) SetWalls(x, y int, walls uint8) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	g.cells[y][x].Walls = walls & AllWalls
	return nil
}

// RemoveWall clears the wall of a single cell without touching its neighbor.
func (g *Grid) RemoveWall(x, y int, dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(dir))
	}
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	g.cells[y][x].Walls &^= uint8(dir)
	return nil
}

// RemovePairedWall opens the passage between (x, y) and its neighbor towards dir.
func (g *Grid) RemovePairedWall(x, y int, dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(dir))
	}
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}

	dx, dy := dir.Delta()
	nx, ny := x+dx, y+dy
	if !g.InBounds(nx, ny) {
		return fmt.Errorf("%w: no neighbor %s of (%d,%d)", ErrInvalidCoordinate, dir, x, y)
	}

	g.cells[y][x].Walls &^= uint8(dir)
	g.cells[ny][nx].Walls &^= uint8(dir.Opposite())
	return nil
}

// IsOpen reports whether a move from (x, y) towards dir is legal.
func (g *Grid) IsOpen(x, y int, dir Direction) bool {
	if !g.InBounds(x, y) {
		return false
	}
	dx, dy := dir.Delta()
	if !g.InBounds(x+dx, y+dy) {
		return false
	}
	return !g.cells[y][x].HasWall(dir)
}

// UnvisitedNeighbors returns the in-bounds, unvisited neighbors of (x, y)
// in N, E, S, W order.
func (g *Grid) UnvisitedNeighbors(x, y int) []Neighbor {
	result := make([]Neighbor, 0, 4)
	for _, dir := range Directions {
		dx, dy := dir.Delta()
		nx, ny := x+dx, y+dy
		if g.InBounds(nx, ny) && !g.cells[ny][nx].Visited {
			result = append(result, Neighbor{X: nx, Y: ny, Dir: dir})
		}
	}
	return result
}

// MarkVisited flags a cell as explored.
func (g *Grid) MarkVisited(x, y int) {
	g.cells[y][x].Visited = true
}

// Visited reports whether a cell has been explored by the current pass.
func (g *Grid) Visited(x, y int) bool {
	return g.cells[y][x].Visited
}

// ResetWalls restores every wall and clears every visited flag.
func (g *Grid) ResetWalls() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Cell{Walls: AllWalls}
		}
	}
}

// ResetVisited clears visited flags and keeps the carved walls.
func (g *Grid) ResetVisited() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].Visited = false
		}
	}
}

// OpenPassages counts the passages between adjacent cells. Each passage is
// counted once, from its west or north side.
func (g *Grid) OpenPassages() int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x+1 < g.Width && !g.cells[y][x].HasWall(East) {
				count++
			}
			if y+1 < g.Height && !g.cells[y][x].HasWall(South) {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for y := range cells {
		cells[y] = make([]Cell, g.Width)
		copy(cells[y], g.cells[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}
