package engine

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Solve finds a shortest path from entry to exit over open passages.
// The returned path includes both endpoints.
func Solve(g *Grid, entry, exit Point) ([]Point, error) {
	if !g.InBounds(entry.X, entry.Y) {
		return nil, fmt.Errorf("%w: entry %s", ErrInvalidCoordinate, entry)
	}
	if !g.InBounds(exit.X, exit.Y) {
		return nil, fmt.Errorf("%w: exit %s", ErrInvalidCoordinate, exit)
	}
	if entry == exit {
		return []Point{entry}, nil
	}

	visited := mapset.New[Point]()
	visited.Put(entry)
	parent := make(map[Point]Point)
	queue := []Point{entry}
	found := false

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == exit {
			found = true
			break
		}

		for _, dir := range Directions {
			if !g.IsOpen(curr.X, curr.Y, dir) {
				continue
			}
			next := curr.Step(dir)
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			parent[next] = curr
			queue = append(queue, next)
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnreachable, entry, exit)
	}

	path := []Point{exit}
	for p := exit; p != entry; {
		p = parent[p]
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// DirectionsFromPath converts consecutive points into step directions.
func DirectionsFromPath(path []Point) ([]Direction, error) {
	if len(path) < 2 {
		return []Direction{}, nil
	}

	dirs := make([]Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		dx, dy := b.X-a.X, b.Y-a.Y

		var d Direction
		switch {
		case dx == 1 && dy == 0:
			d = East
		case dx == -1 && dy == 0:
			d = West
		case dx == 0 && dy == 1:
			d = South
		case dx == 0 && dy == -1:
			d = North
		default:
			return nil, fmt.Errorf("%w: %s -> %s at index %d is not a single step", ErrInvalidPath, a, b, i)
		}
		dirs = append(dirs, d)
	}

	return dirs, nil
}

// EncodeDirections joins direction letters without separators.
func EncodeDirections(dirs []Direction) string {
	var sb strings.Builder
	sb.Grow(len(dirs))
	for _, d := range dirs {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// ParseDirections is the inverse of EncodeDirections.
func ParseDirections(s string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(s))
	for i, r := range s {
		d, err := ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// WalkDirections follows dirs from start on g and returns every visited
// point, start included. A move through a wall or off the grid fails with
// ErrInvalidPath.
func WalkDirections(g *Grid, start Point, dirs []Direction) ([]Point, error) {
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: start %s", ErrInvalidCoordinate, start)
	}

	path := make([]Point, 0, len(dirs)+1)
	path = append(path, start)
	curr := start
	for i, d := range dirs {
		if !g.IsOpen(curr.X, curr.Y, d) {
			return path, fmt.Errorf("%w: step %d (%s) from %s is blocked", ErrInvalidPath, i, d, curr)
		}
		curr = curr.Step(d)
		path = append(path, curr)
	}
	return path, nil
}
