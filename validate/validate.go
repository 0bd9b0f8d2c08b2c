// Package validate checks maze export files. It verifies:
//   - rows of equal width made of hex digits, followed by entry, exit and path
//   - wall symmetry between every pair of neighbors
//   - a closed outer boundary
//   - entry and exit inside the grid, distinct and outside the emblem
//   - connectivity: every cell outside the emblem is reachable from the entry
//   - the path walks from entry to exit through open passages only
//   - the path is a shortest one
package validate

import (
	"fmt"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"github.com/wricardo/amazeing/maze/engine"
	"github.com/wricardo/amazeing/maze/session"
)

// Result captures the outcome of validating a single export.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type Result struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *Result) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) info(format string, args ...any) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// File reads and checks the export at path.
func File(path string) Result {
	exp, err := session.ReadExport(path)
	if err != nil {
		return Result{
			File:   filepath.Base(path),
			Valid:  false,
			Errors: []string{err.Error()},
		}
	}

	result := Check(exp)
	result.File = filepath.Base(path)
	return result
}

// Check validates a decoded export. Informational lines are only added when
// every check passed.
func Check(exp *session.Export) Result {
	result := Result{Valid: true, Errors: []string{}}

	g, err := exp.Grid()
	if err != nil {
		result.fail("Invalid grid: %v", err)
		return result
	}

	emblem := detectEmblem(g)

	checkSymmetry(g, &result)
	checkBoundary(g, &result)

	endpointsOK := true
	for _, ep := range []struct {
		name string
		p    engine.Point
	}{{"entry", exp.Entry}, {"exit", exp.Exit}} {
		if !g.InBounds(ep.p.X, ep.p.Y) {
			result.fail("The %s %s is outside the %dx%d grid", ep.name, ep.p, g.Width, g.Height)
			endpointsOK = false
			continue
		}
		if emblem.Contains(ep.p) {
			result.fail("The %s %s lies inside the 42 pattern", ep.name, ep.p)
			endpointsOK = false
		}
	}
	if endpointsOK && exp.Entry == exp.Exit {
		result.fail("Entry and exit are the same cell %s", exp.Entry)
	}

	if !endpointsOK {
		return result
	}

	carvable := g.Width*g.Height - emblem.Len()
	reached := reachable(g, exp.Entry)
	if reached.Size() != carvable {
		result.fail("Connectivity failure: %d/%d cells reachable from entry", reached.Size(), carvable)
	}

	walked, err := engine.WalkDirections(g, exp.Entry, exp.Directions)
	switch {
	case err != nil:
		result.fail("Path is not walkable: %v", err)
	case walked[len(walked)-1] != exp.Exit:
		result.fail("Path ends at %s instead of the exit %s", walked[len(walked)-1], exp.Exit)
	}

	if shortest, err := engine.Solve(g, exp.Entry, exp.Exit); err == nil {
		if len(exp.Directions) != len(shortest)-1 {
			result.fail("Path has %d steps, the shortest has %d", len(exp.Directions), len(shortest)-1)
		}
	}

	if result.Valid {
		passages := g.OpenPassages()
		result.info("Grid: %dx%d", g.Width, g.Height)
		if emblem.Present() {
			result.info("42 pattern: %d closed cells", emblem.Len())
		}
		result.info("Connectivity: all %d cells reachable", carvable)
		if loops := passages - (carvable - 1); loops > 0 {
			result.info("Imperfect: %d extra passages", loops)
		} else {
			result.info("Perfect: %d passages", passages)
		}
		result.info("Path: %d steps from %s to %s", len(exp.Directions), exp.Entry, exp.Exit)
	}

	return result
}

// detectEmblem returns the emblem when the grid is large enough and every
// emblem cell is fully closed; mazes generated without it get an empty one.
func detectEmblem(g *engine.Grid) engine.Overlay {
	o := engine.ComputeOverlay(g.Width, g.Height)
	for _, p := range o.Cells() {
		if g.Walls(p.X, p.Y) != engine.AllWalls {
			return engine.Overlay{}
		}
	}
	return o
}

func checkSymmetry(g *engine.Grid, result *Result) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Cell(x, y)
			if x+1 < g.Width && c.HasWall(engine.East) != g.Cell(x+1, y).HasWall(engine.West) {
				result.fail("Wall mismatch between (%d,%d) and (%d,%d)", x, y, x+1, y)
			}
			if y+1 < g.Height && c.HasWall(engine.South) != g.Cell(x, y+1).HasWall(engine.North) {
				result.fail("Wall mismatch between (%d,%d) and (%d,%d)", x, y, x, y+1)
			}
		}
	}
}

func checkBoundary(g *engine.Grid, result *Result) {
	for x := 0; x < g.Width; x++ {
		if !g.Cell(x, 0).HasWall(engine.North) {
			result.fail("Outer wall open at (%d,0) N", x)
		}
		if !g.Cell(x, g.Height-1).HasWall(engine.South) {
			result.fail("Outer wall open at (%d,%d) S", x, g.Height-1)
		}
	}
	for y := 0; y < g.Height; y++ {
		if !g.Cell(0, y).HasWall(engine.West) {
			result.fail("Outer wall open at (0,%d) W", y)
		}
		if !g.Cell(g.Width-1, y).HasWall(engine.East) {
			result.fail("Outer wall open at (%d,%d) E", g.Width-1, y)
		}
	}
}

// reachable flood fills open passages from start.
func reachable(g *engine.Grid, start engine.Point) mapset.Set[engine.Point] {
	seen := mapset.New[engine.Point]()
	queue := []engine.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if seen.Has(current) {
			continue
		}
		seen.Put(current)

		for _, d := range engine.Directions {
			if !g.IsOpen(current.X, current.Y, d) {
				continue
			}
			if n := current.Step(d); !seen.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return seen
}
