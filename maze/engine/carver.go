package engine

import (
	"fmt"
	"math/rand"
	"slices"
)

// Carver opens passages on a grid. All random draws come from rng.
type Carver struct {
	grid     *Grid
	rng      *rand.Rand
	recorder *Recorder
}

// NewCarver creates a carver. recorder may be nil when animation is off.
func NewCarver(grid *Grid, rng *rand.Rand, recorder *Recorder) *Carver {
	return &Carver{grid: grid, rng: rng, recorder: recorder}
}

// Run carves a whole maze: one pass from origin, and for imperfect mazes a
// second pass of the same algorithm over the already carved walls. The
// overlay is marked visited before each pass.
func (c *Carver) Run(algo Algorithm, origin Point, overlay Overlay, perfect bool) error {
	overlay.MarkVisited(c.grid)
	if err := c.Carve(algo, origin); err != nil {
		return err
	}

	if perfect {
		return nil
	}

	// Visited flags are cleared but walls are kept: the second walk treats
	// open passages as unexplored and opens extra walls between regions that
	// are already connected, which is what creates the loops.
	c.grid.ResetVisited()
	overlay.MarkVisited(c.grid)
	if err := c.Carve(algo, origin); err != nil {
		return fmt.Errorf("second pass: %w", err)
	}
	return nil
}

// Carve runs a single pass of algo from origin.
func (c *Carver) Carve(algo Algorithm, origin Point) error {
	switch algo {
	case DFS:
		return c.CarveDFS(origin.X, origin.Y)
	case Prim:
		return c.CarvePrim(origin.X, origin.Y)
	}
	return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
}

// CarveDFS is the recursive backtracker written with an explicit stack.
// Each iteration draws from the unvisited neighbors of the top cell and
// descends into the chosen one, which keeps the draw order of the recursive
// version.
func (c *Carver) CarveDFS(x, y int) error {
	if !c.grid.InBounds(x, y) {
		return fmt.Errorf("%w: origin (%d,%d)", ErrInvalidCoordinate, x, y)
	}

	c.grid.MarkVisited(x, y)
	stack := []Point{{X: x, Y: y}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := c.grid.UnvisitedNeighbors(curr.X, curr.Y)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[c.rng.Intn(len(candidates))]
		c.grid.MarkVisited(next.X, next.Y)
		if err := c.grid.RemovePairedWall(curr.X, curr.Y, next.Dir); err != nil {
			return err
		}
		c.record(curr.X, curr.Y, next.Dir)

		stack = append(stack, Point{X: next.X, Y: next.Y})
	}

	return nil
}

// CarvePrim grows the maze from a frontier of walls adjacent to explored
// cells. Stale entries whose target was reached meanwhile are skipped.
func (c *Carver) CarvePrim(x, y int) error {
	if !c.grid.InBounds(x, y) {
		return fmt.Errorf("%w: origin (%d,%d)", ErrInvalidCoordinate, x, y)
	}

	c.grid.MarkVisited(x, y)
	frontier := c.grid.UnvisitedNeighbors(x, y)

	for len(frontier) > 0 {
		i := c.rng.Intn(len(frontier))
		entry := frontier[i]
		frontier = slices.Delete(frontier, i, i+1)

		if c.grid.Visited(entry.X, entry.Y) {
			continue
		}

		back := entry.Dir.Opposite()
		if err := c.grid.RemovePairedWall(entry.X, entry.Y, back); err != nil {
			return err
		}
		c.record(entry.X, entry.Y, back)
		c.grid.MarkVisited(entry.X, entry.Y)

		frontier = append(frontier, c.grid.UnvisitedNeighbors(entry.X, entry.Y)...)
	}

	return nil
}

func (c *Carver) record(x, y int, dir Direction) {
	if c.recorder != nil {
		c.recorder.Record(x, y, dir)
	}
}
