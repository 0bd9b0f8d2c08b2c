// Package engine provides the maze data model and the algorithms that operate on it.
//
// The engine package implements:
//   - Wall-mask cells and the rectangular grid that owns them
//   - The fixed "42" emblem overlay embedded into the grid topology
//   - Depth-first backtracker and randomized Prim carving
//   - The imperfect second pass that re-opens loops
//   - Breadth-first shortest-path solving and direction encoding
//   - Recording of carving steps for animated replay
//
// Core Types:
//
// Grid owns a [y][x] array of Cell values. Each Cell stores a 4-bit wall
// mask (bit0=N, bit1=E, bit2=S, bit3=W, a set bit is a wall) and a transient
// visited flag used while carving. Carver opens passages on a Grid using an
// injected *rand.Rand, so carving is reproducible for a fixed seed.
//
// Usage:
//
//	grid, err := engine.NewGrid(20, 15)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	overlay := engine.ComputeOverlay(grid.Width, grid.Height)
//	overlay.MarkVisited(grid)
//
//	carver := engine.NewCarver(grid, rand.New(rand.NewSource(42)), nil)
//	if err := carver.Carve(engine.DFS, engine.Point{}); err != nil {
//		log.Fatal(err)
//	}
//
//	path, err := engine.Solve(grid, engine.Point{X: 0, Y: 0}, engine.Point{X: 19, Y: 14})
//	dirs, err := engine.DirectionsFromPath(path)
//
// Invariants:
//
// Passages are only ever opened in pairs: clearing the east wall of a cell
// clears the west wall of its neighbor in the same call. Cells of the
// overlay are marked visited before every carving pass, so no carving step
// ever targets them and they stay fully walled.
package engine
