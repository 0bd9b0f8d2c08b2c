// Package session ties a carved grid, its emblem and its solution together.
//
// A Session is created in one go by New: the grid is allocated, the emblem
// is marked, the carver runs (twice for imperfect mazes), the entry and exit
// are checked against the emblem and the shortest path is computed. Sessions
// are not reused; regenerating a maze creates a new Session.
//
// Export Format:
//
// FileExporter writes the text format consumed by the validate command:
//
//	9515391539551795151151153        one hex digit per cell and row
//	...
//	                                 blank line
//	0,0                              entry
//	24,19                            exit
//	SWSESWSESWSSSEES...              solution letters, no trailing newline
//
// Each digit is the wall mask of a cell: bit 0 north, bit 1 east, bit 2
// south, bit 3 west, a set bit meaning the wall is present.
//
// Usage:
//
//	sess, err := session.New(session.Options{
//		Width: 20, Height: 15,
//		Entry: engine.Point{}, Exit: engine.Point{X: 19, Y: 14},
//		Perfect: true, Algorithm: engine.DFS, Overlay: true,
//	})
//	if err != nil {
//		return err
//	}
//
//	exporter, _ := session.NewFileExporter("maze.txt")
//	err = exporter.Export(sess)
package session
