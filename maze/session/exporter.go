package session

import (
	"errors"

	"github.com/wricardo/amazeing/maze/engine"
)

var ErrInvalidExport = errors.New("invalid export")

// Exporter writes a generated session somewhere.
type Exporter interface {
	// Export persists the maze and its solution
	Export(s *Session) error

	// Path returns where the last export went
	Path() string
}

// Export is the decoded content of an export file.
type Export struct {
	Width      int
	Height     int
	Walls      [][]uint8 // [y][x]
	Entry      engine.Point
	Exit       engine.Point
	Directions []engine.Direction
}

// Grid rebuilds an engine grid from the exported wall masks.
func (e *Export) Grid() (*engine.Grid, error) {
	g, err := engine.NewGrid(e.Width, e.Height)
	if err != nil {
		return nil, err
	}
	for y, row := range e.Walls {
		for x, walls := range row {
			if err := g.SetWalls(x, y, walls); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
