package render

import (
	"strings"

	"github.com/wricardo/amazeing/maze/engine"
)

// Kind classifies a character of the drawn maze.
type Kind uint8

const (
	KindOpen Kind = iota
	KindWall
	KindEmblem
	KindPath
	KindEntry
	KindExit
)

// Rune returns the character drawn for the kind.
func (k Kind) Rune() rune {
	switch k {
	case KindWall:
		return '█'
	case KindEmblem:
		return '▓'
	case KindPath:
		return '░'
	case KindEntry:
		return 'S'
	case KindExit:
		return 'E'
	}
	return ' '
}

// Cell geometry: each maze cell is drawn as a wall column plus three interior
// columns, over a content row and a wall row.
const (
	cellWidth  = 4
	cellHeight = 2
)

// Scene is everything needed to draw a maze.
type Scene struct {
	Grid    *engine.Grid
	Overlay engine.Overlay
	Entry   engine.Point
	Exit    engine.Point
	Path    []engine.Point // nil when the path is hidden
}

// Frame is a drawn maze, addressed [row][column].
type Frame struct {
	Width  int
	Height int
	Kinds  [][]Kind
}

// FrameSize returns the character size of a width x height maze.
func FrameSize(width, height int) (int, int) {
	return width*cellWidth + 1, height*cellHeight + 1
}

// BuildFrame lays out the scene. The top row and the rightmost column are
// always walls; every other wall comes from the cell masks.
func BuildFrame(sc Scene) *Frame {
	g := sc.Grid
	fw, fh := FrameSize(g.Width, g.Height)

	f := &Frame{Width: fw, Height: fh, Kinds: make([][]Kind, fh)}
	for r := range f.Kinds {
		f.Kinds[r] = make([]Kind, fw)
	}

	onPath := make(map[engine.Point]bool, len(sc.Path))
	for _, p := range sc.Path {
		onPath[p] = true
	}

	for c := 0; c < fw; c++ {
		f.Kinds[0][c] = KindWall
	}

	for y := 0; y < g.Height; y++ {
		content := f.Kinds[y*cellHeight+1]
		below := f.Kinds[y*cellHeight+2]

		for x := 0; x < g.Width; x++ {
			p := engine.Point{X: x, Y: y}
			cell := g.Cell(x, y)
			col := x * cellWidth

			switch {
			case cell.HasWall(engine.West):
				content[col] = KindWall
			case onPath[p] && onPath[engine.Point{X: x - 1, Y: y}]:
				content[col] = KindPath
			}

			fill := KindOpen
			switch {
			case sc.Overlay.Contains(p):
				fill = KindEmblem
			case onPath[p]:
				fill = KindPath
			}
			for i := 1; i < cellWidth; i++ {
				content[col+i] = fill
			}
			switch p {
			case sc.Entry:
				content[col+2] = KindEntry
			case sc.Exit:
				content[col+2] = KindExit
			}

			below[col] = KindWall
			var south Kind
			switch {
			case cell.HasWall(engine.South):
				south = KindWall
			case onPath[p] && onPath[engine.Point{X: x, Y: y + 1}]:
				south = KindPath
			}
			for i := 1; i < cellWidth; i++ {
				below[col+i] = south
			}
		}

		content[fw-1] = KindWall
		below[fw-1] = KindWall
	}

	return f
}

// Lines renders the frame as plain text, one string per row.
func (f *Frame) Lines() []string {
	lines := make([]string, f.Height)
	var sb strings.Builder
	for r, row := range f.Kinds {
		sb.Reset()
		for _, k := range row {
			sb.WriteRune(k.Rune())
		}
		lines[r] = sb.String()
	}
	return lines
}

// At returns the kind drawn at column c of row r.
func (f *Frame) At(c, r int) Kind {
	return f.Kinds[r][c]
}
