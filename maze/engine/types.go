package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a single wall bit of a cell.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

const (
	// AllWalls is the mask of a cell with every wall present.
	AllWalls uint8 = 0xF

	// MinOverlaySize is the smallest width and height that can hold the emblem.
	MinOverlaySize = 10
)

var (
	ErrGeometryConflict  = errors.New("entry or exit lies inside the 42 pattern")
	ErrUnreachable       = errors.New("exit is unreachable from entry")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidPath       = errors.New("invalid path")
	ErrUnknownAlgorithm  = errors.New("unknown carving algorithm")
)

// Directions lists the four directions in the fixed exploration order.
var Directions = [4]Direction{North, East, South, West}

// Valid reports whether d is exactly one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case North, East, South, West:
		return true
	}
	return false
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return 0
}

// Delta returns the column and row offsets of one step towards d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the single letter code of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a letter code into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Point represents x,y coordinates (x is the column, y the row)
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Step returns the point one cell away towards d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats the point the way the export file does.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Cell is a single grid unit.
type Cell struct {
	Walls   uint8
	Visited bool
}

// HasWall reports whether the wall towards d is present.
func (c Cell) HasWall(d Direction) bool {
	return c.Walls&uint8(d) != 0
}

// Algorithm names a carving strategy.
type Algorithm string

const (
	DFS  Algorithm = "dfs"
	Prim Algorithm = "prim"
)

// ParseAlgorithm accepts "dfs" or "prim" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case DFS:
		return DFS, nil
	case Prim:
		return Prim, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// String returns the display name used by menus and logs.
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "DFS"
	case Prim:
		return "Prim"
	}
	return string(a)
}
