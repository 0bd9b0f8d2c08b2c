package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/wricardo/amazeing/maze/engine"
)

// Options configures a single generation.
type Options struct {
	Width     int
	Height    int
	Entry     engine.Point
	Exit      engine.Point
	Perfect   bool
	Seed      *int64 // nil means seeded from the clock
	Animate   bool
	Algorithm engine.Algorithm
	Overlay   bool
}

// Session is one generated maze with its solution.
type Session struct {
	ID         string
	Grid       *engine.Grid
	Overlay    engine.Overlay
	Entry      engine.Point
	Exit       engine.Point
	Perfect    bool
	Algorithm  engine.Algorithm
	Seed       int64
	Recorder   *engine.Recorder
	Path       []engine.Point
	Directions []engine.Direction
	CreatedAt  time.Time
}

// New carves a maze and solves it. A session whose entry or exit falls
// inside the emblem fails with engine.ErrGeometryConflict.
func New(opts Options) (*Session, error) {
	algo := opts.Algorithm
	if algo == "" {
		algo = engine.DFS
	}
	if _, err := engine.ParseAlgorithm(string(algo)); err != nil {
		return nil, err
	}

	grid, err := engine.NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	var overlay engine.Overlay
	if opts.Overlay {
		overlay = engine.ComputeOverlay(opts.Width, opts.Height)
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	s := &Session{
		ID:        uuid.New().String(),
		Grid:      grid,
		Overlay:   overlay,
		Entry:     opts.Entry,
		Exit:      opts.Exit,
		Perfect:   opts.Perfect,
		Algorithm: algo,
		Seed:      seed,
		CreatedAt: time.Now(),
	}
	if opts.Animate {
		s.Recorder = engine.NewRecorder()
	}

	carver := engine.NewCarver(grid, rand.New(rand.NewSource(seed)), s.Recorder)
	if err := carver.Run(algo, engine.Point{}, overlay, opts.Perfect); err != nil {
		return nil, fmt.Errorf("carve %s maze: %w", algo, err)
	}

	if p, ok := overlay.Conflicts(opts.Entry, opts.Exit); ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrGeometryConflict, p)
	}

	if err := s.RecomputePath(); err != nil {
		return nil, err
	}
	return s, nil
}

// RecomputePath solves the maze again from the current grid.
func (s *Session) RecomputePath() error {
	path, err := engine.Solve(s.Grid, s.Entry, s.Exit)
	if err != nil {
		return err
	}
	dirs, err := engine.DirectionsFromPath(path)
	if err != nil {
		return err
	}
	s.Path = path
	s.Directions = dirs
	return nil
}

// DirectionString returns the solution as a string of N/E/S/W letters.
func (s *Session) DirectionString() string {
	return engine.EncodeDirections(s.Directions)
}

func (s *Session) OpenPassages() int {
	return s.Grid.OpenPassages()
}

// Carvable is the number of cells outside the emblem.
func (s *Session) Carvable() int {
	return s.Grid.Width*s.Grid.Height - s.Overlay.Len()
}
