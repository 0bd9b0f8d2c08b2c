package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/wricardo/amazeing/maze/config"
	"github.com/wricardo/amazeing/maze/engine"
	"github.com/wricardo/amazeing/maze/session"
)

// mazeServiceImpl implements the MazeService interface
type mazeServiceImpl struct {
	cfg         *config.Config
	newExporter ExporterFactory
	log         *logrus.Logger

	current     *session.Session
	seeded      bool // the configured seed has been used
	colorIndex  int
	pathVisible bool
	mu          sync.RWMutex
}

// NewMazeService creates a service for cfg. Every generation is exported
// through an exporter created by newExporter for cfg.OutputFile.
func NewMazeService(cfg *config.Config, newExporter ExporterFactory, log *logrus.Logger) MazeService {
	if newExporter == nil {
		newExporter = FileExporters
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &mazeServiceImpl{
		cfg:         cfg,
		newExporter: newExporter,
		log:         log,
	}
}

// Regenerate replaces the current maze. The configured seed is only used for
// the first generation; later ones are seeded from the clock so the player
// sees a different maze each time. An empty algo keeps the configured one.
func (s *mazeServiceImpl) Regenerate(ctx context.Context, algo engine.Algorithm) (*MazeInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if algo == "" {
		algo = s.cfg.Algorithm
	}

	var seed *int64
	if !s.seeded {
		seed = s.cfg.Seed
	}

	sess, err := session.New(session.Options{
		Width:     s.cfg.Width,
		Height:    s.cfg.Height,
		Entry:     s.cfg.Entry,
		Exit:      s.cfg.Exit,
		Perfect:   s.cfg.Perfect,
		Seed:      seed,
		Animate:   s.cfg.Animate,
		Algorithm: algo,
		Overlay:   s.cfg.Overlay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate maze: %w", err)
	}
	s.seeded = true

	exporter, err := s.newExporter(s.cfg.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}
	if err := exporter.Export(sess); err != nil {
		return nil, fmt.Errorf("failed to export maze: %w", err)
	}

	s.current = sess
	s.pathVisible = false
	info := s.info(sess, exporter.Path())

	s.log.WithFields(logrus.Fields{
		"session_id": info.ID,
		"algorithm":  info.Algorithm.String(),
		"seed":       info.Seed,
		"perfect":    info.Perfect,
		"passages":   info.Passages,
		"path_len":   info.PathLength,
		"output":     info.Output,
	}).Info("maze generated")

	return info, nil
}

// Current returns the maze being displayed
func (s *mazeServiceImpl) Current(ctx context.Context) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoSession
	}
	return s.current, nil
}

// Reconfigure swaps the configuration. The next generation uses the new
// seed, if any.
func (s *mazeServiceImpl) Reconfigure(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil configuration", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
	s.seeded = false
	s.log.WithField("source", cfg.Source).Info("configuration reloaded")
	return nil
}

func (s *mazeServiceImpl) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Path returns the solution of the current maze
func (s *mazeServiceImpl) Path(ctx context.Context) ([]engine.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoSession
	}
	return s.current.Path, nil
}

// RecomputePath solves the current maze again
func (s *mazeServiceImpl) RecomputePath(ctx context.Context) ([]engine.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoSession
	}
	if err := s.current.RecomputePath(); err != nil {
		return nil, err
	}
	return s.current.Path, nil
}

// TogglePath flips the path visibility and returns the new state
func (s *mazeServiceImpl) TogglePath(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pathVisible = !s.pathVisible
	return s.pathVisible
}

func (s *mazeServiceImpl) PathVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pathVisible
}

// RotateColor moves to the next wall color of the palette
func (s *mazeServiceImpl) RotateColor(ctx context.Context) Color {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.colorIndex = (s.colorIndex + 1) % len(Palette)
	s.log.WithField("color", Palette[s.colorIndex]).Debug("wall color changed")
	return Palette[s.colorIndex]
}

func (s *mazeServiceImpl) Color() Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Palette[s.colorIndex]
}

func (s *mazeServiceImpl) info(sess *session.Session, output string) *MazeInfo {
	return &MazeInfo{
		ID:         sess.ID,
		Algorithm:  sess.Algorithm,
		Seed:       sess.Seed,
		Perfect:    sess.Perfect,
		Width:      sess.Grid.Width,
		Height:     sess.Grid.Height,
		Passages:   sess.OpenPassages(),
		PathLength: len(sess.Directions),
		Output:     output,
		CreatedAt:  sess.CreatedAt,
	}
}
