package service

import (
	"context"

	"github.com/wricardo/amazeing/maze/config"
	"github.com/wricardo/amazeing/maze/engine"
	"github.com/wricardo/amazeing/maze/session"
)

// MazeService defines the operations available to an interactive front end
type MazeService interface {
	// Generation
	Regenerate(ctx context.Context, algo engine.Algorithm) (*MazeInfo, error)
	Current(ctx context.Context) (*session.Session, error)
	Reconfigure(ctx context.Context, cfg *config.Config) error
	Config() *config.Config

	// Solution
	Path(ctx context.Context) ([]engine.Point, error)
	RecomputePath(ctx context.Context) ([]engine.Point, error)
	TogglePath(ctx context.Context) bool
	PathVisible() bool

	// Display
	RotateColor(ctx context.Context) Color
	Color() Color
}

// ExporterFactory creates the exporter for an output path.
type ExporterFactory func(path string) (session.Exporter, error)

// FileExporters is the ExporterFactory used outside tests.
func FileExporters(path string) (session.Exporter, error) {
	return session.NewFileExporter(path)
}
