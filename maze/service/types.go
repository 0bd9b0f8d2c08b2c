package service

import (
	"errors"
	"time"

	"github.com/wricardo/amazeing/maze/engine"
)

var ErrNoSession = errors.New("no maze has been generated yet")

// Color is an opaque display color token understood by the renderer.
type Color string

const (
	White   Color = "white"
	Red     Color = "red"
	Blue    Color = "blue"
	Yellow  Color = "yellow"
	Cyan    Color = "cyan"
	Magenta Color = "magenta"
)

// Palette lists the wall colors in rotation order.
var Palette = []Color{White, Red, Blue, Yellow, Cyan, Magenta}

// MazeInfo summarizes a generation for logs and status lines.
type MazeInfo struct {
	ID         string           `json:"id"`
	Algorithm  engine.Algorithm `json:"algorithm"`
	Seed       int64            `json:"seed"`
	Perfect    bool             `json:"perfect"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Passages   int              `json:"passages"`
	PathLength int              `json:"path_length"`
	Output     string           `json:"output"`
	CreatedAt  time.Time        `json:"created_at"`
}
