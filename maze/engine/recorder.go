package engine

import "fmt"

// Step is one wall opened during carving: the passage from (X, Y) towards Dir.
type Step struct {
	X   int       `json:"x"`
	Y   int       `json:"y"`
	Dir Direction `json:"dir"`
}

// Recorder keeps the carving steps in chronological order.
type Recorder struct {
	steps []Step
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a step.
func (r *Recorder) Record(x, y int, dir Direction) {
	r.steps = append(r.steps, Step{X: x, Y: y, Dir: dir})
}

// Steps returns a copy of the recorded steps.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Clear drops every recorded step once they have been displayed.
func (r *Recorder) Clear() {
	r.steps = nil
}

// Replay rebuilds the carving on a fresh width x height grid, calling fn
// after each step with the partially carved grid and the step index.
// A non-nil error from fn stops the replay.
func (r *Recorder) Replay(width, height int, fn func(g *Grid, i int) error) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	for i, s := range r.steps {
		if err := g.RemovePairedWall(s.X, s.Y, s.Dir); err != nil {
			return nil, fmt.Errorf("replay step %d: %w", i, err)
		}
		if fn != nil {
			if err := fn(g, i); err != nil {
				return g, err
			}
		}
	}

	return g, nil
}
