// Command analyze generates batches of seeded mazes with every carving
// algorithm and prints averaged structural statistics for each. It makes the
// difference between the long corridors of the backtracker and the bushy
// branching of Prim's algorithm visible at a glance.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/amazeing/maze/engine"
	"github.com/wricardo/amazeing/maze/session"
)

// Options selects the mazes to generate.
type Options struct {
	Width     int
	Height    int
	Count     int
	SeedStart int64
	Perfect   bool
	Overlay   bool
}

// Stats holds averages over a batch of mazes built with one algorithm.
type Stats struct {
	Algorithm  engine.Algorithm
	Mazes      int
	Passages   float64
	Loops      float64
	DeadEnds   float64
	Junctions  float64
	PathLength float64
}

var algorithms = []engine.Algorithm{engine.DFS, engine.Prim}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "compare the structure of mazes produced by each algorithm",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 20, Usage: "maze width in cells"},
			&cli.IntFlag{Name: "height", Value: 15, Usage: "maze height in cells"},
			&cli.IntFlag{Name: "count", Value: 50, Usage: "mazes per algorithm"},
			&cli.Int64Flag{Name: "seed-start", Value: 1, Usage: "seed of the first maze, incremented for each following one"},
			&cli.BoolFlag{Name: "imperfect", Usage: "generate mazes with loops"},
			&cli.BoolFlag{Name: "no-overlay", Usage: "do not reserve the 42 emblem"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := Options{
				Width:     cmd.Int("width"),
				Height:    cmd.Int("height"),
				Count:     cmd.Int("count"),
				SeedStart: cmd.Int64("seed-start"),
				Perfect:   !cmd.Bool("imperfect"),
				Overlay:   !cmd.Bool("no-overlay"),
			}
			stats, err := analyze(ctx, opts)
			if err != nil {
				return err
			}
			return report(cmd.Root().Writer, opts, stats)
		},
	}
}

// analyze builds opts.Count mazes per algorithm with consecutive seeds.
func analyze(ctx context.Context, opts Options) ([]Stats, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}

	var out []Stats
	for _, algo := range algorithms {
		st := Stats{Algorithm: algo}
		for i := 0; i < opts.Count; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			seed := opts.SeedStart + int64(i)
			s, err := session.New(session.Options{
				Width:     opts.Width,
				Height:    opts.Height,
				Entry:     engine.Point{},
				Exit:      engine.Point{X: opts.Width - 1, Y: opts.Height - 1},
				Perfect:   opts.Perfect,
				Seed:      &seed,
				Algorithm: algo,
				Overlay:   opts.Overlay,
			})
			if err != nil {
				return nil, fmt.Errorf("%s maze with seed %d: %w", algo, seed, err)
			}

			deadEnds, junctions := degrees(s)
			st.Mazes++
			st.Passages += float64(s.OpenPassages())
			st.Loops += float64(s.OpenPassages() - (s.Carvable() - 1))
			st.DeadEnds += float64(deadEnds)
			st.Junctions += float64(junctions)
			st.PathLength += float64(len(s.Directions))
		}

		n := float64(st.Mazes)
		st.Passages /= n
		st.Loops /= n
		st.DeadEnds /= n
		st.Junctions /= n
		st.PathLength /= n
		out = append(out, st)
	}
	return out, nil
}

// degrees counts carvable cells with a single opening and cells with three
// or more.
func degrees(s *session.Session) (deadEnds, junctions int) {
	g := s.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if s.Overlay.Contains(engine.Point{X: x, Y: y}) {
				continue
			}
			open := 0
			for _, d := range engine.Directions {
				if g.IsOpen(x, y, d) {
					open++
				}
			}
			switch {
			case open == 1:
				deadEnds++
			case open >= 3:
				junctions++
			}
		}
	}
	return deadEnds, junctions
}

func report(w io.Writer, opts Options, stats []Stats) error {
	kind := "perfect"
	if !opts.Perfect {
		kind = "imperfect"
	}
	if _, err := fmt.Fprintf(w, "%dx%d %s mazes, seeds %d..%d\n\n",
		opts.Width, opts.Height, kind, opts.SeedStart, opts.SeedStart+int64(opts.Count)-1); err != nil {
		return err
	}
	for _, st := range stats {
		_, err := fmt.Fprintf(w, "=== %s (%d mazes) ===\n"+
			"Passages:    %.1f\n"+
			"Loops:       %.1f\n"+
			"Dead ends:   %.1f\n"+
			"Junctions:   %.1f\n"+
			"Path length: %.1f\n\n",
			st.Algorithm, st.Mazes, st.Passages, st.Loops, st.DeadEnds, st.Junctions, st.PathLength)
		if err != nil {
			return err
		}
	}
	return nil
}
