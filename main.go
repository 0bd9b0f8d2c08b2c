// Command amazeing generates mazes and lets you explore them.
//
// It offers four commands:
//  1. "play" – opens the interactive maze menu on the terminal
//  2. "generate" – builds one maze, writes the export file and optionally
//     prints it
//  3. "validate" – checks export files for structural errors
//  4. "presets" – lists the configurations found in the config directory
//
// A CONFIG argument is either a path to a configuration file or the name of
// a preset from --config-dir. A .env file in the working directory is loaded
// first so AMAZEING_* variables can provide flag defaults.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/amazeing/logging"
	"github.com/wricardo/amazeing/maze/config"
	"github.com/wricardo/amazeing/maze/engine"
	"github.com/wricardo/amazeing/maze/service"
	"github.com/wricardo/amazeing/render"
	"github.com/wricardo/amazeing/transport/tui"
	"github.com/wricardo/amazeing/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "A-Maze-ing"
)

var errValidationFailed = errors.New("validation failed")

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newApp assembles the command tree.
func newApp() *cli.Command {
	return &cli.Command{
		Name:      "amazeing",
		Usage:     "generate and explore mazes",
		Version:   Version,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("AMAZEING_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to this file",
				Sources: cli.EnvVars("AMAZEING_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory holding preset configurations",
				Sources: cli.EnvVars("AMAZEING_CONFIG_DIR", "CONFIG_DIR"),
			},
		},
		Commands: []*cli.Command{
			playCommand(),
			generateCommand(),
			validateCommand(),
			presetsCommand(),
		},
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "open the interactive maze menu",
		ArgsUsage: "CONFIG",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "watch", Usage: "regenerate when the configuration file changes"},
			&cli.BoolFlag{Name: "no-intro", Usage: "skip the welcome screen"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd, cmd.Args().First())
			if err != nil {
				return err
			}

			// The screen belongs to the maze, so logs only go to a file.
			log, closeLog, err := newLogger(cmd, nil)
			if err != nil {
				return err
			}
			defer closeLog()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize screen: %w", err)
			}
			defer screen.Fini()

			log.WithFields(logrus.Fields{
				"config":  cfg.Source,
				"version": Version,
			}).Info("starting interactive session")

			app := tui.New(screen, service.NewMazeService(cfg, nil, log), log)
			app.SkipIntro = cmd.Bool("no-intro")
			if cmd.Bool("watch") {
				app.WatchPath = cfg.Source
			}
			return app.Run(ctx)
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "generate one maze and write its export file",
		ArgsUsage: "CONFIG",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "algorithm", Usage: "carving algorithm: dfs or prim"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed, overrides SEED"},
			&cli.StringFlag{Name: "output", Usage: "export file, overrides OUTPUT_FILE"},
			&cli.BoolFlag{Name: "print", Usage: "print the maze with its path"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loaded, err := loadConfig(cmd, cmd.Args().First())
			if err != nil {
				return err
			}
			cfg := *loaded
			cfg.Animate = false

			if cmd.IsSet("algorithm") {
				algo, err := engine.ParseAlgorithm(cmd.String("algorithm"))
				if err != nil {
					return err
				}
				cfg.Algorithm = algo
			}
			if cmd.IsSet("seed") {
				seed := cmd.Int64("seed")
				cfg.Seed = &seed
			}
			if cmd.IsSet("output") {
				cfg.OutputFile = cmd.String("output")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, closeLog, err := newLogger(cmd, cmd.Root().ErrWriter)
			if err != nil {
				return err
			}
			defer closeLog()

			svc := service.NewMazeService(&cfg, nil, log)
			info, err := svc.Regenerate(ctx, "")
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			colored := isColorTerminal(out)
			if cmd.Bool("print") {
				sess, err := svc.Current(ctx)
				if err != nil {
					return err
				}
				frame := render.BuildFrame(render.Scene{
					Grid:    sess.Grid,
					Overlay: sess.Overlay,
					Entry:   sess.Entry,
					Exit:    sess.Exit,
					Path:    sess.Path,
				})
				if err := render.WriteText(out, frame, string(svc.Color()), colored); err != nil {
					return err
				}
			}

			return render.WriteSummary(out, colored, "%s maze %dx%d, seed %d, %d passages, path %d steps, saved to %s",
				info.Algorithm, info.Width, info.Height, info.Seed, info.Passages, info.PathLength, info.Output)
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check maze export files",
		ArgsUsage: "FILE...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return fmt.Errorf("no export file given")
			}

			out := cmd.Root().Writer
			failed := 0
			for _, path := range files {
				result := validate.File(path)
				status := "VALID"
				if !result.Valid {
					status = "INVALID"
					failed++
				}
				fmt.Fprintf(out, "=== %s: %s ===\n", result.File, status)
				for _, line := range result.Errors {
					fmt.Fprintf(out, "  %s\n", line)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errValidationFailed, failed, len(files))
			}
			return nil
		},
	}
}

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "list the configurations of the config directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			manager, err := config.NewManager(cmd.String("config-dir"))
			if err != nil {
				return err
			}
			presets, err := manager.List()
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "SIZE", "PERFECT", "FILE")
			for _, p := range presets {
				t.Row(p.Name, fmt.Sprintf("%dx%d", p.Width, p.Height), strconv.FormatBool(p.Perfect), p.Filename)
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, t.Render())
			return err
		},
	}
}

// loadConfig reads ref as a file when it exists and as a preset name
// otherwise.
func loadConfig(cmd *cli.Command, ref string) (*config.Config, error) {
	if ref == "" {
		return nil, fmt.Errorf("missing CONFIG argument, see %s %s --help", cmd.Root().Name, cmd.Name)
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return config.Load(ref)
	}

	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	return manager.Load(ref)
}

// newLogger honors --debug and --log-file; without a log file, lines go to
// fallback.
func newLogger(cmd *cli.Command, fallback io.Writer) (*logrus.Logger, func() error, error) {
	return logging.New(logging.Options{
		Debug:  cmd.Bool("debug"),
		File:   cmd.String("log-file"),
		Output: fallback,
	})
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && render.ColorEnabled(f)
}
