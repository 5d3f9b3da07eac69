// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logger"
	"github.com/katalvlaran/labyrinth/internal/metrics"
	"github.com/katalvlaran/labyrinth/maze"
)

func newCarveCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carve",
		Short: "Carve a maze and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}
			return runCarve(cmd, cfg)
		},
	}

	// Defaults live in config.Defaults; only flags the user sets override it.
	d := config.Defaults()
	cmd.Flags().Int("width", d["maze.width"].(int), "Number of columns")
	cmd.Flags().Int("height", d["maze.height"].(int), "Number of rows")
	cmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().String("algorithm", d["maze.algorithm"].(string), "Carving algorithm: kruskal, prim, backtracker")
	cmd.Flags().Bool("solve", false, "Mark the shortest route from the top-left to the bottom-right room")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file")
	return cmd
}

func runCarve(cmd *cobra.Command, cfg *config.Config) (err error) {
	log, closer, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return err
	}
	defer closeLog(closer, &err)

	log = log.With(slog.String("run_id", uuid.NewString()))
	rec := metrics.New(cfg.Metrics.Namespace)

	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, err := maze.NewGrid(cfg.Maze.Width, cfg.Maze.Height)
	if err != nil {
		return err
	}
	carver, err := maze.NewCarver(cfg.Maze.Algorithm, seed)
	if err != nil {
		return err
	}

	start := time.Now()
	err = maze.Carve(m, carver, maze.WithLogger(log))
	elapsed := time.Since(start)
	rec.RecordCarve(cfg.Maze.Algorithm, err == nil, elapsed, m.Width()*m.Height(), m.RemovedCount())
	if err != nil {
		log.Error("carve failed", slog.String("algorithm", cfg.Maze.Algorithm), slog.Any("error", err))
		return fmt.Errorf("carve: %w", err)
	}
	log.Info("maze carved",
		slog.String("algorithm", cfg.Maze.Algorithm),
		slog.Int64("seed", seed),
		slog.Int("width", m.Width()),
		slog.Int("height", m.Height()),
		slog.Int("removed", m.RemovedCount()),
		slog.Duration("elapsed", elapsed),
	)

	var route []maze.Room
	if cfg.Maze.Solve {
		from := maze.Room{X: 0, Y: 0}
		to := maze.Room{X: m.Width() - 1, Y: m.Height() - 1}

		start = time.Now()
		r, serr := m.Solve(from, to)
		if serr != nil {
			return fmt.Errorf("solve: %w", serr)
		}
		length := -1.0
		if r.Exists() {
			route = r.Vertices()
			length = r.TotalWeight()
		}
		rec.RecordSolve(time.Since(start), length)
		log.Info("maze solved", slog.Any("from", from), slog.Any("to", to), slog.Float64("length", length))
	}

	if err = m.Render(cmd.OutOrStdout(), route); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if cfg.Metrics.File != "" {
		if err = rec.WriteTextfile(cfg.Metrics.File); err != nil {
			return err
		}
		log.Debug("metrics written", slog.String("file", cfg.Metrics.File))
	}
	return nil
}

// closeLog closes the log sink and joins a close failure into *err.
func closeLog(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("close log: %w", cerr))
	}
}
