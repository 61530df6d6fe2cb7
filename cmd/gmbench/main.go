package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/oliverbestmann/gm/internal/bench"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "Workload file in YAML or JSON format")
	profileMode := flag.String("profile", "", "Write a 'cpu' or 'mem' profile")
	flag.Parse()

	if err := run(*configPath, *profileMode); err != nil {
		slog.Error("Benchmark failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(configPath, profileMode string) error {
	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	cfg := bench.DefaultConfig()

	if configPath != "" {
		loaded, err := bench.LoadFile(configPath)
		if err != nil {
			return err
		}

		cfg = *loaded
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	slog.Info("Running benchmark",
		slog.Int("iterations", cfg.Iterations),
		slog.Int("transforms", len(cfg.Transforms)),
		slog.String("rotation", cfg.Rotation),
	)

	result, err := bench.Run(ctx, cfg)
	if err != nil {
		return err
	}

	slog.Info("Benchmark finished",
		slog.Int("points", result.Points),
		slog.Float64("maxError", result.MaxError),
		slog.Duration("duration", result.Duration),
	)

	return nil
}
