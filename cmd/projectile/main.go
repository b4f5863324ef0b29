// SPDX-License-Identifier: MIT

// Command projectile fires a projectile through gravity and wind and plots
// its path onto a canvas.
//
// Settings come from a .env file, LVTRACE_* environment variables and
// flags, in increasing priority. Run with -h for the flag list.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvtrace/canvas"
	"github.com/katalvlaran/lvtrace/projectile"
	"github.com/katalvlaran/lvtrace/transform"
	"github.com/katalvlaran/lvtrace/tuple"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("projectile: ")

	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	plotted, err := run(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Done: %d points", plotted)
}

// run simulates the flight described by cfg and writes the canvas to cfg.Output.
func run(ctx context.Context, cfg Config) (int, error) {
	c, err := canvas.New(cfg.Width, cfg.Height)
	if err != nil {
		return 0, err
	}

	start := projectile.Projectile{
		Position: tuple.Point(0, 1, 0),
		Velocity: tuple.Vector(1, 1.8, 0).Normalize().Scale(cfg.Speed),
	}
	env := projectile.Environment{Gravity: cfg.Gravity, Wind: cfg.Wind}
	path := projectile.Trajectory(env, start, projectile.DefaultMaxTicks)

	var opts []transform.Option
	if cfg.Workers > 0 {
		opts = append(opts, transform.WithWorkers(cfg.Workers))
	}
	plotted, err := projectile.Plot(ctx, c, path, tuple.Color(1, 1, 1), opts...)
	if err != nil {
		return 0, err
	}

	log.Printf("Writing to file %s...", cfg.Output)
	if err := c.WriteFile(cfg.Output); err != nil {
		return 0, fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	return plotted, nil
}
