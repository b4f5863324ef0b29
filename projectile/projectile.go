// SPDX-License-Identifier: MIT

// Package projectile is a small physics demo built on tuple arithmetic.
//
// Each tick moves the projectile by its velocity, then bends the velocity by
// gravity and wind. Trajectory records positions until the projectile
// reaches the ground (Y <= 0); Plot draws them onto a canvas.
package projectile

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtrace/canvas"
	"github.com/katalvlaran/lvtrace/matrix"
	"github.com/katalvlaran/lvtrace/transform"
	"github.com/katalvlaran/lvtrace/tuple"
)

// DefaultMaxTicks bounds Trajectory when the caller passes maxTicks <= 0.
const DefaultMaxTicks = 100_000

// Projectile is a point with a velocity.
type Projectile struct {
	Position tuple.Tuple // point
	Velocity tuple.Tuple // vector
}

// Environment holds the constant accelerations applied every tick.
type Environment struct {
	Gravity tuple.Tuple // vector
	Wind    tuple.Tuple // vector
}

// String renders the position with two decimals.
func (p Projectile) String() string {
	return fmt.Sprintf("%.2f %.2f %.2f", p.Position.X, p.Position.Y, p.Position.Z)
}

// Tick advances p by one step in env.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: tuple.Sum(p.Velocity, env.Gravity, env.Wind),
	}
}

// Trajectory returns the start position followed by every position with Y > 0.
// It stops at the first tick that lands (Y <= 0) or after maxTicks ticks.
func Trajectory(env Environment, p Projectile, maxTicks int) []tuple.Tuple {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	path := []tuple.Tuple{p.Position}
	for i := 0; i < maxTicks; i++ {
		p = Tick(env, p)
		if p.Position.Y <= 0 {
			break
		}
		path = append(path, p.Position)
	}

	return path
}

// Viewport maps world coordinates (Y up) onto canvas pixels (Y down)
// for a canvas of the given height.
func Viewport(height int) *matrix.Matrix {
	return transform.Chain(
		transform.Scaling(1, -1, 1),
		transform.Translation(0, float64(height), 0),
	)
}

// Plot draws path onto c in col and returns how many pixels landed on the canvas.
// World coordinates are rounded to whole units first (so a pixel row is
// height - round(y)), then mapped through Viewport in parallel; points that
// fall outside the canvas are skipped.
func Plot(ctx context.Context, c *canvas.Canvas, path []tuple.Tuple, col tuple.Tuple, opts ...transform.Option) (int, error) {
	snapped := make([]tuple.Tuple, len(path))
	for i, p := range path {
		snapped[i] = tuple.New(math.Round(p.X), math.Round(p.Y), p.Z, p.W)
	}
	screen, err := transform.ApplyAll(ctx, Viewport(c.Height()), snapped, opts...)
	if err != nil {
		return 0, fmt.Errorf("projectile: plot: %w", err)
	}

	plotted := 0
	for _, s := range screen {
		x, y := int(s.X), int(s.Y)
		if err := c.SetPixel(x, y, col); err != nil {
			if errors.Is(err, canvas.ErrOutOfRange) {
				continue
			}
			return plotted, fmt.Errorf("projectile: plot: %w", err)
		}
		plotted++
	}

	return plotted, nil
}
