// SPDX-License-Identifier: MIT
package projectile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/canvas"
	"github.com/katalvlaran/lvtrace/projectile"
	"github.com/katalvlaran/lvtrace/transform"
	"github.com/katalvlaran/lvtrace/tuple"
)

func TestTick(t *testing.T) {
	env := projectile.Environment{
		Gravity: tuple.Vector(0, -0.1, 0),
		Wind:    tuple.Vector(-0.01, 0, 0),
	}
	p := projectile.Projectile{Position: tuple.Point(0, 1, 0), Velocity: tuple.Vector(1, 1, 0)}

	next := projectile.Tick(env, p)
	assert.True(t, tuple.Point(1, 2, 0).Equal(next.Position), "position %v", next.Position)
	assert.True(t, tuple.Vector(0.99, 0.9, 0).Equal(next.Velocity), "velocity %v", next.Velocity)
	assert.True(t, next.Position.IsPoint())
	assert.True(t, next.Velocity.IsVector())

	// input untouched
	assert.Equal(t, tuple.Point(0, 1, 0), p.Position)
}

func TestTrajectory_LandsOnGround(t *testing.T) {
	env := projectile.Environment{Gravity: tuple.Vector(0, -1, 0)}
	p := projectile.Projectile{Position: tuple.Point(0, 1, 0), Velocity: tuple.Vector(0, 2, 0)}

	path := projectile.Trajectory(env, p, 0)
	ys := make([]float64, len(path))
	for i, pos := range path {
		ys[i] = pos.Y
	}
	assert.Equal(t, []float64{1, 3, 4, 4, 3, 1}, ys)
}

func TestTrajectory_MaxTicks(t *testing.T) {
	env := projectile.Environment{}
	p := projectile.Projectile{Position: tuple.Point(0, 1, 0), Velocity: tuple.Vector(1, 0, 0)}

	path := projectile.Trajectory(env, p, 10)
	require.Len(t, path, 11)
	assert.True(t, tuple.Point(10, 1, 0).Equal(path[10]))
}

func TestViewport(t *testing.T) {
	vp := projectile.Viewport(5)
	assert.True(t, tuple.Point(2, 4, 0).Equal(vp.MulTuple(tuple.Point(2, 1, 0))))
	assert.True(t, tuple.Point(0, 5, 0).Equal(vp.MulTuple(tuple.Point(0, 0, 0))))
}

func TestPlot(t *testing.T) {
	c, err := canvas.New(10, 5)
	require.NoError(t, err)
	white := tuple.Color(1, 1, 1)

	path := []tuple.Tuple{
		tuple.Point(2, 1, 0),
		tuple.Point(3.4, 3.6, 0), // rounds to (3, 1) on screen
		tuple.Point(20, 2, 0),    // off the right edge
		tuple.Point(1, 0, 0),     // y == height on screen, off the bottom
	}
	n, err := projectile.Plot(context.Background(), c, path, white, transform.WithChunkSize(1))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, xy := range [][2]int{{2, 4}, {3, 1}} {
		px, err := c.Pixel(xy[0], xy[1])
		require.NoError(t, err)
		assert.Equal(t, white, px, "pixel %v", xy)
	}
	px, err := c.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, tuple.Color(0, 0, 0), px)
}

// Half-unit heights round in world space: row = height - round(y).
func TestPlot_RoundsBeforeFlip(t *testing.T) {
	c, err := canvas.New(10, 10)
	require.NoError(t, err)
	white := tuple.Color(1, 1, 1)

	n, err := projectile.Plot(context.Background(), c, []tuple.Tuple{tuple.Point(4, 2.5, 0)}, white)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	px, err := c.Pixel(4, 7)
	require.NoError(t, err)
	assert.Equal(t, white, px)
	px, err = c.Pixel(4, 8)
	require.NoError(t, err)
	assert.Equal(t, tuple.Color(0, 0, 0), px)
}

func TestPlot_Cancelled(t *testing.T) {
	c, err := canvas.New(4, 4)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = projectile.Plot(ctx, c, []tuple.Tuple{tuple.Point(1, 1, 0)}, tuple.Color(1, 0, 0))
	require.ErrorIs(t, err, context.Canceled)
}

func TestString(t *testing.T) {
	p := projectile.Projectile{Position: tuple.Point(1, 2.5, 0)}
	assert.Equal(t, "1.00 2.50 0.00", p.String())
}
