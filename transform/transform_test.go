// SPDX-License-Identifier: MIT
package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/matrix"
	"github.com/katalvlaran/lvtrace/transform"
	"github.com/katalvlaran/lvtrace/tuple"
)

const rtHalf = math.Sqrt2 / 2

// requireTupleNear compares component-wise within delta. Used where an
// inverse or trig identity accumulates more than one ulp of drift.
func requireTupleNear(t *testing.T, want, got tuple.Tuple, delta float64) {
	t.Helper()
	w, g := want.Components(), got.Components()
	for i := range w {
		require.InDeltaf(t, w[i], g[i], delta, "component %d: want %v, got %v", i, want, got)
	}
}

func TestTranslation(t *testing.T) {
	t.Parallel()

	tr := transform.Translation(5, -3, 2)
	p := tuple.Point(-3, 4, 5)
	assert.True(t, tuple.Point(2, 1, 7).Equal(tr.MulTuple(p)))
	assert.True(t, tuple.Point(-8, 7, 3).Equal(tr.Inverse().MulTuple(p)))

	v := tuple.Vector(-3, 4, 5)
	assert.True(t, v.Equal(transform.Apply(tr, v)), "vectors ignore translation")
}

func TestScaling(t *testing.T) {
	t.Parallel()

	s := transform.Scaling(2, 3, 4)
	assert.True(t, tuple.Point(-8, 18, 32).Equal(s.MulTuple(tuple.Point(-4, 6, 8))))
	assert.True(t, tuple.Vector(-8, 18, 32).Equal(s.MulTuple(tuple.Vector(-4, 6, 8))))
	assert.True(t, tuple.Vector(-2, 2, 2).Equal(s.Inverse().MulTuple(tuple.Vector(-4, 6, 8))))

	reflect := transform.Scaling(-1, 1, 1)
	assert.True(t, tuple.Point(-2, 3, 4).Equal(reflect.MulTuple(tuple.Point(2, 3, 4))))
}

func TestRotations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    *matrix.Matrix
		in   tuple.Tuple
		want tuple.Tuple
	}{
		{"x eighth", transform.RotationX(math.Pi / 4), tuple.Point(0, 1, 0), tuple.Point(0, rtHalf, rtHalf)},
		{"x quarter", transform.RotationX(math.Pi / 2), tuple.Point(0, 1, 0), tuple.Point(0, 0, 1)},
		{"y eighth", transform.RotationY(math.Pi / 4), tuple.Point(0, 0, 1), tuple.Point(rtHalf, 0, rtHalf)},
		{"y quarter", transform.RotationY(math.Pi / 2), tuple.Point(0, 0, 1), tuple.Point(1, 0, 0)},
		{"z eighth", transform.RotationZ(math.Pi / 4), tuple.Point(0, 1, 0), tuple.Point(-rtHalf, rtHalf, 0)},
		{"z quarter", transform.RotationZ(math.Pi / 2), tuple.Point(0, 1, 0), tuple.Point(-1, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireTupleNear(t, tc.want, tc.m.MulTuple(tc.in), 1e-12)
		})
	}

	// inverse rotates the opposite way
	inv := transform.RotationX(math.Pi / 4).Inverse()
	requireTupleNear(t, tuple.Point(0, rtHalf, -rtHalf), inv.MulTuple(tuple.Point(0, 1, 0)), 1e-12)
}

func TestShearing(t *testing.T) {
	t.Parallel()

	p := tuple.Point(2, 3, 4)
	cases := []struct {
		name                   string
		xy, xz, yx, yz, zx, zy float64
		want                   tuple.Tuple
	}{
		{"x by y", 1, 0, 0, 0, 0, 0, tuple.Point(5, 3, 4)},
		{"x by z", 0, 1, 0, 0, 0, 0, tuple.Point(6, 3, 4)},
		{"y by x", 0, 0, 1, 0, 0, 0, tuple.Point(2, 5, 4)},
		{"y by z", 0, 0, 0, 1, 0, 0, tuple.Point(2, 7, 4)},
		{"z by x", 0, 0, 0, 0, 1, 0, tuple.Point(2, 3, 6)},
		{"z by y", 0, 0, 0, 0, 0, 1, tuple.Point(2, 3, 7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := transform.Shearing(tc.xy, tc.xz, tc.yx, tc.yz, tc.zx, tc.zy)
			assert.True(t, tc.want.Equal(m.MulTuple(p)))
		})
	}
}

func TestChain_ApplicationOrder(t *testing.T) {
	t.Parallel()

	p := tuple.Point(1, 0, 1)
	a := transform.RotationX(math.Pi / 2)
	b := transform.Scaling(5, 5, 5)
	c := transform.Translation(10, 5, 7)

	// step by step
	p2 := a.MulTuple(p)
	requireTupleNear(t, tuple.Point(1, -1, 0), p2, 1e-12)
	p3 := b.MulTuple(p2)
	requireTupleNear(t, tuple.Point(5, -5, 0), p3, 1e-12)
	p4 := c.MulTuple(p3)
	requireTupleNear(t, tuple.Point(15, 0, 7), p4, 1e-12)

	// chained
	requireTupleNear(t, tuple.Point(15, 0, 7), transform.Chain(a, b, c).MulTuple(p), 1e-12)

	assert.True(t, matrix.Identity().Equal(transform.Chain()))
}
