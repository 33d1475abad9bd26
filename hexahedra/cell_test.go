package hexahedra

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellMap(t *testing.T) {
	corners := distortedCorners()
	c := NewCell(corners)
	for n, uc := range UnitCorners {
		x := c.Map(uc)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, corners[n][i], x[i], 1e-12)
		}
	}
	for i, want := range []float64{-0.04, -0.05, -0.04} {
		assert.InDelta(t, want, c.Min[i], 1e-12)
	}
	for i, want := range []float64{2.12, 1.1, 3.1} {
		assert.InDelta(t, want, c.Max[i], 1e-12)
	}
}

func TestCellLocate(t *testing.T) {
	c := NewCell(distortedCorners())
	for _, p0 := range interiorPoints() {
		x := c.Map(p0)
		xhat, err := c.Locate(x)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, p0[i], xhat[i], 1e-5)
		}
		assert.True(t, c.Contains(x))
	}
	assert.False(t, c.Contains(Vec3{5, 0.5, 1}))
	// Inside the bounding box but outside the cell
	require.True(t, c.InBoundingBox(Vec3{-0.03, 0.5, 0.2}))
	assert.False(t, c.Contains(Vec3{-0.03, 0.5, 0.2}))

	box := NewCell(boxCorners(2, 1, 3))
	assert.False(t, box.Contains(Vec3{2.5, 0.5, 1}))
	assert.True(t, box.Contains(Vec3{2, 1, 3}))
}

func TestCellInterpolate(t *testing.T) {
	corners := distortedCorners()
	c := NewCell(corners)
	phi := linearField(corners, 1, -2, 0.5, 4)
	for _, p0 := range interiorPoints() {
		x := c.Map(p0)
		val, err := c.Interpolate(x, phi)
		require.NoError(t, err)
		assert.InDelta(t, x[0]-2*x[1]+0.5*x[2]+4, val, 1e-4)

		grad, err := c.Gradient(x, phi)
		require.NoError(t, err)
		assert.InDelta(t, 1, grad[0], 1e-9)
		assert.InDelta(t, -2, grad[1], 1e-9)
		assert.InDelta(t, 0.5, grad[2], 1e-9)
	}
	box := NewCell(boxCorners(2, 1, 3))
	_, err := box.Interpolate(Vec3{3, 0.5, 1}, phi)
	assert.True(t, errors.Is(err, ErrOutsideCell))
}

func TestCellFallback(t *testing.T) {
	c := NewCell(shearedCorners())
	c.Mapper = &InverseMapper{MaxIterations: 2, Tolerance: DefaultTolerance}
	p0 := Vec3{0.3, 0.6, 0.2}
	x := c.Map(p0)

	_, err := c.Locate(x)
	assert.True(t, errors.Is(err, ErrNonConvergence))

	c.Fallback = true
	xhat, err := c.Locate(x)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, p0[i], xhat[i], 1e-5)
	}
}

func TestOptimize(t *testing.T) {
	for _, corners := range [][8]Vec3{distortedCorners(), shearedCorners()} {
		c := NewCell(corners)
		for _, p0 := range []Vec3{{0.5, 0.5, 0.5}, {0.1, 0.8, 0.3}, {0.95, 0.05, 0.65}} {
			xhat, err := NewInverseMapper().Optimize(c.Map(p0), c.XCoef, c.YCoef, c.ZCoef)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				assert.InDelta(t, p0[i], xhat[i], 1e-5)
			}
		}
	}
}
