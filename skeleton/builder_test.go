package skeleton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bodyseg/skeleton"
)

func TestPath(t *testing.T) {
	g, err := skeleton.Path(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{1, 3}, g.Neighbors(2))
	assert.Equal(t, []int{3}, g.Neighbors(4))

	single, err := skeleton.Path(1)
	require.NoError(t, err)
	assert.Equal(t, 1, single.NodeCount())
	assert.Zero(t, single.EdgeCount())

	_, err = skeleton.Path(0)
	assert.ErrorIs(t, err, skeleton.ErrTooFewNodes)
}

func TestStar(t *testing.T) {
	g, err := skeleton.Star(3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	for leaf := 1; leaf <= 3; leaf++ {
		assert.Equal(t, []int{0}, g.Neighbors(leaf))
	}
	assert.InDelta(t, 1.0, g.PointAt(1).X, 1e-12, "first leaf sits on +X")

	_, err = skeleton.Star(0)
	assert.ErrorIs(t, err, skeleton.ErrTooFewNodes)
}

func TestCycle(t *testing.T) {
	g, err := skeleton.Cycle(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{1, 3}, g.Neighbors(0))
	assert.Equal(t, []int{2, 0}, g.Neighbors(3))

	_, err = skeleton.Cycle(2)
	assert.ErrorIs(t, err, skeleton.ErrTooFewNodes)
}

func TestGrid(t *testing.T) {
	// 0 1 2
	// 3 4 5
	g, err := skeleton.Grid(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t, []int{1, 3}, g.Neighbors(0))
	assert.Equal(t, []int{1, 3, 5}, g.Neighbors(4))
	assert.Equal(t, 2.0, g.PointAt(5).X)
	assert.Equal(t, 1.0, g.PointAt(5).Y)

	_, err = skeleton.Grid(0, 3)
	assert.ErrorIs(t, err, skeleton.ErrTooFewNodes)
}
