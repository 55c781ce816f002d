package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGridDimensions(t *testing.T) {
	g := Grid{CellSize: 20, Width: 1000, Height: 800}

	assert.Equal(t, 50, g.Cols())
	assert.Equal(t, 40, g.Rows())
	assert.Equal(t, Point{X: 500, Y: 400}, g.Center())
	assert.True(t, g.Contains(Point{X: 980, Y: 780}))
	assert.False(t, g.Contains(Point{X: 1000, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -20}))
}

func TestSampleFreeCell(t *testing.T) {
	g := Grid{CellSize: 10, Width: 30, Height: 30}
	rng := rand.New(rand.NewSource(7))

	t.Run("avoids forbidden cells and stays aligned", func(t *testing.T) {
		forbidden := NewPointSet()
		for col := 0; col < 3; col++ {
			for row := 0; row < 3; row++ {
				if col != 2 || row != 1 {
					forbidden.Add(g.Cell(col, row))
				}
			}
		}
		for i := 0; i < 50; i++ {
			p, err := g.SampleFreeCell(rng, forbidden)
			require.NoError(t, err)
			assert.Equal(t, Point{X: 20, Y: 10}, p)
		}
	})

	t.Run("full grid is reported as exhausted", func(t *testing.T) {
		forbidden := NewPointSet()
		for col := 0; col < 3; col++ {
			for row := 0; row < 3; row++ {
				forbidden.Add(g.Cell(col, row))
			}
		}
		_, err := g.SampleFreeCell(rng, forbidden)
		assert.ErrorIs(t, err, ErrPlacementExhausted)
	})
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, Point{}, d.ToPoint().Add(d.Opposite().ToPoint()))
	}
	assert.Equal(t, None, None.Opposite())
}

func TestPointSetPointsOrdered(t *testing.T) {
	s := NewPointSet(Point{X: 20, Y: 10}, Point{X: 0, Y: 10}, Point{X: 40, Y: 0})
	assert.Equal(t, []Point{{X: 40, Y: 0}, {X: 0, Y: 10}, {X: 20, Y: 10}}, s.Points())
}
