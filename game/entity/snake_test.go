package entity

import (
	"testing"

	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(types.Point{X: 100, Y: 40}, types.Right, 3, 20)

	assert.Equal(t, []types.Point{{X: 100, Y: 40}, {X: 80, Y: 40}, {X: 60, Y: 40}}, s.Body)
	assert.Equal(t, types.Point{X: 120, Y: 40}, s.PeekNextHead(types.Right))
	assert.Equal(t, types.Point{X: 100, Y: 20}, s.PeekNextHead(types.Up))
}

func TestAdvance(t *testing.T) {
	t.Run("without growth keeps length", func(t *testing.T) {
		s := NewSnake(types.Point{X: 100, Y: 40}, types.Right, 3, 20)
		s.Advance(s.PeekNextHead(types.Right), false)

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, types.Point{X: 120, Y: 40}, s.GetHead())
		assert.False(t, s.Occupies(types.Point{X: 60, Y: 40}))
	})

	t.Run("with growth adds one segment", func(t *testing.T) {
		s := NewSnake(types.Point{X: 100, Y: 40}, types.Right, 3, 20)
		s.Advance(s.PeekNextHead(types.Right), true)

		assert.Equal(t, 4, s.Len())
		assert.True(t, s.Occupies(types.Point{X: 60, Y: 40}))
	})
}

func TestOccupiesExceptTail(t *testing.T) {
	s := NewSnake(types.Point{X: 100, Y: 40}, types.Right, 3, 20)
	tail := s.Body[2]

	assert.True(t, s.Occupies(tail))
	assert.False(t, s.OccupiesExceptTail(tail))
	assert.True(t, s.OccupiesExceptTail(s.Body[1]))
}

func TestQueueDirection(t *testing.T) {
	s := NewSnake(types.Point{X: 100, Y: 40}, types.Right, 3, 20)

	assert.False(t, s.QueueDirection(types.Left))
	assert.Equal(t, types.Right, s.NextDirection())
	assert.False(t, s.QueueDirection(types.None))

	assert.True(t, s.QueueDirection(types.Up))
	assert.Equal(t, types.Right, s.Direction, "queued turns wait for the next tick")
	assert.Equal(t, types.Up, s.CommitDirection())

	// Reversal is judged against the committed direction, not the queue.
	assert.True(t, s.QueueDirection(types.Left))
	assert.False(t, s.QueueDirection(types.Down))
	assert.Equal(t, types.Left, s.NextDirection())
}
