package entity

import (
	"snake-classic/game/types"
)

// Snake is the player's body, head first. It never contains a cell twice;
// callers detect collisions before calling Advance.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	next      types.Direction
	cellSize  int
}

// NewSnake lays out length segments behind head, facing dir.
func NewSnake(head types.Point, dir types.Direction, length, cellSize int) *Snake {
	back := dir.Opposite().ToPoint().Scale(cellSize)
	body := make([]types.Point, 0, length)
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	return &Snake{
		Body:      body,
		Direction: dir,
		next:      dir,
		cellSize:  cellSize,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// PeekNextHead is the cell the head would enter moving in dir.
func (s *Snake) PeekNextHead(dir types.Direction) types.Point {
	return s.GetHead().Add(dir.ToPoint().Scale(s.cellSize))
}

// Advance prepends newHead and drops the tail unless the snake grew.
func (s *Snake) Advance(newHead types.Point, grew bool) {
	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	body = append(body, s.Body...)
	if !grew {
		body = body[:len(body)-1]
	}
	s.Body = body
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// OccupiesExceptTail ignores the last segment, which moves away on a
// non-growing tick.
func (s *Snake) OccupiesExceptTail(p types.Point) bool {
	for _, part := range s.Body[:len(s.Body)-1] {
		if part == p {
			return true
		}
	}
	return false
}

// QueueDirection records dir for the next tick. A 180-degree turn against
// the current direction is rejected.
func (s *Snake) QueueDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.next = dir
	return true
}

func (s *Snake) NextDirection() types.Direction {
	return s.next
}

// CommitDirection applies the queued direction at the start of a tick.
func (s *Snake) CommitDirection() types.Direction {
	s.Direction = s.next
	return s.Direction
}
