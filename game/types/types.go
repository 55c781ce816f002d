package types

import "sort"

// Point is a pixel coordinate aligned to the grid cell size.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k on both axes.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Direction is a cardinal direction of travel.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a unit displacement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "None"
	}
}

// Difficulty selects obstacle density in classic mode.
type Difficulty int

const (
	DifficultyNone Difficulty = iota
	Easy
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "None"
	}
}

// Mode is the game variant.
type Mode int

const (
	Classic Mode = iota
	Speedrun
)

func (m Mode) String() string {
	if m == Speedrun {
		return "Speedrun"
	}
	return "Classic"
}

// Occupier reports whether a cell is taken by something.
type Occupier interface {
	Occupies(p Point) bool
}

// PointSet is an unordered set of cells.
type PointSet map[Point]struct{}

func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Occupies(p Point) bool {
	_, ok := s[p]
	return ok
}

// Points returns the members ordered by row, then column.
func (s PointSet) Points() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
