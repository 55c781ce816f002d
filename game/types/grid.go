package types

import (
	"errors"

	"golang.org/x/exp/rand"
)

// MaxPlacementAttempts bounds every randomized placement loop.
const MaxPlacementAttempts = 10000

// ErrPlacementExhausted is returned when no free cell was found within
// MaxPlacementAttempts draws.
var ErrPlacementExhausted = errors.New("placement exhausted")

// Grid describes the play field in pixels. Cells are CellSize squares.
type Grid struct {
	CellSize int
	Width    int
	Height   int
}

// Cols is the number of cells per row.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows is the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cell returns the pixel coordinate of the cell at col, row.
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Contains reports whether p lies inside the play field.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell closest to the middle of the field.
func (g Grid) Center() Point {
	return g.Cell(g.Cols()/2, g.Rows()/2)
}

// SampleFreeCell draws cells uniformly until one is not occupied by any of
// forbidden. The caller keeps the forbidden area a small fraction of the grid.
func (g Grid) SampleFreeCell(rng *rand.Rand, forbidden ...Occupier) (Point, error) {
	cols, rows := g.Cols(), g.Rows()
	if cols <= 0 || rows <= 0 {
		return Point{}, ErrPlacementExhausted
	}
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		p := g.Cell(rng.Intn(cols), rng.Intn(rows))
		if !anyOccupies(p, forbidden) {
			return p, nil
		}
	}
	return Point{}, ErrPlacementExhausted
}

// Blocked reports whether any of the occupiers holds p.
func Blocked(p Point, occupiers ...Occupier) bool {
	return anyOccupies(p, occupiers)
}

func anyOccupies(p Point, occupiers []Occupier) bool {
	for _, o := range occupiers {
		if o != nil && o.Occupies(p) {
			return true
		}
	}
	return false
}
