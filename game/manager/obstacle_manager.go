package manager

import (
	"fmt"

	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

const (
	ObstacleMargin = 3   // cells kept clear between an anchor and every edge
	WallChance     = 0.3 // probability that a slot becomes a wall when walls are enabled
	MinWallLength  = 2
	MaxWallLength  = 3
)

// ObstacleManager generates and owns the obstacle set.
type ObstacleManager struct {
	grid      types.Grid
	rng       *rand.Rand
	obstacles types.PointSet
}

func NewObstacleManager(grid types.Grid, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		grid:      grid,
		rng:       rng,
		obstacles: types.NewPointSet(),
	}
}

// Generate replaces the obstacle set with count new slots. Each slot is a
// single cell, or with walls enabled possibly a straight 2-3 cell wall that
// is placed whole or retried. No cell lands on forbidden.
func (om *ObstacleManager) Generate(count int, walls bool, forbidden ...types.Occupier) error {
	om.obstacles = types.NewPointSet()
	for slot := 0; slot < count; slot++ {
		if err := om.placeSlot(walls, forbidden); err != nil {
			return fmt.Errorf("failed to place obstacle %d of %d: %w", slot+1, count, err)
		}
	}
	return nil
}

func (om *ObstacleManager) placeSlot(walls bool, forbidden []types.Occupier) error {
	lo := ObstacleMargin
	maxCol := om.grid.Cols() - 1 - ObstacleMargin
	maxRow := om.grid.Rows() - 1 - ObstacleMargin
	if maxCol < lo || maxRow < lo {
		return types.ErrPlacementExhausted
	}

	for attempt := 0; attempt < types.MaxPlacementAttempts; attempt++ {
		anchor := om.grid.Cell(lo+om.rng.Intn(maxCol-lo+1), lo+om.rng.Intn(maxRow-lo+1))

		if walls && om.rng.Float64() < WallChance {
			if cells, ok := om.wallAt(anchor, forbidden); ok {
				for _, c := range cells {
					om.obstacles.Add(c)
				}
				return nil
			}
			continue
		}

		if om.free(anchor, forbidden) {
			om.obstacles.Add(anchor)
			return nil
		}
	}
	return types.ErrPlacementExhausted
}

// wallAt builds a wall from anchor and validates every cell before any of
// them is committed.
func (om *ObstacleManager) wallAt(anchor types.Point, forbidden []types.Occupier) ([]types.Point, bool) {
	length := MinWallLength + om.rng.Intn(MaxWallLength-MinWallLength+1)
	step := types.Right.ToPoint()
	if om.rng.Intn(2) == 1 {
		step = types.Down.ToPoint()
	}
	step = step.Scale(om.grid.CellSize)

	cells := make([]types.Point, 0, length)
	p := anchor
	for i := 0; i < length; i++ {
		if !om.free(p, forbidden) {
			return nil, false
		}
		cells = append(cells, p)
		p = p.Add(step)
	}
	return cells, true
}

func (om *ObstacleManager) free(p types.Point, forbidden []types.Occupier) bool {
	return om.grid.Contains(p) && !om.obstacles.Occupies(p) && !types.Blocked(p, forbidden...)
}

func (om *ObstacleManager) Occupies(p types.Point) bool {
	return om.obstacles.Occupies(p)
}

func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}

func (om *ObstacleManager) GetObstacles() []types.Point {
	return om.obstacles.Points()
}
