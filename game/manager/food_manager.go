package manager

import (
	"fmt"

	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food cell of a session.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food types.Point
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Spawn moves the food to a random cell not held by any of forbidden.
func (fm *FoodManager) Spawn(forbidden ...types.Occupier) (types.Point, error) {
	food, err := fm.grid.SampleFreeCell(fm.rng, forbidden...)
	if err != nil {
		return types.Point{}, fmt.Errorf("failed to spawn food: %w", err)
	}
	fm.Place(food)
	return food, nil
}

func (fm *FoodManager) Place(food types.Point) {
	fm.food = food
}

func (fm *FoodManager) Food() types.Point {
	return fm.food
}

func (fm *FoodManager) Occupies(p types.Point) bool {
	return fm.food == p
}
