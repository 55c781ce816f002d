package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	ObstacleCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies moving the head of snake onto pos.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, obstacles types.Occupier) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}

	// The tail leaves its cell on the same tick, so it cannot be hit.
	if snake.OccupiesExceptTail(pos) {
		return SelfCollision
	}

	if obstacles != nil && obstacles.Occupies(pos) {
		return ObstacleCollision
	}

	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}
