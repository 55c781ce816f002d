package game

import (
	"fmt"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Session is one run from countdown to game over.
type Session struct {
	id           string
	mode         types.Mode
	difficulty   types.Difficulty
	initialSpeed int
	speed        int
	speedStep    int
	score        int
	foodEaten    int

	snake     *entity.Snake
	food      *manager.FoodManager
	obstacles *manager.ObstacleManager

	startTime   time.Time
	endTime     time.Time
	pausedTotal time.Duration
	collision   manager.CollisionType
	newRecord   bool
}

func newSession(cfg Config, rng *rand.Rand, mode types.Mode, difficulty types.Difficulty, speed int) (*Session, error) {
	grid := cfg.Grid
	s := &Session{
		id:           uuid.NewString(),
		mode:         mode,
		difficulty:   difficulty,
		initialSpeed: speed,
		speed:        speed,
		speedStep:    cfg.SpeedrunStep,
		snake:        entity.NewSnake(grid.Center(), types.Right, cfg.InitialLength, grid.CellSize),
		food:         manager.NewFoodManager(grid, rng),
		obstacles:    manager.NewObstacleManager(grid, rng),
	}

	if _, err := s.food.Spawn(s.snake); err != nil {
		return nil, err
	}
	if mode == types.Classic {
		if n := initialObstacles(difficulty); n > 0 {
			if err := s.obstacles.Generate(n, difficulty == types.Hard, s.snake, s.food); err != nil {
				return nil, fmt.Errorf("failed to generate obstacles: %w", err)
			}
		}
	}
	return s, nil
}

func initialObstacles(d types.Difficulty) int {
	switch d {
	case types.Medium:
		return 5
	case types.Hard:
		return 10
	default:
		return 0
	}
}

func regeneratedObstacles(d types.Difficulty) int {
	switch d {
	case types.Medium:
		return 3
	case types.Hard:
		return 5
	default:
		return 0
	}
}

// step advances the snake by one cell and reports whether the run ended.
func (s *Session) step(cm *manager.CollisionManager) (bool, error) {
	dir := s.snake.CommitDirection()
	next := s.snake.PeekNextHead(dir)

	if collision := cm.CheckCollision(next, s.snake, s.obstacles); collision != manager.NoCollision {
		s.collision = collision
		return true, nil
	}

	grew := s.food.Occupies(next)
	s.snake.Advance(next, grew)
	if !grew {
		return false, nil
	}

	s.score++
	s.foodEaten++
	if s.mode == types.Speedrun && s.foodEaten%s.speedStep == 0 {
		s.speed++
	}

	if _, err := s.food.Spawn(s.snake, s.obstacles); err != nil {
		return true, err
	}
	if s.mode == types.Classic {
		if n := regeneratedObstacles(s.difficulty); n > 0 {
			if err := s.obstacles.Generate(n, s.difficulty == types.Hard, s.snake, s.food); err != nil {
				return true, fmt.Errorf("failed to regenerate obstacles: %w", err)
			}
		}
	}
	return false, nil
}

// played is the game time up to at, excluding pauses.
func (s *Session) played(at time.Time) time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	d := at.Sub(s.startTime) - s.pausedTotal
	if d < 0 {
		return 0
	}
	return d
}

func (s *Session) ID() string                       { return s.id }
func (s *Session) Mode() types.Mode                 { return s.mode }
func (s *Session) Difficulty() types.Difficulty     { return s.difficulty }
func (s *Session) Speed() int                       { return s.speed }
func (s *Session) Score() int                       { return s.score }
func (s *Session) FoodEaten() int                   { return s.foodEaten }
func (s *Session) Food() types.Point                { return s.food.Food() }
func (s *Session) Obstacles() []types.Point         { return s.obstacles.GetObstacles() }
func (s *Session) Direction() types.Direction       { return s.snake.Direction }
func (s *Session) Collision() manager.CollisionType { return s.collision }
func (s *Session) StartTime() time.Time             { return s.startTime }
func (s *Session) EndTime() time.Time               { return s.endTime }
func (s *Session) PausedTotal() time.Duration       { return s.pausedTotal }
func (s *Session) NewRecord() bool                  { return s.newRecord }

// Snake returns a copy of the body, head first.
func (s *Session) Snake() []types.Point {
	body := make([]types.Point, len(s.snake.Body))
	copy(body, s.snake.Body)
	return body
}

// NextSpeedAt is the food count that raises the speedrun speed next.
func (s *Session) NextSpeedAt() int {
	return (s.foodEaten/s.speedStep + 1) * s.speedStep
}

// Label is the mode shown on the HUD: the difficulty in classic games.
func (s *Session) Label() string {
	if s.mode == types.Speedrun {
		return s.mode.String()
	}
	return s.difficulty.String()
}
