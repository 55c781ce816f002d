package game

import (
	"time"

	"snake-classic/game/types"
)

// Phase is the lifecycle stage of the game.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseSetup
	PhaseCountdown
	PhasePlaying
	PhasePaused
	PhaseHistoryView
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseSetup:
		return "setup"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseHistoryView:
		return "history"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// state is the phase-specific payload. Exactly one is active at a time.
type state interface {
	phase() Phase
}

type menuState struct{}

type setupState struct {
	difficulty  types.Difficulty
	speedInput  string
	inputActive bool
	speed       int
	errMsg      string
}

type historyState struct {
	offset int
}

type countdownState struct {
	session   *Session
	startedAt time.Time
}

type playingState struct {
	session  *Session
	lastStep time.Time
}

type pausedState struct {
	session  *Session
	pausedAt time.Time
}

type gameOverState struct {
	session *Session
}

func (*menuState) phase() Phase      { return PhaseMenu }
func (*setupState) phase() Phase     { return PhaseSetup }
func (*historyState) phase() Phase   { return PhaseHistoryView }
func (*countdownState) phase() Phase { return PhaseCountdown }
func (*playingState) phase() Phase   { return PhasePlaying }
func (*pausedState) phase() Phase    { return PhasePaused }
func (*gameOverState) phase() Phase  { return PhaseGameOver }

// SetupView is a snapshot of the setup screen.
type SetupView struct {
	Difficulty  types.Difficulty
	SpeedInput  string
	InputActive bool
	// Speed is the last accepted speed, zero when none was accepted yet.
	Speed int
	Error string
}
