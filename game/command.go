package game

import "snake-classic/game/types"

// Command is an abstract input understood by the state machine. Commands
// that do not apply to the current phase are ignored.
type Command interface {
	isCommand()
}

type (
	MoveIntent       struct{ Direction types.Direction }
	Pause            struct{}
	Resume           struct{}
	Restart          struct{}
	ToMenu           struct{}
	SelectDifficulty struct{ Difficulty types.Difficulty }
	SetSpeedInput    struct{ Text string }
	// CommitSpeed validates the typed speed without leaving setup.
	CommitSpeed   struct{}
	ConfirmSetup  struct{}
	ScrollHistory struct{ Delta int }
	Click         struct{ Target Target }
	Quit          struct{}
)

func (MoveIntent) isCommand()       {}
func (Pause) isCommand()            {}
func (Resume) isCommand()           {}
func (Restart) isCommand()          {}
func (ToMenu) isCommand()           {}
func (SelectDifficulty) isCommand() {}
func (SetSpeedInput) isCommand()    {}
func (CommitSpeed) isCommand()      {}
func (ConfirmSetup) isCommand()     {}
func (ScrollHistory) isCommand()    {}
func (Click) isCommand()            {}
func (Quit) isCommand()             {}

// Target names a clickable region.
type Target int

const (
	TargetNone Target = iota
	TargetStartClassic
	TargetStartSpeedrun
	TargetHistory
	TargetQuit
	TargetEasy
	TargetMedium
	TargetHard
	TargetSpeedInput
	TargetStartGame
	TargetBack
	TargetContinue
	TargetResume
	TargetNewGame
	TargetMainMenu
)

// Difficulty maps a difficulty button to its value.
func (t Target) Difficulty() types.Difficulty {
	switch t {
	case TargetEasy:
		return types.Easy
	case TargetMedium:
		return types.Medium
	case TargetHard:
		return types.Hard
	default:
		return types.DifficultyNone
	}
}
