package input

import "snake-classic/game"

const (
	ButtonWidth  = 200
	ButtonHeight = 50
)

type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is a clickable region drawn with a label.
type Button struct {
	Target game.Target
	Label  string
	Rect   Rect
}

type slot struct {
	target game.Target
	label  string
	y      float32
}

var layouts = map[game.Phase][]slot{
	game.PhaseMenu: {
		{game.TargetStartClassic, "Start Game", 200},
		{game.TargetStartSpeedrun, "Speedrun Mode", 280},
		{game.TargetHistory, "Game History", 360},
		{game.TargetQuit, "Quit", 440},
	},
	game.PhaseSetup: {
		{game.TargetEasy, "Easy", 150},
		{game.TargetMedium, "Medium", 220},
		{game.TargetHard, "Hard", 290},
		{game.TargetSpeedInput, "", 370},
		{game.TargetStartGame, "Start Game", 550},
		{game.TargetBack, "Back", 630},
	},
	game.PhasePaused: {
		{game.TargetContinue, "Continue Game", 220},
		{game.TargetResume, "Restart", 300},
		{game.TargetNewGame, "New Game", 380},
		{game.TargetMainMenu, "Main Menu", 460},
	},
}

// Buttons returns the clickable regions of phase, horizontally centered on
// a screen of the given width.
func Buttons(phase game.Phase, screenWidth int) []Button {
	slots := layouts[phase]
	if len(slots) == 0 {
		return nil
	}
	x := float32(screenWidth/2 - ButtonWidth/2)
	buttons := make([]Button, 0, len(slots))
	for _, s := range slots {
		buttons = append(buttons, Button{
			Target: s.target,
			Label:  s.label,
			Rect:   Rect{X: x, Y: s.y, W: ButtonWidth, H: ButtonHeight},
		})
	}
	return buttons
}

// HitTest returns the target under (x, y), or TargetNone.
func HitTest(buttons []Button, x, y float32) game.Target {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.Target
		}
	}
	return game.TargetNone
}

// Find returns the button for target.
func Find(buttons []Button, target game.Target) (Button, bool) {
	for _, b := range buttons {
		if b.Target == target {
			return b, true
		}
	}
	return Button{}, false
}
