package input

import (
	"unicode"

	"snake-classic/game"
	"snake-classic/game/types"
)

// View is the part of the game the translator reads.
type View interface {
	Phase() game.Phase
	Setup() game.SetupView
}

var moveKeys = map[Key]types.Direction{
	KeyUp:    types.Up,
	KeyW:     types.Up,
	KeyDown:  types.Down,
	KeyS:     types.Down,
	KeyLeft:  types.Left,
	KeyA:     types.Left,
	KeyRight: types.Right,
	KeyD:     types.Right,
}

type Translator struct {
	screenWidth int
}

func NewTranslator(screenWidth int) *Translator {
	return &Translator{screenWidth: screenWidth}
}

// Translate maps ev to the commands it means in the current phase. Events
// with no meaning yield nil.
func (t *Translator) Translate(view View, ev Event) []game.Command {
	phase := view.Phase()

	if ev.Kind == KindClick {
		switch phase {
		case game.PhaseMenu, game.PhaseSetup, game.PhasePaused, game.PhaseHistoryView:
			target := HitTest(Buttons(phase, t.screenWidth), ev.X, ev.Y)
			return []game.Command{game.Click{Target: target}}
		}
		return nil
	}

	switch phase {
	case game.PhaseSetup:
		return t.setup(view.Setup(), ev)
	case game.PhaseHistoryView:
		if ev.Kind == KindWheel && ev.Wheel != 0 {
			delta := 1
			if ev.Wheel > 0 {
				delta = -1
			}
			return []game.Command{game.ScrollHistory{Delta: delta}}
		}
		if ev.Kind == KindKey && ev.Key == KeyEscape {
			return []game.Command{game.ToMenu{}}
		}
	case game.PhasePlaying:
		return playing(ev)
	case game.PhasePaused:
		return paused(ev)
	case game.PhaseGameOver:
		if ev.Kind != KindKey {
			return nil
		}
		switch ev.Key {
		case KeyR, KeyN:
			return []game.Command{game.Restart{}}
		case KeyB, KeyEscape:
			return []game.Command{game.ToMenu{}}
		}
	}
	return nil
}

func (t *Translator) setup(view game.SetupView, ev Event) []game.Command {
	switch ev.Kind {
	case KindChar:
		if view.InputActive && unicode.IsDigit(ev.Char) {
			return []game.Command{game.SetSpeedInput{Text: view.SpeedInput + string(ev.Char)}}
		}
	case KindKey:
		switch ev.Key {
		case KeyBackspace:
			if view.InputActive && view.SpeedInput != "" {
				text := []rune(view.SpeedInput)
				return []game.Command{game.SetSpeedInput{Text: string(text[:len(text)-1])}}
			}
		case KeyEnter:
			if view.InputActive {
				return []game.Command{game.CommitSpeed{}}
			}
			return []game.Command{game.ConfirmSetup{}}
		case KeyEscape:
			return []game.Command{game.ToMenu{}}
		}
	}
	return nil
}

func playing(ev Event) []game.Command {
	if ev.Kind != KindKey {
		return nil
	}
	if d, ok := moveKeys[ev.Key]; ok {
		return []game.Command{game.MoveIntent{Direction: d}}
	}
	switch ev.Key {
	case KeyP, KeyEscape:
		return []game.Command{game.Pause{}}
	case KeyN:
		return []game.Command{game.Restart{}}
	case KeyB:
		return []game.Command{game.ToMenu{}}
	}
	return nil
}

func paused(ev Event) []game.Command {
	if ev.Kind != KindKey {
		return nil
	}
	switch ev.Key {
	case KeyP, KeyEscape:
		return []game.Command{game.Resume{}}
	case KeyN:
		return []game.Command{game.Restart{}}
	case KeyB:
		return []game.Command{game.ToMenu{}}
	}
	return nil
}
