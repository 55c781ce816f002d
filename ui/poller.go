package ui

import (
	"snake-classic/game/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyMap = map[int32]input.Key{
	rl.KeyUp:        input.KeyUp,
	rl.KeyDown:      input.KeyDown,
	rl.KeyLeft:      input.KeyLeft,
	rl.KeyRight:     input.KeyRight,
	rl.KeyW:         input.KeyW,
	rl.KeyA:         input.KeyA,
	rl.KeyS:         input.KeyS,
	rl.KeyD:         input.KeyD,
	rl.KeyP:         input.KeyP,
	rl.KeyN:         input.KeyN,
	rl.KeyB:         input.KeyB,
	rl.KeyR:         input.KeyR,
	rl.KeyEnter:     input.KeyEnter,
	rl.KeyKpEnter:   input.KeyEnter,
	rl.KeyBackspace: input.KeyBackspace,
	rl.KeyEscape:    input.KeyEscape,
}

// PollEvents drains the input raylib collected for the current frame.
func PollEvents() []input.Event {
	var events []input.Event
	for code, key := range keyMap {
		if rl.IsKeyPressed(code) {
			events = append(events, input.KeyEvent(key))
		}
	}
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		events = append(events, input.CharEvent(rune(c)))
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		events = append(events, input.ClickEvent(pos.X, pos.Y))
	}
	if move := rl.GetMouseWheelMove(); move != 0 {
		events = append(events, input.WheelEvent(move))
	}
	return events
}
