package input

import (
	"testing"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
)

type fakeView struct {
	phase game.Phase
	setup game.SetupView
}

func (v fakeView) Phase() game.Phase     { return v.phase }
func (v fakeView) Setup() game.SetupView { return v.setup }

const screenWidth = 1000

func center(b Button) (float32, float32) {
	return b.Rect.X + b.Rect.W/2, b.Rect.Y + b.Rect.H/2
}

func TestButtonsGeometry(t *testing.T) {
	menu := Buttons(game.PhaseMenu, screenWidth)
	assert.Len(t, menu, 4)
	for _, b := range menu {
		assert.Equal(t, float32(400), b.Rect.X)
		assert.Equal(t, float32(ButtonWidth), b.Rect.W)
		assert.Equal(t, float32(ButtonHeight), b.Rect.H)
	}

	speed, ok := Find(Buttons(game.PhaseSetup, screenWidth), game.TargetSpeedInput)
	assert.True(t, ok)
	assert.Equal(t, float32(370), speed.Rect.Y)

	assert.Len(t, Buttons(game.PhasePaused, screenWidth), 4)
	assert.Empty(t, Buttons(game.PhasePlaying, screenWidth))
}

func TestHitTest(t *testing.T) {
	buttons := Buttons(game.PhaseMenu, screenWidth)
	for _, b := range buttons {
		x, y := center(b)
		assert.Equal(t, b.Target, HitTest(buttons, x, y))
	}
	assert.Equal(t, game.TargetQuit, HitTest(buttons, 400, 440))
	assert.Equal(t, game.TargetNone, HitTest(buttons, 600, 440), "right edge is exclusive")
	assert.Equal(t, game.TargetNone, HitTest(buttons, 10, 10))
}

func TestTranslatePlaying(t *testing.T) {
	tr := NewTranslator(screenWidth)
	view := fakeView{phase: game.PhasePlaying}

	tests := []struct {
		key  Key
		want []game.Command
	}{
		{KeyUp, []game.Command{game.MoveIntent{Direction: types.Up}}},
		{KeyW, []game.Command{game.MoveIntent{Direction: types.Up}}},
		{KeyS, []game.Command{game.MoveIntent{Direction: types.Down}}},
		{KeyA, []game.Command{game.MoveIntent{Direction: types.Left}}},
		{KeyRight, []game.Command{game.MoveIntent{Direction: types.Right}}},
		{KeyP, []game.Command{game.Pause{}}},
		{KeyN, []game.Command{game.Restart{}}},
		{KeyB, []game.Command{game.ToMenu{}}},
		{KeyR, nil},
		{KeyEnter, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.Translate(view, KeyEvent(tt.key)), "key %d", tt.key)
	}
	assert.Nil(t, tr.Translate(view, ClickEvent(500, 225)))
	assert.Nil(t, tr.Translate(view, WheelEvent(1)))
}

func TestTranslatePaused(t *testing.T) {
	tr := NewTranslator(screenWidth)
	view := fakeView{phase: game.PhasePaused}

	assert.Equal(t, []game.Command{game.Resume{}}, tr.Translate(view, KeyEvent(KeyP)))
	assert.Equal(t, []game.Command{game.Resume{}}, tr.Translate(view, KeyEvent(KeyEscape)))
	assert.Equal(t, []game.Command{game.Restart{}}, tr.Translate(view, KeyEvent(KeyN)))
	assert.Equal(t, []game.Command{game.ToMenu{}}, tr.Translate(view, KeyEvent(KeyB)))
	assert.Nil(t, tr.Translate(view, KeyEvent(KeyUp)))

	newGame, _ := Find(Buttons(game.PhasePaused, screenWidth), game.TargetNewGame)
	x, y := center(newGame)
	assert.Equal(t, []game.Command{game.Click{Target: game.TargetNewGame}}, tr.Translate(view, ClickEvent(x, y)))
}

func TestTranslateSetup(t *testing.T) {
	tr := NewTranslator(screenWidth)
	active := fakeView{phase: game.PhaseSetup, setup: game.SetupView{SpeedInput: "1", InputActive: true}}
	idle := fakeView{phase: game.PhaseSetup, setup: game.SetupView{SpeedInput: "1"}}

	assert.Equal(t, []game.Command{game.SetSpeedInput{Text: "12"}}, tr.Translate(active, CharEvent('2')))
	assert.Nil(t, tr.Translate(active, CharEvent('x')))
	assert.Nil(t, tr.Translate(idle, CharEvent('2')))

	assert.Equal(t, []game.Command{game.SetSpeedInput{Text: ""}}, tr.Translate(active, KeyEvent(KeyBackspace)))
	assert.Nil(t, tr.Translate(idle, KeyEvent(KeyBackspace)))

	assert.Equal(t, []game.Command{game.CommitSpeed{}}, tr.Translate(active, KeyEvent(KeyEnter)))
	assert.Equal(t, []game.Command{game.ConfirmSetup{}}, tr.Translate(idle, KeyEvent(KeyEnter)))
	assert.Equal(t, []game.Command{game.ToMenu{}}, tr.Translate(idle, KeyEvent(KeyEscape)))

	hard, _ := Find(Buttons(game.PhaseSetup, screenWidth), game.TargetHard)
	x, y := center(hard)
	assert.Equal(t, []game.Command{game.Click{Target: game.TargetHard}}, tr.Translate(idle, ClickEvent(x, y)))
	assert.Equal(t, []game.Command{game.Click{Target: game.TargetNone}}, tr.Translate(idle, ClickEvent(5, 5)))
}

func TestTranslateHistory(t *testing.T) {
	tr := NewTranslator(screenWidth)
	view := fakeView{phase: game.PhaseHistoryView}

	assert.Equal(t, []game.Command{game.ScrollHistory{Delta: -1}}, tr.Translate(view, WheelEvent(1)))
	assert.Equal(t, []game.Command{game.ScrollHistory{Delta: 1}}, tr.Translate(view, WheelEvent(-2.5)))
	assert.Nil(t, tr.Translate(view, WheelEvent(0)))
	assert.Equal(t, []game.Command{game.Click{Target: game.TargetNone}}, tr.Translate(view, ClickEvent(5, 5)))
	assert.Equal(t, []game.Command{game.ToMenu{}}, tr.Translate(view, KeyEvent(KeyEscape)))
}

func TestTranslateGameOverAndCountdown(t *testing.T) {
	tr := NewTranslator(screenWidth)
	over := fakeView{phase: game.PhaseGameOver}

	assert.Equal(t, []game.Command{game.Restart{}}, tr.Translate(over, KeyEvent(KeyR)))
	assert.Equal(t, []game.Command{game.ToMenu{}}, tr.Translate(over, KeyEvent(KeyB)))
	assert.Nil(t, tr.Translate(over, KeyEvent(KeyUp)))
	assert.Nil(t, tr.Translate(over, ClickEvent(500, 300)))

	countdown := fakeView{phase: game.PhaseCountdown}
	assert.Nil(t, tr.Translate(countdown, KeyEvent(KeyP)))
	assert.Nil(t, tr.Translate(countdown, ClickEvent(500, 300)))
}
