// Package input turns raw keyboard and mouse events into game commands.
// It holds no display code so it can be tested without a window.
package input

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyN
	KeyB
	KeyR
	KeyEnter
	KeyBackspace
	KeyEscape
)

type Kind int

const (
	KindKey Kind = iota + 1
	KindChar
	KindClick
	KindWheel
)

// Event is one polled input. X and Y are the pointer position for clicks,
// Wheel is positive when scrolled up.
type Event struct {
	Kind  Kind
	Key   Key
	Char  rune
	X, Y  float32
	Wheel float32
}

func KeyEvent(k Key) Event { return Event{Kind: KindKey, Key: k} }

func CharEvent(c rune) Event { return Event{Kind: KindChar, Char: c} }

func ClickEvent(x, y float32) Event { return Event{Kind: KindClick, X: x, Y: y} }

func WheelEvent(move float32) Event { return Event{Kind: KindWheel, Wheel: move} }
