package game

import "chosenoffset.com/fetchfrenzy/internal/render"

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// KeyScheme is the keyboard layout that drives a slot with no gamepad.
type KeyScheme struct {
	Up, Down, Left, Right render.Key
	Confirm               render.Key
}

// DefaultKeySchemes puts player 1 on WASD and Space, player 2 on the arrow
// keys and Enter.
var DefaultKeySchemes = []KeyScheme{
	{Up: render.KeyW, Down: render.KeyS, Left: render.KeyA, Right: render.KeyD, Confirm: render.KeySpace},
	{Up: render.KeyUp, Down: render.KeyDown, Left: render.KeyLeft, Right: render.KeyRight, Confirm: render.KeyEnter},
}
