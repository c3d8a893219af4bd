package render

import (
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Game code draws the arena, effects and overlays through it
// without importing the backend.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// Text operations. size is the pixel height of a line; (x, y) is the
	// top-left corner of the text.
	DrawText(dst Image, text string, x, y float64, clr color.Color, size float64)
	MeasureText(text string, size float64) (width, height float64)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	// Size returns the drawable area in pixels.
	Size() (width, height int)

	// Fill fills the whole image with clr.
	Fill(clr color.Color)
}

// GamepadID identifies a connected gamepad.
type GamepadID int

// Axis is a standard-layout analog axis.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
)

// InputManager handles input from the user (keyboard and gamepads).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool

	// GamepadIDs returns every connected gamepad.
	GamepadIDs() []GamepadID
	// JustConnectedGamepads returns gamepads connected this tick.
	JustConnectedGamepads() []GamepadID
	// IsGamepadJustDisconnected reports whether id went away this tick.
	IsGamepadJustDisconnected(id GamepadID) bool
	// GamepadAxis returns an axis value in [-1, 1].
	GamepadAxis(id GamepadID, axis Axis) float64
	// IsGamepadConfirmPressed reports the level of the confirm button
	// (bottom face button on a standard layout).
	IsGamepadConfirmPressed(id GamepadID) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyM // Mute toggle
	KeyF // Fullscreen toggle
)

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetFullscreen switches between windowed and fullscreen mode.
	SetFullscreen(fullscreen bool)

	// IsFullscreen reports whether the window is fullscreen.
	IsFullscreen() bool

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
