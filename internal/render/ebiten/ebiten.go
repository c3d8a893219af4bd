package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/fetchfrenzy/internal/render"
)

// baseFontSize is the line height of the bitmap face text is scaled from.
const baseFontSize = 13.0

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	face text.Face
}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(unwrap(dst), x, y, radius, strokeWidth, clr, true)
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, true)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *EbitenRenderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(unwrap(dst), x, y, width, height, strokeWidth, clr, true)
}

// StrokeLine draws a line segment on the destination image.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(unwrap(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

// DrawText draws text with the bitmap face scaled to size pixels per line.
// Translucent colors fade the text.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y float64, clr color.Color, size float64) {
	scale := size / baseFontSize
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(unwrap(dst), str, r.face, op)
}

// MeasureText measures the width and height of text at the given size.
func (r *EbitenRenderer) MeasureText(str string, size float64) (width, height float64) {
	w, h := text.Measure(str, r.face, baseFontSize)
	scale := size / baseFontSize
	return w * scale, h * scale
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*EbitenImage).img
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	ids []ebiten.GamepadID
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// GamepadIDs returns every connected gamepad.
func (m *EbitenInputManager) GamepadIDs() []render.GamepadID {
	m.ids = ebiten.AppendGamepadIDs(m.ids[:0])
	return convertIDs(m.ids)
}

// JustConnectedGamepads returns the gamepads connected this tick.
func (m *EbitenInputManager) JustConnectedGamepads() []render.GamepadID {
	return convertIDs(inpututil.AppendJustConnectedGamepadIDs(nil))
}

// IsGamepadJustDisconnected reports whether the gamepad went away this tick.
func (m *EbitenInputManager) IsGamepadJustDisconnected(id render.GamepadID) bool {
	return inpututil.IsGamepadJustDisconnected(ebiten.GamepadID(id))
}

// GamepadAxis returns the left stick position. Pads without a standard
// layout fall back to raw axes 0 and 1.
func (m *EbitenInputManager) GamepadAxis(id render.GamepadID, axis render.Axis) float64 {
	gid := ebiten.GamepadID(id)
	if ebiten.IsStandardGamepadLayoutAvailable(gid) {
		switch axis {
		case render.AxisLeftX:
			return ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		case render.AxisLeftY:
			return ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		}
		return 0
	}
	switch axis {
	case render.AxisLeftX:
		return ebiten.GamepadAxisValue(gid, 0)
	case render.AxisLeftY:
		return ebiten.GamepadAxisValue(gid, 1)
	}
	return 0
}

// IsGamepadConfirmPressed reports whether the bottom face button is held.
func (m *EbitenInputManager) IsGamepadConfirmPressed(id render.GamepadID) bool {
	gid := ebiten.GamepadID(id)
	if ebiten.IsStandardGamepadLayoutAvailable(gid) {
		return ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}
	return ebiten.IsGamepadButtonPressed(gid, ebiten.GamepadButton0)
}

func convertIDs(ids []ebiten.GamepadID) []render.GamepadID {
	out := make([]render.GamepadID, len(ids))
	for i, id := range ids {
		out[i] = render.GamepadID(id)
	}
	return out
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyUp:
		return ebiten.KeyArrowUp
	case render.KeyDown:
		return ebiten.KeyArrowDown
	case render.KeyLeft:
		return ebiten.KeyArrowLeft
	case render.KeyRight:
		return ebiten.KeyArrowRight
	case render.KeySpace:
		return ebiten.KeySpace
	case render.KeyEnter:
		return ebiten.KeyEnter
	case render.KeyEscape:
		return ebiten.KeyEscape
	case render.KeyM:
		return ebiten.KeyM
	case render.KeyF:
		return ebiten.KeyF
	default:
		return 0
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetFullscreen switches between windowed and fullscreen mode.
func (e *EbitenEngine) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

// IsFullscreen reports whether the window is fullscreen.
func (e *EbitenEngine) IsFullscreen() bool {
	return ebiten.IsFullscreen()
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
