package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// glfwKeys maps the GLFW keys the scenes use. Everything else is dropped.
var glfwKeys = map[glfw.Key]learngl.Key{
	glfw.KeyEscape: learngl.KeyEscape,
	glfw.KeySpace:  learngl.KeySpace,
	glfw.KeyW:      learngl.KeyW,
	glfw.KeyA:      learngl.KeyA,
	glfw.KeyS:      learngl.KeyS,
	glfw.KeyD:      learngl.KeyD,
	glfw.KeyUp:     learngl.KeyUp,
	glfw.KeyDown:   learngl.KeyDown,
}

// InputAdapter feeds GLFW window events into a learngl.InputState.
type InputAdapter struct {
	state *learngl.InputState
}

// NewInputAdapter installs key, scroll and cursor callbacks on window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	a := &InputAdapter{state: learngl.NewInputState()}
	window.SetKeyCallback(a.onKey)
	window.SetScrollCallback(a.onScroll)
	window.SetCursorPosCallback(a.onCursorPos)
	return a
}

// Update starts a new frame of input and returns the state the following
// glfw.PollEvents call fills in.
func (a *InputAdapter) Update() *learngl.InputState {
	a.state.Reset()
	return a.state
}

// Input returns the state without resetting it.
func (a *InputAdapter) Input() *learngl.InputState {
	return a.state
}

func (a *InputAdapter) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := glfwKeys[key]
	if !ok {
		return
	}
	// Repeat keeps the key down without producing another press edge.
	a.state.SetKey(k, action != glfw.Release)
}

func (a *InputAdapter) onScroll(_ *glfw.Window, xoff, yoff float64) {
	a.state.AddScroll(float32(xoff), float32(yoff))
}

func (a *InputAdapter) onCursorPos(_ *glfw.Window, xpos, ypos float64) {
	a.state.SetMousePos(float32(xpos), float32(ypos))
}
