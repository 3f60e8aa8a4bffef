package learngl

// Key is a keyboard key the scenes react to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyCount
)

func (k Key) valid() bool { return k >= 0 && k < KeyCount }

// keyState is one key's level and whether it went down this frame.
type keyState struct {
	down    bool
	pressed bool
}

// InputState is what the window saw since the last Reset. The backend's
// GLFW adapter writes it from event callbacks; scenes only read it.
type InputState struct {
	// Cursor position in window coordinates.
	MouseX, MouseY float32

	// Cursor movement since the last Reset. Y grows upwards, so moving the
	// mouse up yields a positive MouseDeltaY.
	MouseDeltaX, MouseDeltaY float32

	// Scroll offset accumulated since the last Reset.
	ScrollX, ScrollY float32

	mouseSeen bool
	keys      [KeyCount]keyState
}

// NewInputState returns an empty state with every key up.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset starts a new frame: press edges, cursor movement and scroll are
// cleared, held keys and the cursor position are kept.
func (s *InputState) Reset() {
	for i := range s.keys {
		s.keys[i].pressed = false
	}
	s.MouseDeltaX, s.MouseDeltaY = 0, 0
	s.ScrollX, s.ScrollY = 0, 0
}

// SetMousePos records a cursor sample. The first sample only seeds the
// position so the camera does not jump when the cursor enters the window.
func (s *InputState) SetMousePos(x, y float32) {
	if s.mouseSeen {
		s.MouseDeltaX += x - s.MouseX
		s.MouseDeltaY += s.MouseY - y
	}
	s.mouseSeen = true
	s.MouseX, s.MouseY = x, y
}

// AddScroll accumulates a scroll event.
func (s *InputState) AddScroll(x, y float32) {
	s.ScrollX += x
	s.ScrollY += y
}

// SetKey records a key going down or up. Unknown keys are ignored.
func (s *InputState) SetKey(k Key, down bool) {
	if !k.valid() {
		return
	}
	st := &s.keys[k]
	if down && !st.down {
		st.pressed = true
	}
	st.down = down
}

// KeyDown reports whether k is held.
func (s *InputState) KeyDown(k Key) bool {
	return k.valid() && s.keys[k].down
}

// KeyPressed reports whether k went down during this frame.
func (s *InputState) KeyPressed(k Key) bool {
	return k.valid() && s.keys[k].pressed
}
