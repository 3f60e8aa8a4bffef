package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"github.com/go-theft-auto/learngl"
)

// Window defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "LearnOpenGL"
)

// ErrInit marks failures to create the window or load the GL functions.
var ErrInit = errors.New("graphics initialization failed")

// FrameFunc renders one frame. t is the time since the window was created
// and dt the time since the previous frame, both in seconds.
type FrameFunc func(t, dt float64, in *learngl.InputState) error

// WindowOption configures a Window.
type WindowOption func(*windowConfig)

type windowConfig struct {
	width, height  int
	title          string
	hidden         bool
	vsync          bool
	cursorDisabled bool
	logger         logrus.FieldLogger
}

// WithSize sets the initial window size in screen coordinates.
func WithSize(width, height int) WindowOption {
	return func(c *windowConfig) { c.width, c.height = width, height }
}

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(c *windowConfig) { c.title = title }
}

// WithHidden creates an invisible window for offscreen rendering.
func WithHidden() WindowOption {
	return func(c *windowConfig) { c.hidden = true }
}

// WithVSync enables or disables waiting for vertical sync on swap.
func WithVSync(enabled bool) WindowOption {
	return func(c *windowConfig) { c.vsync = enabled }
}

// WithCursorDisabled hides and captures the cursor, as mouse-look needs.
func WithCursorDisabled() WindowOption {
	return func(c *windowConfig) { c.cursorDisabled = true }
}

// WithWindowLogger sets the logger for context information.
func WithWindowLogger(logger logrus.FieldLogger) WindowOption {
	return func(c *windowConfig) { c.logger = logger }
}

// Window owns the GLFW window, its OpenGL 4.1 core context and the input
// adapter. Create it on the main OS thread and keep every GL call there.
type Window struct {
	win    *glfw.Window
	input  *InputAdapter
	width  int // framebuffer size
	height int
	log    logrus.FieldLogger
}

// NewWindow initializes GLFW, opens a window and loads the GL functions.
// Failures wrap ErrInit.
func NewWindow(opts ...WindowOption) (*Window, error) {
	cfg := windowConfig{
		width:  DefaultWidth,
		height: DefaultHeight,
		title:  DefaultTitle,
		vsync:  true,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %w", ErrInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.width, cfg.height, cfg.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create window: %w", ErrInit, err)
	}
	win.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: gl init: %w", ErrInit, err)
	}

	w := &Window{
		win:   win,
		input: NewInputAdapter(win),
		log:   cfg.logger,
	}
	if cfg.cursorDisabled {
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	// Framebuffer size differs from window size on high-DPI displays.
	w.width, w.height = win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w.width), int32(w.height))
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	w.log.WithFields(logrus.Fields{
		"vendor":   gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer": gl.GoStr(gl.GetString(gl.RENDERER)),
		"version":  gl.GoStr(gl.GetString(gl.VERSION)),
	}).Info("OpenGL context ready")

	return w, nil
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.width, w.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.width, w.height
}

// Aspect returns the framebuffer width divided by its height.
func (w *Window) Aspect() float32 {
	if w.height == 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

// Input returns the window's input state.
func (w *Window) Input() *learngl.InputState {
	return w.input.Input()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Run drives the render loop until the window is asked to close or Escape
// is pressed. A frame error stops the loop and is returned.
func (w *Window) Run(frame FrameFunc) error {
	start := glfw.GetTime()
	last := start
	for !w.win.ShouldClose() {
		in := w.input.Update()
		glfw.PollEvents()
		if in.KeyDown(learngl.KeyEscape) {
			w.win.SetShouldClose(true)
			continue
		}

		now := glfw.GetTime()
		dt := now - last
		last = now

		if err := frame(now-start, dt, in); err != nil {
			return err
		}
		w.win.SwapBuffers()
	}
	return nil
}

// Close destroys the window and terminates GLFW. Release GL objects first.
func (w *Window) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
