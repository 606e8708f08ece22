package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// WindowConfig describes the window opened by OpenWindow.
type WindowConfig struct {
	Title         string
	Width, Height int
	Hidden        bool // Offscreen rendering, e.g. screenshots
	VSync         bool
}

// Window is a GLFW window with a current OpenGL 4.1 core context and
// per-frame key press tracking.
type Window struct {
	*glfw.Window
	pressed map[glfw.Key]bool
}

// OpenWindow initializes GLFW, opens a window, makes its context current and
// loads the OpenGL functions. Call it from the main thread; Close terminates
// GLFW.
func OpenWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, errors.Wrap(err, "gl init")
	}

	w := &Window{Window: win, pressed: make(map[glfw.Key]bool)}
	win.SetKeyCallback(w.keyCallback)
	return w, nil
}

// Poll processes pending events. Key presses reported by Pressed are those
// received during this call.
func (w *Window) Poll() {
	clear(w.pressed)
	glfw.PollEvents()
}

// Pressed reports whether key went down during the last Poll.
func (w *Window) Pressed(key glfw.Key) bool {
	return w.pressed[key]
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Press {
		w.pressed[key] = true
	}
}
