package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/cubelight/internal/engine/input"
	"github.com/Faultbox/cubelight/internal/logger"
)

// glfwWindow wraps a GLFW window. GLFW reports events through callbacks
// during glfw.PollEvents; they are forwarded to the input passed to
// PollEvents.
type glfwWindow struct {
	config Config
	log    *zap.Logger
	win    *glfw.Window
	in     *input.Input
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	w := &glfwWindow{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwInit failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwCreateWindow failed: %w", err)
	}
	w.win = win
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if cfg.CaptureCursor {
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	win.SetKeyCallback(w.onKey)
	win.SetCursorPosCallback(w.onCursor)
	win.SetScrollCallback(w.onScroll)
	win.SetFramebufferSizeCallback(w.onResize)
	win.SetFocusCallback(w.onFocus)

	w.log.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// PollEvents runs the GLFW callbacks with in as their target.
func (w *glfwWindow) PollEvents(in *input.Input) {
	w.in = in
	glfw.PollEvents()
	w.in = nil

	if w.win.ShouldClose() {
		in.Push(input.Event{Type: input.EventQuit})
	}
}

func (w *glfwWindow) push(e input.Event) {
	if w.in != nil {
		w.in.Push(e)
	}
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.push(input.Event{Type: input.EventKeyDown, Key: glfwKey(key)})
	case glfw.Release:
		w.push(input.Event{Type: input.EventKeyUp, Key: glfwKey(key)})
	}
}

func (w *glfwWindow) onCursor(_ *glfw.Window, x, y float64) {
	w.push(input.Event{Type: input.EventMouseMove, MouseX: float32(x), MouseY: float32(y)})
}

func (w *glfwWindow) onScroll(_ *glfw.Window, _, yoff float64) {
	w.push(input.Event{Type: input.EventScroll, ScrollY: float32(yoff)})
}

func (w *glfwWindow) onResize(_ *glfw.Window, width, height int) {
	w.push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
}

func (w *glfwWindow) onFocus(_ *glfw.Window, focused bool) {
	if !focused && w.in != nil {
		w.in.ReleaseAll()
	}
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	w.log.Info("closing window")
	if w.win != nil {
		w.win.Destroy()
	}
	glfw.Terminate()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

// GetSize returns the framebuffer size in pixels.
func (w *glfwWindow) GetSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SetTitle sets the window title.
func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func glfwKey(k glfw.Key) input.Key {
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return input.KeyA + input.Key(k-glfw.KeyA)
	}
	switch k {
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyEnter:
		return input.KeyEnter
	case glfw.KeyTab:
		return input.KeyTab
	case glfw.KeyBackspace:
		return input.KeyBackspace
	case glfw.KeyLeftShift:
		return input.KeyLeftShift
	case glfw.KeyRightShift:
		return input.KeyRightShift
	case glfw.KeyLeftControl:
		return input.KeyLeftCtrl
	case glfw.KeyRightControl:
		return input.KeyRightCtrl
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	}
	return input.KeyUnknown
}
