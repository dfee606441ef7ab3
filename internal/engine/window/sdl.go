package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubelight/internal/engine/input"
	"github.com/Faultbox/cubelight/internal/logger"
)

// sdlWindow wraps SDL2 window and OpenGL context.
type sdlWindow struct {
	config    Config
	log       *zap.Logger
	win       *sdl.Window
	glContext sdl.GLContext

	// Virtual pointer position while the cursor is captured.
	mouseX, mouseY float32
}

func newSDL(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{
		config: cfg,
		log:    logger.Named("window"),
		mouseX: float32(cfg.Width) / 2,
		mouseY: float32(cfg.Height) / 2,
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Set OpenGL attributes BEFORE creating window
	// We want OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.win, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.win.GLCreateContext()
	if err != nil {
		w.win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			w.log.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		_ = sdl.GLSetSwapInterval(0)
	}

	if cfg.CaptureCursor {
		sdl.SetRelativeMouseMode(true)
	}

	w.log.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// PollEvents drains the SDL queue.
func (w *sdlWindow) PollEvents(in *input.Input) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				width, height := w.GetSize()
				in.Push(input.Event{
					Type:   input.EventWindowResize,
					Width:  width,
					Height: height,
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				in.ReleaseAll()
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			key := sdlKey(e.Keysym.Scancode)
			if e.Type == sdl.KEYDOWN {
				in.Push(input.Event{Type: input.EventKeyDown, Key: key})
			} else if e.Type == sdl.KEYUP {
				in.Push(input.Event{Type: input.EventKeyUp, Key: key})
			}

		case *sdl.MouseMotionEvent:
			if w.config.CaptureCursor {
				w.mouseX += float32(e.XRel)
				w.mouseY += float32(e.YRel)
			} else {
				w.mouseX = float32(e.X)
				w.mouseY = float32(e.Y)
			}
			in.Push(input.Event{
				Type:   input.EventMouseMove,
				MouseX: w.mouseX,
				MouseY: w.mouseY,
			})

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			in.Push(input.Event{Type: input.EventScroll, ScrollY: dy})
		}
	}
}

// Close destroys the window and cleans up SDL2.
func (w *sdlWindow) Close() {
	w.log.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.win != nil {
		w.win.Destroy()
	}

	sdl.Quit()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *sdlWindow) SwapBuffers() {
	w.win.GLSwap()
}

// GetSize returns the drawable size, which differs from the window size on
// high-DPI displays.
func (w *sdlWindow) GetSize() (int, int) {
	width, height := w.win.GLGetDrawableSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *sdlWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func sdlKey(sc sdl.Scancode) input.Key {
	if sc >= sdl.SCANCODE_A && sc <= sdl.SCANCODE_Z {
		return input.KeyA + input.Key(sc-sdl.SCANCODE_A)
	}
	switch sc {
	case sdl.SCANCODE_SPACE:
		return input.KeySpace
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape
	case sdl.SCANCODE_RETURN:
		return input.KeyEnter
	case sdl.SCANCODE_TAB:
		return input.KeyTab
	case sdl.SCANCODE_BACKSPACE:
		return input.KeyBackspace
	case sdl.SCANCODE_LSHIFT:
		return input.KeyLeftShift
	case sdl.SCANCODE_RSHIFT:
		return input.KeyRightShift
	case sdl.SCANCODE_LCTRL:
		return input.KeyLeftCtrl
	case sdl.SCANCODE_RCTRL:
		return input.KeyRightCtrl
	case sdl.SCANCODE_UP:
		return input.KeyUp
	case sdl.SCANCODE_DOWN:
		return input.KeyDown
	case sdl.SCANCODE_LEFT:
		return input.KeyLeft
	case sdl.SCANCODE_RIGHT:
		return input.KeyRight
	}
	return input.KeyUnknown
}
