// Package window creates the OS window and OpenGL context and feeds native
// events into an input.Input. SDL2 is the default backend; GLFW is available
// as an alternative.
package window

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Faultbox/cubelight/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
	// CaptureCursor hides the pointer and keeps reporting motion past the
	// window edges, as a free-look camera needs.
	CaptureCursor bool
}

// Window is an OS window with a current OpenGL 4.1 core context.
type Window interface {
	// PollEvents pushes pending native events into in.
	PollEvents(in *input.Input)
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// GetSize returns the drawable size in pixels.
	GetSize() (int, int)
	SetTitle(title string)
	Close()
}

// ParseBackend normalizes a backend name. Empty means SDL.
func ParseBackend(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendSDL, "sdl2":
		return BackendSDL, nil
	case BackendGLFW:
		return BackendGLFW, nil
	}
	return "", fmt.Errorf("unknown window backend %q", name)
}

// New creates a window with the configured backend.
func New(cfg Config) (Window, error) {
	backend, err := ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	// Return the interface explicitly so a failed constructor yields a nil
	// Window, not a typed nil.
	var w Window
	switch backend {
	case BackendGLFW:
		gw, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		w = gw
	default:
		sw, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		w = sw
	}
	return w, nil
}
