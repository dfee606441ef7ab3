// Package app implements the main loop: it owns the window, renderer, input
// and scene state and runs them frame by frame.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubelight/internal/config"
	"github.com/Faultbox/cubelight/internal/engine/input"
	"github.com/Faultbox/cubelight/internal/engine/renderer"
	"github.com/Faultbox/cubelight/internal/engine/screenshot"
	"github.com/Faultbox/cubelight/internal/engine/window"
	"github.com/Faultbox/cubelight/internal/logger"
	"github.com/Faultbox/cubelight/pkg/math"
)

// App is the interactive application instance.
type App struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	window   window.Window
	renderer *renderer.Renderer
	input    *input.Input
	state    *State
	capture  *screenshot.Capture
}

// New creates the window, GL renderer and scene state.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Fullscreen:    cfg.Window.Fullscreen,
		VSync:         cfg.Window.VSync,
		Backend:       cfg.Window.Backend,
		CaptureCursor: cfg.Window.CaptureCursor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable may be larger than the requested size on high-DPI screens.
	width, height := a.window.GetSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: math.Vec3From(cfg.Window.ClearColor),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.state, err = NewState(cfg, width, height)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.input = input.New()
	a.capture = screenshot.New(cfg.Snapshot.Dir, "cubelight")

	a.log.Info("initialized", zap.Int("drawable_width", width), zap.Int("drawable_height", height))
	return a, nil
}

// Run runs the frame loop until the user quits or a frame fails.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		if err := a.frame(); err != nil {
			return err
		}

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			a.log.Debug("fps", zap.Float64("fps", fps))
			if a.config.Window.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %.0f fps", a.config.Window.Title, fps))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// frame runs one iteration: input, update, draw, present.
func (a *App) frame() error {
	a.input.BeginFrame()
	a.window.PollEvents(a.input)

	for _, event := range a.input.Events() {
		if event.Type == input.EventWindowResize && event.Width > 0 && event.Height > 0 {
			a.renderer.Resize(event.Width, event.Height)
		}
	}

	quit, err := a.state.Update(a.input)
	if err != nil {
		return fmt.Errorf("update error: %w", err)
	}
	if quit {
		a.log.Info("quit requested")
		a.running = false
		return nil
	}

	a.renderer.Begin()
	f := a.state.Frame()
	f.Submit(a.renderer)
	if err := a.renderer.End(); err != nil {
		return fmt.Errorf("render error: %w", err)
	}

	if a.state.Screenshot {
		a.saveScreenshot()
	}

	a.window.SwapBuffers()
	return nil
}

// saveScreenshot writes the back buffer to disk. Failures are logged, not
// fatal.
func (a *App) saveScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.capture.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up resources.
func (a *App) Close() {
	a.log.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
