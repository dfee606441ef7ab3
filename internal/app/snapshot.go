package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubelight/internal/config"
	"github.com/Faultbox/cubelight/internal/engine/softrender"
	"github.com/Faultbox/cubelight/internal/logger"
	"github.com/Faultbox/cubelight/pkg/math"
)

// Snapshot renders the initial frame of the configured scene to a PNG file
// on the CPU. It needs no window or GL context.
func Snapshot(cfg *config.Config, path string) error {
	sc := cfg.Snapshot
	st, err := NewState(cfg, sc.Width, sc.Height)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	img, err := softrender.Render(st.Frame(), softrender.Options{
		Width:       sc.Width,
		Height:      sc.Height,
		Supersample: sc.Supersample,
		Background:  math.Vec3From(sc.Background),
	})
	if err != nil {
		return err
	}
	if err := softrender.Save(path, img); err != nil {
		return err
	}

	logger.Named("app").Info("snapshot written",
		zap.String("path", path),
		zap.Int("width", sc.Width),
		zap.Int("height", sc.Height),
	)
	return nil
}
