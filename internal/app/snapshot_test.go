package app

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cubelight/internal/config"
)

func TestSnapshotWritesPNG(t *testing.T) {
	cfg := config.Default()
	cfg.Snapshot.Width, cfg.Snapshot.Height, cfg.Snapshot.Supersample = 64, 48, 1

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, Snapshot(cfg, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestSnapshotRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Material = "unobtainium"

	err := Snapshot(cfg, filepath.Join(t.TempDir(), "frame.png"))
	assert.Error(t, err)
}
