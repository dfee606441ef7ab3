package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPixelsFlipsRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue, as GL returns it.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	require.NoError(t, err)

	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 1)
	assert.Equal(t, uint8(255), top.B)
	assert.Equal(t, uint8(255), bottom.R)
}

func TestFromPixelsRejectsBadInput(t *testing.T) {
	_, err := FromPixels(make([]byte, 10), 2, 2)
	assert.Error(t, err)

	_, err = FromPixels(nil, 0, 0)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	c := New("shots", "cubelight")
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 5, 250e6, time.UTC) }

	assert.Equal(t, filepath.Join("shots", "cubelight_2024-03-01_12-30-05.250.png"), c.Filename())

	c = New("", "x")
	c.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	assert.Equal(t, "x_2024-03-01_00-00-00.000.png", c.Filename())
}

func TestSavePixelsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	c := New(dir, "frame")

	path, err := c.SavePixels(make([]byte, 4*2*4), 4, 2)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}
