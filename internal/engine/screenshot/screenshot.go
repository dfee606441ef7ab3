// Package screenshot saves rendered frames as timestamped PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes screenshots to a directory.
type Capture struct {
	dir    string
	prefix string
	now    func() time.Time
}

// New creates a Capture writing <dir>/<prefix>_<timestamp>.png.
func New(dir, prefix string) *Capture {
	return &Capture{dir: dir, prefix: prefix, now: time.Now}
}

// FromPixels converts packed RGBA rows, bottom row first as GL reads them,
// into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		dst := y * img.Stride
		copy(img.Pix[dst:dst+row], pixels[src:src+row])
	}
	return img, nil
}

// Filename returns the path the next screenshot would be written to.
func (c *Capture) Filename() string {
	// Millisecond precision keeps two captures in the same second apart.
	name := fmt.Sprintf("%s_%s.png", c.prefix, c.now().Format("2006-01-02_15-04-05.000"))
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// Save encodes img as PNG and returns the written path.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := c.Filename()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// SavePixels flips GL pixel rows into an image and saves it.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.Save(img)
}
