package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed      = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen    = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth         = flag.Int("width", 0, "Window width")
	flagHeight        = flag.Int("height", 0, "Window height")
	flagBackend       = flag.String("backend", "", "Window backend: sdl or glfw")
	flagMaterial      = flag.String("material", "", "Cube material preset")
	flagSnapshot      = flag.String("snapshot", "", "Render one frame to this PNG file without opening a window")
	flagListMaterials = flag.Bool("list-materials", false, "Print the material presets and exit")
	flagSaveConfig    = flag.Bool("save-config", false, "Write the effective config to the --config path (or the user config dir) and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SnapshotPath returns the --snapshot output path, or "" for interactive mode.
func SnapshotPath() string {
	return *flagSnapshot
}

// ListMaterials reports whether --list-materials was given.
func ListMaterials() bool {
	return *flagListMaterials
}

// SaveConfig reports whether --save-config was given.
func SaveConfig() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagMaterial != "" {
		cfg.Scene.Material = *flagMaterial
	}
}
