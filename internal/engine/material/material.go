// Package material holds Phong reflectance records and the preset catalog.
package material

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Faultbox/cubelight/pkg/math"
)

// Material is a set of Phong reflectance coefficients.
type Material struct {
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// Preset names.
const (
	Emerald      = "emerald"
	Pearl        = "pearl"
	Bronze       = "bronze"
	Gold         = "gold"
	CyanPlastic  = "cyan plastic"
	RedPlastic   = "red plastic"
	GreenRubber  = "green rubber"
	YellowRubber = "yellow rubber"
)

// Shininess values are the classic 0..1 exponents scaled by 128.
var presets = map[string]Material{
	Emerald: {
		Ambient:   math.V3(0.0215, 0.1745, 0.0215),
		Diffuse:   math.V3(0.07568, 0.61424, 0.07568),
		Specular:  math.V3(0.633, 0.727811, 0.633),
		Shininess: 76.8,
	},
	Pearl: {
		Ambient:   math.V3(0.25, 0.20725, 0.20725),
		Diffuse:   math.V3(1.0, 0.829, 0.829),
		Specular:  math.V3(0.296648, 0.296648, 0.296648),
		Shininess: 11.264,
	},
	Bronze: {
		Ambient:   math.V3(0.2125, 0.1275, 0.054),
		Diffuse:   math.V3(0.714, 0.4284, 0.18144),
		Specular:  math.V3(0.393548, 0.271906, 0.166721),
		Shininess: 25.6,
	},
	Gold: {
		Ambient:   math.V3(0.24725, 0.1995, 0.0745),
		Diffuse:   math.V3(0.75164, 0.60648, 0.22648),
		Specular:  math.V3(0.628281, 0.555802, 0.366065),
		Shininess: 51.2,
	},
	CyanPlastic: {
		Ambient:   math.V3(0.0, 0.1, 0.06),
		Diffuse:   math.V3(0.0, 0.50980392, 0.50980392),
		Specular:  math.V3(0.50196078, 0.50196078, 0.50196078),
		Shininess: 32,
	},
	RedPlastic: {
		Ambient:   math.V3(0.0, 0.0, 0.0),
		Diffuse:   math.V3(0.5, 0.0, 0.0),
		Specular:  math.V3(0.7, 0.6, 0.6),
		Shininess: 32,
	},
	GreenRubber: {
		Ambient:   math.V3(0.0, 0.05, 0.0),
		Diffuse:   math.V3(0.4, 0.5, 0.4),
		Specular:  math.V3(0.04, 0.7, 0.04),
		Shininess: 10,
	},
	YellowRubber: {
		Ambient:   math.V3(0.05, 0.05, 0.0),
		Diffuse:   math.V3(0.5, 0.5, 0.4),
		Specular:  math.V3(0.7, 0.7, 0.04),
		Shininess: 10,
	},
}

// normalize folds "Cyan_Plastic", "cyan-plastic" and "CYAN PLASTIC" to the
// catalog key.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Material, bool) {
	m, ok := presets[normalize(name)]
	return m, ok
}

// Find is like Lookup but returns an error naming the valid presets.
func Find(name string) (Material, error) {
	if m, ok := Lookup(name); ok {
		return m, nil
	}
	return Material{}, fmt.Errorf("unknown material %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns a copy of the catalog.
func Presets() map[string]Material {
	out := make(map[string]Material, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}
