package scene

import (
	"Floatbook/internal/logger"
	"Floatbook/internal/renderer"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DefaultEnvironment is used for unknown preset names.
const DefaultEnvironment = "studio"

// Environment presets approximate the mood of the usual HDR studio sets with
// a sky and ground color.
var environments = map[string]renderer.Environment{
	"studio":    {SkyColor: mgl32.Vec3{0.95, 0.95, 0.97}, GroundColor: mgl32.Vec3{0.35, 0.35, 0.37}, Intensity: 0.9},
	"city":      {SkyColor: mgl32.Vec3{0.72, 0.78, 0.88}, GroundColor: mgl32.Vec3{0.30, 0.28, 0.26}, Intensity: 0.8},
	"sunset":    {SkyColor: mgl32.Vec3{1.00, 0.70, 0.45}, GroundColor: mgl32.Vec3{0.30, 0.18, 0.15}, Intensity: 0.8},
	"dawn":      {SkyColor: mgl32.Vec3{0.85, 0.72, 0.78}, GroundColor: mgl32.Vec3{0.22, 0.20, 0.26}, Intensity: 0.7},
	"night":     {SkyColor: mgl32.Vec3{0.20, 0.24, 0.40}, GroundColor: mgl32.Vec3{0.04, 0.04, 0.08}, Intensity: 0.5},
	"warehouse": {SkyColor: mgl32.Vec3{0.90, 0.82, 0.68}, GroundColor: mgl32.Vec3{0.28, 0.24, 0.20}, Intensity: 0.8},
	"forest":    {SkyColor: mgl32.Vec3{0.70, 0.85, 0.70}, GroundColor: mgl32.Vec3{0.18, 0.24, 0.14}, Intensity: 0.7},
	"apartment": {SkyColor: mgl32.Vec3{0.95, 0.88, 0.78}, GroundColor: mgl32.Vec3{0.32, 0.27, 0.22}, Intensity: 0.8},
	"lobby":     {SkyColor: mgl32.Vec3{0.98, 0.92, 0.82}, GroundColor: mgl32.Vec3{0.36, 0.30, 0.24}, Intensity: 0.85},
	"park":      {SkyColor: mgl32.Vec3{0.68, 0.82, 0.98}, GroundColor: mgl32.Vec3{0.24, 0.30, 0.16}, Intensity: 0.85},
}

// LookupEnvironment returns the named preset, or the studio preset with a
// warning when the name is unknown.
func LookupEnvironment(name string) renderer.Environment {
	env, ok := environments[name]
	if !ok {
		logger.Log.Warn("Unknown environment preset, using default",
			zap.String("preset", name),
			zap.String("default", DefaultEnvironment))
		name = DefaultEnvironment
		env = environments[name]
	}
	env.Name = name
	return env
}

// EnvironmentNames lists the presets, sorted.
func EnvironmentNames() []string {
	names := make([]string, 0, len(environments))
	for name := range environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
