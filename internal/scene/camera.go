package scene

import (
	"Floatbook/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Breakpoint is the window width in pixels at or below which the mobile
// camera preset applies.
const Breakpoint = 800

// CameraPreset places the camera. The camera always looks down -Z.
type CameraPreset struct {
	Position mgl32.Vec3 `json:"position" yaml:"position"`
	Fov      float32    `json:"fov" yaml:"fov"`
}

var (
	DesktopPreset = CameraPreset{Position: mgl32.Vec3{-0.5, 1, 4}, Fov: 45}
	MobilePreset  = CameraPreset{Position: mgl32.Vec3{-0.5, 1, 9}, Fov: 45}
)

// SelectPreset picks desktop for widths above breakpoint, mobile otherwise.
func SelectPreset(width, breakpoint int, desktop, mobile CameraPreset) CameraPreset {
	if width > breakpoint {
		return desktop
	}
	return mobile
}

// Apply moves camera to the preset.
func (p CameraPreset) Apply(camera *renderer.Camera) {
	camera.SetPosition(p.Position)
	camera.SetFov(p.Fov)
}
