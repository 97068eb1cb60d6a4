package renderer

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var FrustumCullingEnabled bool = false
var FaceCullingEnabled bool = false
var DepthTestEnabled bool = true
var ClearColorR float32 = 0.0
var ClearColorG float32 = 0.0
var ClearColorB float32 = 0.0

type Light struct {
	Position        mgl32.Vec3
	Direction       mgl32.Vec3
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32
	Mode            string // "directional", "point"

	// Shadow casting, directional lights only
	CastShadows   bool
	ShadowMapSize int32
	ShadowBias    float32
	ShadowExtent  float32 // half size of the orthographic shadow volume
	ShadowNear    float32
	ShadowFar     float32
}

// Environment is image-free ambient lighting: a sky/ground hemisphere blended
// by surface normal.
type Environment struct {
	Name        string
	SkyColor    mgl32.Vec3
	GroundColor mgl32.Vec3
	Intensity   float32
}

type Render interface {
	Init(width, height int32, window *glfw.Window)
	Render(camera Camera, light *Light)
	AddModel(model *Model)
	CreateTextureFromImage(img image.Image, name string) (uint32, error)
	SetEnvironment(env Environment)
	UpdateViewport(width, height int32)
	Cleanup()
}

func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{0.0, 10.0, 0.0},
		Direction:       mgl32.Vec3{0, -1, 0},
		Color:           mgl32.Vec3{1.0, 1.0, 1.0},
		Intensity:       1.0,
		AmbientStrength: 0.1,
		Mode:            "point",
	}
}

// CreateDirectionalLight creates a light shining from position toward target.
// Shadow defaults match a small scene: a 10x10 unit orthographic volume.
func CreateDirectionalLight(position, target mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = "directional"
	light.Position = position
	light.Direction = target.Sub(position).Normalize()
	light.Color = color
	light.Intensity = intensity
	light.AmbientStrength = 0.15
	light.ShadowMapSize = 1024
	light.ShadowExtent = 5
	light.ShadowNear = 0.5
	light.ShadowFar = 500
	return light
}

// LightSpaceMatrix projects world positions into the light's shadow map.
func (l *Light) LightSpaceMatrix() mgl32.Mat4 {
	up := mgl32.Vec3{0, 1, 0}
	if abs32(l.Direction.Dot(up)) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(l.Position, l.Position.Add(l.Direction), up)
	e := l.ShadowExtent
	projection := mgl32.Ortho(-e, e, -e, e, l.ShadowNear, l.ShadowFar)
	return projection.Mul4(view)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
