package water

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Elevation returns the vertical displacement of the surface point at world
// (x, z) for the current Time. It matches the vertex shader term for term.
func (u *Uniforms) Elevation(x, z float32) float32 {
	phase := u.Time * u.BigWaveSpeed
	elevation := sin(x*u.BigWavesFrequency.X()+phase) *
		sin(z*u.BigWavesFrequency.Y()+phase) *
		u.BigWavesElevation

	u.eachSmallWave(func(i float32) {
		n := Noise(mgl32.Vec3{
			x * u.SmallWavesFrequency * i,
			z * u.SmallWavesFrequency * i,
			u.Time * u.SmallWavesSpeed,
		})
		elevation -= abs(n * u.SmallWavesElevation / i)
	})
	return elevation
}

// SmallWaveIterations reports how many detail octaves the vertex shader
// accumulates for the configured iteration count.
func (u *Uniforms) SmallWaveIterations() int {
	count := 0
	u.eachSmallWave(func(float32) { count++ })
	return count
}

// eachSmallWave runs the shader's loop shape: the counter is a float, the
// exit test comes after the body, and the loop is capped at
// MaxSmallWaveIterations.
func (u *Uniforms) eachSmallWave(body func(i float32)) {
	for i := float32(1); i <= MaxSmallWaveIterations; i++ {
		body(i)
		if i >= u.SmallWavesIterations {
			break
		}
	}
}

// Fragment is the outcome of compositing one surface sample.
type Fragment struct {
	Color      mgl32.Vec3 // may leave [0, 1] because the fog blend is unclamped
	Alpha      float32
	Fog        float32 // distance fog factor
	HeightFog  float32
	Visibility float32
	Distance   float32
}

// Composite shades a surface point displaced by elevation, seen from camera.
func (u *Uniforms) Composite(elevation float32, world, camera mgl32.Vec3) Fragment {
	mixStrength := (elevation + u.ColorOffset) * u.ColorMultiplier
	base := MixVec3(u.DepthColor, u.SurfaceColor, mixStrength)

	distance := world.Sub(camera).Len()
	f := Fragment{
		Distance:   distance,
		HeightFog:  Smoothstep(HeightFogStart, HeightFogEnd, world.Y()),
		Fog:        Smoothstep(u.FogStart, u.FogEnd, distance),
		Visibility: u.VisibilityFactor(distance),
	}
	f.Color = MixVec3(base, FogColor, f.Fog+f.HeightFog)
	f.Alpha = u.DistanceAlpha(distance) * f.Visibility
	return f
}

// DistanceAlpha is the fog-driven part of the fragment alpha: 1 up to
// FogStart, falling smoothly to 0 at FogEnd.
func (u *Uniforms) DistanceAlpha(distance float32) float32 {
	return 1 - Smoothstep(u.FogStart, u.FogEnd, distance)
}

// VisibilityFactor is the independent visibility ramp between
// VisibilityStart and VisibilityEnd.
func (u *Uniforms) VisibilityFactor(distance float32) float32 {
	return Smoothstep(u.VisibilityStart, u.VisibilityEnd, distance)
}

// Shade samples the surface at world (x, z) and returns the displayed color,
// clamped to 8-bit channels the way the framebuffer stores it.
func (u *Uniforms) Shade(x, z float32, camera mgl32.Vec3) color.NRGBA {
	elevation := u.Elevation(x, z)
	f := u.Composite(elevation, mgl32.Vec3{x, elevation, z}, camera)
	return color.NRGBA{
		R: toByte(f.Color.X()),
		G: toByte(f.Color.Y()),
		B: toByte(f.Color.Z()),
		A: toByte(f.Alpha),
	}
}

// Smoothstep is GLSL smoothstep. Reversed edges (e0 > e1) yield the mirrored
// ramp, which is what GPUs compute for that case.
func Smoothstep(e0, e1, x float32) float32 {
	if e0 == e1 {
		return step(e0, x)
	}
	t := mgl32.Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

// Mix is GLSL mix; t is not clamped.
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// MixVec3 is GLSL mix for vec3.
func MixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func toByte(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}
