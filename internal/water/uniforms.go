package water

import (
	"reflect"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the fixed parameter set of the water material. Field tags carry
// the GLSL identifiers; the set is closed, so a material never gains or loses
// a uniform after creation. Only Time changes once the surface is running and
// only through Tick.
type Uniforms struct {
	Time float32 `uniform:"uTime" json:"-" yaml:"-"`

	BigWavesElevation float32    `uniform:"uBigWavesElevation" json:"big_waves_elevation" yaml:"big_waves_elevation"`
	BigWavesFrequency mgl32.Vec2 `uniform:"uBigWavesFrequency" json:"big_waves_frequency" yaml:"big_waves_frequency"`
	BigWaveSpeed      float32    `uniform:"uBigWaveSpeed" json:"big_wave_speed" yaml:"big_wave_speed"`

	SmallWavesElevation  float32 `uniform:"uSmallWavesElevation" json:"small_waves_elevation" yaml:"small_waves_elevation"`
	SmallWavesFrequency  float32 `uniform:"uSmallWavesFrequency" json:"small_waves_frequency" yaml:"small_waves_frequency"`
	SmallWavesSpeed      float32 `uniform:"uSmallWavesSpeed" json:"small_waves_speed" yaml:"small_waves_speed"`
	SmallWavesIterations float32 `uniform:"uSmallWavesIterations" json:"small_waves_iterations" yaml:"small_waves_iterations"`

	DepthColor      mgl32.Vec3 `uniform:"uDepthColor" json:"depth_color" yaml:"depth_color"`
	SurfaceColor    mgl32.Vec3 `uniform:"uSurfaceColor" json:"surface_color" yaml:"surface_color"`
	ColorOffset     float32    `uniform:"uColorOffset" json:"color_offset" yaml:"color_offset"`
	ColorMultiplier float32    `uniform:"uColorMultiplier" json:"color_multiplier" yaml:"color_multiplier"`

	FogStart        float32 `uniform:"uFogStart" json:"fog_start" yaml:"fog_start"`
	FogEnd          float32 `uniform:"uFogEnd" json:"fog_end" yaml:"fog_end"`
	VisibilityStart float32 `uniform:"uVisibilityStart" json:"visibility_start" yaml:"visibility_start"`
	VisibilityEnd   float32 `uniform:"uVisibilityEnd" json:"visibility_end" yaml:"visibility_end"`
}

// MaxSmallWaveIterations bounds the detail loop in the vertex shader.
const MaxSmallWaveIterations = 10

// FogColor is the constant color distant and low-lying water fades into.
var FogColor = mgl32.Vec3{0.8, 0.8, 0.8}

// Height fog ramps in between these world-space heights.
const (
	HeightFogStart float32 = 0.0
	HeightFogEnd   float32 = 1.5
)

// DefaultUniforms returns the tuned look of the scene: green-tinted depth,
// black crests, fog from 10 to 50 units.
func DefaultUniforms() Uniforms {
	return Uniforms{
		BigWavesElevation:    0.2,
		BigWavesFrequency:    mgl32.Vec2{4, 2},
		BigWaveSpeed:         0.75,
		SmallWavesElevation:  0.15,
		SmallWavesFrequency:  3,
		SmallWavesSpeed:      0.2,
		SmallWavesIterations: 4,
		DepthColor:           RGB(36, 123, 42),
		SurfaceColor:         RGB(0, 0, 0),
		ColorOffset:          0.08,
		ColorMultiplier:      5,
		FogStart:             10,
		FogEnd:               50,
		VisibilityStart:      11.3,
		VisibilityEnd:        0,
	}
}

// RGB converts 8-bit channels to a normalized color.
func RGB(r, g, b uint8) mgl32.Vec3 {
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// Tick stores the elapsed time in seconds. It is the one place the running
// material changes.
func (u *Uniforms) Tick(elapsed float32) {
	u.Time = elapsed
}

type uniformField struct {
	name  string
	index int
}

var (
	fieldsOnce sync.Once
	fields     []uniformField
)

func uniformFields() []uniformField {
	fieldsOnce.Do(func() {
		t := reflect.TypeOf(Uniforms{})
		for i := 0; i < t.NumField(); i++ {
			if name, ok := t.Field(i).Tag.Lookup("uniform"); ok {
				fields = append(fields, uniformField{name: name, index: i})
			}
		}
	})
	return fields
}

// UniformNames lists the GLSL identifiers of the set in declaration order.
func UniformNames() []string {
	names := make([]string, 0, len(uniformFields()))
	for _, f := range uniformFields() {
		names = append(names, f.name)
	}
	return names
}

// WriteTo copies every uniform into dst keyed by its GLSL identifier. Values
// keep their concrete types (float32, mgl32.Vec2, mgl32.Vec3) so the renderer
// can pick the matching glUniform call.
func (u *Uniforms) WriteTo(dst map[string]interface{}) {
	v := reflect.ValueOf(u).Elem()
	for _, f := range uniformFields() {
		dst[f.name] = v.Field(f.index).Interface()
	}
}
