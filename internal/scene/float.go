package scene

import (
	"Floatbook/internal/behaviour"
	"math"
	"math/rand"
)

// FloatOptions tunes the idle bobbing of the book.
type FloatOptions struct {
	Speed             float32    `json:"speed" yaml:"speed"`
	RotationIntensity float32    `json:"rotation_intensity" yaml:"rotation_intensity"`
	FloatIntensity    float32    `json:"float_intensity" yaml:"float_intensity"`
	FloatingRange     [2]float32 `json:"floating_range" yaml:"floating_range"`
}

func DefaultFloatOptions() FloatOptions {
	return FloatOptions{
		Speed:             1,
		RotationIntensity: 1,
		FloatIntensity:    1,
		FloatingRange:     [2]float32{-0.1, 0.1},
	}
}

// FloatAnimator rocks and bobs a transform on slow sine waves. Each
// animator starts at a random phase.
type FloatAnimator struct {
	Target  *behaviour.Transform
	Options FloatOptions

	offset float64
}

func NewFloatAnimator(target *behaviour.Transform, opts FloatOptions) *FloatAnimator {
	return &FloatAnimator{
		Target:  target,
		Options: opts,
		offset:  rand.Float64() * 10000,
	}
}

// Pose returns the Euler rotation (XYZ) and height at time t.
func (f *FloatAnimator) Pose(t float64) (rx, ry, rz, y float32) {
	o := f.Options
	phase := t / 4 * float64(o.Speed)
	sin, cos := float32(math.Sin(phase)), float32(math.Cos(phase))

	rx = cos / 8 * o.RotationIntensity
	ry = sin / 8 * o.RotationIntensity
	rz = sin / 20 * o.RotationIntensity
	y = mapLinear(sin/10, -0.1, 0.1, o.FloatingRange[0], o.FloatingRange[1]) * o.FloatIntensity
	return rx, ry, rz, y
}

func (f *FloatAnimator) Start() {
	f.Update(behaviour.Frame{})
}

func (f *FloatAnimator) Update(frame behaviour.Frame) {
	rx, ry, rz, y := f.Pose(f.offset + frame.Elapsed)
	f.Target.SetEuler(rx, ry, rz)
	f.Target.Position[1] = y
}

func mapLinear(x, a1, a2, b1, b2 float32) float32 {
	return b1 + (x-a1)*(b2-b1)/(a2-a1)
}
