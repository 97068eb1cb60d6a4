package water

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Noise evaluates classic 3D gradient noise at p. It is the CPU twin of the
// cnoise function in the surface vertex shader: lattice cells are hashed with
// the mod-289 permutation polynomial, gradients come from the hash and are
// normalized with a Taylor inverse square root, and the eight corner
// contributions are blended with the quintic fade curve. The result lies
// roughly in [-1, 1].
func Noise(p mgl32.Vec3) float32 {
	var cell0, cell1, frac0, frac1 mgl32.Vec3
	for axis := 0; axis < 3; axis++ {
		floor := float32(math.Floor(float64(p[axis])))
		cell0[axis] = mod289(floor)
		cell1[axis] = mod289(floor + 1)
		frac0[axis] = p[axis] - floor
		frac1[axis] = frac0[axis] - 1
	}

	// Lanes follow the shader's vec4 packing: (x0,y0) (x1,y0) (x0,y1) (x1,y1).
	ix := [4]float32{cell0.X(), cell1.X(), cell0.X(), cell1.X()}
	iy := [4]float32{cell0.Y(), cell0.Y(), cell1.Y(), cell1.Y()}

	var ixy [4]float32
	for lane := range ixy {
		ixy[lane] = permute(permute(ix[lane]) + iy[lane])
	}

	var corners [8]float32
	for layer, cellZ := range [2]float32{cell0.Z(), cell1.Z()} {
		for lane := 0; lane < 4; lane++ {
			g := gradient(permute(ixy[lane] + cellZ))

			offset := frac0
			if lane&1 == 1 {
				offset[0] = frac1.X()
			}
			if lane&2 == 2 {
				offset[1] = frac1.Y()
			}
			if layer == 1 {
				offset[2] = frac1.Z()
			}
			corners[layer*4+lane] = g.Dot(offset)
		}
	}

	fadeX, fadeY, fadeZ := fade(frac0.X()), fade(frac0.Y()), fade(frac0.Z())

	var nz [4]float32
	for lane := range nz {
		nz[lane] = Mix(corners[lane], corners[lane+4], fadeZ)
	}
	nyz0 := Mix(nz[0], nz[2], fadeY)
	nyz1 := Mix(nz[1], nz[3], fadeY)

	return 2.2 * Mix(nyz0, nyz1, fadeX)
}

// gradient turns a permuted hash into a normalized gradient vector on the
// surface of an octahedron.
func gradient(hash float32) mgl32.Vec3 {
	gx := hash / 7
	gy := fract(float32(math.Floor(float64(gx)))/7) - 0.5
	gx = fract(gx)
	gz := 0.5 - abs(gx) - abs(gy)

	if gz <= 0 {
		gx -= step(0, gx) - 0.5
		gy -= step(0, gy) - 0.5
	}

	g := mgl32.Vec3{gx, gy, gz}
	return g.Mul(taylorInvSqrt(g.Dot(g)))
}

func permute(x float32) float32 {
	return mod289((x*34 + 1) * x)
}

func mod289(x float32) float32 {
	return x - 289*float32(math.Floor(float64(x/289)))
}

func taylorInvSqrt(r float32) float32 {
	return 1.79284291400159 - 0.85373472095314*r
}

func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}

// step mirrors GLSL step(edge, x).
func step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
