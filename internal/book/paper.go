package book

import (
	"hash/fnv"
	"image"
	"image/color"

	perlin "github.com/aquilax/go-perlin"
)

// Paper texture size; the aspect matches a page.
const (
	PaperWidth  = 128
	PaperHeight = 171
)

var paperBase = [3]float64{244, 238, 226}

// PaperTexture renders a cream, fibrous sheet for a page whose image is
// missing. The grain is seeded from id so a page always looks the same.
func PaperTexture(id string) *image.NRGBA {
	h := fnv.New64a()
	h.Write([]byte(id))
	p := perlin.NewPerlin(2, 2, 3, int64(h.Sum64()))

	img := image.NewNRGBA(image.Rect(0, 0, PaperWidth, PaperHeight))
	for y := 0; y < PaperHeight; y++ {
		for x := 0; x < PaperWidth; x++ {
			// Stretched along y for fibres, plus a fine speckle.
			fibre := p.Noise2D(float64(x)*0.16, float64(y)*0.02)
			speckle := p.Noise2D(float64(x)*1.2, float64(y)*1.2)
			shade := 1 + 0.05*fibre + 0.02*speckle

			// Darken toward the edges.
			edge := minInt(minInt(x, PaperWidth-1-x), minInt(y, PaperHeight-1-y))
			if edge < 4 {
				shade -= 0.02 * float64(4-edge)
			}

			img.SetNRGBA(x, y, color.NRGBA{
				R: clampByte(paperBase[0] * shade),
				G: clampByte(paperBase[1] * shade),
				B: clampByte(paperBase[2] * shade),
				A: 255,
			})
		}
	}
	return img
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
