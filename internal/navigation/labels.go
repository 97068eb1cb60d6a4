package navigation

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelFace rasterizes button labels with the Go Regular font.
type LabelFace struct {
	face font.Face
}

func NewLabelFace(size float32) (*LabelFace, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create label face: %w", err)
	}
	return &LabelFace{face: face}, nil
}

// Measure returns the advance width of text in pixels.
func (l *LabelFace) Measure(text string) float32 {
	return fixedToFloat(font.MeasureString(l.face, text))
}

// Render draws text centered in a w×h image. Only the alpha channel carries
// the glyph coverage; the overlay tints it.
func (l *LabelFace) Render(text string, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	metrics := l.face.Metrics()
	textWidth := font.MeasureString(l.face, text)
	textHeight := metrics.Ascent + metrics.Descent

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: l.face,
		Dot: fixed.Point26_6{
			X: (fixed.I(w) - textWidth) / 2,
			Y: (fixed.I(h)-textHeight)/2 + metrics.Ascent,
		},
	}
	d.DrawString(text)
	return img
}

func (l *LabelFace) Close() error {
	return l.face.Close()
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

