package book

import (
	"Floatbook/internal/logger"
	"Floatbook/internal/renderer"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

// ImageExtensions are tried in order for each image id.
var ImageExtensions = []string{".jpg", ".png"}

type pageSide struct {
	model *renderer.Model
	id    string
	path  string
	image image.Image
}

// findImage returns textures/<id>.<ext> under root, or "" when none exists.
func findImage(root, id string) string {
	for _, ext := range ImageExtensions {
		path := filepath.Join(root, "textures", id+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// decodeSides fills in side.image for every side with a path, decoding on a
// pool of workers. Failures leave image nil.
func decodeSides(sides []pageSide, workers int) {
	if workers < 1 {
		workers = 1
	}
	pool := pond.NewPool(workers)
	for i := range sides {
		if sides[i].path == "" {
			continue
		}
		side := &sides[i]
		pool.Submit(func() {
			img, err := decodeImage(side.path)
			if err != nil {
				logger.Log.Warn("Page image failed to decode", zap.String("path", side.path), zap.Error(err))
				return
			}
			side.image = img
		})
	}
	pool.StopAndWait()
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
