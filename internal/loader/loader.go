package loader

import (
	"Floatbook/internal/logger"
	"Floatbook/internal/renderer"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// MaxPlaneSegments caps plane subdivision; 8192^2 vertices is already far
// past what the water needs.
const MaxPlaneSegments = 8192

// LoadPlane creates a flat grid on the XZ plane, centered on the origin and
// facing +Y, with width along X and depth along Z. It has (segments+1)^2
// vertices. UVs run 0..1 along X and 1..0 along Z.
func LoadPlane(width, depth float32, segments int) (*renderer.Model, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("plane size must be positive, got %gx%g", width, depth)
	}
	if segments < 1 {
		return nil, errors.New("segments must be at least 1")
	}
	if segments > MaxPlaneSegments {
		return nil, fmt.Errorf("segments must be at most %d, got %d", MaxPlaneSegments, segments)
	}

	row := segments + 1
	vertices := make([]mgl32.Vec3, 0, row*row)
	uvs := make([]mgl32.Vec2, 0, row*row)
	normals := make([]mgl32.Vec3, 0, row*row)
	indices := make([]int32, 0, segments*segments*6)

	up := mgl32.Vec3{0, 1, 0}
	startX := -width * 0.5
	startZ := -depth * 0.5
	for iz := 0; iz < row; iz++ {
		v := float32(iz) / float32(segments)
		for ix := 0; ix < row; ix++ {
			u := float32(ix) / float32(segments)
			vertices = append(vertices, mgl32.Vec3{startX + u*width, 0, startZ + v*depth})
			uvs = append(uvs, mgl32.Vec2{u, 1 - v})
			normals = append(normals, up)
		}
	}

	// Counter-clockwise seen from above.
	for iz := 0; iz < segments; iz++ {
		for ix := 0; ix < segments; ix++ {
			a := int32(iz*row + ix)
			b := a + int32(row)
			c := a + 1
			d := b + 1
			indices = append(indices, a, b, c, c, b, d)
		}
	}

	model := renderer.CreateModel(vertices, uvs, normals, indices)

	logger.Log.Debug("Plane created",
		zap.Int("vertices", len(vertices)),
		zap.Int("triangles", len(indices)/3),
		zap.Float32("width", width),
		zap.Float32("depth", depth),
		zap.Int("segments", segments))

	return model, nil
}

// PageSide selects which face of a page quad to build.
type PageSide int

const (
	PageFront PageSide = iota // faces +Z
	PageBack                  // faces -Z, texture mirrored to read correctly from behind
)

// LoadPageQuad creates one side of a page: a width x height quad in the XY
// plane hinged on the Y axis, spanning x in [0, width]. Texture rows run top
// to bottom, matching images uploaded row by row.
func LoadPageQuad(width, height float32, side PageSide) (*renderer.Model, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %gx%g", width, height)
	}

	h := height * 0.5
	vertices := []mgl32.Vec3{
		{0, -h, 0},
		{width, -h, 0},
		{width, h, 0},
		{0, h, 0},
	}

	var uvs []mgl32.Vec2
	var normal mgl32.Vec3
	var indices []int32
	switch side {
	case PageFront:
		uvs = []mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
		normal = mgl32.Vec3{0, 0, 1}
		indices = []int32{0, 1, 2, 0, 2, 3}
	case PageBack:
		uvs = []mgl32.Vec2{{1, 1}, {0, 1}, {0, 0}, {1, 0}}
		normal = mgl32.Vec3{0, 0, -1}
		indices = []int32{0, 2, 1, 0, 3, 2}
	default:
		return nil, fmt.Errorf("unknown page side %d", side)
	}
	normals := []mgl32.Vec3{normal, normal, normal, normal}

	return renderer.CreateModel(vertices, uvs, normals, indices), nil
}
