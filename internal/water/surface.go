// Package water renders the fogged, noise-displaced water plane and mirrors
// its shader math on the CPU.
package water

import (
	"Floatbook/internal/behaviour"
	"Floatbook/internal/loader"
	"Floatbook/internal/logger"
	"Floatbook/internal/renderer"
	"fmt"

	"go.uber.org/zap"
)

const (
	// SurfaceSize is the edge length of the square plane in world units.
	SurfaceSize float32 = 12
	// SurfaceSegments subdivides each edge; the plane has (n+1)^2 vertices.
	SurfaceSegments = 512
)

// ModelAdder is the part of the engine the surface registers with.
type ModelAdder interface {
	AddModel(model *renderer.Model)
}

// Surface is the water behaviour. It owns the plane model and the uniform
// set, advancing uTime every frame.
type Surface struct {
	Model    *renderer.Model
	Uniforms Uniforms

	scene ModelAdder
	added bool
}

// NewSurface builds the plane with the given uniforms. The model is handed to
// scene on Start.
func NewSurface(scene ModelAdder, uniforms Uniforms) (*Surface, error) {
	return newSurface(scene, uniforms, SurfaceSize, SurfaceSegments)
}

func newSurface(scene ModelAdder, uniforms Uniforms, size float32, segments int) (*Surface, error) {
	model, err := loader.LoadPlane(size, size, segments)
	if err != nil {
		return nil, fmt.Errorf("water plane: %w", err)
	}
	model.Name = "Water Surface"
	model.Shader = NewShader()
	// Fog fades the far plane out, so it is blended after the opaque pass.
	model.Transparent = true
	model.CastShadow = false
	model.ReceiveShadow = false
	if model.Metadata == nil {
		model.Metadata = make(map[string]interface{})
	}
	model.Metadata["type"] = "water"

	s := &Surface{
		Model:    model,
		Uniforms: uniforms,
		scene:    scene,
	}
	s.Model.CustomUniforms = make(map[string]interface{}, len(UniformNames()))
	s.Uniforms.WriteTo(s.Model.CustomUniforms)
	return s, nil
}

// Start implements behaviour.Behaviour and registers the model once.
func (s *Surface) Start() {
	if s.added || s.scene == nil {
		return
	}
	s.scene.AddModel(s.Model)
	s.added = true
	logger.Log.Info("Water surface added",
		zap.Float32("size", SurfaceSize),
		zap.Int("segments", SurfaceSegments),
		zap.Float32("iterations", s.Uniforms.SmallWavesIterations))
}

// Update implements behaviour.Behaviour.
func (s *Surface) Update(frame behaviour.Frame) {
	s.Uniforms.Tick(float32(frame.Elapsed))
	s.Uniforms.WriteTo(s.Model.CustomUniforms)
}
