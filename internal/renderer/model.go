package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{0.2, 0.2, 0.2},
	Shininess:     32.0,
	TextureID:     0,
	Alpha:         1.0,
}

// Stride of InterleavedData: position(3) + uv(2) + normal(3).
const vertexStride = 8

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    mgl32.Quat
	Material    *Material
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IsDirty     bool
	Visible     bool

	// Render state
	Transparent   bool // drawn after opaque models, back to front, with blending
	CastShadow    bool
	ReceiveShadow bool
	ShadowCatcher bool // draws only received shadows, see InitShadowCatcherShader

	// MEDIUM DATA
	BoundingSphereCenter mgl32.Vec3 // world space, follows ModelMatrix
	BoundingSphereRadius float32
	Shader               Shader                 // Custom shader for this model
	CustomUniforms       map[string]interface{} // Custom uniforms for this model
	Metadata             map[string]interface{}

	// COLD DATA
	Name            string
	Vertices        []float32
	Faces           []int32
	InterleavedData []float32

	// set by SetModelMatrix: the matrix comes from a parent transform and
	// must not be rebuilt from Position/Rotation/Scale
	matrixLocked bool

	// mesh bounds in model space
	localCenter mgl32.Vec3
	localRadius float32
}

type Material struct {
	DiffuseColor  [3]float32
	SpecularColor [3]float32
	Shininess     float32
	Alpha         float32
	TextureID     uint32

	Name string
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.matrixLocked = false
	m.updateModelMatrix()
	m.IsDirty = true
}

// SetModelMatrix places the model with a world matrix computed elsewhere,
// typically a parent transform times a local one. Position is kept in sync
// with the translation column for depth sorting.
func (m *Model) SetModelMatrix(matrix mgl32.Mat4) {
	m.ModelMatrix = matrix
	m.Position = matrix.Col(3).Vec3()
	m.matrixLocked = true
	m.IsDirty = false
	m.updateBoundingSphere()
}

// CalculateBoundingSphere fits a sphere around the mesh in model space and
// places it in world space with the current model matrix.
func (m *Model) CalculateBoundingSphere() {
	numVertices := len(m.Vertices) / 3
	if numVertices == 0 {
		return
	}

	var center mgl32.Vec3
	for i := 0; i < numVertices; i++ {
		center = center.Add(m.vertex(i))
	}
	center = center.Mul(1.0 / float32(numVertices))

	var maxDistanceSq float32
	for i := 0; i < numVertices; i++ {
		if distanceSq := m.vertex(i).Sub(center).LenSqr(); distanceSq > maxDistanceSq {
			maxDistanceSq = distanceSq
		}
	}

	m.localCenter = center
	m.localRadius = float32(math.Sqrt(float64(maxDistanceSq)))
	m.updateBoundingSphere()
}

func (m *Model) vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// updateBoundingSphere moves the model space sphere into world space. The
// radius grows with the largest axis scale of the matrix.
func (m *Model) updateBoundingSphere() {
	if m.localRadius == 0 {
		return
	}
	m.BoundingSphereCenter = m.ModelMatrix.Mul4x1(m.localCenter.Vec4(1)).Vec3()
	scale := m.ModelMatrix.Col(0).Vec3().Len()
	if sy := m.ModelMatrix.Col(1).Vec3().Len(); sy > scale {
		scale = sy
	}
	if sz := m.ModelMatrix.Col(2).Vec3().Len(); sz > scale {
		scale = sz
	}
	m.BoundingSphereRadius = m.localRadius * scale
}

func (m *Model) updateModelMatrix() {
	if m.matrixLocked {
		return
	}
	// T * R * S: scale first, then rotate, then translate
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotationMatrix := m.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
	m.updateBoundingSphere()
}

// ensureMaterial gives the model its own material instead of the shared default.
func (m *Model) ensureMaterial() {
	if m.Material == nil || m.Material == DefaultMaterial {
		copied := *DefaultMaterial
		m.Material = &copied
	}
}

func (m *Model) SetSpecularColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.SpecularColor = [3]float32{r, g, b}
}

func (m *Model) SetShininess(shininess float32) {
	m.ensureMaterial()
	m.Material.Shininess = shininess
}

// SetTextureID binds an already uploaded texture.
func (m *Model) SetTextureID(textureID uint32) {
	m.ensureMaterial()
	m.Material.TextureID = textureID
}

// CreateModel interleaves positions, texture coordinates and normals. Missing
// uvs default to (0,0), missing normals to +Y.
func CreateModel(vertices []mgl32.Vec3, uvs []mgl32.Vec2, normals []mgl32.Vec3, indices []int32) *Model {
	interleavedData := make([]float32, 0, len(vertices)*vertexStride)

	for i, v := range vertices {
		interleavedData = append(interleavedData, v.X(), v.Y(), v.Z())

		uv := mgl32.Vec2{0, 0}
		if i < len(uvs) {
			uv = uvs[i]
		}
		interleavedData = append(interleavedData, uv.X(), uv.Y())

		normal := mgl32.Vec3{0, 1, 0}
		if i < len(normals) {
			normal = normals[i]
		}
		interleavedData = append(interleavedData, normal.X(), normal.Y(), normal.Z())
	}

	model := &Model{
		Position:        mgl32.Vec3{0, 0, 0},
		Rotation:        mgl32.QuatIdent(),
		Scale:           mgl32.Vec3{1.0, 1.0, 1.0},
		Vertices:        flattenVertices(vertices),
		Faces:           indices,
		InterleavedData: interleavedData,
		Visible:         true,
	}
	model.updateModelMatrix()
	model.CalculateBoundingSphere()
	return model
}

// Helper to flatten Vec3 array
func flattenVertices(vertices []mgl32.Vec3) []float32 {
	flat := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	return flat
}
