package renderer

import (
	"Floatbook/internal/logger"
	"image"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	textureUnitDiffuse = 0
	textureUnitShadow  = 1
)

var frustum Frustum

type OpenGLRenderer struct {
	defaultShader        Shader
	depthShader          Shader
	shadowCatcherShader  Shader
	Models               []*Model
	currentShaderProgram uint32 // Track currently bound shader to avoid unnecessary switches
	currentTextureID     uint32

	textures       *TextureManager
	defaultTexture uint32
	shadowMap      *ShadowMap
	environment    Environment

	width, height int32
	opaque        []*Model
	transparent   []*Model
}

func (rend *OpenGLRenderer) Init(width, height int32, _ *glfw.Window) {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return
	}
	logger.Log.Info("OpenGL version", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	rend.textures = NewTextureManager()
	rend.defaultTexture = rend.textures.DefaultTexture()
	rend.environment = Environment{
		Name:        "none",
		SkyColor:    mgl32.Vec3{1, 1, 1},
		GroundColor: mgl32.Vec3{0.3, 0.3, 0.3},
		Intensity:   0.3,
	}
	rend.UpdateViewport(width, height)
	rend.InitShader()
	logger.Log.Info("OpenGL render initialized")
}

func (rend *OpenGLRenderer) InitShader() {
	rend.defaultShader = InitShader()
	rend.defaultShader.Compile()
	rend.depthShader = InitDepthShader()
	rend.depthShader.Compile()
	rend.shadowCatcherShader = InitShadowCatcherShader()
	rend.shadowCatcherShader.Compile()
}

func (rend *OpenGLRenderer) AddModel(model *Model) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*4, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*4, gl.Ptr(model.Faces), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo

	rend.useDefaultTexture(model)
	model.updateModelMatrix()

	rend.Models = append(rend.Models, model)
	logger.Log.Debug("Model added",
		zap.String("name", model.Name),
		zap.Int("vertices", len(model.Vertices)/3),
		zap.Bool("transparent", model.Transparent))
}

// useDefaultTexture binds the white texture to models added without one.
func (rend *OpenGLRenderer) useDefaultTexture(model *Model) {
	model.ensureMaterial()
	if model.Material.TextureID == 0 {
		model.Material.TextureID = rend.defaultTexture
	}
}

func deleteModelBuffers(model *Model) {
	gl.DeleteVertexArrays(1, &model.VAO)
	gl.DeleteBuffers(1, &model.VBO)
	gl.DeleteBuffers(1, &model.EBO)
}

func (rend *OpenGLRenderer) SetEnvironment(env Environment) {
	rend.environment = env
	logger.Log.Info("Environment set", zap.String("name", env.Name))
}

func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	rend.width, rend.height = width, height
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Render(camera Camera, light *Light) {
	for _, model := range rend.Models {
		if model.IsDirty {
			model.updateModelMatrix()
			model.IsDirty = false
		}
	}

	shadows := light != nil && light.CastShadows && light.Mode == "directional"
	var lightSpace mgl32.Mat4
	if shadows {
		lightSpace = light.LightSpaceMatrix()
		rend.renderShadowPass(light, lightSpace)
	}

	gl.ClearColor(ClearColorR, ClearColorG, ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	// Culling : https://learnopengl.com/Advanced-OpenGL/Face-culling
	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}

	if FrustumCullingEnabled {
		frustum = camera.CalculateFrustum()
	}

	rend.opaque, rend.transparent = partitionModels(rend.Models, rend.opaque[:0], rend.transparent[:0])
	sortBackToFront(rend.transparent, camera.Position)

	frame := frameUniforms{
		viewProjection: camera.GetViewProjection(),
		camera:         camera.Position,
		light:          light,
		lightSpace:     lightSpace,
		shadows:        shadows,
	}
	rend.currentShaderProgram = 0
	rend.currentTextureID = ^uint32(0)

	gl.Disable(gl.BLEND)
	for _, model := range rend.opaque {
		rend.drawModel(model, &frame)
	}

	// Transparent pass: blended, back to front, depth tested but not written.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	for _, model := range rend.transparent {
		rend.drawModel(model, &frame)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
}

type frameUniforms struct {
	viewProjection mgl32.Mat4
	camera         mgl32.Vec3
	light          *Light
	lightSpace     mgl32.Mat4
	shadows        bool
}

func (rend *OpenGLRenderer) renderShadowPass(light *Light, lightSpace mgl32.Mat4) {
	size := light.ShadowMapSize
	if size <= 0 {
		size = 1024
	}
	if rend.shadowMap == nil || rend.shadowMap.Size != size {
		if rend.shadowMap != nil {
			rend.shadowMap.Delete()
		}
		rend.shadowMap = NewShadowMap(size)
	}

	rend.shadowMap.Begin()
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	rend.depthShader.Use()
	rend.depthShader.SetMat4("lightSpace", lightSpace)
	for _, model := range rend.Models {
		if !model.Visible || !model.CastShadow {
			continue
		}
		rend.depthShader.SetMat4("model", model.ModelMatrix)
		gl.BindVertexArray(model.VAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
	rend.shadowMap.End(rend.width, rend.height)
}

func (rend *OpenGLRenderer) drawModel(model *Model, frame *frameUniforms) {
	if FrustumCullingEnabled && culled(model, &frustum) {
		return
	}

	shader := rend.shaderFor(model)
	if rend.currentShaderProgram != shader.program {
		shader.Use()
		rend.currentShaderProgram = shader.program
	}

	rend.setCommonUniforms(shader, model, frame)
	if model.Material != nil {
		rend.setMaterialUniforms(shader, model)
	}
	rend.setCustomUniforms(shader, model)

	if model.Material != nil && model.Material.TextureID != rend.currentTextureID {
		gl.ActiveTexture(gl.TEXTURE0 + textureUnitDiffuse)
		gl.BindTexture(gl.TEXTURE_2D, model.Material.TextureID)
		rend.currentTextureID = model.Material.TextureID
	}
	shader.SetInt("textureSampler", textureUnitDiffuse)

	gl.BindVertexArray(model.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// culled reports whether the model's bounding sphere lies outside f. Models
// without bounds are always drawn.
func culled(model *Model, f *Frustum) bool {
	return model.BoundingSphereRadius > 0 &&
		!f.IntersectsSphere(model.BoundingSphereCenter, model.BoundingSphereRadius)
}

func (rend *OpenGLRenderer) shaderFor(model *Model) *Shader {
	switch {
	case model.ShadowCatcher:
		return &rend.shadowCatcherShader
	case model.Shader.IsValid():
		if !model.Shader.IsCompiled() {
			model.Shader.Compile()
		}
		return &model.Shader
	default:
		return &rend.defaultShader
	}
}

// setCommonUniforms sets uniforms that are common to most shaders. Programs
// that do not declare one simply ignore it.
func (rend *OpenGLRenderer) setCommonUniforms(shader *Shader, model *Model, frame *frameUniforms) {
	shader.SetMat4("viewProjection", frame.viewProjection)
	shader.SetMat4("model", model.ModelMatrix)
	shader.SetVec3("viewPos", frame.camera)
	shader.SetVec3("cameraPosition", frame.camera)

	env := rend.environment
	shader.SetVec3("hemisphereSky", env.SkyColor)
	shader.SetVec3("hemisphereGround", env.GroundColor)
	shader.SetFloat("hemisphereIntensity", env.Intensity)

	if light := frame.light; light != nil {
		shader.SetVec3("light.position", light.Position)
		shader.SetVec3("light.direction", light.Direction)
		shader.SetVec3("light.color", light.Color)
		shader.SetFloat("light.intensity", light.Intensity)
		shader.SetFloat("light.ambientStrength", light.AmbientStrength)
		shader.SetBool("light.isDirectional", light.Mode == "directional")
		shader.SetFloat("shadowBias", light.ShadowBias)
	}

	shader.SetBool("shadowsEnabled", frame.shadows)
	shader.SetBool("receiveShadows", model.ReceiveShadow)
	if frame.shadows {
		shader.SetMat4("lightSpace", frame.lightSpace)
		gl.ActiveTexture(gl.TEXTURE0 + textureUnitShadow)
		gl.BindTexture(gl.TEXTURE_2D, rend.shadowMap.Texture)
		shader.SetInt("shadowMap", textureUnitShadow)
		gl.ActiveTexture(gl.TEXTURE0 + textureUnitDiffuse)
	}
}

// setMaterialUniforms sets material-specific uniforms
func (rend *OpenGLRenderer) setMaterialUniforms(shader *Shader, model *Model) {
	m := model.Material
	shader.SetVec3("diffuseColor", mgl32.Vec3(m.DiffuseColor))
	shader.SetVec3("specularColor", mgl32.Vec3(m.SpecularColor))
	shader.SetFloat("shininess", m.Shininess)
	shader.SetFloat("alpha", m.Alpha)
}

// setCustomUniforms uploads the model's CustomUniforms, picking the call from
// the value's Go type.
func (rend *OpenGLRenderer) setCustomUniforms(shader *Shader, model *Model) {
	for name, value := range model.CustomUniforms {
		switch v := value.(type) {
		case float32:
			shader.SetFloat(name, v)
		case float64:
			shader.SetFloat(name, float32(v))
		case int32:
			shader.SetInt(name, v)
		case int:
			shader.SetInt(name, int32(v))
		case bool:
			shader.SetBool(name, v)
		case mgl32.Vec2:
			shader.SetVec2(name, v)
		case mgl32.Vec3:
			shader.SetVec3(name, v)
		case mgl32.Vec4:
			shader.SetVec4(name, v)
		case mgl32.Mat4:
			shader.SetMat4(name, v)
		default:
			logger.Log.Debug("Skipping custom uniform of unsupported type",
				zap.String("name", name),
				zap.String("model", model.Name))
		}
	}
}

// partitionModels splits visible models into the opaque and blended passes,
// appending to the given slices.
func partitionModels(models []*Model, opaque, transparent []*Model) ([]*Model, []*Model) {
	for _, model := range models {
		if !model.Visible {
			continue
		}
		if model.Transparent {
			transparent = append(transparent, model)
		} else {
			opaque = append(opaque, model)
		}
	}
	return opaque, transparent
}

// sortBackToFront orders models farthest from eye first. Ties keep their
// insertion order.
func sortBackToFront(models []*Model, eye mgl32.Vec3) {
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].Position.Sub(eye).LenSqr() > models[j].Position.Sub(eye).LenSqr()
	})
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		deleteModelBuffers(model)
		if model.Shader.IsCompiled() {
			model.Shader.Delete()
		}
	}
	rend.Models = nil
	if rend.shadowMap != nil {
		rend.shadowMap.Delete()
		rend.shadowMap = nil
	}
	rend.defaultShader.Delete()
	rend.depthShader.Delete()
	rend.shadowCatcherShader.Delete()
	if rend.textures != nil {
		rend.textures.Clear()
	}
}

func (rend *OpenGLRenderer) CreateTextureFromImage(img image.Image, name string) (uint32, error) {
	return rend.textures.CreateTextureFromImage(img, name)
}

func GenShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	shaderTypeName := "vertex"
	if shaderType == gl.FRAGMENT_SHADER {
		shaderTypeName = "fragment"
	}

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile", zap.String("shader", shaderTypeName), zap.String("log", log))
	} else {
		logger.Log.Debug("Shader compiled", zap.String("shader", shaderTypeName))
	}

	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
	} else {
		logger.Log.Debug("Shader program linked", zap.Uint32("program", program))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}
