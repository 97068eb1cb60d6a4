package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
	uniforms       *UniformCache
}

// NewShader wraps NUL-terminated GLSL sources. Nothing touches OpenGL until
// Compile.
func NewShader(vertexSource, fragmentSource string) Shader {
	return Shader{
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
	}
}

func (shader *Shader) Compile() {
	vertex := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	fragment := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = GenShaderProgram(vertex, fragment)
	shader.uniforms = NewUniformCache(shader.program)
	shader.isCompiled = true
}

func (shader *Shader) IsCompiled() bool {
	return shader.isCompiled
}

// IsValid reports whether the shader carries sources, i.e. is not the zero value.
func (shader *Shader) IsValid() bool {
	return shader.vertexSource != "" && shader.fragmentSource != ""
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Delete() {
	if shader.isCompiled {
		gl.DeleteProgram(shader.program)
		shader.isCompiled = false
	}
}

func (shader *Shader) SetVec2(name string, value mgl32.Vec2) {
	shader.uniforms.SetVec2(name, value.X(), value.Y())
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	shader.uniforms.SetVec3(name, value.X(), value.Y(), value.Z())
}

func (shader *Shader) SetVec4(name string, value mgl32.Vec4) {
	shader.uniforms.SetVec4(name, value.X(), value.Y(), value.Z(), value.W())
}

func (shader *Shader) SetFloat(name string, value float32) {
	shader.uniforms.SetFloat(name, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	shader.uniforms.SetInt(name, value)
}

func (shader *Shader) SetBool(name string, value bool) {
	if value {
		shader.uniforms.SetInt(name, 1)
		return
	}
	shader.uniforms.SetInt(name, 0)
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	shader.uniforms.SetMat4(name, value)
}

// Lit, textured surfaces (book pages). Double sided: back faces flip their
// normal. Shadows come from a single directional shadow map.
var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;
layout(location = 2) in vec3 inNormal;

uniform mat4 model;
uniform mat4 viewProjection;
uniform mat4 lightSpace;

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;
out vec4 FragPosLightSpace;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = mat3(transpose(inverse(model))) * inNormal;
    fragTexCoord = inTexCoord;
    FragPosLightSpace = lightSpace * vec4(FragPos, 1.0);
    gl_Position = viewProjection * vec4(FragPos, 1.0);
}
` + "\x00"

var fragmentShaderSource = `#version 330 core

in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;
in vec4 FragPosLightSpace;

uniform sampler2D textureSampler;
uniform sampler2D shadowMap;

uniform struct Light {
    vec3 position;
    vec3 direction;
    vec3 color;
    float intensity;
    float ambientStrength;
    int isDirectional;
} light;

uniform vec3 hemisphereSky;
uniform vec3 hemisphereGround;
uniform float hemisphereIntensity;

uniform vec3 viewPos;
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform float alpha;

uniform bool receiveShadows;
uniform bool shadowsEnabled;
uniform float shadowBias;

out vec4 FragColor;

float shadowFactor(vec3 norm, vec3 lightDir) {
    if (!shadowsEnabled || !receiveShadows) {
        return 0.0;
    }
    vec3 proj = FragPosLightSpace.xyz / FragPosLightSpace.w;
    proj = proj * 0.5 + 0.5;
    if (proj.z > 1.0) {
        return 0.0;
    }
    float bias = max(abs(shadowBias), 0.0005 * (1.0 - dot(norm, lightDir)));
    vec2 texel = 1.0 / vec2(textureSize(shadowMap, 0));
    float shadow = 0.0;
    for (int x = -1; x <= 1; ++x) {
        for (int y = -1; y <= 1; ++y) {
            float closest = texture(shadowMap, proj.xy + vec2(x, y) * texel).r;
            shadow += proj.z - bias > closest ? 1.0 : 0.0;
        }
    }
    return shadow / 9.0;
}

void main() {
    vec4 texColor = texture(textureSampler, fragTexCoord);

    vec3 norm = normalize(Normal);
    if (!gl_FrontFacing) {
        norm = -norm;
    }

    vec3 lightDir = light.isDirectional == 1
        ? normalize(-light.direction)
        : normalize(light.position - FragPos);

    float hemi = norm.y * 0.5 + 0.5;
    vec3 ambient = mix(hemisphereGround, hemisphereSky, hemi) * hemisphereIntensity
        + light.ambientStrength * light.color;

    float diff = max(dot(norm, lightDir), 0.0);
    vec3 diffuse = diff * light.color * light.intensity;

    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), shininess);
    vec3 specular = spec * light.color * specularColor * light.intensity;

    float shadow = shadowFactor(norm, lightDir);
    vec3 lit = (ambient + (1.0 - shadow) * (diffuse + specular)) * diffuseColor;

    FragColor = vec4(lit * texColor.rgb, texColor.a * alpha);
}
` + "\x00"

// Depth-only pass for the shadow map.
var depthVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;

uniform mat4 model;
uniform mat4 lightSpace;

void main() {
    gl_Position = lightSpace * model * vec4(inPosition, 1.0);
}
` + "\x00"

var depthFragmentShaderSource = `#version 330 core

void main() {
}
` + "\x00"

// Invisible ground that only shows the shadows falling on it.
var shadowCatcherVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;

uniform mat4 model;
uniform mat4 viewProjection;
uniform mat4 lightSpace;

out vec4 FragPosLightSpace;

void main() {
    vec4 world = model * vec4(inPosition, 1.0);
    FragPosLightSpace = lightSpace * world;
    gl_Position = viewProjection * world;
}
` + "\x00"

var shadowCatcherFragmentShaderSource = `#version 330 core

in vec4 FragPosLightSpace;

uniform sampler2D shadowMap;
uniform bool shadowsEnabled;
uniform float shadowBias;
uniform float shadowOpacity;

out vec4 FragColor;

void main() {
    if (!shadowsEnabled) {
        discard;
    }
    vec3 proj = FragPosLightSpace.xyz / FragPosLightSpace.w;
    proj = proj * 0.5 + 0.5;
    if (proj.z > 1.0 || any(lessThan(proj.xy, vec2(0.0))) || any(greaterThan(proj.xy, vec2(1.0)))) {
        discard;
    }
    vec2 texel = 1.0 / vec2(textureSize(shadowMap, 0));
    float shadow = 0.0;
    for (int x = -1; x <= 1; ++x) {
        for (int y = -1; y <= 1; ++y) {
            float closest = texture(shadowMap, proj.xy + vec2(x, y) * texel).r;
            shadow += proj.z - abs(shadowBias) > closest ? 1.0 : 0.0;
        }
    }
    FragColor = vec4(0.0, 0.0, 0.0, shadowOpacity * shadow / 9.0);
}
` + "\x00"

func InitShader() Shader {
	return NewShader(vertexShaderSource, fragmentShaderSource)
}

func InitDepthShader() Shader {
	return NewShader(depthVertexShaderSource, depthFragmentShaderSource)
}

// InitShadowCatcherShader draws only the shadow term, tinted black with the
// "shadowOpacity" uniform.
func InitShadowCatcherShader() Shader {
	return NewShader(shadowCatcherVertexShaderSource, shadowCatcherFragmentShaderSource)
}
