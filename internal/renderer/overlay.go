package renderer

import (
	"Floatbook/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Rect is a screen-space rectangle in window pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// OverlayItem is one rounded box drawn over the scene. TextureID, when set,
// is an alpha mask (usually a rasterized label) the size of Rect, tinted with
// TextColor.
type OverlayItem struct {
	Rect        Rect
	Fill        mgl32.Vec4
	Border      mgl32.Vec4
	BorderWidth float32
	Radius      float32
	TextureID   uint32
	TextColor   mgl32.Vec4
}

// OverlayRenderer draws OverlayItems after the 3D passes, without depth.
type OverlayRenderer struct {
	shader Shader
	vao    uint32
	vbo    uint32
	ready  bool
}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{shader: NewShader(overlayVertexShaderSource, overlayFragmentShaderSource)}
}

func (o *OverlayRenderer) init() {
	o.shader.Compile()

	// unit quad, two triangles
	quad := []float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	o.ready = true
	logger.Log.Debug("Overlay renderer initialized")
}

// Draw renders items in order on a window of the given size in pixels.
func (o *OverlayRenderer) Draw(items []OverlayItem, width, height int32) {
	if len(items) == 0 || width <= 0 || height <= 0 {
		return
	}
	if !o.ready {
		o.init()
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetMat4("projection", OverlayProjection(width, height))
	o.shader.SetInt("labelMask", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(o.vao)

	for _, item := range items {
		o.shader.SetVec4("rect", mgl32.Vec4{item.Rect.X, item.Rect.Y, item.Rect.W, item.Rect.H})
		o.shader.SetVec4("fill", item.Fill)
		o.shader.SetVec4("border", item.Border)
		o.shader.SetFloat("borderWidth", item.BorderWidth)
		o.shader.SetFloat("radius", item.Radius)
		o.shader.SetVec4("textColor", item.TextColor)
		o.shader.SetBool("hasLabel", item.TextureID != 0)
		gl.BindTexture(gl.TEXTURE_2D, item.TextureID)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

func (o *OverlayRenderer) Cleanup() {
	if !o.ready {
		return
	}
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	o.shader.Delete()
	o.ready = false
}

// OverlayProjection maps window pixels (origin top-left) to clip space.
func OverlayProjection(width, height int32) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

var overlayVertexShaderSource = `#version 330 core

layout(location = 0) in vec2 inCorner;

uniform mat4 projection;
uniform vec4 rect;

out vec2 localPos;
out vec2 uv;

void main() {
    localPos = inCorner * rect.zw;
    uv = inCorner;
    gl_Position = projection * vec4(rect.xy + localPos, 0.0, 1.0);
}
` + "\x00"

var overlayFragmentShaderSource = `#version 330 core

in vec2 localPos;
in vec2 uv;

uniform vec4 rect;
uniform vec4 fill;
uniform vec4 border;
uniform float borderWidth;
uniform float radius;
uniform vec4 textColor;
uniform bool hasLabel;
uniform sampler2D labelMask;

out vec4 FragColor;

float roundedBox(vec2 p, vec2 halfSize, float r) {
    vec2 q = abs(p) - halfSize + vec2(r);
    return length(max(q, 0.0)) + min(max(q.x, q.y), 0.0) - r;
}

void main() {
    vec2 halfSize = rect.zw * 0.5;
    float r = min(radius, min(halfSize.x, halfSize.y));
    float d = roundedBox(localPos - halfSize, halfSize, r);

    float coverage = 1.0 - smoothstep(-0.5, 0.5, d);
    if (coverage <= 0.0) {
        discard;
    }

    vec4 color = fill;
    if (borderWidth > 0.0) {
        float ring = smoothstep(-borderWidth - 0.5, -borderWidth + 0.5, d);
        color = mix(color, border, ring * border.a);
    }
    if (hasLabel) {
        float mask = texture(labelMask, uv).a;
        color.rgb = mix(color.rgb, textColor.rgb, mask * textColor.a);
        color.a = max(color.a, mask * textColor.a);
    }
    FragColor = vec4(color.rgb, color.a * coverage);
}
` + "\x00"
