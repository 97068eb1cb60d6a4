package renderer

import (
	"Floatbook/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// ShadowMap is a depth-only framebuffer rendered from a directional light.
type ShadowMap struct {
	FBO     uint32
	Texture uint32
	Size    int32
}

func NewShadowMap(size int32) *ShadowMap {
	sm := &ShadowMap{Size: size}

	gl.GenTextures(1, &sm.Texture)
	gl.BindTexture(gl.TEXTURE_2D, sm.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT, size, size, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	border := []float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.GenFramebuffers(1, &sm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.Texture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		logger.Log.Error("Shadow framebuffer incomplete", zap.Uint32("status", status))
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	logger.Log.Debug("Shadow map created", zap.Int32("size", size))
	return sm
}

// Begin binds the framebuffer for the depth pass.
func (sm *ShadowMap) Begin() {
	gl.Viewport(0, 0, sm.Size, sm.Size)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// End restores the default framebuffer and the window viewport.
func (sm *ShadowMap) End(width, height int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
}

func (sm *ShadowMap) Delete() {
	gl.DeleteFramebuffers(1, &sm.FBO)
	gl.DeleteTextures(1, &sm.Texture)
}
