package renderer

import (
	"Floatbook/internal/logger"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// DefaultTextureName is the cache key of the 1x1 white texture bound to
// models without one.
const DefaultTextureName = "__default_white__"

// TextureManager uploads images once per name and frees them all on Clear.
type TextureManager struct {
	textureCache map[string]uint32 // name -> OpenGL texture ID
	mu           sync.Mutex

	upload func(rgba *image.RGBA) uint32
	free   func(textureID uint32)
}

// NewTextureManager creates a texture manager that uploads through OpenGL.
// It must be used from the thread owning the GL context.
func NewTextureManager() *TextureManager {
	return newTextureManager(uploadRGBA, deleteTexture)
}

func newTextureManager(upload func(*image.RGBA) uint32, free func(uint32)) *TextureManager {
	return &TextureManager{
		textureCache: make(map[string]uint32),
		upload:       upload,
		free:         free,
	}
}

// CreateTextureFromImage uploads img under name, or returns the texture
// already cached under that name.
func (tm *TextureManager) CreateTextureFromImage(img image.Image, name string) (uint32, error) {
	if img == nil {
		return 0, fmt.Errorf("texture %q: nil image", name)
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	if textureID, ok := tm.textureCache[name]; ok {
		logger.Log.Debug("Texture cache hit",
			zap.String("name", name),
			zap.Uint32("textureID", textureID))
		return textureID, nil
	}

	rgba := toRGBA(img)
	textureID := tm.upload(rgba)
	tm.textureCache[name] = textureID

	logger.Log.Info("Texture loaded and cached",
		zap.String("name", name),
		zap.Uint32("textureID", textureID),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()))
	return textureID, nil
}

// DefaultTexture returns the shared 1x1 white texture, creating it on first use.
func (tm *TextureManager) DefaultTexture() uint32 {
	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.White)
	textureID, _ := tm.CreateTextureFromImage(white, DefaultTextureName)
	return textureID
}

// Clear frees every texture.
func (tm *TextureManager) Clear() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for _, textureID := range tm.textureCache {
		tm.free(textureID)
	}
	logger.Log.Debug("Textures freed", zap.Int("count", len(tm.textureCache)))
	tm.textureCache = make(map[string]uint32)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == rgba.Rect.Dx()*4 && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

func uploadRGBA(rgba *image.RGBA) uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return textureID
}

func deleteTexture(textureID uint32) {
	gl.DeleteTextures(1, &textureID)
}
