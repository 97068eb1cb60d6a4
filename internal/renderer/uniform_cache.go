package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformCache caches uniform locations to avoid repeated gl.GetUniformLocation calls.
// A nil cache (uncompiled shader) silently ignores every setter.
type UniformCache struct {
	locations map[string]int32
	program   uint32
	lookup    func(program uint32, name string) int32
}

// NewUniformCache creates a new uniform cache for a shader program
func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
		lookup: func(program uint32, name string) int32 {
			return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		},
	}
}

// GetLocation returns the cached uniform location or fetches and caches it.
// Missing uniforms are cached as -1 too, so optimized-out names cost one lookup.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := uc.lookup(uc.program, name)
	uc.locations[name] = loc
	return loc
}

// Has reports whether the program declares the uniform.
func (uc *UniformCache) Has(name string) bool {
	return uc != nil && uc.GetLocation(name) != -1
}

func (uc *UniformCache) location(name string) (int32, bool) {
	if uc == nil {
		return -1, false
	}
	loc := uc.GetLocation(name)
	return loc, loc != -1
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	if loc, ok := uc.location(name); ok {
		gl.Uniform1f(loc, value)
	}
}

func (uc *UniformCache) SetVec2(name string, x, y float32) {
	if loc, ok := uc.location(name); ok {
		gl.Uniform2f(loc, x, y)
	}
}

func (uc *UniformCache) SetVec3(name string, x, y, z float32) {
	if loc, ok := uc.location(name); ok {
		gl.Uniform3f(loc, x, y, z)
	}
}

func (uc *UniformCache) SetVec4(name string, x, y, z, w float32) {
	if loc, ok := uc.location(name); ok {
		gl.Uniform4f(loc, x, y, z, w)
	}
}

func (uc *UniformCache) SetInt(name string, value int32) {
	if loc, ok := uc.location(name); ok {
		gl.Uniform1i(loc, value)
	}
}

func (uc *UniformCache) SetMat4(name string, value mgl32.Mat4) {
	if loc, ok := uc.location(name); ok {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
