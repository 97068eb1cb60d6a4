package renderer

import (
	"testing"
)

func fakeCache(known map[string]int32) (*UniformCache, *int) {
	calls := 0
	cache := NewUniformCache(7)
	cache.lookup = func(program uint32, name string) int32 {
		calls++
		if program != 7 {
			return -1
		}
		if loc, ok := known[name]; ok {
			return loc
		}
		return -1
	}
	return cache, &calls
}

func TestNewUniformCache(t *testing.T) {
	cache := NewUniformCache(0)

	if cache == nil {
		t.Fatal("NewUniformCache returned nil")
	}

	if cache.locations == nil {
		t.Error("locations map should be initialized")
	}
}

func TestUniformCacheLooksUpOnce(t *testing.T) {
	cache, calls := fakeCache(map[string]int32{"uTime": 3})

	for i := 0; i < 5; i++ {
		if loc := cache.GetLocation("uTime"); loc != 3 {
			t.Fatalf("Expected location 3, got %d", loc)
		}
	}
	if *calls != 1 {
		t.Errorf("Expected 1 lookup, got %d", *calls)
	}
}

func TestUniformCacheCachesMissingUniforms(t *testing.T) {
	cache, calls := fakeCache(nil)

	if cache.Has("missing") {
		t.Error("missing uniform should not be reported")
	}
	cache.Has("missing")
	if *calls != 1 {
		t.Errorf("Expected missing uniform to be cached, got %d lookups", *calls)
	}
}

func TestUniformCacheClear(t *testing.T) {
	cache := NewUniformCache(0)
	cache.locations["test"] = 5

	cache.Clear()

	if len(cache.locations) != 0 {
		t.Error("Clear should empty the cache")
	}
}

func TestNilUniformCacheIgnoresSetters(t *testing.T) {
	var cache *UniformCache

	// Uncompiled shaders have no cache; none of these may panic.
	cache.SetFloat("a", 1)
	cache.SetVec2("b", 1, 2)
	cache.SetVec3("c", 1, 2, 3)
	cache.SetInt("d", 1)

	if cache.Has("a") {
		t.Error("nil cache should not report uniforms")
	}
}
