package config

import (
	"Floatbook/internal/scene"
	"Floatbook/internal/water"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	return writeConfigAs(t, "floatbook.json", body)
}

func writeConfigAs(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(cfg.Book.Images) != 16 {
		t.Errorf("Expected 16 images, got %d", len(cfg.Book.Images))
	}
	if cfg.Camera.Breakpoint != 800 {
		t.Errorf("Expected breakpoint 800, got %d", cfg.Camera.Breakpoint)
	}
	if cfg.Water != water.DefaultUniforms() {
		t.Error("Expected default water uniforms")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"environment": "sunset",
		"book": {"images": ["a", "b"]},
		"camera": {"mobile": {"position": [0, 2, 10], "fov": 50}},
		"water": {"fog_end": 80, "depth_color": [0.1, 0.2, 0.3]}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Environment != "sunset" {
		t.Errorf("Expected sunset, got %s", cfg.Environment)
	}
	if len(cfg.Book.Images) != 2 || cfg.Book.Cover != "book-cover" {
		t.Errorf("Expected two images and the default cover, got %+v", cfg.Book)
	}
	if cfg.Camera.Mobile.Fov != 50 || cfg.Camera.Mobile.Position.Z() != 10 {
		t.Errorf("Expected the mobile override, got %+v", cfg.Camera.Mobile)
	}
	if cfg.Camera.Desktop != scene.DesktopPreset {
		t.Errorf("Expected the desktop default kept, got %+v", cfg.Camera.Desktop)
	}
	if cfg.Water.FogEnd != 80 || cfg.Water.FogStart != 10 {
		t.Errorf("Expected fog 10..80, got %f..%f", cfg.Water.FogStart, cfg.Water.FogEnd)
	}
	if cfg.Water.DepthColor.Y() != 0.2 {
		t.Errorf("Expected depth color override, got %v", cfg.Water.DepthColor)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfigAs(t, "floatbook.yaml", `
environment: night
window:
  width: 640
camera:
  breakpoint: 1000
water:
  big_waves_frequency: [2, 1]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Environment != "night" || cfg.Window.Width != 640 || cfg.Window.Height != 800 {
		t.Errorf("Expected the YAML overrides over the defaults, got %+v", cfg.Window)
	}
	if cfg.Camera.Breakpoint != 1000 {
		t.Errorf("Expected breakpoint 1000, got %d", cfg.Camera.Breakpoint)
	}
	if cfg.Water.BigWavesFrequency.X() != 2 || cfg.Water.BigWaveSpeed != 0.75 {
		t.Errorf("Expected frequency override and default speed, got %v %f",
			cfg.Water.BigWavesFrequency, cfg.Water.BigWaveSpeed)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	if _, err := Load(writeConfig(t, `{"window": `)); err == nil {
		t.Error("Expected a parse error")
	}
	if _, err := Load(writeConfig(t, `{"book": {"images": []}}`)); err == nil {
		t.Error("Expected an error for an empty image list")
	}
	if _, err := Load(writeConfig(t, `{"window": {"width": 0}}`)); err == nil {
		t.Error("Expected an error for a zero width window")
	}
	if _, err := Load(writeConfig(t, `{"book": {"easing": 0}}`)); err == nil {
		t.Error("Expected an error for zero easing")
	}
	if _, err := Load(writeConfig(t, `{"book": {"easing": -1}}`)); err == nil {
		t.Error("Expected an error for negative easing")
	}
}

func TestClickSoundPath(t *testing.T) {
	cfg := Default()
	cfg.AssetRoot = "assets"
	if got := cfg.ClickSoundPath(); got != filepath.Join("assets", "audios", "page-flip-01a.mp3") {
		t.Errorf("Expected the sound under the asset root, got %s", got)
	}
}

func TestSceneOptions(t *testing.T) {
	cfg := Default()
	cfg.Environment = "night"
	opts := cfg.SceneOptions()
	if opts.Environment != "night" || opts.Breakpoint != 800 {
		t.Errorf("Unexpected scene options %+v", opts)
	}
}
