// Package config loads the optional settings file, JSON or YAML. Every field has a
// default, so a missing file or a partial one is fine.
package config

import (
	"Floatbook/internal/scene"
	"Floatbook/internal/water"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width      int32      `json:"width" yaml:"width"`
	Height     int32      `json:"height" yaml:"height"`
	Title      string     `json:"title" yaml:"title"`
	ClearColor [3]float32 `json:"clear_color" yaml:"clear_color"` // matches the water fog by default
}

type Book struct {
	Images     []string `json:"images" yaml:"images"`
	Cover      string   `json:"cover" yaml:"cover"`
	Back       string   `json:"back" yaml:"back"`
	PageWidth  float32  `json:"page_width" yaml:"page_width"`
	PageHeight float32  `json:"page_height" yaml:"page_height"`
	Easing     float32  `json:"easing" yaml:"easing"`
}

type Camera struct {
	Desktop    scene.CameraPreset `json:"desktop" yaml:"desktop"`
	Mobile     scene.CameraPreset `json:"mobile" yaml:"mobile"`
	Breakpoint int                `json:"breakpoint" yaml:"breakpoint"`
}

type Config struct {
	Window      Window             `json:"window" yaml:"window"`
	AssetRoot   string             `json:"asset_root" yaml:"asset_root"`
	ClickSound  string             `json:"click_sound" yaml:"click_sound"`
	Environment string             `json:"environment" yaml:"environment"`
	Book        Book               `json:"book" yaml:"book"`
	Camera      Camera             `json:"camera" yaml:"camera"`
	Float       scene.FloatOptions `json:"float" yaml:"float"`
	Water       water.Uniforms     `json:"water" yaml:"water"`
	Debug       bool               `json:"debug" yaml:"debug"`
}

// Default is the stock showcase: sixteen photos between the
// cover and back, the studio environment, the page flip click.
func Default() Config {
	images := make([]string, 16)
	for i := range images {
		images[i] = fmt.Sprintf("photo%d", i+1)
	}
	return Config{
		Window: Window{
			Width:      1280,
			Height:     800,
			Title:      "Floatbook",
			ClearColor: [3]float32{0.8, 0.8, 0.8},
		},
		AssetRoot:   "public",
		ClickSound:  filepath.Join("audios", "page-flip-01a.mp3"),
		Environment: scene.DefaultEnvironment,
		Book: Book{
			Images:     images,
			Cover:      "book-cover",
			Back:       "book-back",
			PageWidth:  1.28,
			PageHeight: 1.71,
			Easing:     2.5,
		},
		Camera: Camera{
			Desktop:    scene.DesktopPreset,
			Mobile:     scene.MobilePreset,
			Breakpoint: scene.Breakpoint,
		},
		Float: scene.DefaultFloatOptions(),
		Water: water.DefaultUniforms(),
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := unmarshal(path, data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// unmarshal decodes YAML for .yaml and .yml files, JSON otherwise.
func unmarshal(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if len(c.Book.Images) == 0 {
		return errors.New("book needs at least one image")
	}
	if c.Book.PageWidth <= 0 || c.Book.PageHeight <= 0 {
		return fmt.Errorf("page size must be positive, got %gx%g", c.Book.PageWidth, c.Book.PageHeight)
	}
	if c.Book.Easing <= 0 {
		return fmt.Errorf("book easing must be positive, got %g", c.Book.Easing)
	}
	return nil
}

// ClickSoundPath resolves the click sound against the asset root.
func (c Config) ClickSoundPath() string {
	if filepath.IsAbs(c.ClickSound) {
		return c.ClickSound
	}
	return filepath.Join(c.AssetRoot, c.ClickSound)
}

// SceneOptions maps the file onto the scene composition.
func (c Config) SceneOptions() scene.Options {
	return scene.Options{
		Environment: c.Environment,
		Desktop:     c.Camera.Desktop,
		Mobile:      c.Camera.Mobile,
		Breakpoint:  c.Camera.Breakpoint,
		Float:       c.Float,
		Water:       c.Water,
	}
}
