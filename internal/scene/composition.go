// Package scene assembles the frame: camera presets, light, environment,
// shadow catcher, the floating book and the water.
package scene

import (
	"Floatbook/internal/behaviour"
	"Floatbook/internal/book"
	"Floatbook/internal/loader"
	"Floatbook/internal/logger"
	"Floatbook/internal/renderer"
	"Floatbook/internal/water"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Host is what the scene needs from the engine.
type Host interface {
	book.Scene
	SetEnvironment(env renderer.Environment)
}

type Options struct {
	Environment string
	Desktop     CameraPreset
	Mobile      CameraPreset
	Breakpoint  int
	Float       FloatOptions
	Water       water.Uniforms
}

func DefaultOptions() Options {
	return Options{
		Environment: DefaultEnvironment,
		Desktop:     DesktopPreset,
		Mobile:      MobilePreset,
		Breakpoint:  Breakpoint,
		Float:       DefaultFloatOptions(),
		Water:       water.DefaultUniforms(),
	}
}

// Scene layout.
var (
	FloatPosition = mgl32.Vec3{0, 0.2, 2}
	FloatTilt     = float32(-math.Pi / 12)
	BookOffset    = mgl32.Vec3{0, 1, 0}

	LightPosition = mgl32.Vec3{2, 5, 2}
	LightColor    = water.RGB(0x55, 0xa3, 0x89)
)

const (
	GroundSize          = 100
	GroundHeight        = -1.5
	GroundShadowOpacity = 0.2
)

// Composition owns everything drawn in 3D and drives it as one behaviour.
type Composition struct {
	Camera *renderer.Camera
	Light  *renderer.Light
	Water  *water.Surface
	Book   *book.Book
	Float  *FloatAnimator
	Ground *renderer.Model

	// Anchor holds the fixed float position and tilt; Float animates its
	// child, which carries the book.
	Anchor *behaviour.Transform

	host    Host
	opts    Options
	preset  CameraPreset
	started bool
}

// New builds the scene graph for a window of width×height pixels. Models
// reach the host on Start.
func New(host Host, b *book.Book, opts Options, width, height int32) (*Composition, error) {
	surface, err := water.NewSurface(host, opts.Water)
	if err != nil {
		return nil, err
	}
	ground, err := newShadowCatcher()
	if err != nil {
		return nil, err
	}

	c := &Composition{
		Camera: renderer.NewDefaultCamera(width, height),
		Light:  newLight(),
		Water:  surface,
		Book:   b,
		Ground: ground,
		Anchor: behaviour.NewTransform(),
		host:   host,
		opts:   opts,
	}

	c.Anchor.SetPosition(FloatPosition)
	c.Anchor.Rotate(mgl32.Vec3{1, 0, 0}, FloatTilt)
	floating := behaviour.NewTransform()
	c.Anchor.AddChild(floating)
	floating.AddChild(b.Root)
	b.Root.SetPosition(BookOffset)
	c.Float = NewFloatAnimator(floating, opts.Float)

	c.OnViewportResize(width, height)
	return c, nil
}

func newLight() *renderer.Light {
	light := renderer.CreateDirectionalLight(LightPosition, mgl32.Vec3{0, 0, 0}, LightColor, 1)
	light.CastShadows = true
	light.ShadowMapSize = 2048
	light.ShadowBias = -0.0001
	return light
}

func newShadowCatcher() (*renderer.Model, error) {
	ground, err := loader.LoadPlane(GroundSize, GroundSize, 1)
	if err != nil {
		return nil, fmt.Errorf("shadow catcher: %w", err)
	}
	ground.Name = "Shadow Catcher"
	ground.SetPosition(0, GroundHeight, 0)
	ground.ShadowCatcher = true
	ground.Transparent = true
	ground.ReceiveShadow = true
	ground.CastShadow = false
	ground.CustomUniforms = map[string]interface{}{"shadowOpacity": float32(GroundShadowOpacity)}
	return ground, nil
}

// Preset is the camera preset currently applied.
func (c *Composition) Preset() CameraPreset {
	return c.preset
}

// OnViewportResize switches camera presets across the breakpoint and keeps
// the aspect ratio in step with the window.
func (c *Composition) OnViewportResize(width, height int32) {
	c.Camera.SetViewport(width, height)
	if width <= 0 {
		return
	}
	preset := SelectPreset(int(width), c.opts.Breakpoint, c.opts.Desktop, c.opts.Mobile)
	if preset == c.preset {
		return
	}
	c.preset = preset
	preset.Apply(c.Camera)
	logger.Log.Debug("Camera preset applied",
		zap.Int32("width", width),
		zap.Float32("z", preset.Position.Z()),
		zap.Float32("fov", preset.Fov))
}

// Start implements behaviour.Behaviour.
func (c *Composition) Start() {
	if c.started {
		return
	}
	c.started = true

	c.host.SetEnvironment(LookupEnvironment(c.opts.Environment))
	c.host.AddModel(c.Ground)
	c.Water.Start()
	c.Float.Start()
	c.Book.Start()

	logger.Log.Info("Scene composed",
		zap.String("environment", c.opts.Environment),
		zap.Int("pages", c.Book.PageCount()))
}

// Update advances the float first so the book picks up the moved parent in
// the same frame.
func (c *Composition) Update(frame behaviour.Frame) {
	c.Float.Update(frame)
	c.Water.Update(frame)
	c.Book.Update(frame)
}
