// Package engine owns the window, the frame loop and input, and hands frames
// to behaviours and the renderer.
package engine

import (
	"Floatbook/internal/behaviour"
	"Floatbook/internal/logger"
	"Floatbook/internal/renderer"
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// FixedUpdateInterval is the number of frames between fixed updates.
const FixedUpdateInterval = 2

// Input receives pointer events in window coordinates, origin top-left.
type Input interface {
	OnClick(x, y float32) bool
	OnHover(x, y float32)
	OnScroll(x, y, dx, dy float32)
	Hovering() bool
}

// Overlay supplies screen-space items drawn after the scene each frame.
type Overlay interface {
	Overlay() []renderer.OverlayItem
}

type Engine struct {
	Width  int32
	Height int32
	Title  string

	Camera     *renderer.Camera
	Light      *renderer.Light
	Behaviours *behaviour.BehaviourManager

	rendererAPI renderer.Render
	overlay     *renderer.OverlayRenderer
	window      *glfw.Window
	handCursor  *glfw.Cursor

	input      Input
	overlays   []Overlay
	onResize   []func(width, height int32)
	sizes      sizeTracker
	frameTrack int
}

func New(width, height int32, title string) *Engine {
	return &Engine{
		Width:       width,
		Height:      height,
		Title:       title,
		Behaviours:  behaviour.NewBehaviourManager(),
		rendererAPI: &renderer.OpenGLRenderer{},
		overlay:     renderer.NewOverlayRenderer(),
	}
}

// SetInput routes pointer events to in.
func (e *Engine) SetInput(in Input) {
	e.input = in
}

// AddOverlay draws o on top of the scene, in the order added.
func (e *Engine) AddOverlay(o Overlay) {
	e.overlays = append(e.overlays, o)
}

// OnResize registers fn for window size changes, in window coordinates. It
// runs once before the first frame too.
func (e *Engine) OnResize(fn func(width, height int32)) {
	e.onResize = append(e.onResize, fn)
}

// Run opens the window at (x, y), or lets the system place it when either is
// negative, and blocks until it closes. Must be called from the main thread.
func (e *Engine) Run(x, y int) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(e.Width), int(e.Height), e.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	e.window = window
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	if x >= 0 && y >= 0 {
		window.SetPos(x, y)
	}
	setDarkTitleBar(window)

	fbWidth, fbHeight := window.GetFramebufferSize()
	e.rendererAPI.Init(int32(fbWidth), int32(fbHeight), window)
	if e.Camera == nil {
		e.Camera = renderer.NewDefaultCamera(e.Width, e.Height)
	}

	e.handCursor = glfw.CreateStandardCursor(glfw.HandCursor)
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetCursorPosCallback(e.cursorCallback)
	window.SetMouseButtonCallback(e.mouseButtonCallback)
	window.SetScrollCallback(e.scrollCallback)
	window.SetKeyCallback(e.keyCallback)

	logger.Log.Info("Window opened",
		zap.Int32("width", e.Width),
		zap.Int32("height", e.Height),
		zap.Int("framebufferWidth", fbWidth),
		zap.Int("framebufferHeight", fbHeight))

	e.RenderLoop()
	return nil
}

func (e *Engine) RenderLoop() {
	start := glfw.GetTime()
	last := start

	for !e.window.ShouldClose() {
		now := glfw.GetTime()
		frame := behaviour.Frame{Elapsed: now - start, Delta: now - last}
		last = now

		e.syncSize()

		if e.frameTrack >= FixedUpdateInterval {
			e.Behaviours.UpdateAllFixed(frame)
			e.frameTrack = 0
		}
		e.Behaviours.UpdateAll(frame)

		e.rendererAPI.Render(*e.Camera, e.Light)
		for _, o := range e.overlays {
			e.overlay.Draw(o.Overlay(), e.Width, e.Height)
		}

		e.window.SwapBuffers()
		e.frameTrack++
		glfw.PollEvents()
	}

	e.overlay.Cleanup()
	e.rendererAPI.Cleanup()
	if e.handCursor != nil {
		e.handCursor.Destroy()
	}
}

// syncSize polls the window and framebuffer sizes. The framebuffer drives
// the GL viewport; the window size drives layout and camera presets.
func (e *Engine) syncSize() {
	w, h := e.window.GetSize()
	fw, fh := e.window.GetFramebufferSize()
	windowChanged, framebufferChanged := e.sizes.update(int32(w), int32(h), int32(fw), int32(fh))
	if framebufferChanged {
		e.rendererAPI.UpdateViewport(int32(fw), int32(fh))
	}
	if windowChanged {
		e.Width, e.Height = int32(w), int32(h)
		for _, fn := range e.onResize {
			fn(e.Width, e.Height)
		}
	}
}

func (e *Engine) SetFaceCulling(enabled bool) {
	renderer.FaceCullingEnabled = enabled
}

func (e *Engine) SetFrustumCulling(enabled bool) {
	renderer.FrustumCullingEnabled = enabled
}

func (e *Engine) SetClearColor(r, g, b float32) {
	renderer.ClearColorR, renderer.ClearColorG, renderer.ClearColorB = r, g, b
}

func (e *Engine) AddModel(model *renderer.Model) {
	e.rendererAPI.AddModel(model)
}

func (e *Engine) CreateTextureFromImage(img image.Image, name string) (uint32, error) {
	return e.rendererAPI.CreateTextureFromImage(img, name)
}

func (e *Engine) SetEnvironment(env renderer.Environment) {
	e.rendererAPI.SetEnvironment(env)
}

func (e *Engine) cursorCallback(w *glfw.Window, xpos, ypos float64) {
	if e.input == nil {
		return
	}
	e.input.OnHover(float32(xpos), float32(ypos))
	if e.input.Hovering() {
		w.SetCursor(e.handCursor)
	} else {
		w.SetCursor(nil)
	}
}

// A click is a left button release, wherever it lands.
func (e *Engine) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if e.input == nil || button != glfw.MouseButtonLeft || action != glfw.Release {
		return
	}
	x, y := w.GetCursorPos()
	e.input.OnClick(float32(x), float32(y))
}

func (e *Engine) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if e.input == nil {
		return
	}
	x, y := w.GetCursorPos()
	e.input.OnScroll(float32(x), float32(y), float32(xoff), float32(yoff))
}

func (e *Engine) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

type sizeTracker struct {
	width        int32
	height       int32
	framebufferW int32
	framebufferH int32
	seen         bool
}

// update records new sizes and reports what changed. The first call reports
// both. Zero sizes (minimized) are ignored.
func (s *sizeTracker) update(w, h, fw, fh int32) (windowChanged, framebufferChanged bool) {
	if w <= 0 || h <= 0 || fw <= 0 || fh <= 0 {
		return false, false
	}
	if !s.seen {
		s.seen = true
		s.width, s.height, s.framebufferW, s.framebufferH = w, h, fw, fh
		return true, true
	}
	windowChanged = w != s.width || h != s.height
	framebufferChanged = fw != s.framebufferW || fh != s.framebufferH
	s.width, s.height, s.framebufferW, s.framebufferH = w, h, fw, fh
	return windowChanged, framebufferChanged
}
