package navigation

import (
	"Floatbook/internal/behaviour"
	"Floatbook/internal/logger"
	"Floatbook/internal/renderer"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ScrollStep is the distance in pixels of one wheel notch over the strip.
const ScrollStep = 40

// TransitionSeconds is how long button colors take to change.
const TransitionSeconds = 0.3

var (
	activeFill   = mgl32.Vec4{1, 1, 1, 0.9}
	inactiveFill = mgl32.Vec4{0, 0, 0, 0.3}
	activeText   = mgl32.Vec4{0, 0, 0, 1}
	inactiveText = mgl32.Vec4{1, 1, 1, 1}
	hoverBorder  = mgl32.Vec4{1, 1, 1, 1}
)

// Sound is played on every click anywhere in the window.
type Sound interface {
	Play()
}

// Labeler measures and rasterizes label text.
type Labeler interface {
	Measure(text string) float32
	Render(text string, w, h int) *image.RGBA
}

// TextureSink uploads label masks.
type TextureSink interface {
	CreateTextureFromImage(img image.Image, name string) (uint32, error)
}

// Navigator turns pointer input into page changes and draws the strip.
type Navigator struct {
	State *PageState
	Strip *ControlStrip

	sound    Sound
	labels   Labeler
	textures TextureSink

	hover    int
	active   []float32 // 0 inactive, 1 active, eased
	hovered  []float32
	labelIDs []uint32
	items    []renderer.OverlayItem
}

func NewNavigator(state *PageState, labels Labeler, textures TextureSink, sound Sound, style StripStyle) *Navigator {
	strip := NewControlStrip(state.Count(), style, labels.Measure)
	n := &Navigator{
		State:    state,
		Strip:    strip,
		sound:    sound,
		labels:   labels,
		textures: textures,
		hover:    -1,
		active:   make([]float32, len(strip.Buttons)),
		hovered:  make([]float32, len(strip.Buttons)),
		labelIDs: make([]uint32, len(strip.Buttons)),
	}
	if current := state.Current(); current < len(n.active) {
		n.active[current] = 1
	}
	return n
}

func (n *Navigator) Start() {}

// OnResize lays the strip out for a window of width×height pixels.
func (n *Navigator) OnResize(width, height float32) {
	n.Strip.Layout(width, height)
}

// OnClick plays the click sound, then jumps to the page of the button
// under (x, y), if any. It reports whether the page index was set.
func (n *Navigator) OnClick(x, y float32) bool {
	if n.sound != nil {
		n.sound.Play()
	}
	target, ok := n.Strip.HitTest(x, y)
	if !ok {
		return false
	}
	logger.Log.Debug("Page button clicked", zap.Int("target", target))
	return n.State.Set(target)
}

// OnHover tracks the button under the cursor.
func (n *Navigator) OnHover(x, y float32) {
	n.hover = n.Strip.ButtonAt(x, y)
}

// Hovering reports whether the cursor is over a button.
func (n *Navigator) Hovering() bool {
	return n.hover >= 0
}

// OnScroll scrolls an overflowing strip while the cursor is over its row.
// Vertical wheels scroll horizontally when there is no horizontal delta.
func (n *Navigator) OnScroll(x, y, dx, dy float32) {
	if !n.overRow(y) {
		return
	}
	delta := dx
	if delta == 0 {
		delta = -dy
	}
	n.Strip.Scroll(delta * ScrollStep)
	n.hover = n.Strip.ButtonAt(x, y)
}

func (n *Navigator) overRow(y float32) bool {
	if len(n.Strip.Buttons) == 0 {
		return false
	}
	r := n.Strip.Buttons[0].Rect
	return y >= r.Y && y < r.Y+r.H
}

// Update eases button colors toward their current state.
func (n *Navigator) Update(frame behaviour.Frame) {
	step := float32(frame.Delta / TransitionSeconds)
	current := n.State.Current()
	for i, b := range n.Strip.Buttons {
		n.active[i] = approach(n.active[i], boolToFloat(b.Target == current), step)
		n.hovered[i] = approach(n.hovered[i], boolToFloat(i == n.hover), step)
	}
}

// Overlay returns the strip as overlay items, uploading label masks on
// first use. The slice is reused between calls.
func (n *Navigator) Overlay() []renderer.OverlayItem {
	n.items = n.items[:0]
	width := n.Strip.width
	for i, b := range n.Strip.Buttons {
		if b.Rect.X+b.Rect.W <= 0 || b.Rect.X >= width {
			continue
		}
		n.items = append(n.items, renderer.OverlayItem{
			Rect:        b.Rect,
			Fill:        mixVec4(inactiveFill, activeFill, n.active[i]),
			Border:      hoverBorder.Mul(n.hovered[i]),
			BorderWidth: n.Strip.style.BorderWidth,
			Radius:      b.Rect.H / 2,
			TextureID:   n.label(i),
			TextColor:   mixVec4(inactiveText, activeText, n.active[i]),
		})
	}
	return n.items
}

func (n *Navigator) label(i int) uint32 {
	if n.labelIDs[i] != 0 || n.textures == nil {
		return n.labelIDs[i]
	}
	b := n.Strip.Buttons[i]
	w := int(math.Ceil(float64(b.Rect.W)))
	h := int(math.Ceil(float64(b.Rect.H)))
	img := n.labels.Render(b.Text(), w, h)
	id, err := n.textures.CreateTextureFromImage(img, "label:"+b.Text())
	if err != nil {
		logger.Log.Warn("Label texture failed", zap.String("label", b.Label), zap.Error(err))
		return 0
	}
	n.labelIDs[i] = id
	return id
}

func approach(v, target, step float32) float32 {
	if v < target {
		return min32(v+step, target)
	}
	if v > target {
		return max32(v-step, target)
	}
	return v
}

func mixVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
