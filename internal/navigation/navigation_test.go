package navigation

import (
	"Floatbook/internal/behaviour"
	"errors"
	"image"
	"testing"
)

// Every character is 10px wide.
type fakeLabels struct{ rendered []string }

func (f *fakeLabels) Measure(text string) float32 {
	return float32(10 * len(text))
}

func (f *fakeLabels) Render(text string, w, h int) *image.RGBA {
	f.rendered = append(f.rendered, text)
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

type fakeTextures struct {
	names []string
	fail  bool
}

func (f *fakeTextures) CreateTextureFromImage(_ image.Image, name string) (uint32, error) {
	if f.fail {
		return 0, errors.New("no context")
	}
	f.names = append(f.names, name)
	return uint32(len(f.names)), nil
}

type fakeSound struct{ plays int }

func (f *fakeSound) Play() { f.plays++ }

func newTestNavigator(pages int, width, height float32) (*Navigator, *fakeSound) {
	sound := &fakeSound{}
	n := NewNavigator(NewPageState(pages), &fakeLabels{}, &fakeTextures{}, sound, DefaultStripStyle())
	n.OnResize(width, height)
	return n, sound
}

func TestPageStateBounds(t *testing.T) {
	s := NewPageState(9)
	if s.Current() != 0 {
		t.Errorf("Expected to start on the cover, got %d", s.Current())
	}
	if !s.Set(9) || s.Current() != 9 {
		t.Errorf("Expected the back cover index to be valid, got %d", s.Current())
	}
	if s.Set(10) || s.Set(-1) {
		t.Error("Expected out of range indices to be rejected")
	}
	if s.Current() != 9 {
		t.Errorf("Expected rejected sets to keep the index, got %d", s.Current())
	}
}

func TestPageStateNotifiesOnChange(t *testing.T) {
	s := NewPageState(4)
	var seen []int
	s.Subscribe(func(index int) { seen = append(seen, index) })

	s.Set(2)
	s.Set(2)
	s.Set(7)
	s.Set(0)

	if len(seen) != 2 || seen[0] != 2 || seen[1] != 0 {
		t.Errorf("Expected notifications [2 0], got %v", seen)
	}
}

func TestLabels(t *testing.T) {
	labels := Labels(3)
	want := []string{"Cover", "Page 1", "Page 2", "Back Cover"}
	if len(labels) != len(want) {
		t.Fatalf("Expected %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("Expected %q at %d, got %q", want[i], i, labels[i])
		}
	}
}

func TestButtonTextUpperCase(t *testing.T) {
	b := Button{Label: "Back Cover"}
	if b.Text() != "BACK COVER" {
		t.Errorf("Expected BACK COVER, got %q", b.Text())
	}
}

func TestStripCenteredWithoutOverlap(t *testing.T) {
	n, _ := newTestNavigator(4, 1024, 768)
	buttons := n.Strip.Buttons
	style := DefaultStripStyle()

	for i := 1; i < len(buttons); i++ {
		prev := buttons[i-1].Rect
		gap := buttons[i].Rect.X - (prev.X + prev.W)
		if gap != style.Gap {
			t.Errorf("Expected gap %f between %d and %d, got %f", style.Gap, i-1, i, gap)
		}
	}

	first := buttons[0].Rect
	last := buttons[len(buttons)-1].Rect
	left := first.X
	right := 1024 - (last.X + last.W)
	if left != right {
		t.Errorf("Expected a centered row, got margins %f and %f", left, right)
	}
	if want := 768 - style.Margin - style.ButtonHeight(); first.Y != want {
		t.Errorf("Expected row at y=%f, got %f", want, first.Y)
	}
}

func TestClickEveryButton(t *testing.T) {
	n, _ := newTestNavigator(9, 1600, 900)
	for i, b := range n.Strip.Buttons {
		x, y := b.Rect.Center()
		n.OnClick(x, y)
		if n.State.Current() != i {
			t.Errorf("Clicking %q should select %d, got %d", b.Label, i, n.State.Current())
		}
	}
}

func TestClickOutsideStripOnlyPlaysSound(t *testing.T) {
	n, sound := newTestNavigator(9, 1600, 900)
	n.State.Set(4)

	if n.OnClick(800, 100) {
		t.Error("A click on the scene should not change the page")
	}
	if n.State.Current() != 4 {
		t.Errorf("Expected page 4, got %d", n.State.Current())
	}
	if sound.plays != 1 {
		t.Errorf("Expected one click sound, got %d", sound.plays)
	}

	x, y := n.Strip.Buttons[2].Rect.Center()
	n.OnClick(x, y)
	if sound.plays != 2 {
		t.Errorf("Expected a click sound for button clicks too, got %d", sound.plays)
	}
}

func TestClickInGapMisses(t *testing.T) {
	n, _ := newTestNavigator(9, 1600, 900)
	r := n.Strip.Buttons[0].Rect
	_, y := r.Center()
	if _, ok := n.Strip.HitTest(r.X+r.W+1, y); ok {
		t.Error("Expected the gap between buttons to miss")
	}
}

func TestStripScrollsWhenOverflowing(t *testing.T) {
	n, _ := newTestNavigator(9, 400, 800)
	style := DefaultStripStyle()

	if x := n.Strip.Buttons[0].Rect.X; x != style.Margin {
		t.Errorf("Expected an overflowing row to start at the margin, got %f", x)
	}

	last := n.Strip.Buttons[len(n.Strip.Buttons)-1]
	y := last.Rect.Y + 1
	for i := 0; i < 100; i++ {
		n.OnScroll(200, y, 1, 0)
	}
	last = n.Strip.Buttons[len(n.Strip.Buttons)-1]
	if end := last.Rect.X + last.Rect.W; end != 400-style.Margin {
		t.Errorf("Expected the last button to end at the right margin, got %f", end)
	}

	x, cy := last.Rect.Center()
	n.OnClick(x, cy)
	if n.State.Current() != last.Target {
		t.Errorf("Expected the scrolled-in button to be clickable, got %d", n.State.Current())
	}

	for i := 0; i < 100; i++ {
		n.OnScroll(200, y, 0, 1)
	}
	if x := n.Strip.Buttons[0].Rect.X; x != style.Margin {
		t.Errorf("Expected scrolling back to stop at the first button, got %f", x)
	}
}

func TestScrollIgnoredAwayFromRow(t *testing.T) {
	n, _ := newTestNavigator(9, 400, 800)
	before := n.Strip.Buttons[0].Rect.X
	n.OnScroll(200, 10, 1, 0)
	if n.Strip.Buttons[0].Rect.X != before {
		t.Error("Expected scrolling over the scene to leave the strip alone")
	}
}

func TestColorTransition(t *testing.T) {
	n, _ := newTestNavigator(4, 1024, 768)
	n.State.Set(2)

	n.Update(behaviour.Frame{Delta: TransitionSeconds / 2})
	if n.active[2] != 0.5 || n.active[0] != 0.5 {
		t.Errorf("Expected colors halfway after half the transition, got %f and %f", n.active[2], n.active[0])
	}

	n.Update(behaviour.Frame{Delta: TransitionSeconds})
	if n.active[2] != 1 || n.active[0] != 0 {
		t.Errorf("Expected the transition to settle, got %f and %f", n.active[2], n.active[0])
	}

	items := n.Overlay()
	if items[2].Fill != activeFill || items[2].TextColor != activeText {
		t.Errorf("Expected the active button to be light with dark text, got %v %v", items[2].Fill, items[2].TextColor)
	}
	if items[0].Fill != inactiveFill {
		t.Errorf("Expected inactive buttons to be dark, got %v", items[0].Fill)
	}
}

func TestHoverBorder(t *testing.T) {
	n, _ := newTestNavigator(4, 1024, 768)
	x, y := n.Strip.Buttons[1].Rect.Center()
	n.OnHover(x, y)
	if !n.Hovering() {
		t.Fatal("Expected the cursor to hover a button")
	}
	n.Update(behaviour.Frame{Delta: 1})

	items := n.Overlay()
	if items[1].Border.W() != 1 {
		t.Errorf("Expected a white border on hover, got %v", items[1].Border)
	}
	if items[0].Border.W() != 0 {
		t.Errorf("Expected no border without hover, got %v", items[0].Border)
	}
}

func TestOverlayUploadsLabelsOnce(t *testing.T) {
	textures := &fakeTextures{}
	labels := &fakeLabels{}
	n := NewNavigator(NewPageState(2), labels, textures, nil, DefaultStripStyle())
	n.OnResize(1024, 768)

	n.Overlay()
	items := n.Overlay()

	if len(textures.names) != 3 {
		t.Errorf("Expected three label textures, got %v", textures.names)
	}
	if textures.names[2] != "label:BACK COVER" {
		t.Errorf("Expected upper case label names, got %q", textures.names[2])
	}
	for i, item := range items {
		if item.TextureID == 0 {
			t.Errorf("Item %d has no label", i)
		}
		if item.Radius != item.Rect.H/2 {
			t.Errorf("Expected pill shaped buttons, got radius %f", item.Radius)
		}
	}
}

func TestOverlaySurvivesUploadFailure(t *testing.T) {
	n := NewNavigator(NewPageState(2), &fakeLabels{}, &fakeTextures{fail: true}, nil, DefaultStripStyle())
	n.OnResize(1024, 768)
	for _, item := range n.Overlay() {
		if item.TextureID != 0 {
			t.Errorf("Expected no label texture, got %d", item.TextureID)
		}
	}
}

func TestLabelFace(t *testing.T) {
	face, err := NewLabelFace(18)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer face.Close()

	if face.Measure("PAGE 10") <= face.Measure("PAGE 1") {
		t.Error("Expected longer labels to measure wider")
	}

	img := face.Render("COVER", 100, 52)
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 52 {
		t.Fatalf("Expected 100x52, got %v", img.Bounds())
	}
	var ink int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			ink++
		}
	}
	if ink == 0 {
		t.Error("Expected the label to draw glyphs")
	}
}
