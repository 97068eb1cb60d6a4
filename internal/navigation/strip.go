package navigation

import (
	"Floatbook/internal/renderer"
	"fmt"
	"strings"
)

// Button targets one page index.
type Button struct {
	Label  string
	Target int
	Rect   renderer.Rect
}

// Text is the label as drawn: upper case.
func (b Button) Text() string {
	return strings.ToUpper(b.Label)
}

// StripStyle sizes the strip in window pixels.
type StripStyle struct {
	FontSize    float32
	LineHeight  float32
	PaddingX    float32
	PaddingY    float32
	BorderWidth float32
	Gap         float32
	Margin      float32 // around the row, also its distance from the bottom edge
}

func DefaultStripStyle() StripStyle {
	return StripStyle{
		FontSize:    18,
		LineHeight:  28,
		PaddingX:    16,
		PaddingY:    12,
		BorderWidth: 1,
		Gap:         16,
		Margin:      40,
	}
}

// ButtonHeight is the outer height of every button.
func (s StripStyle) ButtonHeight() float32 {
	return s.LineHeight + 2*s.PaddingY + 2*s.BorderWidth
}

// Labels returns one label per page index: "Cover" for 0, "Page i" for the
// interior pages and "Back Cover" for pageCount.
func Labels(pageCount int) []string {
	labels := make([]string, 0, pageCount+1)
	for i := 0; i < pageCount; i++ {
		if i == 0 {
			labels = append(labels, "Cover")
			continue
		}
		labels = append(labels, fmt.Sprintf("Page %d", i))
	}
	return append(labels, "Back Cover")
}

// ControlStrip is the row of page buttons along the bottom of the window.
// The row is centered when it fits and scrolls horizontally when it does not.
type ControlStrip struct {
	Buttons []Button

	style   StripStyle
	measure func(text string) float32

	width, height float32
	rowWidth      float32
	scroll        float32
}

// NewControlStrip creates buttons for indices 0..pageCount. measure returns
// the advance width of a label in pixels.
func NewControlStrip(pageCount int, style StripStyle, measure func(text string) float32) *ControlStrip {
	c := &ControlStrip{style: style, measure: measure}
	for target, label := range Labels(pageCount) {
		c.Buttons = append(c.Buttons, Button{Label: label, Target: target})
	}
	return c
}

// Layout positions the buttons for a window of the given size.
func (c *ControlStrip) Layout(width, height float32) {
	c.width, c.height = width, height

	c.rowWidth = 0
	for i := range c.Buttons {
		w := c.measure(c.Buttons[i].Text()) + 2*c.style.PaddingX + 2*c.style.BorderWidth
		c.Buttons[i].Rect.W = w
		c.Buttons[i].Rect.H = c.style.ButtonHeight()
		c.rowWidth += w
	}
	if len(c.Buttons) > 1 {
		c.rowWidth += c.style.Gap * float32(len(c.Buttons)-1)
	}
	c.scroll = clamp(c.scroll, 0, c.maxScroll())
	c.place()
}

func (c *ControlStrip) place() {
	x := c.style.Margin - c.scroll
	if c.maxScroll() == 0 {
		x = (c.width - c.rowWidth) / 2
	}
	y := c.height - c.style.Margin - c.style.ButtonHeight()
	for i := range c.Buttons {
		c.Buttons[i].Rect.X = x
		c.Buttons[i].Rect.Y = y
		x += c.Buttons[i].Rect.W + c.style.Gap
	}
}

func (c *ControlStrip) maxScroll() float32 {
	overflow := c.rowWidth + 2*c.style.Margin - c.width
	if overflow < 0 {
		return 0
	}
	return overflow
}

// Scroll shifts an overflowing row by dx pixels; positive moves toward the
// last button.
func (c *ControlStrip) Scroll(dx float32) {
	c.scroll = clamp(c.scroll+dx, 0, c.maxScroll())
	c.place()
}

// ButtonAt returns the index into Buttons under (x, y), or -1.
func (c *ControlStrip) ButtonAt(x, y float32) int {
	if x < 0 || x >= c.width {
		return -1
	}
	for i, b := range c.Buttons {
		if b.Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// HitTest maps a click to the page index of the button under it.
func (c *ControlStrip) HitTest(x, y float32) (int, bool) {
	i := c.ButtonAt(x, y)
	if i < 0 {
		return 0, false
	}
	return c.Buttons[i].Target, true
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
