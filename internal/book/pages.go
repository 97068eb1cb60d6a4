package book

import "math"

// FanStep is the extra hinge angle per page number while the book is open.
const FanStep = float32(0.8 * math.Pi / 180)

// Closed reports whether the book rests on its front or back cover.
func Closed(index, pageCount int) bool {
	return index == 0 || index == pageCount
}

// Turned reports whether page lies on the left stack at the given index.
func Turned(page, index int) bool {
	return page < index
}

// TargetAngle is the hinge rotation, about the spine, that page settles at.
// Unturned pages rest at 0 and turned pages at -π.
func TargetAngle(page, index, pageCount int) float32 {
	var angle float32
	if Turned(page, index) {
		angle = -math.Pi
	}
	if !Closed(index, pageCount) {
		angle += FanStep * float32(page)
	}
	return angle
}

// Ease moves current toward target with exponential smoothing, independent
// of frame rate.
func Ease(current, target, dt, easing float32) float32 {
	if dt <= 0 {
		return current
	}
	k := 1 - float32(math.Exp(-float64(easing*dt)))
	return current + (target-current)*k
}

// StackOffset places page in depth so the top page of each stack is nearest
// the reader.
func StackOffset(page, index int, spacing float32) float32 {
	if Turned(page, index) {
		return -float32(index-1-page) * spacing
	}
	return -float32(page-index) * spacing
}

// CenterShift slides the closed book so the visible cover sits centered on
// the spine's rest position.
func CenterShift(index, pageCount int, width float32) float32 {
	switch {
	case index == 0:
		return -width / 2
	case index == pageCount:
		return width / 2
	default:
		return 0
	}
}
