package engine

import (
	"Floatbook/internal/renderer"
	"testing"
)

func TestSizeTrackerFirstUpdateReportsBoth(t *testing.T) {
	var s sizeTracker
	w, fb := s.update(1280, 800, 2560, 1600)
	if !w || !fb {
		t.Errorf("Expected both sizes reported on the first frame, got %v %v", w, fb)
	}
	w, fb = s.update(1280, 800, 2560, 1600)
	if w || fb {
		t.Errorf("Expected no change, got %v %v", w, fb)
	}
}

func TestSizeTrackerSeparatesWindowAndFramebuffer(t *testing.T) {
	var s sizeTracker
	s.update(1280, 800, 2560, 1600)

	// moved to a low density monitor: same window, smaller framebuffer
	w, fb := s.update(1280, 800, 1280, 800)
	if w || !fb {
		t.Errorf("Expected only the framebuffer to change, got %v %v", w, fb)
	}

	w, fb = s.update(600, 800, 600, 800)
	if !w || !fb {
		t.Errorf("Expected both to change, got %v %v", w, fb)
	}
}

func TestSizeTrackerIgnoresMinimize(t *testing.T) {
	var s sizeTracker
	s.update(1024, 768, 1024, 768)
	if w, fb := s.update(0, 0, 0, 0); w || fb {
		t.Error("Expected a minimized window to be ignored")
	}
	if w, _ := s.update(1024, 768, 1024, 768); w {
		t.Error("Expected restoring the same size to report no change")
	}
}

func TestRenderSwitches(t *testing.T) {
	defer func() {
		renderer.FrustumCullingEnabled = false
		renderer.FaceCullingEnabled = false
	}()

	e := &Engine{}
	e.SetFrustumCulling(true)
	e.SetFaceCulling(true)
	if !renderer.FrustumCullingEnabled || !renderer.FaceCullingEnabled {
		t.Errorf("Expected both culling switches on, got frustum=%v face=%v",
			renderer.FrustumCullingEnabled, renderer.FaceCullingEnabled)
	}
}
