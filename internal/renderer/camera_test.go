package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	if math.Abs(float64(cam.AspectRatio-800.0/600.0)) > 1e-6 {
		t.Errorf("Expected aspect ratio %f, got %f", 800.0/600.0, cam.AspectRatio)
	}

	if cam.Fov != 45 {
		t.Errorf("Expected fov 45, got %f", cam.Fov)
	}
}

func TestNewDefaultCameraZeroHeight(t *testing.T) {
	cam := NewDefaultCamera(800, 0)
	if cam.AspectRatio != 1 {
		t.Errorf("Expected aspect ratio 1 for a zero height, got %f", cam.AspectRatio)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}

	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(origin.Z()+5)) > 1e-5 {
		t.Errorf("Expected origin 5 units in front of the camera, got z=%f", origin.Z())
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraSetPosition(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.SetPosition(mgl32.Vec3{10, 20, 30})

	if cam.Position.X() != 10 || cam.Position.Y() != 20 || cam.Position.Z() != 30 {
		t.Errorf("Expected position (10,20,30), got %v", cam.Position)
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Yaw = -90
	cam.Pitch = 0

	cam.updateCameraVectors()

	expected := mgl32.Vec3{0, 0, -1}
	if cam.Front.Sub(expected).Len() > 1e-5 {
		t.Errorf("Expected front %v, got %v", expected, cam.Front)
	}
	if cam.Right.Sub(mgl32.Vec3{1, 0, 0}).Len() > 1e-5 {
		t.Errorf("Expected right (1,0,0), got %v", cam.Right)
	}
}

func TestCameraSetFovUpdatesProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	before := cam.Projection

	cam.SetFov(60)

	if cam.Projection == before {
		t.Error("Projection should change with the field of view")
	}
}

func TestCameraSetViewportIgnoresZero(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.SetViewport(0, 0)
	if math.Abs(float64(cam.AspectRatio-800.0/600.0)) > 1e-6 {
		t.Errorf("Aspect ratio should not change for a zero viewport, got %f", cam.AspectRatio)
	}

	cam.SetViewport(600, 1200)
	if cam.AspectRatio != 0.5 {
		t.Errorf("Expected aspect ratio 0.5, got %f", cam.AspectRatio)
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	f := cam.CalculateFrustum()

	if !f.IntersectsSphere(mgl32.Vec3{0, 0, 0}, 1) {
		t.Error("Sphere in front of the camera should be inside the frustum")
	}
	if f.IntersectsSphere(mgl32.Vec3{0, 0, 50}, 1) {
		t.Error("Sphere behind the camera should be outside the frustum")
	}
}
