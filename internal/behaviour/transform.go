package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a node in a parent/child hierarchy. World matrices compose
// parent first: world = parent.World() * local.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
	Children []*Transform
}

func NewTransform() *Transform {
	return &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	rotation := mgl32.QuatRotate(angle, axis)
	t.Rotation = t.Rotation.Mul(rotation)
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

// SetEuler sets the rotation from XYZ Euler angles in radians.
func (t *Transform) SetEuler(x, y, z float32) {
	t.Rotation = mgl32.AnglesToQuat(x, y, z, mgl32.XYZ)
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// AddChild reparents child under t.
func (t *Transform) AddChild(child *Transform) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = t
	t.Children = append(t.Children, child)
}

func (t *Transform) RemoveChild(child *Transform) {
	for i, c := range t.Children {
		if c == child {
			t.Children = append(t.Children[:i], t.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Local returns T * R * S.
func (t *Transform) Local() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	scale := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return translation.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

func (t *Transform) World() mgl32.Mat4 {
	if t.Parent == nil {
		return t.Local()
	}
	return t.Parent.World().Mul4(t.Local())
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}
