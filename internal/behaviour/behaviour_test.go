package behaviour

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type mockBehaviour struct {
	name    string
	log     *[]string
	starts  int
	updates int
	fixed   int
	last    Frame
}

func (m *mockBehaviour) Start() {
	m.starts++
	*m.log = append(*m.log, m.name+".start")
}

func (m *mockBehaviour) Update(frame Frame) {
	m.updates++
	m.last = frame
	*m.log = append(*m.log, m.name+".update")
}

type mockFixedBehaviour struct {
	mockBehaviour
}

func (m *mockFixedBehaviour) UpdateFixed(Frame) {
	m.fixed++
}

func TestUpdateAllStartsOnce(t *testing.T) {
	var log []string
	b := &mockBehaviour{name: "a", log: &log}
	m := NewBehaviourManager()
	m.Add(b)

	m.UpdateAll(Frame{Elapsed: 0.1, Delta: 0.1})
	m.UpdateAll(Frame{Elapsed: 0.2, Delta: 0.1})

	if b.starts != 1 {
		t.Errorf("Expected Start once, got %d", b.starts)
	}
	if b.updates != 2 {
		t.Errorf("Expected 2 updates, got %d", b.updates)
	}
	if b.last.Elapsed != 0.2 {
		t.Errorf("Expected last elapsed 0.2, got %f", b.last.Elapsed)
	}
}

func TestUpdateAllKeepsOrder(t *testing.T) {
	var log []string
	m := NewBehaviourManager()
	a := &mockBehaviour{name: "a", log: &log}
	b := &mockBehaviour{name: "b", log: &log}
	c := &mockBehaviour{name: "c", log: &log}
	m.Add(a)
	m.Add(b)
	m.Add(c)
	m.Remove(a)

	m.UpdateAll(Frame{})

	want := []string{"b.start", "b.update", "c.start", "c.update"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, log[i])
		}
	}
}

func TestUpdateAllFixedOnlyForFixedBehaviours(t *testing.T) {
	var log []string
	plain := &mockBehaviour{name: "plain", log: &log}
	fixed := &mockFixedBehaviour{mockBehaviour{name: "fixed", log: &log}}
	m := NewBehaviourManager()
	m.Add(plain)
	m.Add(fixed)

	m.UpdateAllFixed(Frame{})

	if fixed.fixed != 1 {
		t.Errorf("Expected 1 fixed update, got %d", fixed.fixed)
	}
	if plain.starts != 1 || fixed.starts != 1 {
		t.Error("Fixed updates should start behaviours that have not started yet")
	}
}

func TestClear(t *testing.T) {
	var log []string
	m := NewBehaviourManager()
	m.Add(&mockBehaviour{name: "a", log: &log})
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Expected 0 behaviours, got %d", m.Len())
	}
}

func TestNewTransform(t *testing.T) {
	tr := NewTransform()
	if tr.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", tr.Position)
	}
	if tr.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", tr.Scale)
	}
	if tr.World() != mgl32.Ident4() {
		t.Error("A fresh transform should have an identity world matrix")
	}
}

func TestTransformTranslate(t *testing.T) {
	tr := NewTransform()
	tr.Translate(mgl32.Vec3{1, 2, 3})
	tr.Translate(mgl32.Vec3{1, 0, 0})
	if tr.Position != (mgl32.Vec3{2, 2, 3}) {
		t.Errorf("Expected position (2,2,3), got %v", tr.Position)
	}
}

func TestTransformWorldComposesParent(t *testing.T) {
	parent := NewTransform()
	parent.SetPosition(mgl32.Vec3{0, 0.2, 2})
	child := NewTransform()
	child.SetPosition(mgl32.Vec3{0, 1, 0})
	parent.AddChild(child)

	p := child.World().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if p.Vec3().Sub(mgl32.Vec3{0, 1.2, 2}).Len() > 1e-6 {
		t.Errorf("Expected child origin at (0,1.2,2), got %v", p.Vec3())
	}

	parent.SetEuler(-math.Pi/2, 0, 0)
	p = child.World().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if p.Vec3().Sub(mgl32.Vec3{0, 0.2, 1}).Len() > 1e-5 {
		t.Errorf("Expected rotated child origin at (0,0.2,1), got %v", p.Vec3())
	}
}

func TestTransformAddChildReparents(t *testing.T) {
	a := NewTransform()
	b := NewTransform()
	child := NewTransform()

	a.AddChild(child)
	b.AddChild(child)

	if child.Parent != b {
		t.Error("Child should belong to its new parent")
	}
	if len(a.Children) != 0 {
		t.Errorf("Old parent should have no children, got %d", len(a.Children))
	}
}

func TestTransformDirections(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(mgl32.Vec3{0, 1, 0}, math.Pi/2)

	if tr.Forward().Sub(mgl32.Vec3{-1, 0, 0}).Len() > 1e-5 {
		t.Errorf("Expected forward (-1,0,0), got %v", tr.Forward())
	}
	if tr.Up().Sub(mgl32.Vec3{0, 1, 0}).Len() > 1e-5 {
		t.Errorf("Expected up (0,1,0), got %v", tr.Up())
	}
}
