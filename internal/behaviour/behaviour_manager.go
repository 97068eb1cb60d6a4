package behaviour

// Frame carries the render loop clock into behaviours, in seconds.
type Frame struct {
	Elapsed float64 // since the loop started
	Delta   float64 // since the previous frame
}

// Behaviour is driven once per rendered frame. Start runs before the first
// Update.
type Behaviour interface {
	Start()
	Update(frame Frame)
}

// FixedBehaviour is an optional extension for work that runs on the slower
// fixed tick.
type FixedBehaviour interface {
	UpdateFixed(frame Frame)
}

type BehaviourWrapper struct {
	Behaviour Behaviour
	started   bool
}

type BehaviourManager struct {
	behaviours []BehaviourWrapper
}

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{}
}

func (m *BehaviourManager) Add(behaviour Behaviour) {
	m.behaviours = append(m.behaviours, BehaviourWrapper{Behaviour: behaviour, started: false})
}

// Remove drops behaviour, keeping the update order of the others.
func (m *BehaviourManager) Remove(behaviour Behaviour) {
	for i := range m.behaviours {
		if m.behaviours[i].Behaviour == behaviour {
			m.behaviours = append(m.behaviours[:i], m.behaviours[i+1:]...)
			return
		}
	}
}

// Clear removes all behaviours from the manager
func (m *BehaviourManager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *BehaviourManager) Len() int {
	return len(m.behaviours)
}

// UpdateAll updates behaviours in the order they were added.
func (m *BehaviourManager) UpdateAll(frame Frame) {
	for i := range m.behaviours {
		m.start(i)
		m.behaviours[i].Behaviour.Update(frame)
	}
}

func (m *BehaviourManager) UpdateAllFixed(frame Frame) {
	for i := range m.behaviours {
		m.start(i)
		if fixed, ok := m.behaviours[i].Behaviour.(FixedBehaviour); ok {
			fixed.UpdateFixed(frame)
		}
	}
}

func (m *BehaviourManager) start(i int) {
	if !m.behaviours[i].started {
		m.behaviours[i].Behaviour.Start()
		m.behaviours[i].started = true
	}
}
