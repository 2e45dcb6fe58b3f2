package interaction

import mapset "github.com/deckarep/golang-set/v2"

// Handle marks a running piece of work that idle-time tasks must wait for.
type Handle uint64

// Manager issues and clears interaction handles. Work queued with
// RunAfterInteractions is held until no handle is outstanding.
//
// Not safe for concurrent use; like the rest of the engine it expects to be
// driven from a single goroutine.
type Manager struct {
	next    Handle
	active  mapset.Set[Handle]
	pending []func()
}

func NewManager() *Manager {
	return &Manager{
		active: mapset.NewThreadUnsafeSet[Handle](),
	}
}

// CreateHandle returns a fresh handle and marks it active.
func (m *Manager) CreateHandle() Handle {
	m.next++
	h := m.next
	m.active.Add(h)
	return h
}

// ClearHandle releases h. Clearing an unknown or already cleared handle is a
// no-op. When the last active handle is cleared the queued idle work runs.
func (m *Manager) ClearHandle(h Handle) {
	if !m.active.Contains(h) {
		return
	}
	m.active.Remove(h)
	if m.active.Cardinality() == 0 {
		m.flush()
	}
}

// Pending reports the number of outstanding handles.
func (m *Manager) Pending() int {
	return m.active.Cardinality()
}

func (m *Manager) IsIdle() bool {
	return m.active.Cardinality() == 0
}

// RunAfterInteractions runs fn once no handle is outstanding. If the manager
// is already idle fn runs immediately.
func (m *Manager) RunAfterInteractions(fn func()) {
	if m.IsIdle() {
		fn()
		return
	}
	m.pending = append(m.pending, fn)
}

func (m *Manager) flush() {
	for len(m.pending) > 0 && m.IsIdle() {
		fn := m.pending[0]
		m.pending = m.pending[1:]
		fn()
	}
}
