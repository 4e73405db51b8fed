package store

import "sync"

// Memory is a mutex-guarded in-memory key→entity map that remembers
// insertion order. It is the single owner of the entities it holds;
// callers receive copies of the id index, never the internal slices.
type Memory[E any] struct {
	mu    sync.RWMutex
	items map[int64]E
	order []int64
}

func NewMemory[E any]() *Memory[E] {
	return &Memory[E]{items: make(map[int64]E)}
}

// Get returns the entity stored under id.
func (m *Memory[E]) Get(id int64) (E, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[id]
	return e, ok
}

// List returns all entities in insertion order.
func (m *Memory[E]) List() []E {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]E, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out
}

// ListFunc returns the entities matching pred, in insertion order.
// Filtering is a linear scan.
func (m *Memory[E]) ListFunc(pred func(E) bool) []E {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]E, 0)
	for _, id := range m.order {
		if e := m.items[id]; pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Put inserts or wholesale-replaces the entity under id. A replace keeps
// the original insertion position.
func (m *Memory[E]) Put(id int64, e E) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[id]; !exists {
		m.order = append(m.order, id)
	}
	m.items[id] = e
}

// Replace swaps the entity under id only if one is already stored there,
// in a single critical section. A concurrent Delete can therefore never be
// undone by an in-flight update.
func (m *Memory[E]) Replace(id int64, e E) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[id]; !exists {
		return false
	}
	m.items[id] = e
	return true
}

// Delete removes the entity under id and reports whether it existed.
func (m *Memory[E]) Delete(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[id]; !exists {
		return false
	}
	delete(m.items, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored entities.
func (m *Memory[E]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}
