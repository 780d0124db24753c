package storage

// MemorySlot is a map-backed Slot for tests and throwaway sessions.
type MemorySlot struct {
	values map[string]string

	// FailWrites makes Set and Delete report errors without touching the
	// map, to exercise the store's best-effort persistence path.
	FailWrites bool
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: map[string]string{}}
}

func (m *MemorySlot) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemorySlot) Set(key, value string) error {
	if m.FailWrites {
		return errWriteFailed
	}
	m.values[key] = value
	return nil
}

func (m *MemorySlot) Delete(key string) error {
	if m.FailWrites {
		return errWriteFailed
	}
	delete(m.values, key)
	return nil
}

func (m *MemorySlot) Len() int { return len(m.values) }

type slotError string

func (e slotError) Error() string { return string(e) }

const errWriteFailed = slotError("slot write failed")
