package torch

import "reflect"

// StateMap is a type-keyed container for shared application state: one
// value per Go type, looked up by the value's dynamic type. It is the
// dispatch-core equivalent of dependency injection by type.
//
// A StateMap is populated before the application starts serving and is
// read-only afterwards, so lookups need no locking.
type StateMap struct {
	values map[reflect.Type]any
}

// NewStateMap returns an empty state container.
func NewStateMap() *StateMap {
	return &StateMap{values: make(map[reflect.Type]any)}
}

// Insert stores v keyed by its dynamic type. Inserting a second value of
// the same type replaces the first; last insert wins. A nil interface is
// ignored.
func (m *StateMap) Insert(v any) {
	if v == nil {
		return
	}
	m.values[reflect.TypeOf(v)] = v
}

// Get returns the value stored for the given type.
func (m *StateMap) Get(t reflect.Type) (any, bool) {
	v, ok := m.values[t]
	return v, ok
}

// Contains reports whether a value of the given type is stored.
func (m *StateMap) Contains(t reflect.Type) bool {
	_, ok := m.values[t]
	return ok
}

// Len returns the number of stored values.
func (m *StateMap) Len() int {
	return len(m.values)
}

// StateOf looks up the stored value of concrete type T.
func StateOf[T any](m *StateMap) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	v, ok := m.values[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
