package models

import "slices"

// Snapshot is a point-in-time copy of both ordered sequences.
// It is what the persistence layer loads and what import/export moves around.
type Snapshot struct {
	Columns []Column `json:"columns" cbor:"columns"`
	Tasks   []Task   `json:"tasks" cbor:"tasks"`
}

// Clone returns a deep copy whose slices do not alias the receiver's
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Columns: cloneOrEmpty(s.Columns),
		Tasks:   cloneOrEmpty(s.Tasks),
	}
}

// Empty reports whether the snapshot holds no columns and no tasks
func (s Snapshot) Empty() bool {
	return len(s.Columns) == 0 && len(s.Tasks) == 0
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
