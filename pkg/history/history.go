// Package history implements a bounded undo/redo stack of value snapshots.
package history

// DefaultLimit is the number of snapshots kept before the oldest is dropped
const DefaultLimit = 20

// Stack stores snapshots with a cursor. The entry under the cursor is the
// current state; entries after it form the redo branch.
type Stack[T any] struct {
	entries []T
	cursor  int
	limit   int
}

// New creates an empty stack that keeps at most limit entries.
// A limit <= 0 selects DefaultLimit.
func New[T any](limit int) *Stack[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack[T]{cursor: -1, limit: limit}
}

// Push records a snapshot. Any redo branch is discarded and the oldest entry
// is evicted when the stack is full.
func (s *Stack[T]) Push(snapshot T) {
	s.entries = append(s.entries[:s.cursor+1], snapshot)
	if len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		var zero T
		for i := 0; i < drop; i++ {
			s.entries[i] = zero
		}
		s.entries = append(s.entries[:0], s.entries[drop:]...)
	}
	s.cursor = len(s.entries) - 1
}

// Undo moves the cursor back and returns the snapshot to restore.
// ok is false when there is nothing to undo.
func (s *Stack[T]) Undo() (snapshot T, ok bool) {
	if s.cursor <= 0 {
		return snapshot, false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo moves the cursor forward and returns the snapshot to restore.
// ok is false when there is nothing to redo.
func (s *Stack[T]) Redo() (snapshot T, ok bool) {
	if s.cursor >= len(s.entries)-1 {
		return snapshot, false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// Reset empties the stack
func (s *Stack[T]) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.cursor = -1
}

// Len returns the number of stored snapshots
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Cursor returns the index of the current snapshot, -1 when empty
func (s *Stack[T]) Cursor() int {
	return s.cursor
}

// CanUndo reports whether Undo would succeed
func (s *Stack[T]) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo reports whether Redo would succeed
func (s *Stack[T]) CanRedo() bool {
	return s.cursor < len(s.entries)-1
}
