package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushUndoRedo(t *testing.T) {
	s := New[int](0)
	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, ok := s.Undo()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = s.Undo()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = s.Undo()
	assert.False(t, ok, "cannot undo past the first snapshot")
	assert.Equal(t, 0, s.Cursor())

	v, ok = s.Redo()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = s.Redo()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = s.Redo()
	assert.False(t, ok)
}

func TestPushTruncatesRedoBranch(t *testing.T) {
	s := New[string](0)
	s.Push("a")
	s.Push("b")
	s.Push("c")
	s.Undo()
	s.Undo()

	s.Push("d")
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.CanRedo())

	v, _ := s.Undo()
	assert.Equal(t, "a", v)
	assert.True(t, s.CanRedo())
	v, _ = s.Redo()
	assert.Equal(t, "d", v, "redo returns the pushed branch")
}

func TestLimitEvictsOldest(t *testing.T) {
	s := New[int](DefaultLimit)
	for i := 0; i < 50; i++ {
		s.Push(i)
		assert.LessOrEqual(t, s.Len(), DefaultLimit)
	}
	assert.Equal(t, DefaultLimit, s.Len())
	assert.Equal(t, DefaultLimit-1, s.Cursor())

	undone := 0
	last := -1
	for s.CanUndo() {
		last, _ = s.Undo()
		undone++
	}
	assert.Equal(t, DefaultLimit-1, undone)
	assert.Equal(t, 30, last, "oldest surviving snapshot")
}

func TestEmptyStack(t *testing.T) {
	s := New[int](3)
	_, ok := s.Undo()
	assert.False(t, ok)
	_, ok = s.Redo()
	assert.False(t, ok)
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
	assert.Equal(t, -1, s.Cursor())

	s.Push(1)
	s.Reset()
	assert.Zero(t, s.Len())
	assert.Equal(t, -1, s.Cursor())
}
