package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationHistoryStacks(t *testing.T) {
	h := NewOperationHistory()
	assert.Zero(t, h.UndoLen())
	assert.Zero(t, h.RedoLen())
	assert.Nil(t, h.PopUndo())
	assert.Nil(t, h.PopRedo())

	a := &HistoryEntry{Info: OperationInfo{Name: "a"}}
	b := &HistoryEntry{Info: OperationInfo{Name: "b"}}

	h.PushUndo(a)
	h.PushUndo(b)
	assert.Equal(t, 2, h.UndoLen())

	// Most recent first.
	assert.Same(t, b, h.PopUndo())
	assert.Same(t, a, h.PopUndo())
	assert.Nil(t, h.PopUndo())

	h.PushRedo(a)
	h.PushRedo(b)
	assert.Equal(t, 2, h.RedoLen())
	assert.Same(t, b, h.PopRedo())
	assert.Equal(t, 1, h.RedoLen())

	h.ClearRedo()
	assert.Zero(t, h.RedoLen())
	assert.Nil(t, h.PopRedo())
}
