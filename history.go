package palette

// OperationHistory maintains the undo and redo stacks of a palette.
type OperationHistory struct {
	undoEntries []*HistoryEntry
	redoEntries []*HistoryEntry
}

// NewOperationHistory creates an empty history.
func NewOperationHistory() *OperationHistory {
	return &OperationHistory{}
}

// PushUndo pushes an entry onto the undo stack.
func (h *OperationHistory) PushUndo(entry *HistoryEntry) {
	h.undoEntries = append(h.undoEntries, entry)
}

// PopUndo pops the most recent entry off the undo stack, or nil if the
// stack is empty.
func (h *OperationHistory) PopUndo() *HistoryEntry {
	n := len(h.undoEntries)
	if n == 0 {
		return nil
	}
	entry := h.undoEntries[n-1]
	h.undoEntries = h.undoEntries[:n-1]
	return entry
}

// PushRedo pushes an entry onto the redo stack.
func (h *OperationHistory) PushRedo(entry *HistoryEntry) {
	h.redoEntries = append(h.redoEntries, entry)
}

// PopRedo pops the most recent entry off the redo stack, or nil if the
// stack is empty.
func (h *OperationHistory) PopRedo() *HistoryEntry {
	n := len(h.redoEntries)
	if n == 0 {
		return nil
	}
	entry := h.redoEntries[n-1]
	h.redoEntries = h.redoEntries[:n-1]
	return entry
}

// ClearRedo discards the redo stack. Applying a fresh operation invalidates
// the redo chain.
func (h *OperationHistory) ClearRedo() {
	h.redoEntries = nil
}

// UndoLen returns the number of entries available to undo.
func (h *OperationHistory) UndoLen() int {
	return len(h.undoEntries)
}

// RedoLen returns the number of entries available to redo.
func (h *OperationHistory) RedoLen() int {
	return len(h.redoEntries)
}
