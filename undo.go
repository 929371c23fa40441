package palette

import "fmt"

// undoRecord is the saved pre-operation state of one address. present
// distinguishes a cell that held an expression (possibly the empty one)
// from an address that held no cell at all.
type undoRecord struct {
	expr    Expression
	present bool
}

// Undo restores a saved set of per-address states. Records are keyed by
// address and are first-write-wins: once an address has a record, later
// record calls for it are ignored. This guarantees that when an address
// transitions from empty to occupied during a composite operation, the
// first recorded fact (that it was empty) is what the undo restores, even
// if later sub-steps touch the address again.
type Undo struct {
	undoing OperationInfo
	saved   map[Address]undoRecord
}

// NewUndo creates an empty Undo reversing the operation described by info.
func NewUndo(info OperationInfo) *Undo {
	return &Undo{
		undoing: info,
		saved:   make(map[Address]undoRecord),
	}
}

// newUndoFor creates an Undo for the given operation.
func newUndoFor(op Operation) *Undo {
	return NewUndo(op.Info())
}

// recordCreated records that the address held no cell before the operation.
func (u *Undo) recordCreated(address Address) {
	if _, ok := u.saved[address]; ok {
		return
	}
	u.saved[address] = undoRecord{}
}

// recordReplaced records the expression the address's cell held before the
// operation. A nil prior is the empty expression, not an absent cell.
func (u *Undo) recordReplaced(address Address, prior Expression) {
	if _, ok := u.saved[address]; ok {
		return
	}
	u.saved[address] = undoRecord{expr: prior, present: true}
}

// Len returns the number of addresses the undo would restore.
func (u *Undo) Len() int {
	return len(u.saved)
}

// Info implements Operation.
func (u *Undo) Info() OperationInfo {
	return OperationInfo{
		Name:   "Undo",
		Detail: fmt.Sprintf("undoing %s, %d addresses", u.undoing.Name, len(u.saved)),
	}
}

// Apply restores each recorded address. Per address it inspects whether a
// prior value was recorded and whether a cell currently exists, and takes
// one of three transitions: replace the expression in place, recreate the
// deleted cell, or remove the added cell. Each transition records its own
// inverse into a fresh Undo, which becomes the redo for this undo. The
// fourth combination, no prior value and no current cell, is an invariant
// violation and panics.
func (u *Undo) Apply(data *Data) (*HistoryEntry, error) {
	redo := NewUndo(u.undoing)

	for address, rec := range u.saved {
		cell := data.Cell(address)
		switch {
		case rec.present && cell != nil:
			// The cell was modified: restore its expression.
			redo.recordReplaced(address, cell.SetExpression(rec.expr))

		case rec.present && cell == nil:
			// The cell was deleted: recreate it.
			cell, err := data.CreateCell(address)
			if err != nil {
				return nil, err
			}
			cell.SetExpression(rec.expr)
			redo.recordCreated(address)

		case !rec.present && cell != nil:
			// The cell was added: remove it.
			removed, err := data.RemoveCell(address)
			if err != nil {
				return nil, err
			}
			redo.recordReplaced(address, removed)

		default:
			panic(fmt.Sprintf("palette: null entry in undo operation at %v", address))
		}
	}

	return &HistoryEntry{Info: u.Info(), Undo: redo}, nil
}
