package palette

import "fmt"

// Operation is a reversible mutation of a Data store. A successful Apply
// returns a HistoryEntry whose Undo operation, applied to the same store,
// restores every address the operation touched to its pre-operation state.
// On failure the store keeps any sub-writes completed before the failing
// step; the error aborts only the remainder (see Sequence).
type Operation interface {
	// Info describes the operation for history and logging.
	Info() OperationInfo

	// Apply mutates the store and returns the entry that reverses it.
	Apply(data *Data) (*HistoryEntry, error)
}

// OperationInfo describes an applied operation.
type OperationInfo struct {
	// Name is the operation's name.
	Name string

	// Detail holds the operation's parameters, rendered for display.
	Detail string
}

// HistoryEntry records a single reversible step in the operation history.
type HistoryEntry struct {
	// Info describes the operation that was applied.
	Info OperationInfo

	// Undo is the operation that reverses the applied operation.
	Undo Operation
}

// source resolves a non-owning reference to the cell at the given address
// for use as an operation dependency. An empty address is created as a
// placeholder when makeSources is set (recording the creation in undo), and
// is ErrInvalidAddress otherwise.
func source(data *Data, address Address, makeSources bool, undo *Undo) (*Cell, error) {
	if cell := data.Cell(address); cell != nil {
		return cell, nil
	}
	if !makeSources {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, address)
	}
	cell, err := data.CreateCell(address)
	if err != nil {
		return nil, err
	}
	undo.recordCreated(address)
	return cell, nil
}

// target returns the cell at the given address, creating it (and recording
// the creation in undo) when the address is empty.
func target(data *Data, address Address, undo *Undo) (*Cell, error) {
	if cell := data.Cell(address); cell != nil {
		return cell, nil
	}
	cell, err := data.CreateCell(address)
	if err != nil {
		return nil, err
	}
	undo.recordCreated(address)
	return cell, nil
}

// setTarget stores the expression in the cell at the given address,
// creating the cell if needed, and records the prior expression in undo.
func setTarget(data *Data, address Address, expr Expression, undo *Undo) error {
	cell, err := target(data, address, undo)
	if err != nil {
		return err
	}
	undo.recordReplaced(address, cell.SetExpression(expr))
	return nil
}

// resolveStart returns the explicit location when one was given, and
// otherwise the first free address after the cursor's base address.
func resolveStart(data *Data, location *Address) (Address, error) {
	if location != nil {
		return *location, nil
	}
	return data.FirstFreeAddressAfter(data.Cursor().BaseAddress())
}
