package palette

import "fmt"

// InsertCell inserts a new empty cell into the palette.
type InsertCell struct {
	location  *Address
	overwrite bool
}

// NewInsertCell creates an InsertCell operation. Without LocatedAt the cell
// is placed at the first free address after the cursor.
func NewInsertCell() *InsertCell {
	return &InsertCell{}
}

// LocatedAt sets the address to start placing the cell.
func (op *InsertCell) LocatedAt(location Address) *InsertCell {
	loc := location
	op.location = &loc
	return op
}

// Overwrite configures the operation to overwrite occupied targets.
func (op *InsertCell) Overwrite(overwrite bool) *InsertCell {
	op.overwrite = overwrite
	return op
}

// Info implements Operation.
func (op *InsertCell) Info() OperationInfo {
	detail := "first free"
	if op.location != nil {
		detail = op.location.String()
	}
	return OperationInfo{Name: "Insert Cell", Detail: detail}
}

// Apply implements Operation.
func (op *InsertCell) Apply(data *Data) (*HistoryEntry, error) {
	start, err := resolveStart(data, op.location)
	if err != nil {
		return nil, err
	}
	targets, err := data.FindTargets(1, start, op.overwrite, nil)
	if err != nil {
		return nil, err
	}

	undo := newUndoFor(op)
	if err := setTarget(data, targets[0], nil, undo); err != nil {
		return nil, err
	}
	return &HistoryEntry{Info: op.Info(), Undo: undo}, nil
}

// InsertColor inserts a new literal color into the palette.
type InsertColor struct {
	color     Color
	location  *Address
	overwrite bool
}

// NewInsertColor creates an InsertColor operation for the given color.
func NewInsertColor(c Color) *InsertColor {
	return &InsertColor{color: c}
}

// LocatedAt sets the address to start placing the color.
func (op *InsertColor) LocatedAt(location Address) *InsertColor {
	loc := location
	op.location = &loc
	return op
}

// Overwrite configures the operation to overwrite occupied targets,
// including cells holding derived expressions.
func (op *InsertColor) Overwrite(overwrite bool) *InsertColor {
	op.overwrite = overwrite
	return op
}

// Info implements Operation.
func (op *InsertColor) Info() OperationInfo {
	return OperationInfo{Name: "Insert Color", Detail: op.color.HexString()}
}

// Apply implements Operation.
func (op *InsertColor) Apply(data *Data) (*HistoryEntry, error) {
	start, err := resolveStart(data, op.location)
	if err != nil {
		return nil, err
	}
	targets, err := data.FindTargets(1, start, op.overwrite, nil)
	if err != nil {
		return nil, err
	}
	tgt := targets[0]

	// Refuse to silently replace a derived cell with a literal.
	if !op.overwrite && data.Cell(tgt).Order() != 0 {
		return nil, fmt.Errorf("%w: %v", ErrCannotSetDerivedColor, tgt)
	}

	undo := newUndoFor(op)
	if err := setTarget(data, tgt, Literal(op.color), undo); err != nil {
		return nil, err
	}
	return &HistoryEntry{Info: op.Info(), Undo: undo}, nil
}

// DeleteCell removes the cell at a given address from the palette.
type DeleteCell struct {
	address Address
}

// NewDeleteCell creates a DeleteCell operation targeting the given address.
func NewDeleteCell(address Address) *DeleteCell {
	return &DeleteCell{address: address}
}

// Info implements Operation.
func (op *DeleteCell) Info() OperationInfo {
	return OperationInfo{Name: "Delete Cell", Detail: op.address.String()}
}

// Apply implements Operation.
func (op *DeleteCell) Apply(data *Data) (*HistoryEntry, error) {
	expr, err := data.RemoveCell(op.address)
	if err != nil {
		return nil, err
	}
	undo := newUndoFor(op)
	undo.recordReplaced(op.address, expr)
	return &HistoryEntry{Info: op.Info(), Undo: undo}, nil
}

// CopyColor reads the literal color at a source address and writes it as a
// new literal at a resolved target.
type CopyColor struct {
	source    Address
	location  *Address
	overwrite bool
}

// NewCopyColor creates a CopyColor operation reading from the given source.
func NewCopyColor(source Address) *CopyColor {
	return &CopyColor{source: source}
}

// LocatedAt sets the address to start placing the copy.
func (op *CopyColor) LocatedAt(location Address) *CopyColor {
	loc := location
	op.location = &loc
	return op
}

// Overwrite configures the operation to overwrite occupied targets.
func (op *CopyColor) Overwrite(overwrite bool) *CopyColor {
	op.overwrite = overwrite
	return op
}

// Info implements Operation.
func (op *CopyColor) Info() OperationInfo {
	return OperationInfo{Name: "Copy Color", Detail: fmt.Sprintf("from %v", op.source)}
}

// Apply implements Operation.
func (op *CopyColor) Apply(data *Data) (*HistoryEntry, error) {
	c, ok := data.Cell(op.source).Color()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrEmptyAddress, op.source)
	}

	start, err := resolveStart(data, op.location)
	if err != nil {
		return nil, err
	}
	targets, err := data.FindTargets(1, start, op.overwrite, []Address{op.source})
	if err != nil {
		return nil, err
	}
	tgt := targets[0]

	if !op.overwrite && data.Cell(tgt).Order() != 0 {
		return nil, fmt.Errorf("%w: %v", ErrCannotSetDerivedColor, tgt)
	}

	undo := newUndoFor(op)
	if err := setTarget(data, tgt, Literal(c), undo); err != nil {
		return nil, err
	}
	return &HistoryEntry{Info: op.Info(), Undo: undo}, nil
}
