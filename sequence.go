package palette

import "fmt"

// Sequence applies an ordered list of operations. Its undo is a Sequence of
// the sub-operations' undos in the same order. A Sequence is not atomic: if
// a sub-operation fails, the writes completed by earlier sub-operations are
// left in place and no partial undo is returned.
type Sequence struct {
	operations []Operation
}

// NewSequence creates a Sequence from the given operations.
func NewSequence(operations ...Operation) *Sequence {
	return &Sequence{operations: operations}
}

// Info implements Operation.
func (op *Sequence) Info() OperationInfo {
	return OperationInfo{
		Name:   "Sequence",
		Detail: fmt.Sprintf("%d operations", len(op.operations)),
	}
}

// Apply implements Operation.
func (op *Sequence) Apply(data *Data) (*HistoryEntry, error) {
	undos := make([]Operation, 0, len(op.operations))
	for _, sub := range op.operations {
		entry, err := sub.Apply(data)
		if err != nil {
			return nil, err
		}
		undos = append(undos, entry.Undo)
	}
	return &HistoryEntry{Info: op.Info(), Undo: NewSequence(undos...)}, nil
}

// Repeat applies one operation a fixed number of times, aggregating the
// resulting undos into a Sequence. Like Sequence, it is not atomic on
// failure.
type Repeat struct {
	operation Operation
	count     int
}

// NewRepeat creates a Repeat applying the operation count times.
func NewRepeat(operation Operation, count int) *Repeat {
	return &Repeat{operation: operation, count: count}
}

// Info implements Operation.
func (op *Repeat) Info() OperationInfo {
	return OperationInfo{
		Name:   "Repeat",
		Detail: fmt.Sprintf("%s x%d", op.operation.Info().Name, op.count),
	}
}

// Apply implements Operation.
func (op *Repeat) Apply(data *Data) (*HistoryEntry, error) {
	undos := make([]Operation, 0, op.count)
	for i := 0; i < op.count; i++ {
		entry, err := op.operation.Apply(data)
		if err != nil {
			return nil, err
		}
		undos = append(undos, entry.Undo)
	}
	return &HistoryEntry{Info: op.Info(), Undo: NewSequence(undos...)}, nil
}
