package palette

import "fmt"

// InsertWatcher inserts a first-order cell that always resolves to the same
// color as another cell in the palette.
type InsertWatcher struct {
	watching    Address
	location    *Address
	overwrite   bool
	makeSources bool
}

// NewInsertWatcher creates an InsertWatcher operation watching the given
// address.
func NewInsertWatcher(watching Address) *InsertWatcher {
	return &InsertWatcher{watching: watching}
}

// LocatedAt sets the address to start placing the watcher.
func (op *InsertWatcher) LocatedAt(location Address) *InsertWatcher {
	loc := location
	op.location = &loc
	return op
}

// Overwrite configures the operation to overwrite occupied targets.
func (op *InsertWatcher) Overwrite(overwrite bool) *InsertWatcher {
	op.overwrite = overwrite
	return op
}

// MakeSources configures the operation to create an empty placeholder cell
// at the watched address instead of failing when it is empty.
func (op *InsertWatcher) MakeSources(makeSources bool) *InsertWatcher {
	op.makeSources = makeSources
	return op
}

// Info implements Operation.
func (op *InsertWatcher) Info() OperationInfo {
	return OperationInfo{Name: "Insert Watcher", Detail: fmt.Sprintf("watching %v", op.watching)}
}

// Apply implements Operation.
func (op *InsertWatcher) Apply(data *Data) (*HistoryEntry, error) {
	if op.overwrite && op.location != nil && *op.location == op.watching {
		return nil, fmt.Errorf("%w: %v", ErrDependencyOverwrite, op.watching)
	}

	start, err := resolveStart(data, op.location)
	if err != nil {
		return nil, err
	}
	targets, err := data.FindTargets(1, start, op.overwrite, []Address{op.watching})
	if err != nil {
		return nil, err
	}

	undo := newUndoFor(op)
	src, err := source(data, op.watching, op.makeSources, undo)
	if err != nil {
		return nil, err
	}

	expr := Derived(func(colors []Color) Color { return colors[0] }, src)
	if err := setTarget(data, targets[0], expr, undo); err != nil {
		return nil, err
	}
	return &HistoryEntry{Info: op.Info(), Undo: undo}, nil
}

// InsertRamp creates a linear RGB color ramp of derived cells between two
// source cells. The i-th of count generated cells interpolates at ratio
// (i+1)/(count+1), so the ramp excludes both endpoints. Ramp cells resolve
// lazily: changing an endpoint changes the ramp's rendered colors on the
// next read, and deleting an endpoint makes every ramp cell resolve to no
// color.
type InsertRamp struct {
	from        Address
	to          Address
	count       int
	location    *Address
	overwrite   bool
	makeSources bool
}

// NewInsertRamp creates an InsertRamp operation interpolating count cells
// between the colors at from and to.
func NewInsertRamp(from, to Address, count int) *InsertRamp {
	return &InsertRamp{from: from, to: to, count: count}
}

// LocatedAt sets the address to start placing the ramp cells.
func (op *InsertRamp) LocatedAt(location Address) *InsertRamp {
	loc := location
	op.location = &loc
	return op
}

// Overwrite configures the operation to overwrite occupied targets.
func (op *InsertRamp) Overwrite(overwrite bool) *InsertRamp {
	op.overwrite = overwrite
	return op
}

// MakeSources configures the operation to create empty placeholder cells at
// empty source addresses instead of failing.
func (op *InsertRamp) MakeSources(makeSources bool) *InsertRamp {
	op.makeSources = makeSources
	return op
}

// Info implements Operation.
func (op *InsertRamp) Info() OperationInfo {
	return OperationInfo{
		Name:   "Insert Ramp",
		Detail: fmt.Sprintf("%v to %v, %d cells", op.from, op.to, op.count),
	}
}

// Apply implements Operation.
func (op *InsertRamp) Apply(data *Data) (*HistoryEntry, error) {
	if op.overwrite && op.location != nil &&
		(*op.location == op.from || *op.location == op.to) {
		return nil, fmt.Errorf("%w: %v", ErrDependencyOverwrite, *op.location)
	}

	start, err := resolveStart(data, op.location)
	if err != nil {
		return nil, err
	}

	// The sources must never be chosen as targets.
	targets, err := data.FindTargets(op.count, start, op.overwrite,
		[]Address{op.from, op.to})
	if err != nil {
		return nil, err
	}

	undo := newUndoFor(op)
	srcFrom, err := source(data, op.from, op.makeSources, undo)
	if err != nil {
		return nil, err
	}
	srcTo, err := source(data, op.to, op.makeSources, undo)
	if err != nil {
		return nil, err
	}

	for i, address := range targets {
		ratio := float64(i+1) / float64(op.count+1)
		expr := Derived(func(colors []Color) Color {
			return Lerp(colors[0], colors[1], ratio)
		}, srcFrom, srcTo)
		if err := setTarget(data, address, expr, undo); err != nil {
			return nil, err
		}
	}

	return &HistoryEntry{Info: op.Info(), Undo: undo}, nil
}
