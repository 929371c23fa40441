package palette

import (
	"fmt"
	"slices"

	"github.com/google/btree"
)

// cellEntry pairs an address with its cell for storage in the ordered map.
type cellEntry struct {
	addr Address
	cell *Cell
}

func cellEntryLess(a, b cellEntry) bool {
	return a.addr.Less(b.addr)
}

// btreeDegree matches the google/btree recommendation for small items.
const btreeDegree = 32

// Data is the authoritative store backing a palette: the ordered address to
// cell map (Data exclusively owns every cell), the per-group metadata table,
// the allocation cursor, and the bound parameters. The bound fields and hook
// functions are exported so that a Format's Initialize can configure them;
// they must not be changed once cells exist.
type Data struct {
	cells    *btree.BTreeG[cellEntry]
	metadata map[Reference]*MetaData
	names    map[string]Reference
	cursor   Reference

	// MaximumPageCount bounds the page component of every address.
	MaximumPageCount uint16

	// DefaultLineCount is installed as a page's line-count override when
	// the page is first touched, before its prepare hook runs.
	DefaultLineCount uint8

	// DefaultColumnCount is installed as a line's column-count override
	// when the line is first touched, before its prepare hook runs.
	DefaultColumnCount uint8

	// PrepareNewPage is called the first time any address in an untouched
	// page is prepared. May adjust the page's name, label, or line count.
	PrepareNewPage func(*Data, Reference)

	// PrepareNewLine is called the first time any address in an untouched
	// line is prepared, always after the containing page was prepared.
	PrepareNewLine func(*Data, Reference)
}

// NewData creates an empty store with the theoretical maximum bounds and no
// prepare hooks.
func NewData() *Data {
	return &Data{
		cells:              btree.NewG(btreeDegree, cellEntryLess),
		metadata:           make(map[Reference]*MetaData),
		names:              make(map[string]Reference),
		cursor:             AllRef(),
		MaximumPageCount:   PageMax,
		DefaultLineCount:   LineMax,
		DefaultColumnCount: ColumnMax,
	}
}

// Len returns the number of cells in the store.
func (d *Data) Len() int {
	return d.cells.Len()
}

// IsEmpty reports whether the store holds no cells.
func (d *Data) IsEmpty() bool {
	return d.cells.Len() == 0
}

// Cell returns the cell at the given address, or nil if the address is
// empty. Lookup is O(log n) and has no side effects.
func (d *Data) Cell(address Address) *Cell {
	entry, ok := d.cells.Get(cellEntry{addr: address})
	if !ok {
		return nil
	}
	return entry.cell
}

// CreateCell creates a cell holding the empty expression at the given
// address. The address is prepared (firing format hooks on first touch of
// its page or line) and validated first. Fails with ErrAddressInUse if a
// cell already exists there.
func (d *Data) CreateCell(address Address) (*Cell, error) {
	if d.cells.Has(cellEntry{addr: address}) {
		return nil, fmt.Errorf("%w: %v", ErrAddressInUse, address)
	}
	if err := d.PrepareAddress(address); err != nil {
		return nil, err
	}
	cell := NewCell(nil)
	d.cells.ReplaceOrInsert(cellEntry{addr: address, cell: cell})
	return cell, nil
}

// RemoveCell removes the cell at the given address and returns its
// expression. The detached cell is reset to the empty expression so that
// any dependents retaining it resolve to no color from then on. Fails with
// ErrEmptyAddress if the address holds no cell.
func (d *Data) RemoveCell(address Address) (Expression, error) {
	entry, ok := d.cells.Delete(cellEntry{addr: address})
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrEmptyAddress, address)
	}
	return entry.cell.SetExpression(nil), nil
}

// Each visits every (address, cell) pair in address order until fn returns
// false.
func (d *Data) Each(fn func(Address, *Cell) bool) {
	d.cells.Ascend(func(entry cellEntry) bool {
		return fn(entry.addr, entry.cell)
	})
}

// Cursor returns the allocation cursor. The cursor is a Reference, not a
// concrete address; it resolves to a starting address lazily via
// BaseAddress when an operation needs a default allocation start.
func (d *Data) Cursor() Reference {
	return d.cursor
}

// SetCursor sets the allocation cursor.
func (d *Data) SetCursor(cursor Reference) {
	d.cursor = cursor
}

// meta returns the metadata record for the group, creating it on demand.
func (d *Data) meta(group Reference) *MetaData {
	m, ok := d.metadata[group]
	if !ok {
		m = &MetaData{}
		d.metadata[group] = m
	}
	return m
}

// MetaDataFor returns the metadata recorded for the group, or nil if the
// group has none.
func (d *Data) MetaDataFor(group Reference) *MetaData {
	return d.metadata[group]
}

// Label returns the format-generated label for the group, or "".
func (d *Data) Label(group Reference) string {
	if m := d.metadata[group]; m != nil {
		return m.FormatLabel
	}
	return ""
}

// SetLabel sets the format-generated label for the group.
func (d *Data) SetLabel(group Reference, label string) {
	d.meta(group).FormatLabel = label
}

// Name returns the user-provided name for the group, or "".
func (d *Data) Name(group Reference) string {
	if m := d.metadata[group]; m != nil {
		return m.Name
	}
	return ""
}

// SetName sets the user-provided name for the group and indexes it for
// Resolve.
func (d *Data) SetName(group Reference, name string) {
	m := d.meta(group)
	if m.Name != "" {
		delete(d.names, m.Name)
	}
	m.Name = name
	if name != "" {
		d.names[name] = group
	}
}

// Resolve looks up a group by its user-provided name.
func (d *Data) Resolve(name string) (Reference, bool) {
	group, ok := d.names[name]
	return group, ok
}

// LineCount returns the effective line count for a page group: its override
// when one is set, the default otherwise.
func (d *Data) LineCount(group Reference) uint8 {
	if m := d.metadata[group]; m != nil && m.LineCount > 0 {
		return m.LineCount
	}
	return d.DefaultLineCount
}

// SetLineCount sets the line-count override for a page group.
func (d *Data) SetLineCount(group Reference, count uint8) {
	d.meta(group).LineCount = count
}

// ColumnCount returns the effective column count for a line group: its
// override when one is set, the default otherwise.
func (d *Data) ColumnCount(group Reference) uint8 {
	if m := d.metadata[group]; m != nil && m.ColumnCount > 0 {
		return m.ColumnCount
	}
	return d.DefaultColumnCount
}

// SetColumnCount sets the column-count override for a line group.
func (d *Data) SetColumnCount(group Reference, count uint8) {
	d.meta(group).ColumnCount = count
}

// PrepareAddress performs the lazy regional initialization for an address.
// On first touch of the address's page group it installs the default line
// count as that page's override and fires the prepare-new-page hook; then
// likewise for the line group with the default column count and the
// prepare-new-line hook. The page always precedes the line, since line
// preparation may read the page's overridden line count. After the hooks
// run, the address is validated against the possibly-overridden bounds.
func (d *Data) PrepareAddress(address Address) error {
	pageGroup := PageOf(address)
	lineGroup := LineOf(address)

	if m := d.metadata[pageGroup]; m == nil || !m.Initialized {
		m = d.meta(pageGroup)
		m.Initialized = true
		m.LineCount = d.DefaultLineCount
		if d.PrepareNewPage != nil {
			d.PrepareNewPage(d, pageGroup)
		}
	}
	if m := d.metadata[lineGroup]; m == nil || !m.Initialized {
		m = d.meta(lineGroup)
		m.Initialized = true
		m.ColumnCount = d.DefaultColumnCount
		if d.PrepareNewLine != nil {
			d.PrepareNewLine(d, lineGroup)
		}
	}

	if !d.checkAddress(address) {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, address)
	}
	return nil
}

// checkAddress reports whether the address lies within the bounds currently
// in effect for its page and line.
func (d *Data) checkAddress(address Address) bool {
	return address.Page < d.MaximumPageCount &&
		address.Line < d.LineCount(PageOf(address)) &&
		address.Column < d.ColumnCount(LineOf(address))
}

// hasColor reports whether the cell at the address currently resolves to a
// color.
func (d *Data) hasColor(address Address) bool {
	_, ok := d.Cell(address).Color()
	return ok
}

// nextAddress returns the wrapped successor of the address under the counts
// currently in effect for its page and line.
func (d *Data) nextAddress(address Address) Address {
	return address.WrappedNext(
		d.MaximumPageCount,
		d.LineCount(PageOf(address)),
		d.ColumnCount(LineOf(address)),
	)
}

// FirstFreeAddressAfter probes forward from start, using the wrapped
// successor with the per-region counts currently in effect, and returns the
// first address whose cell does not resolve to a color. Fails with
// ErrMaxCellLimit if the probe returns to start without finding one.
func (d *Data) FirstFreeAddressAfter(start Address) (Address, error) {
	if err := d.PrepareAddress(start); err != nil {
		return Address{}, err
	}
	address := start
	for d.hasColor(address) {
		address = d.nextAddress(address)
		if address == start {
			return Address{}, ErrMaxCellLimit
		}
	}
	return address, nil
}

// FindTargets allocates n target addresses starting from start, never
// choosing an address in exclude. With overwrite set it walks forward
// accepting every non-excluded address whether occupied or not; otherwise
// it accepts only addresses without a current color, checking the first
// candidate in place before advancing. Revisiting an already-seen candidate
// means the configured bounds cannot fit n targets and fails with
// ErrMaxCellLimit. Targets are returned deduplicated, in address order.
func (d *Data) FindTargets(n int, start Address, overwrite bool, exclude []Address) ([]Address, error) {
	if n <= 0 {
		return nil, nil
	}
	excluded := make(map[Address]struct{}, len(exclude))
	for _, a := range exclude {
		excluded[a] = struct{}{}
	}
	seen := make(map[Address]struct{})
	chosen := make(map[Address]struct{}, n)

	next := start
	if overwrite {
		for len(chosen) < n {
			if err := d.PrepareAddress(next); err != nil {
				return nil, err
			}
			if _, ok := seen[next]; ok {
				return nil, ErrMaxCellLimit
			}
			seen[next] = struct{}{}
			if _, ok := excluded[next]; !ok {
				chosen[next] = struct{}{}
			}
			next = d.nextAddress(next)
		}
	} else {
		if err := d.PrepareAddress(next); err != nil {
			return nil, err
		}
		// The starting address itself may already be free.
		if !d.hasColor(next) {
			seen[next] = struct{}{}
			if _, ok := excluded[next]; !ok {
				chosen[next] = struct{}{}
			}
		}
		for len(chosen) < n {
			var err error
			next, err = d.FirstFreeAddressAfter(d.nextAddress(next))
			if err != nil {
				return nil, err
			}
			if _, ok := seen[next]; ok {
				return nil, ErrMaxCellLimit
			}
			seen[next] = struct{}{}
			if _, ok := excluded[next]; !ok {
				chosen[next] = struct{}{}
			}
		}
	}

	targets := make([]Address, 0, len(chosen))
	for a := range chosen {
		targets = append(targets, a)
	}
	slices.SortFunc(targets, Address.Compare)
	return targets, nil
}
