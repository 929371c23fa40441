package palette

import "fmt"

// Bounds of the theoretical address space.
const (
	// PageMax is the largest number of pages a palette can be configured
	// to hold.
	PageMax uint16 = 0xFFFF

	// LineMax is the largest number of lines a page can be configured to
	// hold.
	LineMax uint8 = 0xFF

	// ColumnMax is the largest number of columns a line can be configured
	// to hold.
	ColumnMax uint8 = 0xFF
)

// Address identifies a single storage location in a palette by page, line,
// and column. Addresses are ordered lexicographically: page first, then
// line, then column.
type Address struct {
	// Page is the page component of the address.
	Page uint16

	// Line is the line component of the address.
	Line uint8

	// Column is the column component of the address.
	Column uint8
}

// Addr constructs an Address from its components.
func Addr(page uint16, line, column uint8) Address {
	return Address{Page: page, Line: line, Column: column}
}

// Compare returns -1, 0, or 1 according to the lexicographic order of the
// two addresses.
func (a Address) Compare(b Address) int {
	switch {
	case a.Page != b.Page:
		if a.Page < b.Page {
			return -1
		}
		return 1
	case a.Line != b.Line:
		if a.Line < b.Line {
			return -1
		}
		return 1
	case a.Column != b.Column:
		if a.Column < b.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether a orders before b.
func (a Address) Less(b Address) bool {
	return a.Compare(b) < 0
}

// WrappedNext returns the address following a under the given wrapping
// bounds: the column advances by one; when it wraps past columns it resets
// and the line advances; when the line wraps past lines it resets and the
// page advances; a page reaching pages wraps to zero. The successor is total
// and cyclic: WrappedNext never fails, even at the top of the space, so
// callers probing for free addresses must detect a full cycle themselves.
//
// All three bounds must be nonzero.
func (a Address) WrappedNext(pages uint16, lines, columns uint8) Address {
	next := Address{Page: a.Page, Line: a.Line, Column: a.Column + 1}
	if next.Column%columns == 0 {
		next.Column = 0
		next.Line++
		if next.Line%lines == 0 {
			next.Line = 0
			next.Page++
			if next.Page >= pages {
				next.Page = 0
			}
		}
	}
	return next
}

// String renders the address in decimal page:line:column form.
func (a Address) String() string {
	return fmt.Sprintf("%d:%d:%d", a.Page, a.Line, a.Column)
}

// HexString renders the address in uppercase hexadecimal page:line:column
// form, with at least two digits per component.
func (a Address) HexString() string {
	return fmt.Sprintf("%02X:%02X:%02X", a.Page, a.Line, a.Column)
}

// refKind discriminates the Reference variants.
type refKind int

const (
	refAll refKind = iota
	refPage
	refLine
)

// Reference selects a group of addresses: every address on one line, every
// address on one page, or the whole palette. References key the per-region
// metadata table and scope the allocation cursor; they do not affect how
// cells are stored.
type Reference struct {
	kind refKind
	page uint16
	line uint8
}

// AllRef returns the Reference selecting the entire palette.
func AllRef() Reference {
	return Reference{kind: refAll}
}

// PageRef returns the Reference selecting every address on the given page.
func PageRef(page uint16) Reference {
	return Reference{kind: refPage, page: page}
}

// LineRef returns the Reference selecting every address on the given line.
func LineRef(page uint16, line uint8) Reference {
	return Reference{kind: refLine, page: page, line: line}
}

// PageOf returns the Reference selecting the page containing the address.
func PageOf(a Address) Reference {
	return PageRef(a.Page)
}

// LineOf returns the Reference selecting the line containing the address.
func LineOf(a Address) Reference {
	return LineRef(a.Page, a.Line)
}

// BaseAddress returns the first address visited when scanning the group,
// with zero for any component the group does not fix.
func (r Reference) BaseAddress() Address {
	switch r.kind {
	case refLine:
		return Address{Page: r.page, Line: r.line}
	case refPage:
		return Address{Page: r.page}
	default:
		return Address{}
	}
}

// Contains reports whether the address belongs to the group, comparing only
// the components the group fixes.
func (r Reference) Contains(a Address) bool {
	switch r.kind {
	case refLine:
		return a.Page == r.page && a.Line == r.line
	case refPage:
		return a.Page == r.page
	default:
		return true
	}
}

// Interval returns the closed interval of addresses covered by the group
// under the theoretical bounds of the address space.
func (r Reference) Interval() (first, last Address) {
	first = r.BaseAddress()
	switch r.kind {
	case refLine:
		last = Address{Page: r.page, Line: r.line, Column: ColumnMax}
	case refPage:
		last = Address{Page: r.page, Line: LineMax, Column: ColumnMax}
	default:
		last = Address{Page: PageMax, Line: LineMax, Column: ColumnMax}
	}
	return first, last
}

// Page returns the page the group fixes, if any.
func (r Reference) Page() (uint16, bool) {
	if r.kind == refPage || r.kind == refLine {
		return r.page, true
	}
	return 0, false
}

// Line returns the line the group fixes, if any.
func (r Reference) Line() (uint8, bool) {
	if r.kind == refLine {
		return r.line, true
	}
	return 0, false
}

// String renders the group with * for unfixed components.
func (r Reference) String() string {
	switch r.kind {
	case refLine:
		return fmt.Sprintf("%d:%d:*", r.page, r.line)
	case refPage:
		return fmt.Sprintf("%d:*:*", r.page)
	default:
		return "*:*:*"
	}
}
