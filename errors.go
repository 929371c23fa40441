// Package palette provides an addressed store of color-producing cells, some
// literal and some lazily derived from other cells, mutated only through
// reversible operations with full undo/redo history.
package palette

import "errors"

// Address errors
var (
	// ErrAddressInUse indicates that a cell already exists at the address.
	ErrAddressInUse = errors.New("address already in use")

	// ErrEmptyAddress indicates that an address holding no cell (or no
	// color) was given to an operation that requires one.
	ErrEmptyAddress = errors.New("empty address provided to an operation requiring a color")

	// ErrInvalidAddress indicates that an address lies outside the bounds
	// configured for the palette.
	ErrInvalidAddress = errors.New("address outside allowed range for palette")
)

// Capacity errors
var (
	// ErrMaxCellLimit indicates that the palette cannot fit any more cells
	// within its configured bounds.
	ErrMaxCellLimit = errors.New("maximum number of cells for palette exceeded")
)

// Operation errors
var (
	// ErrCannotSetDerivedColor indicates an attempt to assign a literal
	// color to a cell holding a derived expression without requesting
	// overwrite.
	ErrCannotSetDerivedColor = errors.New("cannot assign color to a cell containing a derived color value")

	// ErrDependencyOverwrite indicates that an operation would overwrite
	// one of its own dependencies.
	ErrDependencyOverwrite = errors.New("operation would overwrite one of its dependencies")
)

// Format errors
var (
	// ErrNotSupported indicates that an optional format operation is not
	// implemented by the format.
	ErrNotSupported = errors.New("operation not supported")
)
