package palette

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Palette is the top-level handle over a palette's data, format, and
// operation history. All mutation flows through Apply, Undo, and Redo; the
// engine is single-writer and synchronous.
type Palette struct {
	data    *Data
	history *OperationHistory
	format  Format
	logger  *slog.Logger
}

// Option configures a Palette at construction.
type Option func(*Palette)

// WithoutHistory disables undo/redo tracking.
func WithoutHistory() Option {
	return func(p *Palette) { p.history = nil }
}

// WithLogger sets the logger used to trace applied operations. The default
// logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Palette) { p.logger = logger }
}

// New creates a palette configured by the given format. The format's
// Initialize runs once here and may set bounds and labels; its prepare
// hooks fire later, on first touch of each page and line.
func New(name string, format Format, opts ...Option) *Palette {
	p := &Palette{
		data:    NewData(),
		history: NewOperationHistory(),
		format:  format,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if format != nil {
		p.data.PrepareNewPage = format.PrepareNewPage
		p.data.PrepareNewLine = format.PrepareNewLine
		format.Initialize(p.data)
	}
	if name != "" {
		p.data.SetName(AllRef(), name)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Data exposes the underlying store, for formats and tooling.
func (p *Palette) Data() *Data {
	return p.data
}

// Format returns the format the palette was created with.
func (p *Palette) Format() Format {
	return p.format
}

// Len returns the number of cells in the palette.
func (p *Palette) Len() int {
	return p.data.Len()
}

// IsEmpty reports whether the palette holds no cells.
func (p *Palette) IsEmpty() bool {
	return p.data.IsEmpty()
}

// Color resolves the color at the given address. It reports false for an
// empty address, an empty cell, or a derived cell with a broken dependency.
func (p *Palette) Color(address Address) (Color, bool) {
	return p.data.Cell(address).Color()
}

// Apply applies an operation to the palette. On success the operation's
// history entry is pushed onto the undo stack and the redo stack is
// cleared. On failure any sub-writes the operation completed before the
// failing step remain in place.
func (p *Palette) Apply(op Operation) error {
	entry, err := op.Apply(p.data)
	if err != nil {
		return err
	}
	p.logger.Debug("applied operation",
		"name", entry.Info.Name,
		"detail", entry.Info.Detail,
	)
	if p.history != nil {
		p.history.PushUndo(entry)
		p.history.ClearRedo()
	}
	return nil
}

// Undo reverses the most recently applied operation, if any, and pushes the
// inverse onto the redo stack. With history disabled it fails with
// ErrNotSupported.
func (p *Palette) Undo() error {
	if p.history == nil {
		return fmt.Errorf("undo: %w", ErrNotSupported)
	}
	entry := p.history.PopUndo()
	if entry == nil {
		return nil
	}
	redo, err := entry.Undo.Apply(p.data)
	if err != nil {
		return err
	}
	p.logger.Debug("undid operation", "name", entry.Info.Name)
	p.history.PushRedo(redo)
	return nil
}

// Redo reverses the most recent undo, if any. With history disabled it
// fails with ErrNotSupported.
func (p *Palette) Redo() error {
	if p.history == nil {
		return fmt.Errorf("redo: %w", ErrNotSupported)
	}
	entry := p.history.PopRedo()
	if entry == nil {
		return nil
	}
	undo, err := entry.Undo.Apply(p.data)
	if err != nil {
		return err
	}
	p.logger.Debug("redid operation", "name", entry.Info.Name)
	p.history.PushUndo(undo)
	return nil
}

// History returns the palette's operation history, or nil when disabled.
func (p *Palette) History() *OperationHistory {
	return p.history
}

// Cursor returns the allocation cursor.
func (p *Palette) Cursor() Reference {
	return p.data.Cursor()
}

// SetCursor scopes subsequent default allocation to the given group.
func (p *Palette) SetCursor(cursor Reference) {
	p.data.SetCursor(cursor)
}

// Name returns the user-provided name for a group, or "".
func (p *Palette) Name(group Reference) string {
	return p.data.Name(group)
}

// SetName names a group.
func (p *Palette) SetName(group Reference, name string) {
	p.data.SetName(group, name)
}

// Label returns the format-generated label for a group, or "".
func (p *Palette) Label(group Reference) string {
	return p.data.Label(group)
}

// Write serializes the palette using its format.
func (p *Palette) Write(w io.Writer) error {
	if p.format == nil {
		return ErrNotSupported
	}
	return p.format.WritePalette(w, p)
}

// Read deserializes format-specific content into the palette.
func (p *Palette) Read(r io.Reader) error {
	if p.format == nil {
		return ErrNotSupported
	}
	return p.format.ReadPalette(r, p)
}

// String renders the human-readable dump: a header with the palette's
// metadata and bounds, then the occupied addresses grouped by page and
// line. Each address is rendered as
//
//	<hex address>  <hex color>  order=<N>  <name-or-label-or-dash>
//
// preceded by page and line metadata lines where metadata exists. This
// textual form is the de facto snapshot format for tests.
func (p *Palette) String() string {
	var b strings.Builder
	d := p.data

	b.WriteString("Palette")
	if m := d.MetaDataFor(AllRef()); m != nil && m.String() != "" {
		fmt.Fprintf(&b, " %s", m)
	}
	fmt.Fprintf(&b, " [%d pages] [%d cells] [default wrap %d:%d]\n",
		d.MaximumPageCount, d.Len(), d.DefaultLineCount, d.DefaultColumnCount)

	curPage := AllRef()
	curLine := AllRef()
	d.Each(func(address Address, cell *Cell) bool {
		pageGroup := PageOf(address)
		if pageGroup != curPage {
			if m := d.MetaDataFor(pageGroup); m != nil && m.String() != "" {
				fmt.Fprintf(&b, "Page %s - %s\n", pageGroup, m)
			} else {
				fmt.Fprintf(&b, "Page %s\n", pageGroup)
			}
			curPage = pageGroup
		}
		lineGroup := LineOf(address)
		if lineGroup != curLine {
			if m := d.MetaDataFor(lineGroup); m != nil && m.String() != "" {
				fmt.Fprintf(&b, "\t%s %s\n", lineGroup, m)
			}
			curLine = lineGroup
		}

		c, _ := cell.Color()
		fmt.Fprintf(&b, "\t%s  %s  order=%d  %s\n",
			address.HexString(), c.HexString(), cell.Order(),
			p.addressTag(address))
		return true
	})
	return b.String()
}

// addressTag is the trailing dump column for one address: the line group's
// name, else its label, shown on the line's base address; "-" otherwise.
// The Reference variants cannot select a single address, so no finer-grained
// name can exist.
func (p *Palette) addressTag(address Address) string {
	lineGroup := LineOf(address)
	if address == lineGroup.BaseAddress() {
		if name := p.data.Name(lineGroup); name != "" {
			return name
		}
		if label := p.data.Label(lineGroup); label != "" {
			return label
		}
	}
	return "-"
}
