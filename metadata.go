package palette

import (
	"fmt"
	"strings"
)

// MetaData holds the optional per-group overrides attached to a Reference.
// Overrides are created on demand; a zero count means no override.
type MetaData struct {
	// FormatLabel is a label generated by the palette format.
	FormatLabel string

	// Name is a user-provided name.
	Name string

	// LineCount overrides the default line count. Meaningful on Page
	// references only.
	LineCount uint8

	// ColumnCount overrides the default column count. Meaningful on Line
	// references only.
	ColumnCount uint8

	// Initialized records whether the format's prepare hooks have already
	// fired for this group. Label or name writes alone do not count as
	// preparation.
	Initialized bool
}

// String renders the metadata's name, label, and count overrides.
func (m *MetaData) String() string {
	var b strings.Builder
	switch {
	case m.Name != "" && m.FormatLabel != "":
		fmt.Fprintf(&b, "%q (%s)", m.Name, m.FormatLabel)
	case m.FormatLabel != "":
		fmt.Fprintf(&b, "(%s)", m.FormatLabel)
	case m.Name != "":
		fmt.Fprintf(&b, "%q", m.Name)
	}
	if m.LineCount > 0 {
		fmt.Fprintf(&b, " [Lines: %d]", m.LineCount)
	}
	if m.ColumnCount > 0 {
		fmt.Fprintf(&b, " [Columns: %d]", m.ColumnCount)
	}
	return strings.TrimSpace(b.String())
}
