package palette

import (
	"fmt"
	"io"
)

// Format customizes a palette's bounds, labels, and on-disk layout.
// Initialize runs once at palette construction; the prepare hooks fire the
// first time any address in a previously-untouched page or line is
// prepared. WritePalette and ReadPalette define the serialization contract;
// formats without a byte layout return ErrNotSupported.
type Format interface {
	// Name returns the format's name.
	Name() string

	// Initialize configures the store's bounds and top-level labels.
	Initialize(data *Data)

	// PrepareNewPage may set the page's name, label, or line count.
	PrepareNewPage(data *Data, page Reference)

	// PrepareNewLine may set the line's label or column count. The
	// containing page is always prepared first.
	PrepareNewLine(data *Data, line Reference)

	// WritePalette serializes the palette to the format's byte layout.
	WritePalette(w io.Writer, p *Palette) error

	// ReadPalette deserializes the format's byte layout into the palette.
	ReadPalette(r io.Reader, p *Palette) error
}

// DefaultFormat imposes no bounds, labels, or layout beyond the defaults.
type DefaultFormat struct{}

// Name implements Format.
func (DefaultFormat) Name() string { return "Default" }

// Initialize implements Format.
func (DefaultFormat) Initialize(data *Data) {
	data.SetLabel(AllRef(), "DefaultPalette 1.0.0")
}

// PrepareNewPage implements Format.
func (DefaultFormat) PrepareNewPage(*Data, Reference) {}

// PrepareNewLine implements Format.
func (DefaultFormat) PrepareNewLine(*Data, Reference) {}

// WritePalette implements Format.
func (DefaultFormat) WritePalette(io.Writer, *Palette) error { return ErrNotSupported }

// ReadPalette implements Format.
func (DefaultFormat) ReadPalette(io.Reader, *Palette) error { return ErrNotSupported }

// SmallFormat bounds the palette to 8 pages of 16 lines by 16 columns.
type SmallFormat struct{}

// Name implements Format.
func (SmallFormat) Name() string { return "Small" }

// Initialize implements Format.
func (SmallFormat) Initialize(data *Data) {
	data.SetLabel(AllRef(), "SmallPalette 0.1.0")
	data.MaximumPageCount = 8
	data.DefaultLineCount = 16
	data.DefaultColumnCount = 16
}

// PrepareNewPage implements Format.
func (SmallFormat) PrepareNewPage(*Data, Reference) {}

// PrepareNewLine implements Format.
func (SmallFormat) PrepareNewLine(*Data, Reference) {}

// WritePalette implements Format.
func (SmallFormat) WritePalette(io.Writer, *Palette) error { return ErrNotSupported }

// ReadPalette implements Format.
func (SmallFormat) ReadPalette(io.Reader, *Palette) error { return ErrNotSupported }

// ZPL format bounds.
const (
	zplPageLimit          uint16 = 0x203
	zplDefaultLineLimit   uint8  = 16
	zplDefaultColumnLimit uint8  = 16

	zplMainPageLimit  uint16 = 0
	zplLevelPageLimit uint16 = 512
)

// ZplFormat is the Zelda-Classic-style palette layout: 16x16 pages, page 0
// is the 14-line main palette, pages through 512 are level palettes, and
// the remainder are sprite palettes. Page and line names are
// auto-generated. The binary layout is a contract boundary only; write and
// read are not implemented.
type ZplFormat struct{}

// Name implements Format.
func (ZplFormat) Name() string { return "ZPL" }

// Initialize implements Format.
func (ZplFormat) Initialize(data *Data) {
	data.SetLabel(AllRef(), "ZplPalette 1.0.0")
	data.MaximumPageCount = zplPageLimit
	data.DefaultLineCount = zplDefaultLineLimit
	data.DefaultColumnCount = zplDefaultColumnLimit
}

// PrepareNewPage implements Format.
func (ZplFormat) PrepareNewPage(data *Data, page Reference) {
	pg, ok := page.Page()
	if !ok {
		return
	}
	switch {
	case pg <= zplMainPageLimit:
		data.SetName(page, "Main")
		data.SetLabel(page, "Level 0")
		data.SetLineCount(page, 14)
	case pg <= zplLevelPageLimit:
		data.SetLabel(page, fmt.Sprintf("Level %d", pg))
	default:
		data.SetLabel(page, fmt.Sprintf("Sprite Page %d", pg))
	}
}

// PrepareNewLine implements Format.
func (ZplFormat) PrepareNewLine(data *Data, line Reference) {
	pg, ok := line.Page()
	if !ok {
		return
	}
	ln, ok := line.Line()
	if !ok {
		return
	}
	switch {
	case pg <= zplMainPageLimit:
		data.SetLabel(line, fmt.Sprintf("Main CSET %d", ln))
	case pg <= zplLevelPageLimit:
		data.SetLabel(line, zplLevelLabel(ln))
	default:
		data.SetLabel(line, fmt.Sprintf("Sprite CSET %d",
			int(pg)-int(zplLevelPageLimit)+int(ln)))
	}
}

// zplLevelLabel returns the CSET label for a level-palette line.
func zplLevelLabel(line uint8) string {
	var depth string
	switch line {
	case 0, 4, 7, 10:
		depth = "2"
	case 1, 5, 8, 11:
		depth = "3"
	case 2, 6, 9, 12:
		depth = "4"
	default:
		depth = "9"
	}
	return fmt.Sprintf("CSET %d (%s)", line, depth)
}

// WritePalette implements Format. The ZPL byte layout is out of scope; the
// method exists as the hook contract for the serializer.
func (ZplFormat) WritePalette(io.Writer, *Palette) error { return ErrNotSupported }

// ReadPalette implements Format.
func (ZplFormat) ReadPalette(io.Reader, *Palette) error { return ErrNotSupported }
