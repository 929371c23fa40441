// palette-repl is an interactive demo shell for the palette engine.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/halcyard/palette"
)

// repl holds the state of the interactive session.
type repl struct {
	pal    *palette.Palette
	reader *bufio.Reader
}

func main() {
	var formatName string
	var paletteName string

	root := &cobra.Command{
		Use:   "palette-repl",
		Short: "Interactive palette engine demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatByName(formatName)
			if err != nil {
				return err
			}
			r := &repl{
				pal:    palette.New(paletteName, format),
				reader: bufio.NewReader(os.Stdin),
			}
			r.run()
			return nil
		},
	}
	root.Flags().StringVarP(&formatName, "format", "f", "default", "palette format: default, small, or zpl")
	root.Flags().StringVarP(&paletteName, "name", "n", "Untitled", "palette name")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func formatByName(name string) (palette.Format, error) {
	switch strings.ToLower(name) {
	case "default":
		return palette.DefaultFormat{}, nil
	case "small":
		return palette.SmallFormat{}, nil
	case "zpl":
		return palette.ZplFormat{}, nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}

func (r *repl) run() {
	fmt.Println("Palette REPL - type 'help' for commands, 'quit' to exit")
	for {
		fmt.Print("palette> ")
		input, err := r.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !r.handleCommand(input) {
			return
		}
	}
}

func (r *repl) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "insert":
		err = r.cmdInsert(args)

	case "delete":
		err = r.cmdDelete(args)

	case "copy":
		err = r.cmdCopy(args)

	case "ramp":
		err = r.cmdRamp(args)

	case "watch":
		err = r.cmdWatch(args)

	case "undo":
		err = r.pal.Undo()

	case "redo":
		err = r.pal.Redo()

	case "show":
		r.cmdShow()

	case "len":
		fmt.Printf("%d cells\n", r.pal.Len())

	case "cursor":
		err = r.cmdCursor(args)

	default:
		fmt.Printf("Unknown command: %s\n", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	return true
}

func (r *repl) printHelp() {
	fmt.Println(`Commands:
  insert <#RRGGBB> [p:l:c] [overwrite]   insert a literal color
  delete <p:l:c>                         delete the cell at an address
  copy <p:l:c> [p:l:c]                   copy a color to a new cell
  ramp <from> <to> <count> [start]       build a derived color ramp
  watch <p:l:c> [p:l:c]                  insert a watcher cell
  undo | redo                            walk the operation history
  show                                   dump the palette with swatches
  len                                    number of cells
  cursor <page[:line]|all>               scope default allocation
  quit`)
}

func (r *repl) cmdInsert(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: insert <#RRGGBB> [p:l:c] [overwrite]")
	}
	c, err := palette.HexColor(args[0])
	if err != nil {
		return err
	}
	op := palette.NewInsertColor(c)
	if len(args) > 1 && args[1] != "overwrite" {
		addr, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		op.LocatedAt(addr)
	}
	if args[len(args)-1] == "overwrite" {
		op.Overwrite(true)
	}
	return r.pal.Apply(op)
}

func (r *repl) cmdDelete(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <p:l:c>")
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	return r.pal.Apply(palette.NewDeleteCell(addr))
}

func (r *repl) cmdCopy(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: copy <src> [dst]")
	}
	src, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	op := palette.NewCopyColor(src)
	if len(args) > 1 {
		dst, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		op.LocatedAt(dst)
	}
	return r.pal.Apply(op)
}

func (r *repl) cmdRamp(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: ramp <from> <to> <count> [start]")
	}
	from, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	to, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("bad count %q", args[2])
	}
	op := palette.NewInsertRamp(from, to, count)
	if len(args) > 3 {
		start, err := parseAddress(args[3])
		if err != nil {
			return err
		}
		op.LocatedAt(start)
	}
	return r.pal.Apply(op)
}

func (r *repl) cmdWatch(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: watch <src> [dst]")
	}
	src, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	op := palette.NewInsertWatcher(src)
	if len(args) > 1 {
		dst, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		op.LocatedAt(dst)
	}
	return r.pal.Apply(op)
}

func (r *repl) cmdCursor(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cursor <page[:line]|all>")
	}
	if strings.ToLower(args[0]) == "all" {
		r.pal.SetCursor(palette.AllRef())
		return nil
	}
	parts := strings.Split(args[0], ":")
	page, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return fmt.Errorf("bad page %q", parts[0])
	}
	if len(parts) == 1 {
		r.pal.SetCursor(palette.PageRef(uint16(page)))
		return nil
	}
	line, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return fmt.Errorf("bad line %q", parts[1])
	}
	r.pal.SetCursor(palette.LineRef(uint16(page), uint8(line)))
	return nil
}

func (r *repl) cmdShow() {
	fmt.Print(r.pal.String())
	fmt.Println()
	r.pal.Data().Each(func(addr palette.Address, cell *palette.Cell) bool {
		c, ok := cell.Color()
		swatch := "      "
		if ok {
			swatch = lipgloss.NewStyle().
				Background(lipgloss.Color(c.HexString())).
				Render("      ")
		}
		fmt.Printf("  %s %s %s order=%d\n", addr.HexString(), swatch, c.HexString(), cell.Order())
		return true
	})
}

func parseAddress(s string) (palette.Address, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return palette.Address{}, fmt.Errorf("bad address %q, want p:l:c", s)
	}
	page, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return palette.Address{}, fmt.Errorf("bad page in %q", s)
	}
	line, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return palette.Address{}, fmt.Errorf("bad line in %q", s)
	}
	column, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return palette.Address{}, fmt.Errorf("bad column in %q", s)
	}
	return palette.Addr(uint16(page), uint8(line), uint8(column)), nil
}
