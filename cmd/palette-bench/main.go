// palette-bench measures the throughput of common palette operations:
// bulk literal inserts, ramp construction, and undo/redo cycles.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/halcyard/palette"
)

type benchResult struct {
	name     string
	duration time.Duration
	ops      int
}

func (r benchResult) String() string {
	opsPerSec := float64(r.ops) / r.duration.Seconds()
	return fmt.Sprintf("%-30s %12v  (%d ops, %.0f ops/sec)",
		r.name, r.duration.Round(time.Microsecond), r.ops, opsPerSec)
}

func main() {
	var cells int
	var rampCount int

	root := &cobra.Command{
		Use:   "palette-bench",
		Short: "Benchmark palette engine operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cells, rampCount)
		},
	}
	root.Flags().IntVar(&cells, "cells", 2000, "number of literal cells to insert")
	root.Flags().IntVar(&rampCount, "ramp", 200, "number of cells per ramp")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cells, rampCount int) error {
	pal := palette.New("bench", palette.ZplFormat{})

	start := time.Now()
	for i := 0; i < cells; i++ {
		c := palette.NewColor(uint8(i), uint8(i>>8), uint8(i>>16))
		if err := pal.Apply(palette.NewInsertColor(c)); err != nil {
			return err
		}
	}
	fmt.Println(benchResult{"insert literal", time.Since(start), cells})

	start = time.Now()
	ramp := palette.NewInsertRamp(
		palette.Addr(0, 0, 0),
		palette.Addr(0, 0, 1),
		rampCount,
	)
	if err := pal.Apply(ramp); err != nil {
		return err
	}
	fmt.Println(benchResult{"insert ramp", time.Since(start), rampCount})

	start = time.Now()
	reads := 0
	pal.Data().Each(func(addr palette.Address, cell *palette.Cell) bool {
		cell.Color()
		reads++
		return true
	})
	fmt.Println(benchResult{"resolve colors", time.Since(start), reads})

	start = time.Now()
	undos := 0
	for pal.History().UndoLen() > 0 {
		if err := pal.Undo(); err != nil {
			return err
		}
		undos++
	}
	fmt.Println(benchResult{"undo all", time.Since(start), undos})

	start = time.Now()
	redos := 0
	for pal.History().RedoLen() > 0 {
		if err := pal.Redo(); err != nil {
			return err
		}
		redos++
	}
	fmt.Println(benchResult{"redo all", time.Since(start), redos})

	fmt.Printf("\nfinal: %d cells\n", pal.Len())
	return nil
}
