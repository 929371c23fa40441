package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertCell(t *testing.T) {
	d := boundedData(1, 4, 4)

	entry, err := NewInsertCell().Apply(d)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())

	cell := d.Cell(Addr(0, 0, 0))
	require.NotNil(t, cell)
	_, ok := cell.Color()
	assert.False(t, ok)

	_, err = entry.Undo.Apply(d)
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())
}

func TestInsertCellPreservesExistingCell(t *testing.T) {
	d := boundedData(1, 4, 4)
	_, err := d.CreateCell(Addr(0, 0, 0))
	require.NoError(t, err)

	// An existing colorless cell is reused, and undoing keeps it: the
	// operation replaced an expression rather than creating the cell.
	entry, err := NewInsertCell().LocatedAt(Addr(0, 0, 0)).Apply(d)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())

	_, err = entry.Undo.Apply(d)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
}

func TestInsertColorDefaultLocation(t *testing.T) {
	d := boundedData(1, 4, 4)

	entry, err := NewInsertColor(NewColor(1, 2, 3)).Apply(d)
	require.NoError(t, err)

	c, ok := d.Cell(Addr(0, 0, 0)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)
	assert.Equal(t, 0, d.Cell(Addr(0, 0, 0)).Order())

	_, err = entry.Undo.Apply(d)
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())
}

func TestInsertColorRelocatesWithoutOverwrite(t *testing.T) {
	d := boundedData(1, 4, 4)
	fill(t, d, Addr(0, 0, 0), NewColor(9, 9, 9))

	_, err := NewInsertColor(NewColor(1, 2, 3)).LocatedAt(Addr(0, 0, 0)).Apply(d)
	require.NoError(t, err)

	// The occupied start is skipped, not replaced.
	c, ok := d.Cell(Addr(0, 0, 0)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(9, 9, 9), c)

	c, ok = d.Cell(Addr(0, 0, 1)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)
}

func TestInsertColorOverwrite(t *testing.T) {
	d := boundedData(1, 4, 4)
	fill(t, d, Addr(0, 0, 0), NewColor(9, 9, 9))
	before := d.Cell(Addr(0, 0, 0))

	entry, err := NewInsertColor(NewColor(1, 2, 3)).
		LocatedAt(Addr(0, 0, 0)).
		Overwrite(true).
		Apply(d)
	require.NoError(t, err)

	// Overwriting replaces the expression in place, keeping cell identity.
	assert.Same(t, before, d.Cell(Addr(0, 0, 0)))
	c, ok := d.Cell(Addr(0, 0, 0)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)

	_, err = entry.Undo.Apply(d)
	require.NoError(t, err)
	c, ok = d.Cell(Addr(0, 0, 0)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(9, 9, 9), c)
}

func TestInsertColorRefusesDerivedTarget(t *testing.T) {
	d := boundedData(1, 4, 4)
	fill(t, d, Addr(0, 0, 0), NewColor(9, 9, 9))

	_, err := NewInsertWatcher(Addr(0, 0, 0)).LocatedAt(Addr(0, 0, 1)).Apply(d)
	require.NoError(t, err)

	// Break the watcher so its address is allocation-free while still
	// holding a first-order expression.
	_, err = d.RemoveCell(Addr(0, 0, 0))
	require.NoError(t, err)

	_, err = NewInsertColor(NewColor(1, 2, 3)).LocatedAt(Addr(0, 0, 1)).Apply(d)
	assert.ErrorIs(t, err, ErrCannotSetDerivedColor)

	// Overwrite mode is the explicit opt-in.
	_, err = NewInsertColor(NewColor(1, 2, 3)).
		LocatedAt(Addr(0, 0, 1)).
		Overwrite(true).
		Apply(d)
	assert.NoError(t, err)
}

func TestDeleteCell(t *testing.T) {
	d := boundedData(1, 4, 4)
	fill(t, d, Addr(0, 1, 2), NewColor(1, 2, 3))

	entry, err := NewDeleteCell(Addr(0, 1, 2)).Apply(d)
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())

	_, err = entry.Undo.Apply(d)
	require.NoError(t, err)
	c, ok := d.Cell(Addr(0, 1, 2)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)
}

func TestDeleteCellEmptyAddress(t *testing.T) {
	d := boundedData(1, 4, 4)

	_, err := NewDeleteCell(Addr(0, 0, 0)).Apply(d)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestCopyColor(t *testing.T) {
	d := boundedData(1, 4, 4)
	fill(t, d, Addr(0, 0, 0), NewColor(1, 2, 3))

	entry, err := NewCopyColor(Addr(0, 0, 0)).LocatedAt(Addr(0, 2, 0)).Apply(d)
	require.NoError(t, err)

	c, ok := d.Cell(Addr(0, 2, 0)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)
	assert.Equal(t, 0, d.Cell(Addr(0, 2, 0)).Order())

	// The copy is a literal, independent of the source.
	fill(t, d, Addr(0, 0, 0), NewColor(9, 9, 9))
	c, ok = d.Cell(Addr(0, 2, 0)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)

	_, err = entry.Undo.Apply(d)
	require.NoError(t, err)
	assert.Nil(t, d.Cell(Addr(0, 2, 0)))
}

func TestCopyColorNeverTargetsSource(t *testing.T) {
	d := boundedData(1, 4, 4)
	fill(t, d, Addr(0, 0, 0), NewColor(1, 2, 3))

	// Even in overwrite mode, starting at the source skips past it.
	_, err := NewCopyColor(Addr(0, 0, 0)).
		LocatedAt(Addr(0, 0, 0)).
		Overwrite(true).
		Apply(d)
	require.NoError(t, err)

	c, ok := d.Cell(Addr(0, 0, 1)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)
}

func TestCopyColorEmptySource(t *testing.T) {
	d := boundedData(1, 4, 4)

	_, err := NewCopyColor(Addr(0, 0, 0)).Apply(d)
	assert.ErrorIs(t, err, ErrEmptyAddress)

	// A cell without a color is just as empty for copying purposes.
	_, err = d.CreateCell(Addr(0, 0, 0))
	require.NoError(t, err)
	_, err = NewCopyColor(Addr(0, 0, 0)).Apply(d)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}
