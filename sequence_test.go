package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	d := boundedData(1, 4, 4)

	seq := NewSequence(
		NewInsertColor(NewColor(1, 1, 1)).LocatedAt(Addr(0, 0, 0)),
		NewInsertColor(NewColor(2, 2, 2)).LocatedAt(Addr(0, 0, 1)),
		NewInsertWatcher(Addr(0, 0, 0)).LocatedAt(Addr(0, 1, 0)),
	)

	entry, err := seq.Apply(d)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	c, ok := d.Cell(Addr(0, 1, 0)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 1, 1), c)

	// One undo reverses the whole sequence.
	_, err = entry.Undo.Apply(d)
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())
}

func TestSequencePartialFailureKeepsCompletedWrites(t *testing.T) {
	d := boundedData(1, 4, 4)

	seq := NewSequence(
		NewInsertColor(NewColor(1, 1, 1)).LocatedAt(Addr(0, 0, 0)),
		NewDeleteCell(Addr(0, 3, 3)), // nothing there
		NewInsertColor(NewColor(2, 2, 2)).LocatedAt(Addr(0, 0, 1)),
	)

	_, err := seq.Apply(d)
	require.ErrorIs(t, err, ErrEmptyAddress)

	// No rollback: the first write stays, the third never happened.
	c, ok := d.Cell(Addr(0, 0, 0)).Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 1, 1), c)
	assert.Nil(t, d.Cell(Addr(0, 0, 1)))
	assert.Equal(t, 1, d.Len())
}

func TestRepeat(t *testing.T) {
	d := boundedData(1, 4, 4)

	// Each application allocates the next free address.
	entry, err := NewRepeat(NewInsertColor(NewColor(5, 5, 5)), 3).Apply(d)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	for col := uint8(0); col < 3; col++ {
		c, ok := d.Cell(Addr(0, 0, col)).Color()
		require.True(t, ok)
		assert.Equal(t, NewColor(5, 5, 5), c)
	}

	_, err = entry.Undo.Apply(d)
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())
}

func TestRepeatStopsAtCapacity(t *testing.T) {
	d := boundedData(1, 1, 2)

	_, err := NewRepeat(NewInsertColor(NewColor(5, 5, 5)), 3).Apply(d)
	require.ErrorIs(t, err, ErrMaxCellLimit)

	// The two applications that fit are kept.
	assert.Equal(t, 2, d.Len())
}

func TestSequenceInfo(t *testing.T) {
	seq := NewSequence(NewInsertCell(), NewInsertCell())
	assert.Equal(t, "Sequence", seq.Info().Name)
	assert.Equal(t, "2 operations", seq.Info().Detail)

	rep := NewRepeat(NewInsertCell(), 4)
	assert.Equal(t, "Repeat", rep.Info().Name)
	assert.Equal(t, "Insert Cell x4", rep.Info().Detail)
}
