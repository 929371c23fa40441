package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralExpression(t *testing.T) {
	cell := NewCell(Literal(NewColor(1, 2, 3)))

	c, ok := cell.Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)
	assert.Equal(t, 0, cell.Order())
}

func TestEmptyCell(t *testing.T) {
	cell := NewCell(nil)

	_, ok := cell.Color()
	assert.False(t, ok)
	assert.Equal(t, 0, cell.Order())
	assert.Nil(t, cell.Expression())
}

func TestDerivedExpression(t *testing.T) {
	a := NewCell(Literal(NewColor(10, 0, 0)))
	b := NewCell(Literal(NewColor(0, 20, 0)))

	sum := NewCell(Derived(func(colors []Color) Color {
		return NewColor(colors[0].R+colors[1].R, colors[0].G+colors[1].G, 0)
	}, a, b))

	c, ok := sum.Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(10, 20, 0), c)
	assert.Equal(t, 1, sum.Order())
}

func TestDerivedResolvesLazily(t *testing.T) {
	src := NewCell(Literal(NewColor(10, 10, 10)))
	watcher := NewCell(Derived(func(colors []Color) Color { return colors[0] }, src))

	src.SetExpression(Literal(NewColor(99, 99, 99)))

	c, ok := watcher.Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(99, 99, 99), c, "expression is re-resolved on every read")
}

func TestDerivedBrokenDependency(t *testing.T) {
	src := NewCell(Literal(NewColor(10, 10, 10)))
	watcher := NewCell(Derived(func(colors []Color) Color { return colors[0] }, src))

	// An emptied dependency makes the watcher produce no color, not an error.
	src.SetExpression(nil)
	_, ok := watcher.Color()
	assert.False(t, ok)

	// And a restored dependency restores the watcher.
	src.SetExpression(Literal(NewColor(5, 5, 5)))
	c, ok := watcher.Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(5, 5, 5), c)
}

func TestDerivedOrderStacks(t *testing.T) {
	passthrough := func(colors []Color) Color { return colors[0] }

	base := NewCell(Literal(NewColor(1, 1, 1)))
	first := NewCell(Derived(passthrough, base))
	second := NewCell(Derived(passthrough, first))

	assert.Equal(t, 0, base.Order())
	assert.Equal(t, 1, first.Order())
	assert.Equal(t, 2, second.Order())
}

func TestSetExpressionReturnsPrior(t *testing.T) {
	cell := NewCell(nil)

	prior := cell.SetExpression(Literal(NewColor(1, 2, 3)))
	assert.Nil(t, prior)

	prior = cell.SetExpression(nil)
	require.NotNil(t, prior)
	c, ok := prior.Color()
	require.True(t, ok)
	assert.Equal(t, NewColor(1, 2, 3), c)
}
