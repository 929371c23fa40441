package palette

// MixFunc combines the resolved colors of a derived expression's
// dependencies, in dependency order, into a single result color.
type MixFunc func(colors []Color) Color

// Expression is the value held by a cell: either a literal color (zeroth
// order) or a computation over other cells' colors (Nth order). A nil
// Expression is the empty placeholder and produces no color.
type Expression interface {
	// Color resolves the expression. It reports false if the expression
	// is derived and any dependency no longer resolves to a live color.
	Color() (Color, bool)

	// Order returns the derivation depth: 0 for a literal, one more than
	// the deepest dependency for a derived expression.
	Order() int
}

// literalExpr is a zeroth-order expression holding a color directly.
type literalExpr struct {
	c Color
}

// Literal returns an expression that always resolves to the given color.
func Literal(c Color) Expression {
	return literalExpr{c: c}
}

func (e literalExpr) Color() (Color, bool) { return e.c, true }
func (e literalExpr) Order() int           { return 0 }

// derivedExpr is an Nth-order expression computed from other cells. The
// dependency list is fixed at construction and holds non-owning pointers:
// the data store remains the only owner of every cell.
type derivedExpr struct {
	deps []*Cell
	mix  MixFunc
}

// Derived returns an expression computed by mix over the colors of deps.
// The expression resolves only while every dependency still resolves to a
// live color; a deleted or broken dependency makes it produce no color
// rather than an error.
func Derived(mix MixFunc, deps ...*Cell) Expression {
	return &derivedExpr{deps: deps, mix: mix}
}

func (e *derivedExpr) Color() (Color, bool) {
	colors := make([]Color, len(e.deps))
	for i, dep := range e.deps {
		if dep == nil {
			return Color{}, false
		}
		c, ok := dep.Color()
		if !ok {
			return Color{}, false
		}
		colors[i] = c
	}
	return e.mix(colors), true
}

func (e *derivedExpr) Order() int {
	max := 0
	for _, dep := range e.deps {
		if dep == nil {
			continue
		}
		if o := dep.Order(); o > max {
			max = o
		}
	}
	return max + 1
}

// Cell is the owned storage unit at an address. It wraps exactly one
// Expression and allows the expression to be replaced in place, so the cell
// keeps its identity for anything depending on it. Only the data store holds
// an owning reference; dependents retain the pointer but must never mutate
// the cell directly.
type Cell struct {
	expr Expression
}

// NewCell creates a cell holding the given expression. A nil expression is
// the empty placeholder.
func NewCell(expr Expression) *Cell {
	return &Cell{expr: expr}
}

// Color resolves the cell's expression. Every call re-walks the dependency
// list; there is no caching.
func (c *Cell) Color() (Color, bool) {
	if c == nil || c.expr == nil {
		return Color{}, false
	}
	return c.expr.Color()
}

// Order returns the derivation depth of the cell's expression; an empty
// cell is zeroth order.
func (c *Cell) Order() int {
	if c == nil || c.expr == nil {
		return 0
	}
	return c.expr.Order()
}

// Expression returns the cell's current expression.
func (c *Cell) Expression() Expression {
	return c.expr
}

// SetExpression replaces the cell's expression and returns the prior one.
func (c *Cell) SetExpression(expr Expression) Expression {
	prior := c.expr
	c.expr = expr
	return prior
}
