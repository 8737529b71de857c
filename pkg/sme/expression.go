package sme

// Item is either an *Entity or an *Expression — the two kinds of node a
// match hypothesis, or an expression's argument list, may hold. The
// interface exists so graph navigation stays kind-agnostic; callers use
// IsEntity/IsExpression to discriminate.
type Item interface {
	isItem()
}

func (*Entity) isItem()     {}
func (*Expression) isItem() {}

// IsEntity reports whether x is an Entity.
func IsEntity(x Item) bool {
	_, ok := x.(*Entity)
	return ok
}

// IsExpression reports whether x is an Expression.
func IsExpression(x Item) bool {
	_, ok := x.(*Expression)
	return ok
}

// Expression is a node (functor, args) in a knowledge graph: a predicate
// applied to an ordered sequence of entities or nested expressions.
// Expressions are reference-identified — two *Expression values are the
// same node iff they are the same pointer — which is how the graph permits
// shared subexpressions without duplicating them.
type Expression struct {
	functor *Predicate
	args    []Item
}

// NewExpression constructs an expression node. It does not validate arity
// against functor.Arity or check for cycles. NewGraph checks the whole
// reachable set once for cycles, nil functors and nil arguments, and returns
// a MalformedGraph for the first defect it finds; arity is not checked there
// either.
func NewExpression(functor *Predicate, args ...Item) *Expression {
	cp := make([]Item, len(args))
	copy(cp, args)
	return &Expression{functor: functor, args: cp}
}

// Functor returns the expression's predicate.
func (e *Expression) Functor() *Predicate { return e.functor }

// Args returns the expression's argument list, in order.
func (e *Expression) Args() []Item {
	cp := make([]Item, len(e.args))
	copy(cp, e.args)
	return cp
}

func (e *Expression) String() string {
	if e.functor == nil {
		return "<expr>"
	}
	return e.functor.Name
}
