package sme

// Graph is a set of top-level expressions together with the transitive
// closure of the expressions and entities reachable from them. Expressions
// may share subexpressions (a DAG); Graph construction rejects cycles.
type Graph struct {
	top         []*Expression
	expressions []*Expression
	entities    []*Entity
	descendants map[Item][]Item // memoized, computed lazily
}

// NewGraph builds a Graph from its top-level expressions, validating that
// the reachable structure is acyclic and that no expression has a nil
// functor or a nil argument slot. All reachable expressions and entities
// are discovered eagerly so later stages can enumerate them without
// re-traversing.
func NewGraph(top ...*Expression) (*Graph, error) {
	g := &Graph{top: append([]*Expression(nil), top...)}

	seenExpr := make(map[*Expression]bool)
	seenEntity := make(map[*Entity]bool)
	inStack := make(map[*Expression]bool)

	var visit func(e *Expression) error
	visit = func(e *Expression) error {
		if e == nil {
			return &MalformedGraph{Detail: "nil expression reachable from graph root"}
		}
		if inStack[e] {
			return &MalformedGraph{Detail: "cycle detected at expression " + e.String()}
		}
		if seenExpr[e] {
			return nil
		}
		if e.functor == nil {
			return &MalformedGraph{Detail: "expression with nil functor"}
		}
		inStack[e] = true
		for _, a := range e.args {
			switch it := a.(type) {
			case nil:
				return &MalformedGraph{Detail: "nil argument in expression " + e.String()}
			case *Entity:
				if !seenEntity[it] {
					seenEntity[it] = true
					g.entities = append(g.entities, it)
				}
			case *Expression:
				if err := visit(it); err != nil {
					return err
				}
			}
		}
		inStack[e] = false
		seenExpr[e] = true
		g.expressions = append(g.expressions, e)
		return nil
	}

	for _, e := range top {
		if err := visit(e); err != nil {
			return nil, err
		}
	}

	g.descendants = make(map[Item][]Item)
	return g, nil
}

// TopLevel returns the graph's top-level expressions.
func (g *Graph) TopLevel() []*Expression {
	return append([]*Expression(nil), g.top...)
}

// Expressions returns every expression reachable in the graph, top-level or
// nested.
func (g *Graph) Expressions() []*Expression {
	return append([]*Expression(nil), g.expressions...)
}

// Entities returns every entity reachable in the graph.
func (g *Graph) Entities() []*Entity {
	return append([]*Entity(nil), g.entities...)
}

// Functor returns e's functor.
func (g *Graph) Functor(e *Expression) *Predicate { return e.Functor() }

// Args returns e's argument list.
func (g *Graph) Args(e *Expression) []Item { return e.Args() }

// Descendants returns every item strictly reachable below x (not including
// x itself), deduplicated. For an entity it is empty.
func (g *Graph) Descendants(x Item) []Item {
	if d, ok := g.descendants[x]; ok {
		return append([]Item(nil), d...)
	}

	expr, ok := x.(*Expression)
	if !ok {
		g.descendants[x] = nil
		return nil
	}

	seen := make(map[Item]bool)
	var out []Item
	var walk func(e *Expression)
	walk = func(e *Expression) {
		for _, a := range e.args {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
			if sub, ok := a.(*Expression); ok {
				walk(sub)
			}
		}
	}
	walk(expr)

	g.descendants[x] = out
	return append([]Item(nil), out...)
}

// IsAncestorOf reports whether any item in targets is reachable as a
// descendant of e — i.e. whether e is an ancestor of some member of
// targets. targets is keyed by Item for O(1) membership tests.
func (g *Graph) IsAncestorOf(e Item, targets map[Item]bool) bool {
	for _, d := range g.Descendants(e) {
		if targets[d] {
			return true
		}
	}
	return false
}
