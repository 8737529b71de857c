package sme

import "github.com/google/uuid"

// PredicateKind tags the four predicate families the mapping rules
// distinguish between when matching predicates across graphs.
type PredicateKind int

const (
	// RelationPredicate names an n-ary relation between arguments, e.g. greater(x, y).
	RelationPredicate PredicateKind = iota
	// FunctionPredicate names a function from arguments to an implicit result slot.
	FunctionPredicate
	// AttributePredicate names a unary attribute of its single argument.
	AttributePredicate
	// LogicalPredicate names a logical connective (and, or, not, implies, …).
	LogicalPredicate
)

func (k PredicateKind) String() string {
	switch k {
	case RelationPredicate:
		return "relation"
	case FunctionPredicate:
		return "function"
	case AttributePredicate:
		return "attribute"
	case LogicalPredicate:
		return "logical"
	default:
		return "unknown"
	}
}

// Predicate is a named relational symbol with a fixed arity and a type tag.
// Commutative marks argument-order-independent predicates (e.g. "and");
// Ordered lists argument positions the rule engine should treat as
// order-significant when Commutative is false (kept for rule-engine
// consumers; the core graph model never inspects it itself).
type Predicate struct {
	id          uuid.UUID
	Name        string
	Arity       int
	Kind        PredicateKind
	Commutative bool
	Ordered     []int
}

// NewPredicate constructs a Predicate. Arity must be >= 0.
func NewPredicate(name string, arity int, kind PredicateKind) *Predicate {
	return &Predicate{id: uuid.New(), Name: name, Arity: arity, Kind: kind}
}

// ID returns the predicate's stable identity.
func (p *Predicate) ID() uuid.UUID { return p.id }

func (p *Predicate) String() string { return p.Name }
