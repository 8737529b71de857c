package sme

// MH is a match hypothesis: a candidate pairing of a base item with a
// target item. Both sides must be of the same kind (both entities or both
// expressions) — MHs never cross entity/expression kinds.
type MH struct {
	Base   Item
	Target Item
}

// NewMH constructs a match hypothesis. It does not itself validate the
// same-kind invariant; rule engine and structurer callers that build MHs
// from graph traversal already guarantee it structurally, and validating it
// here on every pairing in a cartesian product would be wasted work. The
// rule engine checks the invariant on every rule result instead: safeFilter
// and safeIntern in rules.go turn a cross-kind hypothesis into a RuleFailure.
func NewMH(base, target Item) MH {
	return MH{Base: base, Target: target}
}

// IsEmap reports whether m pairs two entities — a leaf mapping.
func IsEmap(m MH) bool {
	return IsEntity(m.Base) && IsEntity(m.Target)
}

// sameKind reports whether base and target are both entities or both
// expressions.
func sameKind(base, target Item) bool {
	return IsEntity(base) == IsEntity(target)
}
