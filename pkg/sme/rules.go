package sme

import (
	"fmt"

	"go.uber.org/zap"
)

// FilterRule proposes a match hypothesis for one pair of top-level items (or
// their descendants, as exposed by the graph). It returns (nil, nil) when it
// has nothing to propose for this pair.
type FilterRule struct {
	Name string
	Fn   func(base, target Item) (*MH, error)
}

// InternRule derives zero or more new hypotheses from an existing one,
// typically from its arguments. It is applied transitively to fixpoint.
type InternRule struct {
	Name string
	Fn   func(m MH) ([]MH, error)
}

// Ruleset is the pair of rule families the rule engine applies. Rule
// functions must be pure — Match may apply them in any order and expects
// identical results from identical inputs.
type Ruleset struct {
	Filter []FilterRule
	Intern []InternRule
}

// DefaultRuleset returns the literal-similarity ruleset: same-functor
// relation matching, positional child-generation for matching arguments
// (which also interns entity-pair MHs once their parent expressions align),
// applied to any predicate kind.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Filter: []FilterRule{
			{Name: "literal-similarity/same-functor", Fn: sameFunctorFilter},
		},
		Intern: []InternRule{
			{Name: "literal-similarity/children", Fn: positionalChildrenIntern},
		},
	}
}

// sameFunctorFilter proposes an MH for two expressions sharing a functor
// name. It never fires on entities or on expressions with different
// functors.
func sameFunctorFilter(base, target Item) (*MH, error) {
	be, ok := base.(*Expression)
	if !ok {
		return nil, nil
	}
	te, ok := target.(*Expression)
	if !ok {
		return nil, nil
	}
	if be.Functor() == nil || te.Functor() == nil {
		return nil, nil
	}
	if be.Functor().Name != te.Functor().Name {
		return nil, nil
	}
	m := NewMH(be, te)
	return &m, nil
}

// positionalChildrenIntern derives one child MH per matching argument
// position of an expression-pair MH. It silently skips positions whose base
// and target arguments differ in kind (entity vs. expression), since such a
// pairing would violate the same-kind invariant, and produces nothing for
// expressions of differing arity.
func positionalChildrenIntern(m MH) ([]MH, error) {
	be, ok := m.Base.(*Expression)
	if !ok {
		return nil, nil
	}
	te, ok := m.Target.(*Expression)
	if !ok {
		return nil, nil
	}

	bArgs, tArgs := be.Args(), te.Args()
	if len(bArgs) != len(tArgs) {
		return nil, nil
	}

	out := make([]MH, 0, len(bArgs))
	for i := range bArgs {
		if !sameKind(bArgs[i], tArgs[i]) {
			continue
		}
		out = append(out, NewMH(bArgs[i], tArgs[i]))
	}
	return out, nil
}

// allItems returns every entity and expression in a graph as a single Item
// slice, in the order the graph discovered them.
func allItems(g *Graph) []Item {
	exprs := g.Expressions()
	ents := g.Entities()
	out := make([]Item, 0, len(exprs)+len(ents))
	for _, e := range exprs {
		out = append(out, e)
	}
	for _, e := range ents {
		out = append(out, e)
	}
	return out
}

// GenerateHypotheses runs the rule engine: filter rules over the cartesian
// product of base and target items, then intern rules applied transitively
// to fixpoint. The universe of possible MHs is bounded by
// |expressions(base)|*|expressions(target)| + |entities(base)|*|entities(target)|,
// so accumulating results in a seen-set guarantees termination.
func GenerateHypotheses(base, target *Graph, rs Ruleset, logger *zap.Logger) ([]MH, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	baseItems := allItems(base)
	targetItems := allItems(target)

	seen := make(map[MH]bool)
	var all []MH

	add := func(m MH) {
		if !sameKind(m.Base, m.Target) {
			return
		}
		if seen[m] {
			return
		}
		seen[m] = true
		all = append(all, m)
	}

	var queue []MH
	for _, b := range baseItems {
		for _, t := range targetItems {
			for _, rule := range rs.Filter {
				mh, err := safeFilter(rule, b, t)
				if err != nil {
					return nil, err
				}
				if mh == nil {
					continue
				}
				if !seen[*mh] {
					add(*mh)
					queue = append(queue, *mh)
				}
			}
		}
	}

	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		for _, rule := range rs.Intern {
			derived, err := safeIntern(rule, m)
			if err != nil {
				return nil, err
			}
			for _, d := range derived {
				if !seen[d] {
					add(d)
					queue = append(queue, d)
				}
			}
		}
	}

	logger.Debug("rule engine produced hypotheses", zap.Int("count", len(all)))
	return all, nil
}

func safeFilter(rule FilterRule, base, target Item) (mh *MH, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RuleFailure{Rule: rule.Name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	mh, err = rule.Fn(base, target)
	if err != nil {
		return nil, &RuleFailure{Rule: rule.Name, Err: err}
	}
	if mh != nil && !sameKind(mh.Base, mh.Target) {
		return nil, &RuleFailure{Rule: rule.Name, Err: fmt.Errorf("produced cross-kind hypothesis")}
	}
	return mh, nil
}

func safeIntern(rule InternRule, m MH) (out []MH, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RuleFailure{Rule: rule.Name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	out, err = rule.Fn(m)
	if err != nil {
		return nil, &RuleFailure{Rule: rule.Name, Err: err}
	}
	for _, d := range out {
		if !sameKind(d.Base, d.Target) {
			return nil, &RuleFailure{Rule: rule.Name, Err: fmt.Errorf("produced cross-kind hypothesis")}
		}
	}
	return out, nil
}
