package sme

import "go.uber.org/zap"

// Infer runs the optional inference engine over a single GMap, filling in
// Inferences and — on success — Transferred. Failure (reaching an unmapped
// entity while rewriting) is local to this GMap and silent: g is returned
// with Inferences set but Transferred left nil, and a Warn record is the
// only trace of the abort. Infer never synthesizes a skolem entity in place
// of an unmapped one.
func Infer(g *GMap, base *Graph, logger *zap.Logger) *GMap {
	if logger == nil {
		logger = zap.NewNop()
	}

	matchedBase := make(map[Item]bool, len(g.MHs))
	pairs := make(map[Item]Item, len(g.MHs))
	for _, m := range g.MHs {
		matchedBase[m.Base] = true
		pairs[m.Base] = m.Target
	}

	var unmatchedExprs []*Expression
	for _, e := range base.Expressions() {
		if !matchedBase[Item(e)] {
			unmatchedExprs = append(unmatchedExprs, e)
		}
	}

	var ancestors []*Expression
	for _, e := range unmatchedExprs {
		if base.IsAncestorOf(e, matchedBase) {
			ancestors = append(ancestors, e)
		}
	}

	seen := make(map[Item]bool)
	var inferences []Item
	addInference := func(it Item) {
		if matchedBase[it] || seen[it] {
			return
		}
		seen[it] = true
		inferences = append(inferences, it)
	}
	for _, a := range ancestors {
		addInference(a)
		for _, d := range base.Descendants(a) {
			addInference(d)
		}
	}
	g.Inferences = inferences

	if len(inferences) == 0 {
		return g
	}

	transferred := make(map[Item]Item)
	for _, it := range inferences {
		expr, ok := it.(*Expression)
		if !ok {
			// Bare unmatched entities reachable from an inference root are
			// rewritten only as arguments during their parent expression's
			// recursion, never as a standalone transfer target.
			continue
		}
		out, ok := transferItem(expr, pairs)
		if !ok {
			logger.Warn("inference transfer aborted: unmapped entity reachable from inferred structure")
			return g
		}
		transferred[it] = out
	}

	if len(transferred) > 0 {
		g.Transferred = transferred
		logger.Debug("inference transfer succeeded", zap.Int("transferred", len(transferred)))
	}
	return g
}

// transferItem recursively rewrites x through pairs. If x has a direct
// mapping it is used; otherwise an unmapped entity aborts the transfer
// (returning ok=false — no skolem construction), and an expression is
// rebuilt with each argument transferred in turn.
func transferItem(x Item, pairs map[Item]Item) (Item, bool) {
	if t, ok := pairs[x]; ok {
		return t, true
	}
	if IsEntity(x) {
		return nil, false
	}
	expr := x.(*Expression)
	args := expr.Args()
	newArgs := make([]Item, len(args))
	for i, a := range args {
		t, ok := transferItem(a, pairs)
		if !ok {
			return nil, false
		}
		newArgs[i] = t
	}
	return NewExpression(expr.Functor(), newArgs...), true
}

// InferAll runs Infer over every GMap in gmaps, in place, returning gmaps
// for chaining.
func InferAll(gmaps []*GMap, base *Graph, logger *zap.Logger) []*GMap {
	for _, g := range gmaps {
		Infer(g, base, logger)
	}
	return gmaps
}
