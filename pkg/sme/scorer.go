package sme

// ses computes the trickle-down structural evaluation score contribution of
// m at depth d: d if m has no children, else d plus the ses of every child
// one level deeper. This rewards both breadth (the |mhs(g)| term added at
// the call site) and depth (nested alignment scores more per hypothesis).
func ses(m MH, d int, s *MHStructure) int {
	children := s.Record(m).Children
	if len(children) == 0 {
		return d
	}
	total := d
	for _, c := range children {
		total += ses(c, d+1, s)
	}
	return total
}

// ScoreGMap fills in g's Score and EmapMatches, returning g for chaining.
// Score is the structural evaluation score — the hypothesis count plus the
// trickle-down SES summed over g's roots. EmapMatches counts the emap
// hypotheses whose two entities are content-equal under unmatchedAttrs
// (the attribute-value rounding and exclusion rule entities use for
// content equality).
func ScoreGMap(g *GMap, s *MHStructure, unmatchedAttrs []string) *GMap {
	total := len(g.MHs)
	for _, r := range g.Roots {
		total += ses(r, 0, s)
	}
	g.Score = total

	matches := 0
	for m := range g.Emaps {
		be, ok1 := m.Base.(*Entity)
		te, ok2 := m.Target.(*Entity)
		if ok1 && ok2 && EqualContent(be, te, unmatchedAttrs) {
			matches++
		}
	}
	g.EmapMatches = matches

	return g
}

// ScoreAll scores every GMap in gmaps in place, returning gmaps for
// chaining.
func ScoreAll(gmaps []*GMap, s *MHStructure, unmatchedAttrs []string) []*GMap {
	for _, g := range gmaps {
		ScoreGMap(g, s, unmatchedAttrs)
	}
	return gmaps
}
