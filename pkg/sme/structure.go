package sme

// Record holds the derived sets for one match hypothesis, after both
// structurer phases have run:
//
//   - Emaps: the emap MHs participating in this MH's subtree (the
//     singleton {m} for an emap MH itself, the union of its descendants'
//     emaps otherwise).
//   - Nogood: the MHs that alias this MH's base or target side and would
//     conflict with it, extended by the nogoods of every descendant.
//   - Children: the MHs pairing this MH's base and target expressions'
//     same-position arguments.
type Record struct {
	Emaps    map[MH]bool
	Nogood   map[MH]bool
	Children []MH
}

// MHStructure is the annotated output of the hypothesis structurer: one
// Record per match hypothesis, plus the order hypotheses were discovered in
// (kept for deterministic downstream iteration).
type MHStructure struct {
	order   []MH
	records map[MH]*Record
}

// Record returns m's structural record. It panics if m was not part of the
// hypothesis set the structure was built from — that is a programming
// error in the caller, not a runtime condition callers should handle.
func (s *MHStructure) Record(m MH) *Record {
	r, ok := s.records[m]
	if !ok {
		panic("sme: no structural record for hypothesis " + mhString(m))
	}
	return r
}

// All returns every hypothesis the structure was built from, in discovery
// order.
func (s *MHStructure) All() []MH {
	return append([]MH(nil), s.order...)
}

// IsConsistent reports whether m's record has disjoint emaps and nogood
// sets — the GMap consistency condition, tested at the level of a single
// hypothesis' accumulated structure.
func (r *Record) IsConsistent() bool {
	for e := range r.Emaps {
		if r.Nogood[e] {
			return false
		}
	}
	return true
}

// BuildStructure runs both structurer phases over a flat hypothesis set:
// phase 1 computes emaps/nogood/children locally for each MH from two
// multimaps keyed by base and target item; phase 2 propagates emaps and
// nogood upward from children to parents, memoizing so each MH is visited
// once. The expression graph underlying mhs is acyclic (Graph rejects
// cycles at construction), so the recursion in phase 2 always terminates.
func BuildStructure(mhs []MH) *MHStructure {
	byBase := make(map[Item][]MH)
	byTarget := make(map[Item][]MH)
	for _, m := range mhs {
		byBase[m.Base] = append(byBase[m.Base], m)
		byTarget[m.Target] = append(byTarget[m.Target], m)
	}

	s := &MHStructure{
		order:   append([]MH(nil), mhs...),
		records: make(map[MH]*Record, len(mhs)),
	}

	// Phase 1: local annotation.
	for _, m := range mhs {
		rec := &Record{
			Emaps:  make(map[MH]bool),
			Nogood: make(map[MH]bool),
		}
		if IsEmap(m) {
			rec.Emaps[m] = true
		}
		for _, other := range byBase[m.Base] {
			if other != m {
				rec.Nogood[other] = true
			}
		}
		for _, other := range byTarget[m.Target] {
			if other != m {
				rec.Nogood[other] = true
			}
		}
		rec.Children = localChildren(m, byBase, byTarget)
		s.records[m] = rec
	}

	// Phase 2: upward propagation, memoized over the whole hypothesis set.
	done := make(map[MH]bool, len(mhs))
	var propagate func(m MH)
	propagate = func(m MH) {
		if done[m] {
			return
		}
		done[m] = true
		rec := s.records[m]
		for _, c := range rec.Children {
			propagate(c)
			crec := s.records[c]
			for e := range crec.Emaps {
				rec.Emaps[e] = true
			}
			for n := range crec.Nogood {
				rec.Nogood[n] = true
			}
		}
	}
	for _, m := range mhs {
		propagate(m)
	}

	return s
}

// localChildren computes children(m): empty for an emap, otherwise the
// union over positional argument pairs (b_i, t_i) of by_base[b_i] ∩
// by_target[t_i]. Expressions of differing arity have no children. Order is
// by argument position, first-seen within a position, deduplicated across
// positions.
func localChildren(m MH, byBase, byTarget map[Item][]MH) []MH {
	if IsEmap(m) {
		return nil
	}
	be, ok := m.Base.(*Expression)
	if !ok {
		return nil
	}
	te, ok := m.Target.(*Expression)
	if !ok {
		return nil
	}
	bArgs, tArgs := be.Args(), te.Args()
	if len(bArgs) != len(tArgs) {
		return nil
	}

	seen := make(map[MH]bool)
	var out []MH
	for i := range bArgs {
		bSet := make(map[MH]bool, len(byBase[bArgs[i]]))
		for _, cand := range byBase[bArgs[i]] {
			bSet[cand] = true
		}
		for _, cand := range byTarget[tArgs[i]] {
			if bSet[cand] && !seen[cand] {
				seen[cand] = true
				out = append(out, cand)
			}
		}
	}
	return out
}

func mhString(m MH) string {
	bs, ts := "?", "?"
	if s, ok := m.Base.(interface{ String() string }); ok {
		bs = s.String()
	}
	if s, ok := m.Target.(interface{ String() string }); ok {
		ts = s.String()
	}
	return "(" + bs + " -> " + ts + ")"
}
