package sme

// GMap is a maximal subtree-rooted collection of match hypotheses: the set
// of MHs reachable from one or more root hypotheses via the children
// relation, plus the structural metadata (emaps, nogood) inherited from
// those roots. A GMap is consistent iff Emaps and Nogood are disjoint.
//
// GMaps produced at different pipeline stages carry progressively more: the
// GMap builder (this file) produces MHs/Roots/Emaps/Nogood; the scorer
// fills Score/EmapMatches; the optional inference engine fills Inferences
// and Transferred.
type GMap struct {
	// MHs lists every hypothesis in the GMap, in the BFS order the builder
	// discovered them — kept as a slice (not just a set) so downstream
	// stages iterate deterministically.
	MHs []MH
	// Roots lists the top hypotheses this GMap was built or merged from.
	Roots []MH
	Emaps  map[MH]bool
	Nogood map[MH]bool

	Score       int
	EmapMatches int

	Inferences  []Item
	Transferred map[Item]Item
}

// HasMH reports whether m is a member of g.
func (g *GMap) HasMH(m MH) bool {
	for _, x := range g.MHs {
		if x == m {
			return true
		}
	}
	return false
}

// IsConsistent reports whether g's emaps and nogood sets are disjoint.
func (g *GMap) IsConsistent() bool {
	for e := range g.Emaps {
		if g.Nogood[e] {
			return false
		}
	}
	return true
}

// subtreeMHs returns root plus every MH reachable from it via Children,
// breadth-first, deduplicated.
func subtreeMHs(root MH, s *MHStructure) []MH {
	seen := map[MH]bool{root: true}
	out := []MH{root}
	queue := []MH{root}
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		for _, c := range s.Record(m).Children {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
				queue = append(queue, c)
			}
		}
	}
	return out
}

func cloneMHSet(m map[MH]bool) map[MH]bool {
	out := make(map[MH]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}

func makeGMap(root MH, s *MHStructure) *GMap {
	rec := s.Record(root)
	return &GMap{
		MHs:    subtreeMHs(root, s),
		Roots:  []MH{root},
		Emaps:  cloneMHSet(rec.Emaps),
		Nogood: cloneMHSet(rec.Nogood),
	}
}

// roots returns every MH in s that is not a child of any other MH.
func roots(s *MHStructure) []MH {
	childSet := make(map[MH]bool)
	for _, m := range s.All() {
		for _, c := range s.Record(m).Children {
			childSet[c] = true
		}
	}
	var out []MH
	for _, m := range s.All() {
		if !childSet[m] {
			out = append(out, m)
		}
	}
	return out
}

// BuildGMaps constructs the initial GMaps: for each root hypothesis, emit
// one consistent GMap if the root's own structural record is already
// consistent; otherwise split the inconsistent root by recursing into its
// children as if each were itself a root, until every emitted GMap is
// consistent.
func BuildGMaps(s *MHStructure) []*GMap {
	var out []*GMap
	var process func(r MH)
	process = func(r MH) {
		rec := s.Record(r)
		if rec.IsConsistent() {
			out = append(out, makeGMap(r, s))
			return
		}
		for _, c := range rec.Children {
			process(c)
		}
	}
	for _, r := range roots(s) {
		process(r)
	}
	return out
}
