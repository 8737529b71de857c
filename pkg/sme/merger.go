package sme

// Merge unions one maximal consistent subset of GMaps into a single GMap:
// the merged MH set is the union of the subset's MH sets, structural
// records are unioned member-wise, and roots are the union of the
// subset's roots. Merge preserves MH membership exactly —
// mhs(Merge(S)) = ⋃_{g∈S} mhs(g) — by construction below.
func Merge(subset []*GMap) *GMap {
	seen := make(map[MH]bool)
	var mhs []MH
	emaps := make(map[MH]bool)
	nogood := make(map[MH]bool)
	var mergedRoots []MH

	for _, g := range subset {
		for _, m := range g.MHs {
			if !seen[m] {
				seen[m] = true
				mhs = append(mhs, m)
			}
		}
		for e := range g.Emaps {
			emaps[e] = true
		}
		for n := range g.Nogood {
			nogood[n] = true
		}
		mergedRoots = append(mergedRoots, g.Roots...)
	}

	return &GMap{
		MHs:    mhs,
		Roots:  mergedRoots,
		Emaps:  emaps,
		Nogood: nogood,
	}
}

// MergeAll merges every subset produced by Combine into one GMap each.
func MergeAll(subsets [][]*GMap) []*GMap {
	out := make([]*GMap, 0, len(subsets))
	for _, s := range subsets {
		out = append(out, Merge(s))
	}
	return out
}
