package sme

import "context"

// mutuallyConsistent reports whether a and b may coexist in the same
// combined subset: neither's MHs intersect the other's nogood set. By
// construction of nogood (it is accumulated symmetrically from shared base
// and target aliasing) this is a symmetric relation, but both directions
// are checked explicitly rather than relying on that invariant holding for
// every possible caller-supplied GMap.
func mutuallyConsistent(a, b *GMap) bool {
	for _, m := range a.MHs {
		if b.Nogood[m] {
			return false
		}
	}
	for _, m := range b.MHs {
		if a.Nogood[m] {
			return false
		}
	}
	return true
}

// Combine enumerates every maximal internally mutually-consistent subset of
// gmaps. Exhaustive subset enumeration and the equivalent
// maximal-independent-set formulation are both valid readings of that
// requirement; this implementation takes the tractable route, running
// Bron–Kerbosch over the compatibility graph (edge a–b iff a and b are
// mutually consistent) so that a maximal independent set of the conflict
// graph is exactly a maximal clique here.
//
// The combiner is the one stage of the pipeline with super-linear cost, so
// it accepts a context and checks it between recursive steps; a cancelled
// context aborts with ctx.Err() rather than completing the enumeration.
func Combine(ctx context.Context, gmaps []*GMap) ([][]*GMap, error) {
	n := len(gmaps)
	if n == 0 {
		return nil, nil
	}

	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if mutuallyConsistent(gmaps[i], gmaps[j]) {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	all := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		all[i] = true
	}

	var cliques [][]int
	if err := bronKerbosch(ctx, adj, map[int]bool{}, all, map[int]bool{}, &cliques); err != nil {
		return nil, err
	}

	out := make([][]*GMap, 0, len(cliques))
	for _, clique := range cliques {
		subset := make([]*GMap, 0, len(clique))
		for _, idx := range clique {
			subset = append(subset, gmaps[idx])
		}
		out = append(out, subset)
	}
	return out, nil
}

// bronKerbosch is the classic (non-pivoted) maximal-clique enumeration:
// correctness over raw speed, since GMap counts per match are small relative
// to the combinatorics the naive subset-enumeration baseline would incur.
func bronKerbosch(ctx context.Context, adj []map[int]bool, r, p, x map[int]bool, out *[][]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(p) == 0 && len(x) == 0 {
		clique := make([]int, 0, len(r))
		for v := range r {
			clique = append(clique, v)
		}
		*out = append(*out, clique)
		return nil
	}

	pCopy := make([]int, 0, len(p))
	for v := range p {
		pCopy = append(pCopy, v)
	}

	for _, v := range pCopy {
		rNext := cloneIntSet(r)
		rNext[v] = true

		pNext := make(map[int]bool)
		for u := range p {
			if adj[v][u] {
				pNext[u] = true
			}
		}
		xNext := make(map[int]bool)
		for u := range x {
			if adj[v][u] {
				xNext[u] = true
			}
		}

		if err := bronKerbosch(ctx, adj, rNext, pNext, xNext, out); err != nil {
			return err
		}

		delete(p, v)
		x[v] = true
	}
	return nil
}

func cloneIntSet(m map[int]bool) map[int]bool {
	out := make(map[int]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}
