package sme

import "testing"

func TestBuildGMaps_SingleConsistentRoot(t *testing.T) {
	s, mCause, mGreater, mBeaker, mVial := buildHeatWaterStructure(t)

	gmaps := BuildGMaps(s)
	if len(gmaps) != 1 {
		t.Fatalf("expected exactly one GMap from a single consistent root, got %d", len(gmaps))
	}
	g := gmaps[0]
	if len(g.Roots) != 1 || g.Roots[0] != mCause {
		t.Errorf("expected root %v, got %v", mCause, g.Roots)
	}
	for _, want := range []MH{mCause, mGreater, mBeaker, mVial} {
		if !g.HasMH(want) {
			t.Errorf("expected GMap to contain %v", want)
		}
	}
	if !g.IsConsistent() {
		t.Error("expected GMap to be consistent")
	}
}

func TestBuildGMaps_RootsWithMutualConflictsStayAsSeparateSingletons(t *testing.T) {
	// Two base expressions competing for the same target expression are
	// each individually consistent (their own emaps never alias their own
	// nogood); the conflict between the two roots is the combiner's job to
	// resolve, not the GMap builder's.
	greater := NewPredicate("greater", 2, RelationPredicate)
	a := NewExpression(greater, NewEntity("a1"), NewEntity("a2"))
	b := NewExpression(greater, NewEntity("b1"), NewEntity("b2"))
	target := NewExpression(greater, NewEntity("x"), NewEntity("y"))

	m1 := NewMH(a, target)
	m2 := NewMH(b, target)
	s := BuildStructure([]MH{m1, m2})

	gmaps := BuildGMaps(s)
	if len(gmaps) != 2 {
		t.Fatalf("expected two GMaps, got %d", len(gmaps))
	}
	for _, g := range gmaps {
		if !g.IsConsistent() {
			t.Errorf("every produced GMap must be consistent, got %+v", g)
		}
		if len(g.MHs) != 1 {
			t.Errorf("expected singleton GMaps, got %v", g.MHs)
		}
	}
}

func TestBuildGMaps_InconsistentRootSplitsIntoConsistentChildren(t *testing.T) {
	// B = f(b1, b1): the same base entity appears in both argument
	// positions. Paired against T = f(t1, t2), the root's children are
	// C1 = (b1, t1) and C2 = (b1, t2) — two emaps that alias on base b1 and
	// so sit in each other's nogood. The root's accumulated emaps
	// {C1, C2} then intersects its accumulated nogood {C1, C2}: the root is
	// inconsistent and must be split into its (individually consistent)
	// children.
	b1 := NewEntity("b1")
	t1 := NewEntity("t1")
	t2 := NewEntity("t2")
	f := NewPredicate("f", 2, RelationPredicate)
	B := NewExpression(f, b1, b1)
	T := NewExpression(f, t1, t2)

	root := NewMH(B, T)
	c1 := NewMH(b1, t1)
	c2 := NewMH(b1, t2)
	s := BuildStructure([]MH{root, c1, c2})

	rootRec := s.Record(root)
	if rootRec.IsConsistent() {
		t.Fatal("fixture assumption broke: expected the root to be inconsistent")
	}
	if len(rootRec.Emaps) != 2 || !rootRec.Emaps[c1] || !rootRec.Emaps[c2] {
		t.Fatalf("expected root emaps {c1, c2}, got %v", rootRec.Emaps)
	}

	gmaps := BuildGMaps(s)
	if len(gmaps) != 2 {
		t.Fatalf("expected the inconsistent root to split into 2 GMaps, got %d", len(gmaps))
	}
	seen := map[MH]bool{}
	for _, g := range gmaps {
		if !g.IsConsistent() {
			t.Errorf("split GMap must be consistent: %+v", g)
		}
		if len(g.MHs) != 1 {
			t.Errorf("expected a singleton GMap per split child, got %v", g.MHs)
		}
		seen[g.MHs[0]] = true
	}
	if !seen[c1] || !seen[c2] {
		t.Errorf("expected the split to produce GMaps rooted at c1 and c2, got %v", gmaps)
	}
}

func TestBuildGMaps_EmptyHypothesesYieldsNoGMaps(t *testing.T) {
	s := BuildStructure(nil)
	gmaps := BuildGMaps(s)
	if len(gmaps) != 0 {
		t.Errorf("expected no GMaps from an empty hypothesis set, got %d", len(gmaps))
	}
}
