package sme

import (
	"context"
	"testing"
)

func gmapOf(mhs ...MH) *GMap {
	nogood := make(map[MH]bool)
	emaps := make(map[MH]bool)
	for _, m := range mhs {
		if IsEmap(m) {
			emaps[m] = true
		}
	}
	return &GMap{MHs: mhs, Emaps: emaps, Nogood: nogood}
}

func TestCombine_DisjointGMapsFormOneMaximalSubset(t *testing.T) {
	m1 := NewMH(NewEntity("a"), NewEntity("x"))
	m2 := NewMH(NewEntity("b"), NewEntity("y"))
	g1 := gmapOf(m1)
	g2 := gmapOf(m2)

	subsets, err := Combine(context.Background(), []*GMap{g1, g2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subsets) != 1 {
		t.Fatalf("expected exactly one maximal subset for disjoint GMaps, got %d", len(subsets))
	}
	if len(subsets[0]) != 2 {
		t.Errorf("expected the single maximal subset to contain both GMaps, got %d", len(subsets[0]))
	}
}

func TestCombine_ConflictingGMapsYieldTwoSubsets(t *testing.T) {
	m1 := NewMH(NewEntity("a"), NewEntity("x"))
	m2 := NewMH(NewEntity("a"), NewEntity("y")) // same base entity "a": aliases m1

	g1 := gmapOf(m1)
	g1.Nogood[m2] = true
	g2 := gmapOf(m2)
	g2.Nogood[m1] = true

	subsets, err := Combine(context.Background(), []*GMap{g1, g2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subsets) != 2 {
		t.Fatalf("expected two maximal subsets for mutually conflicting GMaps, got %d", len(subsets))
	}
	for _, s := range subsets {
		if len(s) != 1 {
			t.Errorf("expected each maximal subset to be a singleton, got %d", len(s))
		}
	}
}

func TestCombine_EmptyInputYieldsNoSubsets(t *testing.T) {
	subsets, err := Combine(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subsets) != 0 {
		t.Errorf("expected no subsets for empty input, got %d", len(subsets))
	}
}

func TestCombine_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m1 := NewMH(NewEntity("a"), NewEntity("x"))
	g1 := gmapOf(m1)

	_, err := Combine(ctx, []*GMap{g1})
	if err == nil {
		t.Fatal("expected Combine to respect a cancelled context")
	}
}

func TestCombine_ThreeMutuallyConsistentGMapsFormOneSubset(t *testing.T) {
	m1 := NewMH(NewEntity("a"), NewEntity("x"))
	m2 := NewMH(NewEntity("b"), NewEntity("y"))
	m3 := NewMH(NewEntity("c"), NewEntity("z"))
	g1, g2, g3 := gmapOf(m1), gmapOf(m2), gmapOf(m3)

	subsets, err := Combine(context.Background(), []*GMap{g1, g2, g3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subsets) != 1 || len(subsets[0]) != 3 {
		t.Fatalf("expected one maximal subset containing all three GMaps, got %v", subsets)
	}
}
