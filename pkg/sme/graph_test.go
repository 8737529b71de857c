package sme

import (
	"errors"
	"testing"
)

func TestNewGraph_DetectsCycle(t *testing.T) {
	pred := NewPredicate("loop", 1, RelationPredicate)
	a := &Expression{functor: pred}
	b := NewExpression(pred, a)
	a.args = []Item{b} // a -> b -> a

	_, err := NewGraph(a)
	if err == nil {
		t.Fatal("expected a MalformedGraph error for a cyclic expression graph")
	}
	var mg *MalformedGraph
	if !errors.As(err, &mg) {
		t.Errorf("expected *MalformedGraph, got %T: %v", err, err)
	}
}

func TestNewGraph_SharedSubexpressionAllowed(t *testing.T) {
	hot := NewEntity("hot")
	cold := NewEntity("cold")
	greater := NewPredicate("greater", 2, RelationPredicate)
	shared := NewExpression(greater, hot, cold)

	and := NewPredicate("and", 2, LogicalPredicate)
	top := NewExpression(and, shared, shared)

	g, err := NewGraph(top)
	if err != nil {
		t.Fatalf("unexpected error for a DAG with shared subexpressions: %v", err)
	}
	// shared should be discovered once, not duplicated.
	count := 0
	for _, e := range g.Expressions() {
		if e == shared {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected the shared subexpression once in Expressions(), got %d", count)
	}
}

func TestGraph_DescendantsAndAncestor(t *testing.T) {
	hot := NewEntity("hot")
	cold := NewEntity("cold")
	greater := NewPredicate("greater", 2, RelationPredicate)
	inner := NewExpression(greater, hot, cold)
	cause := NewPredicate("cause", 1, RelationPredicate)
	outer := NewExpression(cause, inner)

	g, err := NewGraph(outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	desc := g.Descendants(outer)
	want := map[Item]bool{Item(inner): true, Item(hot): true, Item(cold): true}
	if len(desc) != len(want) {
		t.Fatalf("Descendants(outer) = %v, want 3 items", desc)
	}
	for _, d := range desc {
		if !want[d] {
			t.Errorf("unexpected descendant %v", d)
		}
	}

	if !g.IsAncestorOf(outer, map[Item]bool{Item(hot): true}) {
		t.Error("expected outer to be an ancestor of hot")
	}
	if g.IsAncestorOf(inner, map[Item]bool{Item(outer): true}) {
		t.Error("did not expect inner to be an ancestor of outer")
	}
}

func TestNewGraph_NilFunctorIsMalformed(t *testing.T) {
	bad := &Expression{}
	_, err := NewGraph(bad)
	if err == nil {
		t.Fatal("expected a MalformedGraph error for an expression with no functor")
	}
}
