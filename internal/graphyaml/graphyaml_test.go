package graphyaml

import "testing"

func TestBuild_ResolvesNestedExpressionsAndEntities(t *testing.T) {
	doc := &Doc{
		Predicates: []PredicateDoc{
			{Name: "greater", Arity: 2, Kind: "relation"},
			{Name: "cause", Arity: 1, Kind: "relation"},
		},
		Entities: []EntityDoc{
			{Name: "beaker", Attrs: map[string]any{"pressure": 10}},
			{Name: "vial", Attrs: map[string]any{"pressure": 5}},
		},
		Expressions: []ExpressionDoc{
			{ID: "bCause", Predicate: "cause", Args: []string{"bGreater"}},
			{ID: "bGreater", Predicate: "greater", Args: []string{"beaker", "vial"}},
		},
		Top: []string{"bCause"},
	}

	g, err := Build(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.TopLevel()) != 1 {
		t.Fatalf("expected one top-level expression, got %d", len(g.TopLevel()))
	}
	if len(g.Entities()) != 2 {
		t.Errorf("expected 2 entities, got %d", len(g.Entities()))
	}
	if len(g.Expressions()) != 2 {
		t.Errorf("expected 2 expressions, got %d", len(g.Expressions()))
	}
}

func TestBuild_UndefinedReferenceIsAnError(t *testing.T) {
	doc := &Doc{
		Predicates:  []PredicateDoc{{Name: "f", Arity: 1, Kind: "relation"}},
		Expressions: []ExpressionDoc{{ID: "e", Predicate: "f", Args: []string{"missing"}}},
		Top:         []string{"e"},
	}
	if _, err := Build(doc); err == nil {
		t.Fatal("expected an error for an undefined argument reference")
	}
}

func TestBuild_CyclicExpressionReferenceIsAnError(t *testing.T) {
	doc := &Doc{
		Predicates: []PredicateDoc{{Name: "f", Arity: 1, Kind: "relation"}},
		Expressions: []ExpressionDoc{
			{ID: "a", Predicate: "f", Args: []string{"b"}},
			{ID: "b", Predicate: "f", Args: []string{"a"}},
		},
		Top: []string{"a"},
	}
	if _, err := Build(doc); err == nil {
		t.Fatal("expected an error for a cyclic expression reference")
	}
}

func TestBuild_UnknownPredicateKindIsAnError(t *testing.T) {
	doc := &Doc{
		Predicates: []PredicateDoc{{Name: "f", Arity: 1, Kind: "bogus"}},
	}
	if _, err := Build(doc); err == nil {
		t.Fatal("expected an error for an unknown predicate kind")
	}
}
