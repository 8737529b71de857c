// Package graphyaml is a thin adapter from a concrete YAML syntax onto
// pkg/sme's graph model. The engine itself is agnostic to any external
// representation; this package is one such caller, used by cmd/smectl to
// load fixtures from disk.
package graphyaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gokando-sme/pkg/sme"
)

// Doc is the on-disk shape of a knowledge graph: named predicates, named
// entities with attribute maps, and named expressions built from them.
// Expression args may reference either an entity name or another
// expression's id, so expressions can nest arbitrarily deep.
type Doc struct {
	Predicates  []PredicateDoc  `yaml:"predicates"`
	Entities    []EntityDoc     `yaml:"entities"`
	Expressions []ExpressionDoc `yaml:"expressions"`
	Top         []string        `yaml:"top"`
}

// PredicateDoc describes one predicate symbol.
type PredicateDoc struct {
	Name        string `yaml:"name"`
	Arity       int    `yaml:"arity"`
	Kind        string `yaml:"kind"`
	Commutative bool   `yaml:"commutative"`
}

// EntityDoc describes one named entity and its content attributes.
type EntityDoc struct {
	Name  string         `yaml:"name"`
	Attrs map[string]any `yaml:"attrs"`
}

// ExpressionDoc describes one expression node: a predicate name applied to
// an ordered list of entity or expression names.
type ExpressionDoc struct {
	ID        string   `yaml:"id"`
	Predicate string   `yaml:"predicate"`
	Args      []string `yaml:"args"`
}

var kindNames = map[string]sme.PredicateKind{
	"relation":  sme.RelationPredicate,
	"function":  sme.FunctionPredicate,
	"attribute": sme.AttributePredicate,
	"logical":   sme.LogicalPredicate,
}

// Load reads and parses a Doc from path, then builds it into a graph.
func Load(path string) (*sme.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphyaml: read %s: %w", path, err)
	}
	var doc Doc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("graphyaml: parse %s: %w", path, err)
	}
	g, err := Build(&doc)
	if err != nil {
		return nil, fmt.Errorf("graphyaml: build %s: %w", path, err)
	}
	return g, nil
}

// Build resolves a parsed Doc into a *sme.Graph. Predicate and entity names
// must be unique within the document; expression args are resolved against
// both the entity and expression namespaces, entities first so a name
// collision between the two resolves to the entity in an argument position
// (a top-level reference resolves to the expression; callers should avoid
// reusing names across kinds).
func Build(doc *Doc) (*sme.Graph, error) {
	predicates := make(map[string]*sme.Predicate, len(doc.Predicates))
	for _, pd := range doc.Predicates {
		kind, ok := kindNames[pd.Kind]
		if !ok && pd.Kind != "" {
			return nil, fmt.Errorf("unknown predicate kind %q for %q", pd.Kind, pd.Name)
		}
		p := sme.NewPredicate(pd.Name, pd.Arity, kind)
		p.Commutative = pd.Commutative
		predicates[pd.Name] = p
	}

	entities := make(map[string]*sme.Entity, len(doc.Entities))
	for _, ed := range doc.Entities {
		attrs := make([]sme.Attr, 0, len(ed.Attrs))
		for name, v := range ed.Attrs {
			attrs = append(attrs, sme.Attr{Name: name, Value: normalizeValue(v)})
		}
		entities[ed.Name] = sme.NewEntity(ed.Name, attrs...)
	}

	items := make(map[string]sme.Item, len(entities)+len(doc.Expressions))
	for name, e := range entities {
		items[name] = e
	}

	// Expressions may reference other expressions declared later, so
	// resolve args lazily and memoize, rather than requiring declaration
	// order to be a topological sort.
	exprDocs := make(map[string]ExpressionDoc, len(doc.Expressions))
	for _, ed := range doc.Expressions {
		exprDocs[ed.ID] = ed
	}

	var resolve func(id string, inProgress map[string]bool) (*sme.Expression, error)
	resolve = func(id string, inProgress map[string]bool) (*sme.Expression, error) {
		if it, ok := items[id]; ok {
			if ex, ok := it.(*sme.Expression); ok {
				return ex, nil
			}
			return nil, fmt.Errorf("name %q does not refer to an expression", id)
		}
		ed, ok := exprDocs[id]
		if !ok {
			return nil, fmt.Errorf("undefined reference %q", id)
		}
		if inProgress[id] {
			return nil, fmt.Errorf("cyclic expression reference at %q", id)
		}
		inProgress[id] = true

		pred, ok := predicates[ed.Predicate]
		if !ok {
			return nil, fmt.Errorf("expression %q uses undefined predicate %q", id, ed.Predicate)
		}
		args := make([]sme.Item, 0, len(ed.Args))
		for _, argName := range ed.Args {
			if entity, ok := entities[argName]; ok {
				args = append(args, entity)
				continue
			}
			sub, err := resolve(argName, inProgress)
			if err != nil {
				return nil, err
			}
			args = append(args, sub)
		}
		expr := sme.NewExpression(pred, args...)
		items[id] = expr
		return expr, nil
	}

	for _, ed := range doc.Expressions {
		if _, err := resolve(ed.ID, map[string]bool{}); err != nil {
			return nil, err
		}
	}

	top := make([]*sme.Expression, 0, len(doc.Top))
	for _, name := range doc.Top {
		it, ok := items[name]
		if !ok {
			return nil, fmt.Errorf("top-level reference %q is undefined", name)
		}
		ex, ok := it.(*sme.Expression)
		if !ok {
			return nil, fmt.Errorf("top-level reference %q is not an expression", name)
		}
		top = append(top, ex)
	}

	return sme.NewGraph(top...)
}

// normalizeValue narrows YAML's decoded numeric types to float64 so they
// compare correctly against sme's rounding rule, leaving strings as-is.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return n
	}
}
