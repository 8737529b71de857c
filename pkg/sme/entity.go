package sme

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Attr is a single named attribute on an Entity's content record. Value
// holds either a float64 or a string; the zero Attr has neither.
type Attr struct {
	Name  string
	Value any
}

// Entity is an opaque leaf node in a knowledge graph: an identity plus an
// ordered content record (a name -> value mapping, numeric or symbolic).
// Entities are immutable once constructed.
type Entity struct {
	id      uuid.UUID
	name    string
	content []Attr
}

// NewEntity constructs an Entity with the given display name and content
// attributes, in the order given. Attribute order is kept by Content();
// equality (see EqualContent) treats the content as a mapping.
func NewEntity(name string, content ...Attr) *Entity {
	cp := make([]Attr, len(content))
	copy(cp, content)
	return &Entity{id: uuid.New(), name: name, content: cp}
}

// ID returns the entity's stable identity, suitable as a map key across
// pipeline stages.
func (e *Entity) ID() uuid.UUID { return e.id }

// Name returns the entity's display name.
func (e *Entity) Name() string { return e.name }

// Content returns the entity's attribute list in declaration order.
func (e *Entity) Content() []Attr {
	cp := make([]Attr, len(e.content))
	copy(cp, e.content)
	return cp
}

func (e *Entity) String() string { return e.name }

// attrMap returns the entity's content as a name -> value map with the
// given attribute names excluded, for use in EqualContent.
func (e *Entity) attrMap(unmatched map[string]bool) map[string]any {
	m := make(map[string]any, len(e.content))
	for _, a := range e.content {
		if unmatched[a.Name] {
			continue
		}
		m[a.Name] = a.Value
	}
	return m
}

// EqualContent reports whether two entities match by content per spec §3:
// their attribute-name sets (after dropping unmatchedAttrs) must be equal,
// and each pair of values must be equal — numeric values compared after
// rounding to two decimal places, half-up.
func EqualContent(a, b *Entity, unmatchedAttrs []string) bool {
	unmatched := make(map[string]bool, len(unmatchedAttrs))
	for _, n := range unmatchedAttrs {
		unmatched[n] = true
	}

	am, bm := a.attrMap(unmatched), b.attrMap(unmatched)
	if len(am) != len(bm) {
		return false
	}

	names := make([]string, 0, len(am))
	for n := range am {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		bv, ok := bm[n]
		if !ok {
			return false
		}
		if !valuesEqual(am[n], bv) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	af, aIsNum := toFloat(a)
	bf, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		return roundHalfUp2(af) == roundHalfUp2(bf)
	}
	if aIsNum != bIsNum {
		return false
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// roundHalfUp2 rounds to two decimal places, half away from zero. The
// scaling by 100 is done on f's shortest decimal form, so a value such as
// 1.005 (stored as 1.00499999…) still rounds up to 1.01.
func roundHalfUp2(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	scaled, _ := strconv.ParseFloat(s[:i]+"e"+strconv.Itoa(exp+2), 64)
	if scaled >= 0 {
		return math.Floor(scaled+0.5) / 100
	}
	return math.Ceil(scaled-0.5) / 100
}
