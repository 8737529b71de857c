// Package sme implements a Structure Mapping Engine: given a base and a
// target knowledge graph of typed entities and nested predicate
// expressions, it discovers the maximal analogical mappings between them —
// consistent alignments of predicates and their arguments that preserve
// relational structure.
//
// The engine is a straight five-stage pipeline, each stage pure and
// producing immutable data for the next:
//
//  1. rules:      match-hypothesis generation from filter/intern rules
//  2. structure:  emap/nogood/children annotation, propagated upward
//  3. gmap:       initial GMap construction from consistent hypothesis roots
//  4. combiner:   enumeration of maximal mutually consistent GMap sets
//  5. merger + scorer (+ optional inference): one scored GMap per set
//
// Entry point is Match. Hypotheses and structural records are not changed
// once BuildStructure returns, and the merger builds fresh GMaps. The scorer
// and the optional inference stage do not return copies: they fill Score,
// EmapMatches, Inferences and Transferred on those merged GMaps in place.
package sme
