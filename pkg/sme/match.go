package sme

import "go.uber.org/zap"

// Result is the output of Match: the scored GMaps and the underlying
// structural annotation they were built from. Structure is exposed mainly
// for diagnostics and tests — callers driving a normal match only need
// GMaps.
type Result struct {
	GMaps     []*GMap
	Structure *MHStructure
}

// Match runs the full five-stage pipeline over base and target: rule-driven
// hypothesis generation, structural annotation, initial GMap construction,
// combination into maximal mutually consistent subsets, merging, and
// scoring — plus inference transfer when WithInference is passed. Scoring
// and inference fill their fields on the merged GMaps in place; Match itself
// holds no state across calls, so concurrent calls over disjoint graphs are
// safe.
//
// Empty results at any stage are valid: Match returns an empty GMap
// collection, not an error, when the inputs admit no mapping. Errors are
// rule failures and, when the context passed via WithContext is done before
// the combiner finishes, that context's error. Graph well-formedness is the
// caller's responsibility via NewGraph, which Match does not re-validate.
func Match(base, target *Graph, opts ...MatchOption) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	hypotheses, err := GenerateHypotheses(base, target, cfg.ruleset, cfg.logger)
	if err != nil {
		return nil, err
	}

	structure := BuildStructure(hypotheses)
	if len(hypotheses) == 0 {
		return &Result{Structure: structure}, nil
	}

	initial := BuildGMaps(structure)
	cfg.logger.Debug("gmap builder produced initial gmaps", zap.Int("count", len(initial)))
	if len(initial) == 0 {
		return &Result{Structure: structure}, nil
	}

	subsets, err := Combine(cfg.ctx, initial)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("combiner produced maximal consistent subsets", zap.Int("count", len(subsets)))

	merged := MergeAll(subsets)
	ScoreAll(merged, structure, cfg.unmatchedAttrs)

	if cfg.infer {
		InferAll(merged, base, cfg.logger)
	}

	cfg.logger.Info("match complete", zap.Int("gmaps", len(merged)))
	return &Result{GMaps: merged, Structure: structure}, nil
}
