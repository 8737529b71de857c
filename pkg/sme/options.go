package sme

import (
	"context"

	"go.uber.org/zap"
)

// matchConfig holds everything Match threads through the pipeline. It is
// built once per call from MatchOptions and never mutated afterward — the
// §5 "one configurable datum" (unmatched-attributes) lives here as an
// explicit field rather than a package-level variable.
type matchConfig struct {
	ruleset        Ruleset
	unmatchedAttrs []string
	logger         *zap.Logger
	infer          bool
	ctx            context.Context
}

func defaultConfig() *matchConfig {
	return &matchConfig{
		ruleset: DefaultRuleset(),
		logger:  zap.NewNop(),
		ctx:     context.Background(),
	}
}

// MatchOption configures a single Match call.
type MatchOption func(*matchConfig)

// WithRuleset overrides the default literal-similarity ruleset.
func WithRuleset(rs Ruleset) MatchOption {
	return func(c *matchConfig) { c.ruleset = rs }
}

// WithUnmatchedAttributes names entity attributes to drop before emap
// content comparison.
func WithUnmatchedAttributes(names ...string) MatchOption {
	return func(c *matchConfig) { c.unmatchedAttrs = append([]string(nil), names...) }
}

// WithLogger attaches a structured logger; Match emits one record per
// pipeline stage boundary plus a Warn on every suppressed inference abort.
// A nil logger (the default) discards all of it.
func WithLogger(logger *zap.Logger) MatchOption {
	return func(c *matchConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithInference enables the optional inference-transfer stage after
// scoring. Disabled by default since it is the one optional stage of the
// pipeline.
func WithInference() MatchOption {
	return func(c *matchConfig) { c.infer = true }
}

// WithContext threads a cancellation context to the combiner, the only
// stage with super-linear cost.
func WithContext(ctx context.Context) MatchOption {
	return func(c *matchConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
