package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/gokando-sme/internal/graphyaml"
	"github.com/gitrdm/gokando-sme/pkg/sme"
)

var (
	matchBasePath      string
	matchTargetPath    string
	matchInfer         bool
	matchUnmatchedAttr []string
	matchTimeout       time.Duration
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "run one Match over a base and target graph loaded from YAML",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchBasePath, "base", "", "path to the base graph YAML file (required)")
	matchCmd.Flags().StringVar(&matchTargetPath, "target", "", "path to the target graph YAML file (required)")
	matchCmd.Flags().BoolVar(&matchInfer, "infer", false, "run inference transfer after scoring")
	matchCmd.Flags().StringSliceVar(&matchUnmatchedAttr, "unmatched-attr", nil, "entity attribute names to exclude from emap content comparison")
	matchCmd.Flags().DurationVar(&matchTimeout, "timeout", 30*time.Second, "cancellation deadline for the combiner stage")
	matchCmd.MarkFlagRequired("base")
	matchCmd.MarkFlagRequired("target")
}

func runMatch(cmd *cobra.Command, args []string) error {
	base, err := graphyaml.Load(matchBasePath)
	if err != nil {
		return err
	}
	target, err := graphyaml.Load(matchTargetPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), matchTimeout)
	defer cancel()

	unmatched := matchUnmatchedAttr
	if len(unmatched) == 0 && activeCfg != nil {
		unmatched = activeCfg.UnmatchedAttributes
	}

	opts := []sme.MatchOption{
		sme.WithLogger(logger),
		sme.WithContext(ctx),
		sme.WithUnmatchedAttributes(unmatched...),
	}
	if matchInfer {
		opts = append(opts, sme.WithInference())
	}

	result, err := sme.Match(base, target, opts...)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	printResult(result)
	return nil
}

func printResult(result *sme.Result) {
	if len(result.GMaps) == 0 {
		fmt.Println("no consistent mappings found")
		return
	}
	for i, g := range result.GMaps {
		fmt.Printf("GMap %d: score=%d emap_matches=%d hypotheses=%d roots=%d\n",
			i, g.Score, g.EmapMatches, len(g.MHs), len(g.Roots))
		if len(g.Transferred) > 0 {
			fmt.Printf("  transferred %d inference(s)\n", len(g.Transferred))
		}
	}
	logger.Info("printed match results", zap.Int("gmaps", len(result.GMaps)))
}
