package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gokando-sme/internal/batchrun"
	"github.com/gitrdm/gokando-sme/internal/graphyaml"
	"github.com/gitrdm/gokando-sme/pkg/sme"
)

var (
	batchManifestPath string
	batchWorkers      int
	batchInfer        bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "run many Match invocations from a manifest, concurrently",
	Long: `batch reads a manifest of named {base, target} YAML pairs and runs
one Match per pair across a fixed pool of goroutines (internal/batchrun).
Match invocations over disjoint graphs are independent by construction, so
this is a direct parallelization of repeated "smectl match" runs.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchManifestPath, "manifest", "", "path to the batch manifest YAML file (required)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "number of concurrent Match workers")
	batchCmd.Flags().BoolVar(&batchInfer, "infer", false, "run inference transfer on every job")
	batchCmd.MarkFlagRequired("manifest")
}

// manifestEntry names one base/target pair within a batch manifest.
type manifestEntry struct {
	Name   string `yaml:"name"`
	Base   string `yaml:"base"`
	Target string `yaml:"target"`
}

type manifest struct {
	Pairs []manifestEntry `yaml:"pairs"`
}

func loadManifest(path string) (*manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(batchManifestPath)
	if err != nil {
		return err
	}

	jobs := make([]batchrun.Job, 0, len(m.Pairs))
	for _, entry := range m.Pairs {
		base, err := graphyaml.Load(entry.Base)
		if err != nil {
			return fmt.Errorf("pair %q: %w", entry.Name, err)
		}
		target, err := graphyaml.Load(entry.Target)
		if err != nil {
			return fmt.Errorf("pair %q: %w", entry.Name, err)
		}
		opts := []sme.MatchOption{sme.WithLogger(logger)}
		if batchInfer {
			opts = append(opts, sme.WithInference())
		}
		jobs = append(jobs, batchrun.Job{Name: entry.Name, Base: base, Target: target, Opts: opts})
	}

	pool := batchrun.NewPool(batchWorkers)
	results, stats := pool.Run(context.Background(), jobs)

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%s: error: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("%s: %d GMap(s)\n", r.Name, len(r.Result.GMaps))
	}
	logger.Info("batch complete",
		zap.Int64("submitted", stats.Submitted),
		zap.Int64("completed", stats.Completed),
		zap.Int64("failed", stats.Failed))
	return nil
}
