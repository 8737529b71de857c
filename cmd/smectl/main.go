// Command smectl is a command-line front end over pkg/sme: it loads base
// and target knowledge graphs from a concrete YAML syntax (internal/graphyaml)
// and drives the five-stage matching pipeline.
//
// # File Index
//
//   - main.go  - entry point, rootCmd, global flags, logger lifecycle
//   - match.go - matchCmd: a single Match run over two YAML graphs
//   - demo.go  - demoCmd: a built-in heat-flow/water-flow analogy
//   - batch.go - batchCmd: concurrent Match over a manifest of graph pairs
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string
	logger     *zap.Logger
	runID      string
	activeCfg  *cliConfig
)

var rootCmd = &cobra.Command{
	Use:   "smectl",
	Short: "smectl drives the structure-mapping engine over YAML-described graphs",
	Long: `smectl is a command-line front end for the structure-mapping engine.

It loads base and target knowledge graphs from a small YAML syntax and runs
the engine's five-stage pipeline: hypothesis generation, structural
annotation, initial GMap construction, combination into maximal consistent
subsets, and merge-and-score — with optional inference transfer.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadCLIConfig(configPath)
		if err != nil {
			return err
		}
		activeCfg = cfg

		zapCfg := zap.NewProductionConfig()
		if verbose || cfg.LogLevel == "debug" {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		runID = uuid.NewString()
		logger = logger.With(zap.String("run_id", runID))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML file of default unmatched-attributes/log-level")
	rootCmd.AddCommand(matchCmd, demoCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
