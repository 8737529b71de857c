package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gokando-sme/pkg/sme"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run the built-in heat-flow/water-flow analogy",
	Long: `demo builds the textbook heat-flow/water-flow pair in Go directly
(no YAML file needed) and runs it through Match with inference enabled, so
a caller can see the full pipeline's output without preparing a fixture.`,
	RunE: runDemo,
}

var demoInfer bool

func init() {
	demoCmd.Flags().BoolVar(&demoInfer, "infer", true, "run inference transfer after scoring")
}

// heatWaterDemo builds the base ("heat flows from the coffee because the
// coffee is hotter than the ice") and target ("water flows from the beaker
// to the vial") scenario. The target holds only the flow; the greater and
// cause structure is what inference transfer carries over from the base.
func heatWaterDemo() (base, target *sme.Graph, err error) {
	flow := sme.NewPredicate("flow", 2, sme.RelationPredicate)
	greater := sme.NewPredicate("greater", 2, sme.RelationPredicate)
	cause := sme.NewPredicate("cause", 2, sme.RelationPredicate)

	coffee := sme.NewEntity("coffee", sme.Attr{Name: "heat", Value: 90.0})
	ice := sme.NewEntity("ice", sme.Attr{Name: "heat", Value: 0.0})
	bFlow := sme.NewExpression(flow, coffee, ice)
	bGreater := sme.NewExpression(greater, coffee, ice)
	bCause := sme.NewExpression(cause, bGreater, bFlow)
	base, err = sme.NewGraph(bCause)
	if err != nil {
		return nil, nil, fmt.Errorf("build base graph: %w", err)
	}

	beaker := sme.NewEntity("beaker", sme.Attr{Name: "heat", Value: 90.0})
	vial := sme.NewEntity("vial", sme.Attr{Name: "heat", Value: 0.0})
	tFlow := sme.NewExpression(flow, beaker, vial)
	target, err = sme.NewGraph(tFlow)
	if err != nil {
		return nil, nil, fmt.Errorf("build target graph: %w", err)
	}

	return base, target, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	base, target, err := heatWaterDemo()
	if err != nil {
		return err
	}

	opts := []sme.MatchOption{sme.WithLogger(logger)}
	if demoInfer {
		opts = append(opts, sme.WithInference())
	}

	result, err := sme.Match(base, target, opts...)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	fmt.Println("heat-flow (base) -> water-flow (target)")
	printResult(result)
	return nil
}
