package main

import (
	"github.com/adamspatch/patch/internal/config"
	"github.com/spf13/cobra"
)

// problemFlags lets flags override the configured problem. Only flags that
// were given on the command line are applied.
type problemFlags struct {
	xmin           float64
	xmax           float64
	patches        int
	separatorWidth float64
	upper          []float64
	lower          []float64
	accuracy       float64
}

func addProblemFlags(cmd *cobra.Command, f *problemFlags) {
	flags := cmd.Flags()
	flags.Float64Var(&f.xmin, "xmin", config.DefaultXMin, "Left end of the region")
	flags.Float64Var(&f.xmax, "xmax", config.DefaultXMax, "Right end of the region")
	flags.IntVarP(&f.patches, "patches", "n", config.DefaultPatches, "Number of patches")
	flags.Float64VarP(&f.separatorWidth, "separator-width", "w", config.DefaultSeparatorWidth, "Width of each separator")
	flags.Float64SliceVar(&f.upper, "upper", config.DefaultUpper(), "Coefficients of the upper curve, constant term first")
	flags.Float64SliceVar(&f.lower, "lower", config.DefaultLower(), "Coefficients of the lower curve, constant term first")
	flags.Float64Var(&f.accuracy, "accuracy", config.DefaultAccuracy, "Absolute accuracy of areas and positions")
}

func (f *problemFlags) apply(cmd *cobra.Command, base config.ProblemConfig) config.ProblemConfig {
	changed := cmd.Flags().Changed
	p := base
	if changed("xmin") {
		p.XMin = f.xmin
	}
	if changed("xmax") {
		p.XMax = f.xmax
	}
	if changed("patches") {
		p.Patches = f.patches
	}
	if changed("separator-width") {
		p.SeparatorWidth = f.separatorWidth
	}
	if changed("upper") {
		p.Upper = f.upper
	}
	if changed("lower") {
		p.Lower = f.lower
	}
	if changed("accuracy") {
		p.Accuracy = f.accuracy
	}
	return p
}
