package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func layoutCmd(a *app) *cobra.Command {
	var (
		pf        problemFlags
		patchArea float64
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Place patches of a given area and report the area they cover",
		Long: `Layout places patches of the given area from left to right, with a separator
between neighbouring patches, and reports how much area that consumes. Unlike
solve, it doesn't adjust the patch area to fill the region.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problem := pf.apply(cmd, a.cfg.Problem())
			a.logger.Debug("placing patches",
				"patches", problem.Patches,
				"patch_area", patchArea,
				"separator_width", problem.SeparatorWidth,
			)

			layout, err := problem.Problem().CoveredArea(patchArea, problem.Patches)
			if err != nil {
				a.logger.Error("layout failed", "error", err)
				return fmt.Errorf("layout: %w", err)
			}

			return writeReport(cmd.OutOrStdout(), a.format, newLayoutReport(problem, problem.Patches, layout))
		},
	}

	addProblemFlags(cmd, &pf)
	cmd.Flags().Float64Var(&patchArea, "patch-area", 0, "Area of each patch")
	_ = cmd.MarkFlagRequired("patch-area")
	return cmd
}
