package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func solveCmd(a *app) *cobra.Command {
	var pf problemFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the patch area that fills the region and print the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problem := pf.apply(cmd, a.cfg.Problem())
			logger := a.logger.With("patches", problem.Patches)
			logger.Debug("solving",
				"xmin", problem.XMin,
				"xmax", problem.XMax,
				"separator_width", problem.SeparatorWidth,
			)

			start := time.Now()
			sol, err := problem.Problem().Solve(problem.Patches)
			if err != nil {
				logger.Error("solve failed", "error", err)
				return fmt.Errorf("solve: %w", err)
			}
			logger.Info("solved", "patch_area", sol.PatchArea, "duration", time.Since(start))

			return writeReport(cmd.OutOrStdout(), a.format, newLayoutReport(problem, problem.Patches, sol.Layout))
		},
	}

	addProblemFlags(cmd, &pf)
	return cmd
}
