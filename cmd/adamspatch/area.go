package main

import (
	"github.com/spf13/cobra"
)

func areaCmd(a *app) *cobra.Command {
	var pf problemFlags

	cmd := &cobra.Command{
		Use:   "area",
		Short: "Print the total area of the region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problem := pf.apply(cmd, a.cfg.Problem())
			if err := problem.Problem().Validate(0); err != nil {
				return err
			}
			r := newProblemReport(problem)
			a.logger.Debug("computed area", "total_area", r.TotalArea)
			return writeReport(cmd.OutOrStdout(), a.format, r)
		},
	}

	addProblemFlags(cmd, &pf)
	return cmd
}
