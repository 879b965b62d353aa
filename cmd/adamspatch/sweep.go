package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func sweepCmd(a *app) *cobra.Command {
	var (
		pf         problemFlags
		maxPatches int
		jobs       int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve for every patch count from 0 up to a maximum",
		Long: `Sweep solves the configured problem once for every patch count from 0 to
--max-patches, in parallel. Patch counts that can't be solved are reported
with their error instead of aborting the sweep; an interrupt stops it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problem := pf.apply(cmd, a.cfg.Problem())
			if !cmd.Flags().Changed("max-patches") {
				maxPatches = problem.Patches
			}
			if maxPatches < 0 {
				return fmt.Errorf("sweep: max patches must not be negative, got %d", maxPatches)
			}
			if jobs <= 0 {
				jobs = runtime.GOMAXPROCS(0)
			}
			p := problem.Problem()

			rows := make([]sweepRow, maxPatches+1)
			// Solver failures are recorded per row. Only cancellation stops the
			// sweep.
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for n := range rows {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					rows[n].Patches = n
					area, err := p.OptimizePatchArea(n)
					if err != nil {
						a.logger.Warn("no solution", "patches", n, "error", err)
						rows[n].Error = err.Error()
						return nil
					}
					rows[n].PatchArea = area
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return fmt.Errorf("sweep: %w", err)
			}

			r := sweepReport{
				Problem:   newProblemReport(problem),
				Solutions: rows,
			}
			return writeReport(cmd.OutOrStdout(), a.format, r)
		},
	}

	addProblemFlags(cmd, &pf)
	cmd.Flags().IntVar(&maxPatches, "max-patches", 0, "Largest patch count to solve for (default: the configured patch count)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of patch counts solved at once (default: GOMAXPROCS)")
	return cmd
}
