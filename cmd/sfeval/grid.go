package main

import (
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-specfun/sf"
	"github.com/ajroetker/go-specfun/sf/contrib/algo"
	"github.com/ajroetker/go-specfun/sf/contrib/workerpool"
)

func newGridCmd(a *app) *cobra.Command {
	var (
		shape          shapeFlag
		from, to, step float64
		workers        int
	)
	cmd := &cobra.Command{
		Use:               "grid <function>",
		Short:             "Evaluate a function on an evenly spaced grid",
		Example:           "  sfeval grid erfcx --from -3 --to 3 --step 0.001 --workers 8",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFunction,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookup(args[0])
			if err != nil {
				return err
			}
			if err := shape.check(cmd, f); err != nil {
				return err
			}
			xs, err := algo.Grid(from, to, step)
			if err != nil {
				return err
			}

			pool := workerpool.New(workers)
			defer pool.Close()
			a.log.Debug("grid",
				"function", f.Name,
				"points", len(xs),
				"workers", pool.NumWorkers(),
				"dispatch", sf.CurrentName())

			start := time.Now()
			ys := make([]float64, len(xs))
			algo.ParallelTransform64x2(pool, shape.a, xs, ys, f.eval)
			elapsed := time.Since(start)
			a.log.Debug("grid done", "elapsed", elapsed)

			if a.verbose {
				p := message.NewPrinter(language.English)
				p.Fprintf(cmd.ErrOrStderr(), "evaluated %d points of %s in %v\n", len(xs), f.Name, elapsed)
			}
			return a.write(cmd.OutOrStdout(), newResult(f, shape.a, xs, ys))
		},
	}
	shape.register(cmd)
	cmd.Flags().Float64Var(&from, "from", -5, "first grid point")
	cmd.Flags().Float64Var(&to, "to", 5, "last grid point (inclusive when reached)")
	cmd.Flags().Float64Var(&step, "step", 0.5, "grid spacing")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	return cmd
}
