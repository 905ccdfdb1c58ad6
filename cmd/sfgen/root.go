package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-specfun/sf/contrib/workerpool"
)

func newRootCmd() *cobra.Command {
	var (
		out     string
		digits  int
		workers int
	)
	cmd := &cobra.Command{
		Use:           "sfgen",
		Short:         "Regenerate the Faddeeva interpolation tables",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if digits < minDigits {
				return fmt.Errorf("--digits %d is below the minimum of %d", digits, minDigits)
			}
			pool := workerpool.New(workers)
			defer pool.Close()

			start := time.Now()
			g := newGenerator(int32(digits))
			tables := []table{
				g.build(pool, "imw", "ImWOfX", g.imw),
				g.build(pool, "erfcx", "Erfcx", g.erfcx),
			}
			src, err := emit(tables)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if _, err := w.Write(src); err != nil {
				return err
			}
			if out != "-" {
				cmd.PrintErrf("Wrote %s: %d panels per table at %d digits in %v\n",
					out, panelCount, digits, time.Since(start).Round(time.Millisecond))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "tables_gen.go", `output file, or "-" for stdout`)
	cmd.Flags().IntVar(&digits, "digits", 150, "decimal places carried by the reference arithmetic")
	cmd.Flags().IntVar(&workers, "workers", 0, "panels fitted in parallel (0 = GOMAXPROCS)")
	return cmd
}
