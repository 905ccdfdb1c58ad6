package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-specfun/sf/contrib/algo"
)

// shapeFlag is the --a flag shared by eval and grid.
type shapeFlag struct {
	a float64
}

func (s *shapeFlag) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.a, "a", math.NaN(), "shape parameter a for gammp, gammq and invgammp")
}

// check verifies that --a was given exactly when f needs it.
func (s *shapeFlag) check(cmd *cobra.Command, f function) error {
	set := cmd.Flags().Changed("a")
	switch {
	case f.Shape && !set:
		return fmt.Errorf("%s needs the shape parameter --a", f.Name)
	case !f.Shape && set:
		return fmt.Errorf("%s does not take --a", f.Name)
	}
	return nil
}

func completeFunction(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return functionNames(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func newEvalCmd(a *app) *cobra.Command {
	var shape shapeFlag
	cmd := &cobra.Command{
		Use:               "eval [--a A] <function> <x>...",
		Short:             "Evaluate a function at the given points",
		Example:           "  sfeval eval erfcx 0.1 -2\n  sfeval eval --a 3 invgammp 0.5 0.99",
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completeFunction,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookup(args[0])
			if err != nil {
				return err
			}
			if err := shape.check(cmd, f); err != nil {
				return err
			}
			xs, err := parsePoints(args[1:])
			if err != nil {
				return err
			}
			ys := make([]float64, len(xs))
			algo.Transform64x2(shape.a, xs, ys, f.eval)
			a.log.Debug("evaluated", "function", f.Name, "points", len(xs))
			return a.write(cmd.OutOrStdout(), newResult(f, shape.a, xs, ys))
		},
	}
	shape.register(cmd)
	// Flag parsing stops at the function name; points such as -3 must not
	// be read as shorthand flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// parsePoints parses each argument as a float64. "inf", "-inf" and "nan"
// are accepted.
func parsePoints(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", s, err)
		}
		xs[i] = v
	}
	return xs, nil
}
