package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/router"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	max   bool
	depth int
	load  float64
	plot  bool
	json  bool
}

func (o *reportOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.max, "max", "m", false,
		"report the worst-case energy instead of the average")
	cmd.Flags().IntVarP(&o.depth, "depth", "d", 0,
		"number of hierarchy levels to break out, 0 for the total only")
	cmd.Flags().Float64VarP(&o.load, "load", "l", 1, "traffic load")
	cmd.Flags().BoolVarP(&o.plot, "plot", "p", false,
		"print tab-separated columns for plotting")
	cmd.Flags().BoolVar(&o.json, "json", false, "print JSON")
}

func (o *reportOptions) metric() power.Metric {
	if o.max {
		return power.Max
	}

	return power.Average
}

// formatter checks the report flags and returns the formatter they select.
func (o *reportOptions) formatter() (report.Formatter, error) {
	if o.depth < 0 {
		return nil, usagef("--depth must not be negative, got %d", o.depth)
	}

	if o.load < 0 {
		return nil, usagef("--load must not be negative, got %g", o.load)
	}

	switch {
	case o.plot && o.json:
		return nil, usagef("--plot and --json cannot be used together")
	case o.plot:
		return report.PlotFormatter{}, nil
	case o.json:
		return report.JSONFormatter{}, nil
	default:
		return report.TextFormatter{}, nil
	}
}

func newRouterCmd(s *settings) *cobra.Command {
	o := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "router [-p] [-m] [-d depth] [-l load] <router-name>",
		Short: "Estimate the power and area of a router.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.formatter()
			if err != nil {
				return err
			}

			freq, err := s.frequency()
			if err != nil {
				return err
			}

			e, err := s.estimator(cmd)
			if err != nil {
				return err
			}

			r, err := e.Estimate(args[0], router.Params{
				Metric:     o.metric(),
				Load:       o.load,
				Freq:       freq,
				PrintDepth: o.depth,
			})
			if err != nil {
				return err
			}

			return f.Format(cmd.OutOrStdout(), r)
		},
	}

	o.addFlags(cmd)

	return cmd
}

func newRoutersCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "routers",
		Short: "List the routers that can be estimated.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.catalog()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "name\tports\tflit width\tvcs\tbuffer depth\tcrossbar\t")

			for _, name := range c.Names() {
				spec, err := c.Lookup(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(tw, "%s\t%dx%d\t%d\t%d\t%d\t%s\t\n",
					name,
					spec.InPorts, spec.OutPorts,
					spec.FlitWidth,
					spec.VCs,
					spec.InputBufferDepth,
					spec.Crossbar)
			}

			return tw.Flush()
		},
	}
}
