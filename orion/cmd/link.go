package cmd

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/orion/link"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
	"github.com/spf13/cobra"
)

type linkOptions struct {
	flitWidth int
	ports     int
	vdd       float64
}

func (o *linkOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.flitWidth, "flit-width", 64, "number of wires per link")
	cmd.Flags().IntVar(&o.ports, "ports", 1, "number of links")
	cmd.Flags().Float64Var(&o.vdd, "vdd", 0,
		"supply voltage in volts, 0 for the nominal voltage of the node")
}

func newLinkCmd(s *settings) *cobra.Command {
	o := &linkOptions{}

	cmd := &cobra.Command{
		Use:   "link <length-um> <load>",
		Short: "Estimate the power and area of a link.",
		Long: `Estimate the power and area of the links of a router port. ` +
			`The length is in micrometers and the load is the switching ` +
			`activity of every wire, 1 meaning random data every cycle.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseFloatArg("length", args[0])
			if err != nil {
				return err
			}

			load, err := parseFloatArg("load", args[1])
			if err != nil {
				return err
			}

			res, err := s.estimateLink(o, length, load)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Link dynamic power is %g W\n", res.DynamicPower)
			fmt.Fprintf(out, "Link leakage power is %g W\n", res.LeakagePower)
			fmt.Fprintf(out, "Link power is %g W\n", res.TotalPower)
			fmt.Fprintf(out, "Link area is %g um^2\n",
				report.SquareMicrometers(res.Area))

			return nil
		},
	}

	o.addFlags(cmd)

	return cmd
}

func (s *settings) estimateLink(
	o *linkOptions,
	lengthMicrometers, load float64,
) (link.Result, error) {
	node, err := tech.ParseNodeSize(s.techNode)
	if err != nil {
		return link.Result{}, err
	}

	if err := link.NodeMustBeSupported(node); err != nil {
		return link.Result{}, err
	}

	p, err := s.profile()
	if err != nil {
		return link.Result{}, err
	}

	if err := link.MustBeSupported(p); err != nil {
		return link.Result{}, err
	}

	freq, err := s.frequency()
	if err != nil {
		return link.Result{}, err
	}

	spec, err := link.NewSpec(lengthMicrometers, o.flitWidth, o.ports)
	if err != nil {
		return link.Result{}, err
	}

	return link.Estimate(p, spec, link.Params{
		Freq: freq,
		Load: load,
		Vdd:  o.vdd,
	})
}

func parseFloatArg(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, usagef("%s must be a number, got %q", name, arg)
	}

	return v, nil
}
