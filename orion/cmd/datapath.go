package cmd

import (
	"github.com/sarchlab/orion/datapath"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
	"github.com/spf13/cobra"
)

func (s *settings) datapathParams(o *reportOptions) (*tech.Profile, datapath.Params, error) {
	p, err := s.profile()
	if err != nil {
		return nil, datapath.Params{}, err
	}

	freq, err := s.frequency()
	if err != nil {
		return nil, datapath.Params{}, err
	}

	return p, datapath.Params{
		Metric:     o.metric(),
		Load:       o.load,
		Freq:       freq,
		PrintDepth: o.depth,
	}, nil
}

func newALUCmd(s *settings) *cobra.Command {
	o := &reportOptions{}
	alu := datapath.ALU{}

	cmd := &cobra.Command{
		Use:   "alu [-m] [-d depth] [-l load] [--width bits]",
		Short: "Estimate the power and area of a media ALU.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.runDatapath(cmd, o, func(
				p *tech.Profile, params datapath.Params,
			) (*report.Report, error) {
				return alu.Estimate(p, params)
			})
		},
	}

	o.addFlags(cmd)
	cmd.Flags().IntVar(&alu.Width, "width", 64, "data path width in bits")

	return cmd
}

func newRegFileCmd(s *settings) *cobra.Command {
	o := &reportOptions{}
	rf := datapath.RegisterFile{}

	cmd := &cobra.Command{
		Use:   "regfile [-m] [-d depth] [-l load]",
		Short: "Estimate the power and area of a register file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.runDatapath(cmd, o, func(
				p *tech.Profile, params datapath.Params,
			) (*report.Report, error) {
				return rf.Estimate(p, params)
			})
		},
	}

	o.addFlags(cmd)
	cmd.Flags().IntVar(&rf.Registers, "registers", 32, "number of registers")
	cmd.Flags().IntVar(&rf.Width, "width", 64, "register width in bits")
	cmd.Flags().IntVar(&rf.ReadPorts, "read-ports", 2, "number of read ports")
	cmd.Flags().IntVar(&rf.WritePorts, "write-ports", 1, "number of write ports")

	return cmd
}

func newPermuCmd(s *settings) *cobra.Command {
	o := &reportOptions{}
	u := datapath.Permutation{}

	var kind string

	cmd := &cobra.Command{
		Use:   "permu [-m] [-d depth] [-l load] [--kind omega-flip|grp] [--width bits]",
		Short: "Estimate the switching power of a bit permutation unit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := datapath.ParsePermutationKind(kind)
			if err != nil {
				return usagef("invalid --kind %q: must be omega-flip or grp", kind)
			}

			u.Kind = k

			return s.runDatapath(cmd, o, func(
				p *tech.Profile, params datapath.Params,
			) (*report.Report, error) {
				return u.Estimate(p, params)
			})
		},
	}

	o.addFlags(cmd)
	cmd.Flags().StringVar(&kind, "kind", "omega-flip", "omega-flip or grp")
	cmd.Flags().IntVar(&u.Width, "width", 64, "data word width in bits")

	return cmd
}

func (s *settings) runDatapath(
	cmd *cobra.Command,
	o *reportOptions,
	estimate func(*tech.Profile, datapath.Params) (*report.Report, error),
) error {
	f, err := o.formatter()
	if err != nil {
		return err
	}

	p, params, err := s.datapathParams(o)
	if err != nil {
		return err
	}

	r, err := estimate(p, params)
	if err != nil {
		return err
	}

	return f.Format(cmd.OutOrStdout(), r)
}
