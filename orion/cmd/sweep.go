package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/sarchlab/orion/link"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/router"
	"github.com/sarchlab/orion/sweep"
	"github.com/spf13/cobra"
)

func newSweepCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate many design points in parallel.",
	}

	cmd.PersistentFlags().Int("workers", 0,
		"number of parallel workers, 0 for one per CPU")
	cmd.PersistentFlags().Bool("csv", false, "write the table as CSV")

	cmd.AddCommand(newSweepLinkCmd(s), newSweepRouterCmd(s))

	return cmd
}

// failures prints one line per failed point to stderr. The returned error
// keeps the kind of the first failure so that it selects the exit code.
func failures[T any](
	cmd *cobra.Command,
	outcomes []sweep.Outcome[T],
	point func(i int) string,
) error {
	var first error

	failed := 0

	for _, o := range outcomes {
		if o.Err == nil {
			continue
		}

		if first == nil {
			first = o.Err
		}

		failed++
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", point(o.Index), o.Err)
	}

	if first == nil {
		return nil
	}

	return fmt.Errorf("%d of %d points failed: %w", failed, len(outcomes), first)
}

type linkRow struct {
	Length float64 `csv:"length_um"`
	Load   float64 `csv:"load"`
	Power  float64 `csv:"power_w"`
	Area   float64 `csv:"area_um2"`
}

type routerRow struct {
	Router  string  `csv:"router"`
	Load    float64 `csv:"load"`
	Dynamic float64 `csv:"dynamic_w"`
	Leakage float64 `csv:"leakage_w"`
	Total   float64 `csv:"total_w"`
	Area    float64 `csv:"area_um2"`
}

func wantCSV(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("csv")
	return v
}

func writeCSV(w io.Writer, rows interface{}) error {
	return gocsv.Marshal(rows, w)
}

// writeLinkRows prints nothing when no point succeeded.
func writeLinkRows(cmd *cobra.Command, rows []*linkRow) error {
	if len(rows) == 0 {
		return nil
	}

	if wantCSV(cmd) {
		return writeCSV(cmd.OutOrStdout(), &rows)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "length (um)\tload\tpower (W)\tarea (um^2)\t")

	for _, r := range rows {
		fmt.Fprintf(tw, "%g\t%g\t%.4g\t%.4g\t\n",
			r.Length, r.Load, r.Power, r.Area)
	}

	return tw.Flush()
}

func writeRouterRows(cmd *cobra.Command, rows []*routerRow) error {
	if len(rows) == 0 {
		return nil
	}

	if wantCSV(cmd) {
		return writeCSV(cmd.OutOrStdout(), &rows)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw,
		"router\tload\tdynamic (W)\tleakage (W)\ttotal (W)\tarea (um^2)\t")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%g\t%.4g\t%.4g\t%.4g\t%.4g\t\n",
			r.Router, r.Load, r.Dynamic, r.Leakage, r.Total, r.Area)
	}

	return tw.Flush()
}

func newSweepLinkCmd(s *settings) *cobra.Command {
	o := &linkOptions{}

	var lengths, loads []float64

	cmd := &cobra.Command{
		Use:   "link --lengths a,b,... --loads x,y,...",
		Short: "Estimate links over lengths and loads.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			points := sweep.Grid(lengths, loads)

			jobs := make([]sweep.Job[link.Result], len(points))
			for i, pt := range points {
				pt := pt
				jobs[i] = func() (link.Result, error) {
					return s.estimateLink(o, pt.X, pt.Y)
				}
			}

			outcomes := sweep.Run(jobs, workers)

			var rows []*linkRow
			for i, out := range outcomes {
				if out.Err != nil {
					continue
				}

				rows = append(rows, &linkRow{
					Length: points[i].X,
					Load:   points[i].Y,
					Power:  out.Value.TotalPower,
					Area:   report.SquareMicrometers(out.Value.Area),
				})
			}

			if err := writeLinkRows(cmd, rows); err != nil {
				return err
			}

			return failures(cmd, outcomes, func(i int) string {
				return fmt.Sprintf("length %g um, load %g", points[i].X, points[i].Y)
			})
		},
	}

	o.addFlags(cmd)
	cmd.Flags().Float64SliceVar(&lengths, "lengths", []float64{1000},
		"link lengths in micrometers")
	cmd.Flags().Float64SliceVar(&loads, "loads", []float64{1}, "loads")

	return cmd
}

func newSweepRouterCmd(s *settings) *cobra.Command {
	var (
		names []string
		loads []float64
		worst bool
	)

	cmd := &cobra.Command{
		Use:   "router [--names a,b,...] --loads x,y,...",
		Short: "Estimate routers over loads. All routers by default.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workers, _ := cmd.Flags().GetInt("workers")

			freq, err := s.frequency()
			if err != nil {
				return err
			}

			e, err := s.estimator(cmd)
			if err != nil {
				return err
			}

			if len(names) == 0 {
				c, err := s.catalog()
				if err != nil {
					return err
				}

				names = c.Names()
			}

			metric := (&reportOptions{max: worst}).metric()
			points := sweep.Grid(names, loads)

			jobs := make([]sweep.Job[*report.Report], len(points))
			for i, pt := range points {
				pt := pt
				jobs[i] = func() (*report.Report, error) {
					return e.Estimate(pt.X, router.Params{
						Metric: metric,
						Load:   pt.Y,
						Freq:   freq,
					})
				}
			}

			outcomes := sweep.Run(jobs, workers)

			var rows []*routerRow
			for i, out := range outcomes {
				if out.Err != nil {
					continue
				}

				r := out.Value
				rows = append(rows, &routerRow{
					Router:  points[i].X,
					Load:    points[i].Y,
					Dynamic: r.DynamicPower(),
					Leakage: r.LeakagePower(),
					Total:   r.TotalPower(),
					Area:    report.SquareMicrometers(r.Area()),
				})
			}

			if err := writeRouterRows(cmd, rows); err != nil {
				return err
			}

			return failures(cmd, outcomes, func(i int) string {
				return fmt.Sprintf("router %s, load %g", points[i].X, points[i].Y)
			})
		},
	}

	cmd.Flags().StringSliceVar(&names, "names", nil, "router names")
	cmd.Flags().Float64SliceVar(&loads, "loads", []float64{1}, "loads")
	cmd.Flags().BoolVarP(&worst, "max", "m", false,
		"report the worst-case energy instead of the average")

	return cmd
}
