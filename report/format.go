package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/syifan/goseth"
)

// SquareMicrometers converts an area in square meters to square micrometers.
func SquareMicrometers(area float64) float64 {
	return area * 1e12
}

// A Formatter renders a report.
type Formatter interface {
	Format(w io.Writer, r *Report) error
}

// TextFormatter renders an indented, human-readable table.
type TextFormatter struct{}

// Format writes the report.
func (TextFormatter) Format(w io.Writer, r *Report) error {
	_, err := fmt.Fprintf(w,
		"%s (%s, %s, load %g, %s energy)\n",
		r.Title, r.Tech, r.Freq, r.Load, r.Metric)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "component\tdynamic (W)\tleakage (W)\ttotal (W)\tarea (um^2)\t")

	for _, item := range r.LineItems() {
		name := item.Path
		if item.Level > 0 {
			name = strings.Repeat("  ", item.Level) +
				ParseName(item.Path).Tokens[item.Level].String()
		}

		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t\n",
			name,
			item.DynamicPower,
			item.LeakagePower,
			item.TotalPower,
			SquareMicrometers(item.Area))
	}

	return tw.Flush()
}

// String prints the token the way it was parsed.
func (t NameToken) String() string {
	s := t.ElemName
	for _, i := range t.Index {
		s = IndexedName(s, i)
	}

	return s
}

// PlotFormatter writes one tab-separated row per line item with a commented
// header, which plotting tools can read directly.
type PlotFormatter struct{}

// Format writes the report.
func (PlotFormatter) Format(w io.Writer, r *Report) error {
	_, err := fmt.Fprintf(w,
		"# %s %s %s load=%g metric=%s\n"+
			"# name\tdynamic_w\tleakage_w\ttotal_w\tarea_um2\n",
		r.Title, r.Tech, r.Freq, r.Load, r.Metric)
	if err != nil {
		return err
	}

	for _, item := range r.LineItems() {
		_, err = fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n",
			item.Path,
			item.DynamicPower,
			item.LeakagePower,
			item.TotalPower,
			SquareMicrometers(item.Area))
		if err != nil {
			return err
		}
	}

	return nil
}

// JSONFormatter serializes the report with its line items.
type JSONFormatter struct{}

type jsonReport struct {
	ID         string
	Title      string
	Tech       string
	Freq       float64
	Metric     string
	Load       float64
	PrintDepth int
	LineItems  []LineItem
}

// Format writes the report.
func (JSONFormatter) Format(w io.Writer, r *Report) error {
	doc := &jsonReport{
		ID:         r.ID,
		Title:      r.Title,
		Tech:       r.Tech.String(),
		Freq:       float64(r.Freq),
		Metric:     r.Metric.String(),
		Load:       r.Load,
		PrintDepth: r.PrintDepth,
		LineItems:  r.LineItems(),
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(doc)
	serializer.SetMaxDepth(4)

	return serializer.Serialize(w)
}
