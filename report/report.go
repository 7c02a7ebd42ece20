// Package report holds the hierarchical result of an estimate and renders it
// as text, plot-friendly columns or JSON.
package report

import (
	"github.com/rs/xid"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

// Report is the outcome of one estimation run. It owns its tree and is never
// changed after it is created.
type Report struct {
	ID         string
	Title      string
	Tech       tech.Node
	Freq       power.Freq
	Metric     power.Metric
	Load       float64
	PrintDepth int
	Root       *Node
}

// New creates a report around a result tree.
func New(
	title string,
	node tech.Node,
	freq power.Freq,
	metric power.Metric,
	load float64,
	printDepth int,
	root *Node,
) *Report {
	if root == nil {
		panic("report requires a root node")
	}

	return &Report{
		ID:         xid.New().String(),
		Title:      title,
		Tech:       node,
		Freq:       freq,
		Metric:     metric,
		Load:       load,
		PrintDepth: printDepth,
		Root:       root,
	}
}

// Total returns the sum over the whole tree, independent of the print depth.
func (r *Report) Total() power.Result {
	return r.Root.Total()
}

// DynamicPower returns the total dynamic power in watts.
func (r *Report) DynamicPower() float64 {
	return r.Total().DynamicPower(r.Freq)
}

// LeakagePower returns the total leakage power in watts.
func (r *Report) LeakagePower() float64 {
	return r.Total().LeakagePower
}

// TotalPower returns the dynamic plus leakage power in watts.
func (r *Report) TotalPower() float64 {
	return r.Total().TotalPower(r.Freq)
}

// Area returns the total area in square meters.
func (r *Report) Area() float64 {
	return r.Total().Area
}

// Breakdown returns the tree cut at the print depth of the report.
func (r *Report) Breakdown() *Node {
	return r.Root.Truncate(r.PrintDepth)
}

// LineItem is one row of a rendered report.
type LineItem struct {
	Path         string
	Level        int
	DynamicPower float64
	LeakagePower float64
	TotalPower   float64
	Area         float64
}

// LineItems flattens the breakdown into rows, in depth-first order.
func (r *Report) LineItems() []LineItem {
	var items []LineItem

	r.Breakdown().Walk(func(path string, level int, n *Node) {
		t := n.Total()
		items = append(items, LineItem{
			Path:         path,
			Level:        level,
			DynamicPower: t.DynamicPower(r.Freq),
			LeakagePower: t.LeakagePower,
			TotalPower:   t.TotalPower(r.Freq),
			Area:         t.Area,
		})
	})

	return items
}
