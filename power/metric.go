package power

import (
	"fmt"
	"strings"
)

// Metric selects how dynamic energy is accounted for in an estimate.
type Metric int

const (
	// Average weights every operation by the probability that it happens
	// under the assumed traffic pattern.
	Average Metric = iota

	// Max takes the most expensive operating mode of every component.
	Max
)

func (m Metric) String() string {
	switch m {
	case Average:
		return "average"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric converts "average"/"avg" or "max" into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average", "avg", "":
		return Average, nil
	case "max", "maximum":
		return Max, nil
	default:
		return Average, &ConfigurationError{
			Field:  "metric",
			Reason: fmt.Sprintf("unknown metric %q", s),
		}
	}
}

// Toggle returns the fraction of n bits that switch on one access: half of
// them for random data under Average, all of them under Max.
func (m Metric) Toggle(n float64) float64 {
	if m == Max {
		return n
	}

	return n / 2
}
