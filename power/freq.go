package power

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time between two consecutive clock edges in seconds.
func (f Freq) Period() float64 {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return 1.0 / float64(f)
}

// Power converts an energy spent every cycle to the power drawn at this
// frequency.
func (f Freq) Power(energyPerCycle float64) float64 {
	return energyPerCycle * float64(f)
}

// String prints the frequency with the largest unit that keeps the value at
// or above 1.
func (f Freq) String() string {
	switch {
	case f >= GHz:
		return strconv.FormatFloat(float64(f/GHz), 'g', -1, 64) + "GHz"
	case f >= MHz:
		return strconv.FormatFloat(float64(f/MHz), 'g', -1, 64) + "MHz"
	case f >= KHz:
		return strconv.FormatFloat(float64(f/KHz), 'g', -1, 64) + "KHz"
	default:
		return strconv.FormatFloat(float64(f), 'g', -1, 64) + "Hz"
	}
}

// ParseFreq parses strings like "1e9", "1GHz", "800MHz" or "2.5 GHz".
func ParseFreq(s string) (Freq, error) {
	str := strings.TrimSpace(s)
	unit := Hz

	lower := strings.ToLower(str)
	for _, u := range []struct {
		suffix string
		unit   Freq
	}{
		{"ghz", GHz},
		{"mhz", MHz},
		{"khz", KHz},
		{"hz", Hz},
	} {
		if strings.HasSuffix(lower, u.suffix) {
			unit = u.unit
			str = strings.TrimSpace(str[:len(str)-len(u.suffix)])

			break
		}
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, &ConfigurationError{
			Field:  "frequency",
			Reason: fmt.Sprintf("cannot parse %q", s),
		}
	}

	f := Freq(v) * unit
	if f <= 0 {
		return 0, &ConfigurationError{
			Field:  "frequency",
			Reason: "must be positive",
		}
	}

	return f, nil
}
