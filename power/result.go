package power

// Result is the estimate of a single component or of a group of components.
//
// DynamicEnergy is the switching energy spent per clock cycle, already scaled
// by activity. LeakagePower is drawn continuously whether or not the
// component is used. Area is in square meters.
type Result struct {
	DynamicEnergy float64
	LeakagePower  float64
	Area          float64
}

// Add returns the element-wise sum of two results. Area is not shared
// between components.
func (r Result) Add(o Result) Result {
	return Result{
		DynamicEnergy: r.DynamicEnergy + o.DynamicEnergy,
		LeakagePower:  r.LeakagePower + o.LeakagePower,
		Area:          r.Area + o.Area,
	}
}

// Scale multiplies the dynamic energy by the given activity. Leakage and
// area do not depend on activity.
func (r Result) Scale(activity float64) Result {
	r.DynamicEnergy *= activity
	return r
}

// Times replicates the component n times.
func (r Result) Times(n float64) Result {
	return Result{
		DynamicEnergy: r.DynamicEnergy * n,
		LeakagePower:  r.LeakagePower * n,
		Area:          r.Area * n,
	}
}

// DynamicPower is the switching power at the given frequency.
func (r Result) DynamicPower(f Freq) float64 {
	return f.Power(r.DynamicEnergy)
}

// TotalPower is the dynamic plus leakage power at the given frequency.
func (r Result) TotalPower(f Freq) float64 {
	return r.DynamicPower(f) + r.LeakagePower
}

// IsZero tells if the result carries no energy, power or area.
func (r Result) IsZero() bool {
	return r == Result{}
}
