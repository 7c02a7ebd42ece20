package hooking

import (
	"sort"
	"sync"
)

// Tally counts the invocations of every position and adds up the energy of
// the line items announced there.
type Tally struct {
	lock   sync.Mutex
	count  map[string]uint64
	energy map[string]float64
}

// NewTally creates an empty Tally.
func NewTally() *Tally {
	return &Tally{
		count:  make(map[string]uint64),
		energy: make(map[string]float64),
	}
}

// Func records the invocation.
func (t *Tally) Func(ctx HookCtx) {
	if ctx.Pos == nil {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.count[ctx.Pos.Name]++
	t.energy[ctx.Pos.Name] += ctx.Result.DynamicEnergy
}

// Count returns the number of invocations at the position.
func (t *Tally) Count(pos *HookPos) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.count[pos.Name]
}

// DynamicEnergy returns the summed per-cycle dynamic energy of the line items
// announced at the position.
func (t *Tally) DynamicEnergy(pos *HookPos) float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.energy[pos.Name]
}

// Positions returns the names of the positions reached so far, sorted.
func (t *Tally) Positions() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	names := make([]string, 0, len(t.count))
	for n := range t.count {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}
