package hooking

import (
	"log"

	"github.com/sarchlab/orion/report"
)

// LogHook prints one line per invocation, optionally restricted to a set of
// positions. Areas are printed in um^2.
type LogHook struct {
	*log.Logger

	positions map[*HookPos]bool
}

// NewLogHook creates a LogHook that writes to the logger. With no positions
// given, it prints every position.
func NewLogHook(logger *log.Logger, positions ...*HookPos) *LogHook {
	h := &LogHook{Logger: logger}

	if len(positions) > 0 {
		h.positions = make(map[*HookPos]bool)
		for _, p := range positions {
			h.positions[p] = true
		}
	}

	return h
}

// Func logs the invocation. log.Logger serializes concurrent writes.
func (h *LogHook) Func(ctx HookCtx) {
	if ctx.Pos == nil || (h.positions != nil && !h.positions[ctx.Pos]) {
		return
	}

	if ctx.IsReport() {
		h.Printf("%s %s %q power=%.4g W area=%.4g um^2",
			ctx.Estimator, ctx.Pos.Name, ctx.Report.Title,
			ctx.Report.TotalPower(),
			report.SquareMicrometers(ctx.Report.Area()))

		return
	}

	h.Printf("%s %s %s energy=%.4g J leakage=%.4g W area=%.4g um^2",
		ctx.Estimator, ctx.Pos.Name, ctx.Path,
		ctx.Result.DynamicEnergy,
		ctx.Result.LeakagePower,
		report.SquareMicrometers(ctx.Result.Area))
}
