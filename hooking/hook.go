// Package hooking lets estimators announce the line items they evaluate and
// the reports they finish, so that callers can log or tally estimates
// without the models knowing about them.
package hooking

import (
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
)

// HookPos names a point of an estimate at which hooks are invoked.
type HookPos struct {
	Name string
}

// HookCtx describes one invocation. Item positions set Path and Result.
// Report positions set Report.
type HookCtx struct {
	// Estimator is the name of the estimator that invokes the hook.
	Estimator string
	Pos       *HookPos

	// Path is the full name of the line item, such as
	// "Router.Crossbar.Traversal".
	Path   string
	Result power.Result

	Report *report.Report
}

// IsReport tells if the context carries a finished report.
func (ctx HookCtx) IsReport() bool {
	return ctx.Report != nil
}

// Hook is invoked by an estimator. Estimators may run concurrently, so a
// hook shared between them must be safe for concurrent use.
type Hook interface {
	Func(ctx HookCtx)
}

// Hooks is the set of hooks of one estimator. Hooks are attached before the
// first estimate and never removed.
type Hooks struct {
	owner string
	list  []Hook
}

// NewHooks creates an empty set of hooks for the named estimator.
func NewHooks(owner string) Hooks {
	return Hooks{owner: owner}
}

// NumHooks returns the number of attached hooks.
func (h *Hooks) NumHooks() int {
	return len(h.list)
}

// AcceptHook attaches a hook. Attaching the same hook twice panics.
func (h *Hooks) AcceptHook(hook Hook) {
	for _, other := range h.list {
		if other == hook {
			panic("hook is already attached to " + h.owner)
		}
	}

	h.list = append(h.list, hook)
}

// InvokeItem announces an evaluated line item.
func (h *Hooks) InvokeItem(pos *HookPos, path string, r power.Result) {
	h.invoke(HookCtx{Pos: pos, Path: path, Result: r})
}

// InvokeReport announces a finished report.
func (h *Hooks) InvokeReport(pos *HookPos, r *report.Report) {
	h.invoke(HookCtx{Pos: pos, Path: r.Root.Name(), Result: r.Total(), Report: r})
}

func (h *Hooks) invoke(ctx HookCtx) {
	ctx.Estimator = h.owner

	for _, hook := range h.list {
		hook.Func(ctx)
	}
}
