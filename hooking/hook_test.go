package hooking

import (
	"bytes"
	"log"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

var (
	posItem   = &HookPos{Name: "Item"}
	posReport = &HookPos{Name: "Report"}
)

var _ = Describe("Hooks", func() {
	var hooks Hooks

	BeforeEach(func() {
		hooks = NewHooks("Estimator")
	})

	It("should tally items by position", func() {
		t := NewTally()
		hooks.AcceptHook(t)

		hooks.InvokeItem(posItem, "Router.Crossbar", power.Result{DynamicEnergy: 2})
		hooks.InvokeItem(posItem, "Router.Clock", power.Result{DynamicEnergy: 3})

		Expect(hooks.NumHooks()).To(Equal(1))
		Expect(t.Count(posItem)).To(Equal(uint64(2)))
		Expect(t.DynamicEnergy(posItem)).To(Equal(5.0))
		Expect(t.Count(posReport)).To(BeZero())
		Expect(t.Positions()).To(Equal([]string{"Item"}))
	})

	It("should pass the estimator name and the report", func() {
		rec := &recorder{}
		hooks.AcceptHook(rec)

		r := report.New("ALU 8-bit", tech.Node65, power.GHz, power.Average, 1, 0,
			report.NewNode("ALU", power.Result{LeakagePower: 1}))
		hooks.InvokeReport(posReport, r)

		Expect(rec.got).To(HaveLen(1))
		Expect(rec.got[0].Estimator).To(Equal("Estimator"))
		Expect(rec.got[0].IsReport()).To(BeTrue())
		Expect(rec.got[0].Path).To(Equal("ALU"))
		Expect(rec.got[0].Result.LeakagePower).To(Equal(1.0))
	})

	It("should not accept the same hook twice", func() {
		t := NewTally()
		hooks.AcceptHook(t)

		Expect(func() { hooks.AcceptHook(t) }).To(Panic())
	})

	It("should tally concurrently", func() {
		t := NewTally()
		hooks.AcceptHook(t)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					hooks.InvokeItem(posItem, "Router", power.Result{DynamicEnergy: 1})
				}
			}()
		}
		wg.Wait()

		Expect(t.Count(posItem)).To(Equal(uint64(800)))
		Expect(t.DynamicEnergy(posItem)).To(Equal(800.0))
	})
})

type recorder struct {
	got []HookCtx
}

func (r *recorder) Func(ctx HookCtx) {
	r.got = append(r.got, ctx)
}

var _ = Describe("LogHook", func() {
	It("should log only the selected positions", func() {
		buf := new(bytes.Buffer)
		hooks := NewHooks("RouterEstimator")
		hooks.AcceptHook(NewLogHook(log.New(buf, "", 0), posItem))

		hooks.InvokeItem(posItem, "Router.Crossbar", power.Result{
			DynamicEnergy: 2e-12,
			LeakagePower:  1e-3,
			Area:          3e-12,
		})
		hooks.InvokeItem(posReport, "Router", power.Result{})

		Expect(buf.String()).To(Equal(
			"RouterEstimator Item Router.Crossbar " +
				"energy=2e-12 J leakage=0.001 W area=3 um^2\n"))
	})
})
