package core_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jedirandy/tomasulo/config"
	"github.com/jedirandy/tomasulo/insts"
	"github.com/jedirandy/tomasulo/timing/core"
	"github.com/jedirandy/tomasulo/trace"
)

var _ = Describe("Core", func() {
	newCore := func(list []insts.Instruction) *core.Core {
		cfg := config.DefaultConfig()
		return core.NewCore(trace.NewSliceSource(list), cfg)
	}

	single := []insts.Instruction{{
		Op:   insts.OpClass0,
		Dest: 5,
		Src:  [insts.NumSrcRegs]int8{insts.RegNone, insts.RegNone},
	}}

	It("creates a core around a pipeline", func() {
		c := newCore(nil)
		Expect(c).NotTo(BeNil())
		Expect(c.Pipeline).NotTo(BeNil())
	})

	It("runs a trace to completion", func() {
		c := newCore(single)
		stats := c.Run()

		Expect(c.Finished()).To(BeTrue())
		Expect(stats.Retired).To(Equal(uint64(1)))
		Expect(stats.Cycles).To(Equal(uint64(5)))
	})

	It("derives the averaged statistics", func() {
		c := newCore(single)
		stats := c.Run()

		raw := c.Pipeline.Stats()
		Expect(stats.IPC).To(BeNumerically("~", raw.IPC(), 1e-12))
		Expect(stats.AvgDispSize).To(BeNumerically("~", raw.AvgDispSize(), 1e-12))
		Expect(stats.MaxDispSize).To(Equal(raw.MaxDispSize))
	})

	It("ticks one cycle at a time", func() {
		c := newCore(single)
		Expect(c.Finished()).To(BeFalse())
		c.Tick()
		Expect(c.Pipeline.Stats().CycleCount).To(Equal(uint64(2)))
	})

	It("forwards the trace dump", func() {
		c := newCore(single)
		c.Run()

		var buf bytes.Buffer
		Expect(c.WriteTrace(&buf)).To(Succeed())
		Expect(buf.String()).To(HavePrefix("INST\tFETCH"))
	})
})
