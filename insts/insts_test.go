package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jedirandy/tomasulo/insts"
)

var _ = Describe("Instruction", func() {
	It("starts with no stage entered", func() {
		var i insts.Instruction
		Expect(i.CycleFetch).To(BeZero())
		Expect(i.CycleStateUpdate).To(BeZero())
	})

	It("reports destination presence", func() {
		i := insts.Instruction{Dest: insts.RegNone}
		Expect(i.HasDest()).To(BeFalse())
		i.Dest = 0
		Expect(i.HasDest()).To(BeTrue())
	})

	It("reports source readiness only when both slots are ready", func() {
		var i insts.Instruction
		Expect(i.SourcesReady()).To(BeFalse())
		i.SrcReady[0] = true
		Expect(i.SourcesReady()).To(BeFalse())
		i.SrcReady[1] = true
		Expect(i.SourcesReady()).To(BeTrue())
	})
})
