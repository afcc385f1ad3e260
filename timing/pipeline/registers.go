package pipeline

import (
	"github.com/jedirandy/tomasulo/config"
	"github.com/jedirandy/tomasulo/insts"
)

type regStatus struct {
	// ready means the committed architectural value is current and any
	// recorded tag is stale.
	ready bool
	// tag identifies the youngest in-flight writer when not ready.
	tag uint64
}

// RegisterFile is the register readiness table used for renaming. Each of
// the 64 architectural registers tracks whether its value is committed and,
// if not, which in-flight instruction will produce it.
type RegisterFile struct {
	regs [config.NumArchRegs]regStatus
}

// NewRegisterFile returns a table with every register committed.
func NewRegisterFile() *RegisterFile {
	rf := &RegisterFile{}
	for i := range rf.regs {
		rf.regs[i].ready = true
	}
	return rf
}

// Lookup returns the readiness and producer tag of reg.
func (rf *RegisterFile) Lookup(reg int8) (ready bool, tag uint64) {
	s := rf.regs[reg]
	return s.ready, s.tag
}

// Rename marks reg as pending on the instruction identified by tag.
// Renaming an absent destination is a no-op.
func (rf *RegisterFile) Rename(reg int8, tag uint64) {
	if reg == insts.RegNone {
		return
	}
	rf.regs[reg].ready = false
	rf.regs[reg].tag = tag
}

// Commit marks reg ready, but only while tag is still the recorded producer.
// A mismatch means a younger writer has superseded this one and the update
// must not be applied.
func (rf *RegisterFile) Commit(reg int8, tag uint64) {
	if reg == insts.RegNone {
		return
	}
	if rf.regs[reg].tag == tag {
		rf.regs[reg].ready = true
	}
}
