// Package insts provides the decoded instruction model shared by the trace
// reader and the timing engine.
//
// Instructions in a trace are already decoded: each record names an op class
// (which functional-unit pool the instruction draws from), an optional
// destination register, and up to two source registers. The engine annotates
// the record with renaming state, phase flags, and the cycle at which the
// instruction entered each pipeline stage.
package insts

import "fmt"

// OpClass identifies which functional-unit pool an instruction draws from.
type OpClass uint8

// The three op classes of the simulated machine.
const (
	OpClass0 OpClass = iota
	OpClass1
	OpClass2

	// NumOpClasses is the number of distinct op classes.
	NumOpClasses = 3
)

// RegNone marks an absent destination or source register.
const RegNone int8 = -1

// NumSrcRegs is the number of source operand slots per instruction.
const NumSrcRegs = 2

// Instruction is one decoded instruction flowing through the pipeline.
//
// ID is a 1-based sequence number assigned at fetch. Cycle stamps are zero
// until the instruction enters the corresponding stage, and each is written
// exactly once.
type Instruction struct {
	// ID is the 1-based program-order sequence number.
	ID uint64

	// Op selects the functional-unit class.
	Op OpClass

	// Dest is the destination architectural register, or RegNone.
	Dest int8

	// Src holds the source architectural registers, RegNone when absent.
	Src [NumSrcRegs]int8

	// SrcReady marks each source operand as available.
	SrcReady [NumSrcRegs]bool

	// SrcTag holds, for each not-ready source, the id of the producing
	// instruction to listen for on the result buses.
	SrcTag [NumSrcRegs]uint64

	// Reserved is set by dispatch when a scheduling-queue slot has been
	// promised for the current cycle.
	Reserved bool

	// Fire is set when the instruction has been declared ready to issue.
	Fire bool

	// Fired is set while the instruction occupies a functional unit.
	Fired bool

	// Executed is set once the instruction has claimed a result bus.
	Executed bool

	// Stage-entry cycles; zero means not yet entered.
	CycleFetch       uint64
	CycleDispatch    uint64
	CycleSchedule    uint64
	CycleExecute     uint64
	CycleStateUpdate uint64
}

// HasDest reports whether the instruction writes a register.
func (i *Instruction) HasDest() bool {
	return i.Dest != RegNone
}

// SourcesReady reports whether both source operands are available.
func (i *Instruction) SourcesReady() bool {
	return i.SrcReady[0] && i.SrcReady[1]
}

// String renders the instruction for logs and error messages.
func (i *Instruction) String() string {
	return fmt.Sprintf("inst %d op%d dest=%d src=[%d %d]",
		i.ID, i.Op, i.Dest, i.Src[0], i.Src[1])
}
