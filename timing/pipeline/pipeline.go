// Package pipeline implements the out-of-order pipeline timing engine.
//
// The engine models Tomasulo-style dynamic scheduling: instructions flow
// through Fetch/Decode, Dispatch, Schedule, Execute, and State Update, with
// a unified reservation-station scheduling queue, per-class functional-unit
// pools, a bank of common-data-bus result slots, and register renaming
// through a readiness table.
//
// Every stage is split into two transition functions, one per half-cycle.
// The driver runs the later stages first within each half so that a value
// written by an earlier-pipeline stage in cycle N is consumed no sooner than
// cycle N+1, the standard latched-pipeline discipline. The one intentional
// same-cycle path is the CDB: a result bus claimed by Execute in the first
// half is observed by Schedule's wakeup in the second half of the same
// cycle, modeling wire-level forwarding.
package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/jedirandy/tomasulo/config"
	"github.com/jedirandy/tomasulo/insts"
)

// Source is the oracle that yields decoded instructions, one per call.
// Read fills inst and returns false at end-of-trace.
type Source interface {
	Read(inst *insts.Instruction) bool
}

// Pipeline owns all simulation state: the queues, the readiness table, the
// resource pools, the instruction list, and the cycle counter. Stage
// transition functions mutate it in a fixed sequence; there is no other
// shared state, so independent Pipelines may run concurrently.
type Pipeline struct {
	src Source
	cfg *config.Config

	regFile *RegisterFile
	fuPool  *FUPool
	cdb     *CDB

	dispQ  dispatchQueue
	schedQ *schedulingQueue

	// instrs retains every fetched instruction, in id order, for the final
	// trace dump. The queues hold borrowed references into it.
	instrs []*insts.Instruction

	readCount uint64
	readDone  bool
	finished  bool

	stats Stats

	log zerolog.Logger
}

// PipelineOption is a functional option for configuring the Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger attaches a logger; stage events are logged at debug level.
func WithLogger(log zerolog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.log = log
	}
}

// NewPipeline creates an engine reading from src with the given geometry.
// The configuration must have passed Validate.
func NewPipeline(src Source, cfg *config.Config, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		src:     src,
		cfg:     cfg,
		regFile: NewRegisterFile(),
		fuPool:  NewFUPool(cfg.K0, cfg.K1, cfg.K2),
		cdb:     NewCDB(cfg.ResultBuses),
		schedQ:  newSchedulingQueue(cfg.SchedQueueCapacity()),
		log:     zerolog.Nop(),
	}
	p.stats.CycleCount = 1

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tick advances the simulation by one full cycle: all first-half stage
// transitions, then the second-half ones. The second-half state update
// decides termination before any further work is committed; when it fires,
// the cycle counter is left untouched.
func (p *Pipeline) Tick() {
	p.stateUpdateFirst()
	p.executeFirst()
	p.scheduleFirst()
	p.dispatchFirst()

	p.stateUpdateSecond()
	if p.finished {
		return
	}
	// Execute has no second-half work.
	p.scheduleSecond()
	p.dispatchSecond()
	p.fetchSecond()

	p.stats.CycleCount++
}

// Run ticks until the trace is exhausted and every fetched instruction has
// retired, then returns the final statistics.
func (p *Pipeline) Run() Stats {
	for !p.finished {
		p.Tick()
	}
	return p.stats
}

// Finished reports whether the simulation has terminated.
func (p *Pipeline) Finished() bool {
	return p.finished
}

// Stats returns a snapshot of the aggregate counters.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// Instructions returns every fetched instruction in id order. The returned
// slice is owned by the pipeline.
func (p *Pipeline) Instructions() []*insts.Instruction {
	return p.instrs
}

// RegisterFile exposes the readiness table, mainly for tests.
func (p *Pipeline) RegisterFile() *RegisterFile {
	return p.regFile
}

// FUPool exposes the functional-unit pool, mainly for tests.
func (p *Pipeline) FUPool() *FUPool {
	return p.fuPool
}

// DispatchQueueLen returns the current dispatch-queue size.
func (p *Pipeline) DispatchQueueLen() int {
	return p.dispQ.len()
}

// SchedQueueLen returns the current scheduling-queue size.
func (p *Pipeline) SchedQueueLen() int {
	return p.schedQ.len()
}

// BusyResultBuses returns the number of occupied CDB slots.
func (p *Pipeline) BusyResultBuses() int {
	return p.cdb.Busy()
}
