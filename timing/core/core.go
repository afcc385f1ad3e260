// Package core provides the high-level simulated-processor model.
// It wraps the pipeline engine to provide a simple interface for simulation.
package core

import (
	"io"

	"github.com/jedirandy/tomasulo/config"
	"github.com/jedirandy/tomasulo/timing/pipeline"
)

// Stats holds performance statistics for a finished (or running) core.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Retired is the number of instructions retired.
	Retired uint64
	// MaxDispSize is the peak dispatch-queue occupancy.
	MaxDispSize uint64
	// AvgDispSize is the mean dispatch-queue occupancy per cycle.
	AvgDispSize float64
	// IPC is the mean number of instructions retired per cycle.
	IPC float64
}

// Core represents one simulated out-of-order processor.
type Core struct {
	// Pipeline is the underlying timing engine.
	Pipeline *pipeline.Pipeline
}

// NewCore creates a Core reading instructions from src with the given
// geometry.
func NewCore(src pipeline.Source, cfg *config.Config, opts ...pipeline.PipelineOption) *Core {
	return &Core{
		Pipeline: pipeline.NewPipeline(src, cfg, opts...),
	}
}

// Tick advances the core by one cycle.
func (c *Core) Tick() {
	c.Pipeline.Tick()
}

// Finished reports whether the core has drained its trace.
func (c *Core) Finished() bool {
	return c.Pipeline.Finished()
}

// Run executes the core until every instruction has retired.
func (c *Core) Run() Stats {
	c.Pipeline.Run()
	return c.Stats()
}

// Stats returns aggregated performance statistics for the core.
func (c *Core) Stats() Stats {
	s := c.Pipeline.Stats()
	return Stats{
		Cycles:      s.CycleCount,
		Retired:     s.RetiredInstructions,
		MaxDispSize: s.MaxDispSize,
		AvgDispSize: s.AvgDispSize(),
		IPC:         s.IPC(),
	}
}

// WriteTrace emits the per-instruction timing dump.
func (c *Core) WriteTrace(w io.Writer) error {
	return c.Pipeline.WriteTrace(w)
}
