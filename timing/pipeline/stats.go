package pipeline

// Stats holds the aggregate counters maintained by the engine.
type Stats struct {
	// CycleCount is the current cycle; the counter starts at 1.
	CycleCount uint64
	// RetiredInstructions is the number of instructions removed from the
	// scheduling queue after state update.
	RetiredInstructions uint64
	// SumDispSize accumulates the dispatch-queue size sampled once per
	// cycle, in the first half of dispatch.
	SumDispSize uint64
	// MaxDispSize is the peak dispatch-queue size observed.
	MaxDispSize uint64
}

// AvgDispSize returns the mean dispatch-queue occupancy per cycle.
func (s Stats) AvgDispSize() float64 {
	if s.CycleCount == 0 {
		return 0
	}
	return float64(s.SumDispSize) / float64(s.CycleCount)
}

// IPC returns the mean number of instructions retired per cycle.
func (s Stats) IPC() float64 {
	if s.CycleCount == 0 {
		return 0
	}
	return float64(s.RetiredInstructions) / float64(s.CycleCount)
}
