package trace

import "github.com/jedirandy/tomasulo/insts"

// SliceSource serves a pre-built instruction list. It is the source of
// choice for tests and synthetic benchmarks.
type SliceSource struct {
	list []insts.Instruction
	next int
}

// NewSliceSource wraps list. The list is read in order, once.
func NewSliceSource(list []insts.Instruction) *SliceSource {
	return &SliceSource{list: list}
}

// Read fills inst with the next list entry, or returns false when exhausted.
func (s *SliceSource) Read(inst *insts.Instruction) bool {
	if s.next >= len(s.list) {
		return false
	}
	*inst = s.list[s.next]
	s.next++
	return true
}
