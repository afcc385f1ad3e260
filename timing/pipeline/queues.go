package pipeline

import "github.com/jedirandy/tomasulo/insts"

// dispatchQueue is the program-order FIFO of fetched instructions awaiting a
// reservation-station slot.
type dispatchQueue struct {
	instrs []*insts.Instruction
}

func (q *dispatchQueue) push(in *insts.Instruction) {
	q.instrs = append(q.instrs, in)
}

func (q *dispatchQueue) front() *insts.Instruction {
	return q.instrs[0]
}

func (q *dispatchQueue) popFront() {
	q.instrs[0] = nil
	q.instrs = q.instrs[1:]
}

func (q *dispatchQueue) len() int {
	return len(q.instrs)
}

// schedulingQueue is the bounded reservation-station set, kept in program
// order of insertion. Entries leave only after their state-update cycle has
// been recorded.
type schedulingQueue struct {
	entries  []*insts.Instruction
	capacity int
}

func newSchedulingQueue(capacity uint64) *schedulingQueue {
	return &schedulingQueue{
		entries:  make([]*insts.Instruction, 0, capacity),
		capacity: int(capacity),
	}
}

func (q *schedulingQueue) push(in *insts.Instruction) {
	if len(q.entries) >= q.capacity {
		panic("pipeline: scheduling queue overflow")
	}
	q.entries = append(q.entries, in)
}

func (q *schedulingQueue) available() int {
	return q.capacity - len(q.entries)
}

func (q *schedulingQueue) len() int {
	return len(q.entries)
}

// removeRetired drops every entry with a recorded state-update cycle and
// returns how many were removed.
func (q *schedulingQueue) removeRetired() int {
	kept := q.entries[:0]
	removed := 0
	for _, in := range q.entries {
		if in.CycleStateUpdate != 0 {
			removed++
			continue
		}
		kept = append(kept, in)
	}
	for i := len(kept); i < len(q.entries); i++ {
		q.entries[i] = nil
	}
	q.entries = kept
	return removed
}
