package pipeline

import (
	"fmt"

	"github.com/jedirandy/tomasulo/insts"
)

// FUPool tracks idle functional units per op class. Units are acquired when
// an instruction fires and returned when it claims a result bus.
type FUPool struct {
	idle     [insts.NumOpClasses]uint64
	capacity [insts.NumOpClasses]uint64
}

// NewFUPool builds a pool with k0/k1/k2 units for classes 0/1/2.
func NewFUPool(k0, k1, k2 uint64) *FUPool {
	caps := [insts.NumOpClasses]uint64{k0, k1, k2}
	return &FUPool{idle: caps, capacity: caps}
}

// Acquire takes one idle unit of the given class, reporting whether one was
// available.
func (p *FUPool) Acquire(op insts.OpClass) bool {
	if p.idle[op] == 0 {
		return false
	}
	p.idle[op]--
	return true
}

// Release returns a unit to the pool. Returning more units than the class
// holds is a simulator bug.
func (p *FUPool) Release(op insts.OpClass) {
	if p.idle[op] == p.capacity[op] {
		panic(fmt.Sprintf("pipeline: releasing idle op-class %d unit", op))
	}
	p.idle[op]++
}

// Idle returns the idle unit count for the given class.
func (p *FUPool) Idle(op insts.OpClass) uint64 {
	return p.idle[op]
}

// Capacity returns the configured unit count for the given class.
func (p *FUPool) Capacity(op insts.OpClass) uint64 {
	return p.capacity[op]
}

type cdbSlot struct {
	free bool
	tag  uint64
	reg  int8
}

// CDB is the bank of common-data-bus result slots. A slot holds the
// producer tag and destination register of one completing instruction for
// exactly one cycle.
type CDB struct {
	slots []cdbSlot
}

// NewCDB builds a bus with r slots, all free.
func NewCDB(r uint64) *CDB {
	c := &CDB{slots: make([]cdbSlot, r)}
	c.ReleaseAll()
	return c
}

// Claim occupies the lowest-indexed free slot with (tag, reg), reporting
// whether a slot was available.
func (c *CDB) Claim(tag uint64, reg int8) bool {
	for i := range c.slots {
		if c.slots[i].free {
			c.slots[i] = cdbSlot{free: false, tag: tag, reg: reg}
			return true
		}
	}
	return false
}

// ReleaseAll frees every slot and clears its payload.
func (c *CDB) ReleaseAll() {
	for i := range c.slots {
		c.slots[i] = cdbSlot{free: true}
	}
}

// ForEachBusy calls fn for every occupied slot, in slot-index order.
func (c *CDB) ForEachBusy(fn func(tag uint64, reg int8)) {
	for i := range c.slots {
		if !c.slots[i].free {
			fn(c.slots[i].tag, c.slots[i].reg)
		}
	}
}

// Busy returns the number of occupied slots.
func (c *CDB) Busy() int {
	n := 0
	for i := range c.slots {
		if !c.slots[i].free {
			n++
		}
	}
	return n
}
