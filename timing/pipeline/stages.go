package pipeline

import "github.com/jedirandy/tomasulo/insts"

// stateUpdateFirst stamps the state-update cycle of every executed entry and
// then frees all result buses. A bus claimed in cycle N is thus occupied for
// exactly that cycle: Schedule's wakeup saw it in N's second half, and this
// transition clears it at the top of N+1.
func (p *Pipeline) stateUpdateFirst() {
	cycle := p.stats.CycleCount
	for _, in := range p.schedQ.entries {
		if !in.Executed {
			continue
		}
		// Every entry stamped here is retired in the same cycle's second
		// half, so a stamp can never be seen twice.
		if in.CycleStateUpdate != 0 {
			panic("pipeline: double-stamped state-update cycle")
		}
		in.CycleStateUpdate = cycle
	}
	p.cdb.ReleaseAll()
}

// stateUpdateSecond retires every stamped entry and decides termination:
// once the reader is done and the retired count matches the number read, the
// simulation is over before any new second-half work starts.
func (p *Pipeline) stateUpdateSecond() {
	retiring := p.schedQ.removeRetired()
	p.stats.RetiredInstructions += uint64(retiring)
	if retiring > 0 {
		p.log.Debug().
			Str("stage", "state-update").
			Uint64("cycle", p.stats.CycleCount).
			Int("retired", retiring).
			Msg("instructions retired")
	}

	if p.readDone && p.stats.RetiredInstructions == p.readCount {
		p.finished = true
	}
}

// executeFirst walks the scheduling queue in insertion order and, for every
// fired instruction that has not executed, tries to claim the lowest-indexed
// free result bus. On success the destination register is committed (tag
// check in the readiness table guards against a younger writer), the
// functional unit is returned, and the execute cycle is stamped. Fired
// instructions that find no free bus keep their unit and retry next cycle.
func (p *Pipeline) executeFirst() {
	cycle := p.stats.CycleCount
	for _, in := range p.schedQ.entries {
		if !in.Fired || in.CycleExecute != 0 {
			continue
		}
		if !p.cdb.Claim(in.ID, in.Dest) {
			continue
		}

		p.regFile.Commit(in.Dest, in.ID)
		in.Executed = true
		in.CycleExecute = cycle
		p.fuPool.Release(in.Op)

		p.log.Debug().
			Str("stage", "execute").
			Uint64("cycle", cycle).
			Uint64("id", in.ID).
			Msg("result broadcast")
	}
}

// scheduleFirst stamps the schedule cycle of entries on their first visit
// and declares fire on those whose sources are both ready. Entries already
// declared are skipped, so the stamp records the cycle the instruction first
// entered the stage, not the cycle it became ready.
func (p *Pipeline) scheduleFirst() {
	cycle := p.stats.CycleCount
	for _, in := range p.schedQ.entries {
		if in.Fire {
			continue
		}
		if in.CycleSchedule == 0 {
			in.CycleSchedule = cycle
		}
		in.Fire = in.SourcesReady()
	}
}

// scheduleSecond runs two sub-phases per entry, in insertion order: issue,
// then wakeup. Issue fires a declared instruction when its op class has an
// idle unit, renaming the destination register to this id; program order is
// the tie-break for scarce units. Wakeup then matches every busy result bus
// against the entry's source tags, so a source waking this cycle primes the
// firing decision of the next one.
func (p *Pipeline) scheduleSecond() {
	for _, in := range p.schedQ.entries {
		if in.Fire && !in.Fired {
			if p.fuPool.Acquire(in.Op) {
				in.Fired = true
				p.regFile.Rename(in.Dest, in.ID)

				p.log.Debug().
					Str("stage", "schedule").
					Uint64("cycle", p.stats.CycleCount).
					Uint64("id", in.ID).
					Msg("fired")
			}
		}

		p.cdb.ForEachBusy(func(tag uint64, _ int8) {
			for j := range in.SrcTag {
				if in.SrcTag[j] == tag && !in.SrcReady[j] {
					in.SrcReady[j] = true
				}
			}
		})
	}
}

// dispatchFirst samples the dispatch-queue statistics, then promises
// scheduling-queue slots to as many head-end entries as fit the remaining
// capacity. Entries beyond the limit stay unreserved.
func (p *Pipeline) dispatchFirst() {
	size := uint64(p.dispQ.len())
	if p.stats.MaxDispSize < size {
		p.stats.MaxDispSize = size
	}
	p.stats.SumDispSize += size

	available := p.schedQ.available()
	for _, in := range p.dispQ.instrs {
		if available == 0 {
			break
		}
		in.Reserved = true
		available--
	}
}

// dispatchSecond pops reserved entries from the head of the dispatch queue,
// stopping at the first unreserved one. Each popped instruction reads the
// readiness table for its sources: an absent source is trivially ready, a
// pending one records the producer tag to listen for on the result buses.
func (p *Pipeline) dispatchSecond() {
	for p.dispQ.len() > 0 {
		in := p.dispQ.front()
		if !in.Reserved {
			break
		}

		for j, src := range in.Src {
			if src == insts.RegNone {
				in.SrcReady[j] = true
				continue
			}
			ready, tag := p.regFile.Lookup(src)
			if ready {
				in.SrcReady[j] = true
			} else {
				in.SrcReady[j] = false
				in.SrcTag[j] = tag
			}
		}

		p.schedQ.push(in)
		p.dispQ.popFront()

		p.log.Debug().
			Str("stage", "dispatch").
			Uint64("cycle", p.stats.CycleCount).
			Uint64("id", in.ID).
			Msg("entered scheduling queue")
	}
}

// fetchSecond reads up to FetchWidth instructions from the source. Each gets
// the next id, its fetch cycle, and a dispatch cycle pre-stamped to the next
// cycle, and joins both the instruction list and the dispatch queue. The
// first failed read marks the trace finished; no partial record is kept.
func (p *Pipeline) fetchSecond() {
	if p.readDone {
		return
	}

	cycle := p.stats.CycleCount
	for i := uint64(0); i < p.cfg.FetchWidth; i++ {
		in := &insts.Instruction{}
		if !p.src.Read(in) {
			p.readDone = true
			break
		}

		p.readCount++
		in.ID = p.readCount
		in.CycleFetch = cycle
		in.CycleDispatch = cycle + 1

		p.instrs = append(p.instrs, in)
		p.dispQ.push(in)

		p.log.Debug().
			Str("stage", "fetch").
			Uint64("cycle", cycle).
			Uint64("id", in.ID).
			Msg("fetched")
	}
}
