package benchmarks

import "github.com/jedirandy/tomasulo/insts"

// Synthetic instruction traces exercising specific pipeline behaviors.
// Registers are chosen so each generator stresses exactly one mechanism.

// IndependentOps builds n instructions of one class with no dependencies.
// Throughput is bounded only by the class's unit count and the result buses.
func IndependentOps(n int, class insts.OpClass) []insts.Instruction {
	list := make([]insts.Instruction, n)
	for i := range list {
		list[i] = insts.Instruction{
			Op:   class,
			Dest: int8(i % 32),
			Src:  [insts.NumSrcRegs]int8{insts.RegNone, insts.RegNone},
		}
	}
	return list
}

// RAWChain builds n class-0 instructions where each reads the register the
// previous one writes, serializing the whole trace on the wakeup path.
// Destinations cycle through registers 1..62 so chains of any depth fit the
// architectural file.
func RAWChain(n int) []insts.Instruction {
	dest := func(i int) int8 { return int8(1 + i%62) }
	list := make([]insts.Instruction, n)
	for i := range list {
		src := insts.RegNone
		if i > 0 {
			src = dest(i - 1)
		}
		list[i] = insts.Instruction{
			Op:   insts.OpClass0,
			Dest: dest(i),
			Src:  [insts.NumSrcRegs]int8{src, insts.RegNone},
		}
	}
	return list
}

// WAWRewrite builds n class-0 instructions all writing the same register,
// exercising the producer-tag guard on writeback.
func WAWRewrite(n int) []insts.Instruction {
	list := make([]insts.Instruction, n)
	for i := range list {
		list[i] = insts.Instruction{
			Op:   insts.OpClass0,
			Dest: 7,
			Src:  [insts.NumSrcRegs]int8{insts.RegNone, insts.RegNone},
		}
	}
	return list
}

// FanOut builds one producer followed by n consumers of its register,
// so a single broadcast wakes every waiter at once.
func FanOut(n int) []insts.Instruction {
	list := make([]insts.Instruction, 0, n+1)
	list = append(list, insts.Instruction{
		Op:   insts.OpClass0,
		Dest: 1,
		Src:  [insts.NumSrcRegs]int8{insts.RegNone, insts.RegNone},
	})
	for i := 0; i < n; i++ {
		list = append(list, insts.Instruction{
			Op:   insts.OpClass1,
			Dest: int8(2 + i%30),
			Src:  [insts.NumSrcRegs]int8{1, insts.RegNone},
		})
	}
	return list
}

// FUContentionMix builds n independent instructions crowded onto class 0,
// with a trickle of class-1 and class-2 ops mixed in. Run against a machine
// with a single class-0 unit, the hot pool throttles throughput while the
// other pools sit mostly idle.
func FUContentionMix(n int) []insts.Instruction {
	list := make([]insts.Instruction, n)
	for i := range list {
		class := insts.OpClass0
		if i%4 == 3 {
			class = insts.OpClass(1 + (i/4)%2)
		}
		list[i] = insts.Instruction{
			Op:   class,
			Dest: int8(i % 32),
			Src:  [insts.NumSrcRegs]int8{insts.RegNone, insts.RegNone},
		}
	}
	return list
}

// MixedClasses builds n independent instructions cycling over the three op
// classes, spreading load across the unit pools.
func MixedClasses(n int) []insts.Instruction {
	list := make([]insts.Instruction, n)
	for i := range list {
		list[i] = insts.Instruction{
			Op:   insts.OpClass(i % insts.NumOpClasses),
			Dest: int8(i % 32),
			Src:  [insts.NumSrcRegs]int8{insts.RegNone, insts.RegNone},
		}
	}
	return list
}
