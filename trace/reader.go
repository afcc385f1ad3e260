// Package trace provides instruction sources for the timing engine.
//
// The on-disk format is one instruction per line:
//
//	<address> <op-class> <dest> <src1> <src2>
//
// where the address is hexadecimal and otherwise unused by the timing model,
// the op class is 0, 1, or 2, and registers are decimal in [0,63] with -1
// marking an absent register. Blank lines are skipped.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedirandy/tomasulo/config"
	"github.com/jedirandy/tomasulo/insts"
)

// Reader produces decoded instructions from a text trace.
// After Read returns false, Err distinguishes end-of-trace from failure.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
	err     error
}

// NewReader wraps an io.Reader holding trace text.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Open opens the trace file at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// Read fills inst with the next decoded instruction. It returns false at
// end-of-trace or on error; the engine treats either as end of the stream.
// Read never assigns ids or cycle stamps; the fetch stage owns those.
func (r *Reader) Read(inst *insts.Instruction) bool {
	if r.err != nil {
		return false
	}

	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}

		parsed, err := parseLine(text)
		if err != nil {
			r.err = fmt.Errorf("trace line %d: %w", r.line, err)
			return false
		}
		*inst = parsed
		return true
	}

	r.err = r.scanner.Err()
	return false
}

// Err returns the error that terminated reading, if any.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the underlying file, if the Reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func parseLine(text string) (insts.Instruction, error) {
	fields := strings.Fields(text)
	if len(fields) != 5 {
		return insts.Instruction{}, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}

	if _, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 64); err != nil {
		return insts.Instruction{}, fmt.Errorf("bad address %q: %w", fields[0], err)
	}

	op, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil || op >= insts.NumOpClasses {
		return insts.Instruction{}, fmt.Errorf("bad op class %q", fields[1])
	}

	dest, err := parseReg(fields[2])
	if err != nil {
		return insts.Instruction{}, err
	}
	src1, err := parseReg(fields[3])
	if err != nil {
		return insts.Instruction{}, err
	}
	src2, err := parseReg(fields[4])
	if err != nil {
		return insts.Instruction{}, err
	}

	return insts.Instruction{
		Op:   insts.OpClass(op),
		Dest: dest,
		Src:  [insts.NumSrcRegs]int8{src1, src2},
	}, nil
}

func parseReg(field string) (int8, error) {
	v, err := strconv.ParseInt(field, 10, 8)
	if err != nil || v < -1 || v >= config.NumArchRegs {
		return 0, fmt.Errorf("bad register %q", field)
	}
	return int8(v), nil
}
