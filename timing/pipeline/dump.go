package pipeline

import (
	"fmt"
	"io"
)

// WriteTrace emits the per-instruction timing table for ids inside the
// configured dump window: a tab-separated header, one row per instruction in
// id order, and a trailing blank line. A zero BeginDump disables the dump.
func (p *Pipeline) WriteTrace(w io.Writer) error {
	if p.cfg.BeginDump == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "INST\tFETCH\tDISP\tSCHED\tEXEC\tSTATE"); err != nil {
		return err
	}
	for _, in := range p.instrs {
		if in.ID < p.cfg.BeginDump || in.ID > p.cfg.EndDump {
			continue
		}
		_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\n",
			in.ID, in.CycleFetch, in.CycleDispatch,
			in.CycleSchedule, in.CycleExecute, in.CycleStateUpdate)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
