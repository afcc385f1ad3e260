// Package benchmarks provides synthetic-trace benchmark infrastructure for
// the pipeline simulator.
package benchmarks

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedirandy/tomasulo/config"
	"github.com/jedirandy/tomasulo/insts"
	"github.com/jedirandy/tomasulo/timing/core"
	"github.com/jedirandy/tomasulo/trace"
)

// BenchmarkResult holds the timing results for a single benchmark run.
type BenchmarkResult struct {
	// Name identifies the benchmark
	Name string `json:"name"`

	// Description explains what the benchmark measures
	Description string `json:"description"`

	// SimulatedCycles is the total cycle count from the timing simulator
	SimulatedCycles uint64 `json:"simulated_cycles"`

	// InstructionsRetired is the number of completed instructions
	InstructionsRetired uint64 `json:"instructions_retired"`

	// IPC is instructions retired per cycle
	IPC float64 `json:"ipc"`

	// MaxDispSize is the peak dispatch-queue occupancy
	MaxDispSize uint64 `json:"max_disp_size"`

	// AvgDispSize is the mean dispatch-queue occupancy per cycle
	AvgDispSize float64 `json:"avg_disp_size"`

	// WallTime is the actual time taken to run the simulation
	WallTime time.Duration `json:"wall_time_ns"`
}

// Benchmark defines a single benchmark trace.
type Benchmark struct {
	// Name identifies the benchmark
	Name string

	// Description explains what the benchmark measures
	Description string

	// Trace is the instruction sequence to simulate
	Trace []insts.Instruction

	// Config is the machine geometry; nil means config.DefaultConfig()
	Config *config.Config
}

// RunBenchmark simulates one benchmark trace and collects its results.
func RunBenchmark(b Benchmark) BenchmarkResult {
	cfg := b.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	c := core.NewCore(trace.NewSliceSource(b.Trace), cfg)

	start := time.Now()
	stats := c.Run()
	elapsed := time.Since(start)

	return BenchmarkResult{
		Name:                b.Name,
		Description:         b.Description,
		SimulatedCycles:     stats.Cycles,
		InstructionsRetired: stats.Retired,
		IPC:                 stats.IPC,
		MaxDispSize:         stats.MaxDispSize,
		AvgDispSize:         stats.AvgDispSize,
		WallTime:            elapsed,
	}
}

// GetCoreBenchmarks returns the standard benchmark set.
func GetCoreBenchmarks() []Benchmark {
	return []Benchmark{
		{
			Name:        "independent_ops",
			Description: "100 independent class-0 instructions",
			Trace:       IndependentOps(100, insts.OpClass0),
		},
		{
			Name:        "raw_chain",
			Description: "64-deep read-after-write dependency chain",
			Trace:       RAWChain(64),
		},
		{
			Name:        "waw_rewrite",
			Description: "64 writers of a single register",
			Trace:       WAWRewrite(64),
		},
		{
			Name:        "fan_out",
			Description: "one producer feeding 63 consumers",
			Trace:       FanOut(63),
		},
		{
			Name:        "fu_contention",
			Description: "96 instructions crowding class 0 against a single unit",
			Trace:       FUContentionMix(96),
			Config:      &config.Config{ResultBuses: 2, K0: 1, K1: 2, K2: 2, FetchWidth: 4},
		},
		{
			Name:        "mixed_classes",
			Description: "120 independent instructions across all op classes",
			Trace:       MixedClasses(120),
		},
	}
}

// RunAll runs every benchmark in the list and collects the results.
func RunAll(benchmarks []Benchmark) []BenchmarkResult {
	results := make([]BenchmarkResult, 0, len(benchmarks))
	for _, b := range benchmarks {
		results = append(results, RunBenchmark(b))
	}
	return results
}

// PrintResults writes a human-readable results table.
func PrintResults(w io.Writer, results []BenchmarkResult) {
	fmt.Fprintf(w, "%-20s %12s %12s %8s %10s %10s\n",
		"BENCHMARK", "CYCLES", "RETIRED", "IPC", "MAX DISP", "AVG DISP")
	for _, r := range results {
		fmt.Fprintf(w, "%-20s %12d %12d %8.3f %10d %10.3f\n",
			r.Name, r.SimulatedCycles, r.InstructionsRetired,
			r.IPC, r.MaxDispSize, r.AvgDispSize)
	}
}

// PrintCSV writes the results as comma-separated rows with a header.
func PrintCSV(w io.Writer, results []BenchmarkResult) {
	fmt.Fprintln(w, "name,cycles,retired,ipc,max_disp_size,avg_disp_size,wall_time_ns")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%d,%f,%d,%f,%d\n",
			r.Name, r.SimulatedCycles, r.InstructionsRetired,
			r.IPC, r.MaxDispSize, r.AvgDispSize, r.WallTime.Nanoseconds())
	}
}

// PrintJSON writes the results as an indented JSON array.
func PrintJSON(w io.Writer, results []BenchmarkResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
