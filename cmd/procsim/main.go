// Package main provides the entry point for the tomasulo simulator CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jedirandy/tomasulo/config"
	"github.com/jedirandy/tomasulo/timing/core"
	"github.com/jedirandy/tomasulo/timing/pipeline"
	"github.com/jedirandy/tomasulo/trace"
)

var (
	resultBuses = flag.Uint64("r", 2, "number of result buses")
	k0          = flag.Uint64("k0", 1, "number of class-0 functional units")
	k1          = flag.Uint64("k1", 1, "number of class-1 functional units")
	k2          = flag.Uint64("k2", 1, "number of class-2 functional units")
	fetchWidth  = flag.Uint64("f", 4, "instructions fetched per cycle")
	dumpRange   = flag.String("dump", "", "instruction id range begin:end to dump (empty disables)")
	configPath  = flag.String("config", "", "path to configuration file (JSON or YAML)")
	verbose     = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, closeSrc, err := openTrace(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeSrc()

	log := zerolog.Nop()
	if *verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	c := core.NewCore(src, cfg, pipeline.WithLogger(log))
	stats := c.Run()

	if err := src.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := c.WriteTrace(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing trace: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Processor settings:\n")
	fmt.Printf("  Result buses:          %d\n", cfg.ResultBuses)
	fmt.Printf("  Functional units:      k0=%d k1=%d k2=%d\n", cfg.K0, cfg.K1, cfg.K2)
	fmt.Printf("  Fetch width:           %d\n", cfg.FetchWidth)
	fmt.Printf("\n")
	fmt.Printf("Processor stats:\n")
	fmt.Printf("  Total cycles:          %d\n", stats.Cycles)
	fmt.Printf("  Instructions retired:  %d\n", stats.Retired)
	fmt.Printf("  Avg inst retired/cyc:  %.6f\n", stats.IPC)
	fmt.Printf("  Max dispatch q size:   %d\n", stats.MaxDispSize)
	fmt.Printf("  Avg dispatch q size:   %.6f\n", stats.AvgDispSize)
}

// buildConfig layers the geometry: defaults, then the config file, then any
// flag given explicitly on the command line.
func buildConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "r":
			cfg.ResultBuses = *resultBuses
		case "k0":
			cfg.K0 = *k0
		case "k1":
			cfg.K1 = *k1
		case "k2":
			cfg.K2 = *k2
		case "f":
			cfg.FetchWidth = *fetchWidth
		case "dump":
			begin, end, err := parseDumpRange(*dumpRange)
			if err != nil {
				flagErr = err
				return
			}
			cfg.BeginDump = begin
			cfg.EndDump = end
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseDumpRange parses "begin:end"; an empty string disables the dump.
func parseDumpRange(s string) (begin, end uint64, err error) {
	if s == "" {
		return 0, 0, nil
	}
	b, e, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad dump range %q, want begin:end", s)
	}
	begin, err = strconv.ParseUint(b, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad dump range %q: %w", s, err)
	}
	end, err = strconv.ParseUint(e, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad dump range %q: %w", s, err)
	}
	return begin, end, nil
}

// openTrace opens the named trace file, or stdin for "-" or no argument.
func openTrace(path string) (*trace.Reader, func(), error) {
	if path == "" || path == "-" {
		r := trace.NewReader(os.Stdin)
		return r, func() {}, nil
	}
	r, err := trace.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return r, func() { r.Close() }, nil
}
