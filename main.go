// Package main provides the entry point for the tomasulo simulator.
// Tomasulo is a cycle-accurate out-of-order superscalar pipeline simulator.
//
// For the full CLI, use: go run ./cmd/procsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Tomasulo - Out-of-Order Pipeline Simulator")
	fmt.Println("")
	fmt.Println("Usage: procsim [options] <trace-file>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -r         Number of result buses")
	fmt.Println("  -k0/k1/k2  Functional units per op class")
	fmt.Println("  -f         Instructions fetched per cycle")
	fmt.Println("  -dump      Instruction id range begin:end to trace")
	fmt.Println("  -config    Path to configuration file (JSON or YAML)")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/procsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/procsim' instead.")
	}
}
