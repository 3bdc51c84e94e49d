// Command dotbench times the dot product backends on the same random input.
//
// Usage:
//
//	dotbench [run] [flags]
//	dotbench list
//	dotbench verify [flags]
//	dotbench version
//
// Examples:
//
//	dotbench
//	dotbench -n 4096 --seed 7 --repeat 5
//	dotbench -b naive -b spectral --format json
//	dotbench --config dotbench.yaml
//	dotbench verify
package main

import (
	"os"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
