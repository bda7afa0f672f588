// SPDX-License-Identifier: MIT

// Command psatd-wave propagates a vacuum plane wave with the spectral solver
// and reports energy drift, the divergence of E and the error against the
// analytic solution.
//
// Usage:
//
//	psatd-wave --config wave.yaml --steps 200 --log-level debug
//	psatd-wave --dump-config > wave.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
