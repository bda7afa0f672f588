// Package kspace builds the discrete wavevectors of a grid block.
//
// For every axis a Space produces:
//
//   - the standard wavevector k (FFT frequency ordering, 2π/(N·dx) spacing),
//   - the "modified" wavevector of a chosen finite-order stencil, for the
//     centred (nodal) and the staggered (Yee) variant, so that the stencil
//     derivative of a plane wave is exactly i·k_mod times that wave,
//   - the half-cell shift factors exp(∓i k dx/2) used to reference
//     cell-centred components to the nodes.
//
// Orders are even integers in [2, MaxOrder], or InfiniteOrder for the exact
// spectral derivative. Invalid orders are rejected at construction.
//
// A Space is immutable; per-shape Vectors are built on demand and are
// immutable as well, so one Vectors value may be shared by any number of
// goroutines.
package kspace
