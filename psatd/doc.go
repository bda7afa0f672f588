// SPDX-License-Identifier: MIT

// Package psatd implements the Pseudo-Spectral Analytical Time-Domain update
// of Maxwell's equations on the spectral slots of a fields.Store.
//
// Overview:
//   - Between two time levels the source-driven wave equation is solved
//     exactly in Fourier space, assuming the current is constant over the
//     step and the charge density varies linearly.
//   - All trigonometric work happens once, in InitializeCoefficients; Push is
//     an elementwise complex multiply-accumulate over every spectral index.
//   - A Galilean frame velocity v adds the phase exp(i k·v dt) to the
//     propagator and the matching weights to the sources.
//   - With TimeAveraging, Push also writes the mean of E and B over the window
//     [t^n − dt/2, t^n + 3dt/2] into the *Avg slots.
//
// Charge conservation:
//   - CurrentCorrection projects J so that the discrete continuity equation
//     holds against RhoOld/RhoNew.
//   - VayDeposition recovers J from the per-axis quantity D = −i k J.
//
// Units are SI. Spectral slot layout is given by the Index constants.
//
// Errors:
//   - Configuration errors are returned by New and InitializeCoefficients.
//   - Calling Push, CurrentCorrection or VayDeposition on a store whose blocks
//     have no coefficients, or with too few slots, panics.
package psatd
