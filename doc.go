// Package lvpsatd is a pseudo-spectral analytical time-domain (PSATD)
// Maxwell field solver for block-decomposed, periodic 3D grids.
//
// 🚀 What is lvpsatd?
//
//	A pure-Go library that advances electromagnetic fields in Fourier space:
//		• Wavevectors: exact and finite-order (centered or staggered) k
//		• Spectral store: per-block complex field slots, FFTs, k-space filter
//		• PSATD update: exact vacuum propagation, optional Galilean frame,
//		  rho-aware current terms and time-averaged fields
//		• Charge conservation: current correction and Vay deposition
//		• Diagnostics: spectral ∇·E and field energy
//
// ✨ Why lvpsatd?
//
//   - No dispersion error for light in vacuum at any time step
//   - Blocks processed concurrently with a bounded worker count
//   - Panics only on programmer error; every configuration error is returned
//
// Packages:
//
//	grid/      : shapes, staggering, flat real/complex arrays, block layouts
//	kspace/    : wavevector grids, stencil-modified k, half-cell shifts
//	transform/ : separable 3D FFT over each mode of a Complex array
//	fields/    : per-block spectral slots, transforms and filter
//	psatd/     : coefficients, Push, corrections, diagnostics
//	solver/    : per-level facade with step sequencing and metrics
//	metrics/   : Prometheus collectors for solver calls
//	config/    : YAML + environment configuration (viper)
//	cmd/psatd-wave : plane-wave propagation CLI
//
// Typical step on one level:
//
//	forward(E, B, J, ρ) → [correction] → Push → [filter] → backward(E, B)
//
//	go get github.com/katalvlaran/lvpsatd
package lvpsatd
