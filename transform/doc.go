// Package transform is the physical↔spectral primitive used by the field store.
//
// A Transformer performs an in-place, mode-batched forward transform
// (unnormalised) and its exact inverse (normalised by 1/N) on a
// grid.Complex array. The only implementation shipped here, FFT, builds the
// 3-D transform from 1-D line transforms along each non-collapsed axis using
// github.com/mjibson/go-dsp/fft, which handles arbitrary lengths.
//
// Round trip: Backward(Forward(x)) == x up to floating-point rounding.
//
// Transformers are stateless and safe for concurrent use on distinct arrays.
package transform
