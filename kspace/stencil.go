package kspace

import "math"

// StencilCoefficients returns the Fornberg weights c_1..c_m (m = order/2) of
// the centred or staggered finite-difference first derivative of the given
// even order. Index 0 holds the seed of the recurrence and is not a weight.
//
// Centred:   f'(x) ≈ Σ c_n [f(x+n dx) − f(x−n dx)] / (2 n dx)
// Staggered: f'(x) ≈ Σ c_n [f(x+(n−½)dx) − f(x−(n−½)dx)] / ((2n−1) dx)
//
// Panics on an invalid order; callers validate with ValidateOrder first.
func StencilCoefficients(order int, c Centering) []float64 {
	if order == InfiniteOrder || ValidateOrder(order) != nil {
		panic("kspace: StencilCoefficients: order must be a finite even order")
	}
	m := order / 2
	coef := make([]float64, m+1)
	if c == Centered {
		coef[0] = -2
		for n := 1; n <= m; n++ {
			coef[n] = -float64(m+1-n) / float64(m+n) * coef[n-1]
		}

		return coef
	}
	prod := 1.0
	for k := 1; k <= m; k++ {
		prod *= float64(m+k) / float64(4*k)
	}
	coef[0] = 4 * float64(m) * prod * prod
	for n := 1; n <= m; n++ {
		coef[n] = -float64((2*n-3)*(m+1-n)) / float64((2*n-1)*(m-1+n)) * coef[n-1]
	}

	return coef
}

// modifiedK maps the true wavevector k to the eigenvalue of the stencil
// derivative: i·k_mod·f̂ is the spectral image of the stencil applied to f.
func modifiedK(k []float64, dx float64, order int, c Centering) []float64 {
	out := make([]float64, len(k))
	if order == InfiniteOrder {
		copy(out, k)
		return out
	}
	coef := StencilCoefficients(order, c)
	for i, kv := range k {
		var s float64
		for n := 1; n < len(coef); n++ {
			h := float64(n) * dx
			if c == Staggered {
				h = (float64(n) - 0.5) * dx
			}
			s += coef[n] * math.Sin(kv*h) / h
		}
		out[i] = s
	}

	return out
}
