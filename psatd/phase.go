package psatd

import (
	"math"
	"math/cmplx"
)

// Below these |w·dt| the closed forms lose digits to cancellation and the
// Taylor series is used instead.
const (
	phiSeries  = 1e-8
	sincSeries = 1e-4
	gSeries    = 1e-3
)

// phi returns ∫₀^dt e^{iwu} du = (e^{iw·dt} − 1)/(iw), dt at w = 0.
// e^{ix} − 1 is written as i·sin x − 2·sin²(x/2) so no digits are lost.
func phi(w, dt float64) complex128 {
	x := w * dt
	if math.Abs(x) < phiSeries {
		return complex(dt, 0.5*x*dt)
	}
	h := math.Sin(0.5 * x)

	return complex(math.Sin(x)/w, 2*h*h/w)
}

// window returns the mean of e^{iwu} over u ∈ [−dt/2, 3dt/2]:
// e^{iw·dt/2}·sin(w·dt)/(w·dt).
func window(w, dt float64) complex128 {
	x := w * dt
	sc := 1 - x*x/6
	if math.Abs(x) >= sincSeries {
		sc = math.Sin(x) / x
	}

	return cmplx.Rect(sc, 0.5*x)
}

// Raw moments of u over the averaging window [−dt/2, 3dt/2].
func windowMoments(dt float64) (m1, m2, m3, m4 float64) {
	return dt / 2, 7 * dt * dt / 12, 5 * dt * dt * dt / 8, 61 * dt * dt * dt * dt / 80
}

// windowPhi returns the window mean of ∫₀^u e^{iws} ds, i.e.
// (window(w) − 1)/(iw), with the moment series near w = 0.
func windowPhi(w, dt float64) complex128 {
	if math.Abs(w*dt) < gSeries {
		m1, m2, m3, m4 := windowMoments(dt)
		return complex(m1-w*w*m3/6, w*m2/2-w*w*w*m4/24)
	}

	return (window(w, dt) - 1) / complex(0, w)
}
