package psatd

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
)

// Coefficients is the update coefficient set of one block, indexed like the
// block's spectral slots (mode 0). Arrays are read-only after construction.
//
// With UpdateWithRho the longitudinal source weights X2/X3 multiply
// RhoNew/RhoOld; without it they multiply k·E and k·J:
//
//	X2 = (1 − C)/k²,  X3 = (S − dt)/(ε0 k²).
type Coefficients struct {
	shape grid.Shape

	C     []float64    // cos(c|k|dt)
	S     []float64    // sin(c|k|dt)/(c|k|), dt at k = 0
	T2    []complex128 // e^{i k·v dt}
	X1    []complex128 // i(k×J) weight in B
	X2    []complex128 // RhoNew weight in E (or k·E weight)
	X3    []complex128 // RhoOld weight in E (or k·J weight)
	X4    []complex128 // J weight in E
	Kappa []complex128 // k·J = Kappa·(RhoNew − T2·RhoOld) on a charge-conserving current

	// Avg is set only with TimeAveraging.
	Avg *AveragedCoefficients
}

// AveragedCoefficients weight the window-averaged E and B.
//
// The E and B updates share their self and curl weights, so six arrays cover
// the usual fifteen: Psi1 holds Psi1 and Psi3, Psi2 holds Psi2 and Psi4
// (the c² factor is applied in the push), A1 holds A1 and A2, Jcoef is the
// J weight, and RhoNew/RhoOld are the longitudinal rho weights. The real
// window integrals C1, C3, S1 and S3 only feed these and are not stored.
type AveragedCoefficients struct {
	Psi1   []complex128 // E, B weight
	Psi2   []complex128 // i c²(k×B) and −i(k×E) weight
	Jcoef  []complex128 // J weight in E
	A1     []complex128 // i(k×J) weight in B
	RhoNew []complex128
	RhoOld []complex128
}

// Shape returns the block shape the coefficients were built for.
func (c *Coefficients) Shape() grid.Shape { return c.shape }

// newCoefficients evaluates every coefficient of one block.
// MAIN DESCRIPTION:
//   - With a = k·v and b = c|k|, the propagator over [0, dt] is
//     e^{iat}(cos bt, sin bt/b); source weights are its time integrals,
//     built from phi(a ± b).
//
// Implementation:
//   - Stage 1: per index, modified k components and |k|.
//   - Stage 2: baseline set; k = 0 takes the analytic limits.
//   - Stage 3: averaged extension from window(a ± b) and windowPhi(a ± b).
//
// Complexity:
//   - Time O(Len), Space O(Len) per array.
func newCoefficients(vec *kspace.Vectors, cfg Config) *Coefficients {
	sh := vec.Shape()
	n := sh.Len()
	co := &Coefficients{
		shape: sh,
		C:     make([]float64, n),
		S:     make([]float64, n),
		T2:    make([]complex128, n),
		X1:    make([]complex128, n),
		X2:    make([]complex128, n),
		X3:    make([]complex128, n),
		X4:    make([]complex128, n),
		Kappa: make([]complex128, n),
	}
	if cfg.TimeAveraging {
		co.Avg = &AveragedCoefficients{
			Psi1:   make([]complex128, n),
			Psi2:   make([]complex128, n),
			Jcoef:  make([]complex128, n),
			A1:     make([]complex128, n),
			RhoNew: make([]complex128, n),
			RhoOld: make([]complex128, n),
		}
	}

	cen := cfg.Centering()
	kx, ky, kz := vec.Modified(grid.X, cen), vec.Modified(grid.Y, cen), vec.Modified(grid.Z, cen)
	v, dt := cfg.VGalilean, cfg.Dt
	p := 0
	for _, mx := range kx {
		for _, my := range ky {
			for _, mz := range kz {
				k2 := mx*mx + my*my + mz*mz
				a := mx*v[0] + my*v[1] + mz*v[2]
				co.set(p, k2, a, cfg)
				if co.Avg != nil {
					co.Avg.set(p, k2, a, co.T2[p], co.Kappa[p], dt)
				}
				p++
			}
		}
	}

	return co
}

func (co *Coefficients) set(p int, k2, a float64, cfg Config) {
	dt := cfg.Dt
	b := C * math.Sqrt(k2)

	cs := math.Cos(b * dt)
	s := dt
	if b != 0 {
		s = math.Sin(b*dt) / b
	}
	t2 := cmplx.Rect(1, a*dt)

	pp, pm := phi(a+b, dt), phi(a-b, dt)
	i1 := (pp + pm) / 2
	i2 := complex(dt*dt/2, 0)
	if b != 0 {
		i2 = (pp - pm) / complex(0, 2*b)
	}
	x4 := -i1 / Eps0
	kappa := complex(0, 1) / phi(a, dt)

	var x2, x3 complex128
	switch {
	case cfg.UpdateWithRho && k2 == 0:
		x2 = complex(c2*dt*dt/(6*Eps0), 0)
		x3 = complex(-c2*dt*dt/(3*Eps0), 0)
	case cfg.UpdateWithRho:
		q := complex(0, Eps0) * x4 * kappa
		x2 = (1 - q) / complex(Eps0*k2, 0)
		x3 = (complex(cs, 0) - q) / complex(Eps0*k2, 0)
	case k2 == 0:
		x2 = complex(c2*dt*dt/2, 0)
		x3 = complex(-c2*dt*dt*dt/(6*Eps0), 0)
	default:
		x2 = complex((1-cs)/k2, 0)
		x3 = complex((s-dt)/(Eps0*k2), 0)
	}

	co.C[p], co.S[p], co.T2[p] = cs, s, t2
	co.X1[p], co.X2[p], co.X3[p], co.X4[p] = i2/Eps0, x2, x3, x4
	co.Kappa[p] = kappa
}

func (av *AveragedCoefficients) set(p int, k2, a float64, t2, kappa complex128, dt float64) {
	b := C * math.Sqrt(k2)
	fp, fm := window(a+b, dt), window(a-b, dt)
	gp, gm := windowPhi(a+b, dt), windowPhi(a-b, dt)

	psi1 := (fp + fm) / 2
	psi2 := complex(dt/2, 0)
	_, m2, _, _ := windowMoments(dt)
	a1 := complex(m2/(2*Eps0), 0)
	if b != 0 {
		psi2 = (fp - fm) / complex(0, 2*b)
		a1 = (gp - gm) / complex(0, 2*b*Eps0)
	}
	jc := -(gp + gm) / (2 * Eps0)

	av.Psi1[p], av.Psi2[p], av.Jcoef[p], av.A1[p] = psi1, psi2, jc, a1
	if k2 == 0 {
		av.RhoNew[p], av.RhoOld[p] = 0, 0
		return
	}
	ek2 := complex(Eps0*k2, 0)
	ik := complex(0, 1) * jc * kappa / complex(k2, 0)
	g := windowPhi(a, dt) / phi(a, dt)
	av.RhoNew[p] = g/ek2 - ik
	av.RhoOld[p] = psi1/ek2 - (window(a, dt)-t2*g)/ek2 - ik*t2
}
