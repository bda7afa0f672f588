package psatd

import (
	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
)

// CurrentCorrection projects the spectral current of every block onto the
// charge-conserving one:
//
//	J ← J − (k·J − Kappa·(RhoNew − T2·RhoOld))·k/|k|²
//
// Without a frame velocity this makes i k·J + (RhoNew − RhoOld)/dt vanish.
// Only Jx, Jy and Jz are written; k = 0 is left unchanged.
// Panics when a block has no coefficients.
func (a *Algorithm) CurrentCorrection(store *fields.Store) {
	a.checkStore(store)
	cen := a.cfg.Centering()
	store.ForEachBlock(func(b *fields.Block) {
		co := a.Coefficients(b.ID())
		vec := b.Vectors()
		kxs, kys, kzs := vec.Modified(grid.X, cen), vec.Modified(grid.Y, cen), vec.Modified(grid.Z, cen)
		jx, jy, jz := slot(b, Jx), slot(b, Jy), slot(b, Jz)
		ro, rn := slot(b, RhoOld), slot(b, RhoNew)

		p := 0
		for _, mx := range kxs {
			for _, my := range kys {
				for _, mz := range kzs {
					k2 := mx*mx + my*my + mz*mz
					if k2 != 0 {
						kx, ky, kz := complex(mx, 0), complex(my, 0), complex(mz, 0)
						kj := kx*jx[p] + ky*jy[p] + kz*jz[p]
						d := (kj - co.Kappa[p]*(rn[p]-co.T2[p]*ro[p])) / complex(k2, 0)
						jx[p] -= d * kx
						jy[p] -= d * ky
						jz[p] -= d * kz
					}
					p++
				}
			}
		}
	})
}

// VayDeposition turns the deposited quantity D = −i k J, held per axis in
// the J slots, into the current: J = i·D/k, and 0 where that axis' k is 0.
// Panics when a block has no coefficients.
func (a *Algorithm) VayDeposition(store *fields.Store) {
	a.checkStore(store)
	cen := a.cfg.Centering()
	store.ForEachBlock(func(b *fields.Block) {
		vec := b.Vectors()
		k := [grid.NumAxes][]float64{
			vec.Modified(grid.X, cen), vec.Modified(grid.Y, cen), vec.Modified(grid.Z, cen),
		}
		dims := b.Shape().Dims()
		for ax, idx := range J {
			d := slot(b, idx)
			ka := k[ax]
			for p := range d {
				// axis index of p under the row-major layout
				var n int
				switch grid.Axis(ax) {
				case grid.X:
					n = p / (dims[grid.Y] * dims[grid.Z])
				case grid.Y:
					n = (p / dims[grid.Z]) % dims[grid.Y]
				default:
					n = p % dims[grid.Z]
				}
				if ka[n] == 0 {
					d[p] = 0
					continue
				}
				d[p] = complex(0, 1) * d[p] / complex(ka[n], 0)
			}
		}
	})
}
