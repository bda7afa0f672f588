package psatd

import (
	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
)

// Push advances E and B of every block by one time step, in place, from the
// current J and RhoOld/RhoNew slots. With time averaging it also overwrites
// the *Avg slots. Every index reads only pre-call values.
//
// Panics when a block has no coefficients or the store has too few slots.
//
// Complexity: O(total spectral points), no trigonometric evaluation.
func (a *Algorithm) Push(store *fields.Store) {
	a.checkStore(store)
	cen, withRho := a.cfg.Centering(), a.cfg.UpdateWithRho
	store.ForEachBlock(func(b *fields.Block) {
		pushBlock(b, a.Coefficients(b.ID()), cen, withRho)
	})
}

func slot(b *fields.Block, i Index) []complex128 { return b.Slot(int(i)).Data() }

func pushBlock(b *fields.Block, co *Coefficients, cen kspace.Centering, withRho bool) {
	vec := b.Vectors()
	kxs, kys, kzs := vec.Modified(grid.X, cen), vec.Modified(grid.Y, cen), vec.Modified(grid.Z, cen)
	ex, ey, ez := slot(b, Ex), slot(b, Ey), slot(b, Ez)
	bx, by, bz := slot(b, Bx), slot(b, By), slot(b, Bz)
	jx, jy, jz := slot(b, Jx), slot(b, Jy), slot(b, Jz)
	ro, rn := slot(b, RhoOld), slot(b, RhoNew)

	av := co.Avg
	var exa, eya, eza, bxa, bya, bza []complex128
	if av != nil {
		exa, eya, eza = slot(b, ExAvg), slot(b, EyAvg), slot(b, EzAvg)
		bxa, bya, bza = slot(b, BxAvg), slot(b, ByAvg), slot(b, BzAvg)
	}

	const i = complex(0, 1)
	p := 0
	for _, mx := range kxs {
		kx := complex(mx, 0)
		for _, my := range kys {
			ky := complex(my, 0)
			for _, mz := range kzs {
				kz := complex(mz, 0)

				e0, e1, e2 := ex[p], ey[p], ez[p]
				b0, b1, b2 := bx[p], by[p], bz[p]
				j0, j1, j2 := jx[p], jy[p], jz[p]

				// k×B, k×E, k×J
				kb0, kb1, kb2 := ky*b2-kz*b1, kz*b0-kx*b2, kx*b1-ky*b0
				ke0, ke1, ke2 := ky*e2-kz*e1, kz*e0-kx*e2, kx*e1-ky*e0
				kj0, kj1, kj2 := ky*j2-kz*j1, kz*j0-kx*j2, kx*j1-ky*j0

				t2 := co.T2[p]
				tc := t2 * complex(co.C[p], 0)
				ts := t2 * complex(co.S[p], 0)
				x4 := co.X4[p]
				ix1 := i * co.X1[p]

				// longitudinal source along k
				var l complex128
				if withRho {
					l = -i * (co.X2[p]*rn[p] - t2*co.X3[p]*ro[p])
				} else {
					l = co.X2[p]*(kx*e0+ky*e1+kz*e2) + co.X3[p]*(kx*j0+ky*j1+kz*j2)
				}

				ex[p] = tc*e0 + i*c2*ts*kb0 + x4*j0 + l*kx
				ey[p] = tc*e1 + i*c2*ts*kb1 + x4*j1 + l*ky
				ez[p] = tc*e2 + i*c2*ts*kb2 + x4*j2 + l*kz

				bx[p] = tc*b0 - i*ts*ke0 + ix1*kj0
				by[p] = tc*b1 - i*ts*ke1 + ix1*kj1
				bz[p] = tc*b2 - i*ts*ke2 + ix1*kj2

				if av != nil {
					psi1 := av.Psi1[p]
					ip2 := i * av.Psi2[p]
					jc := av.Jcoef[p]
					ia1 := i * av.A1[p]
					la := -i * (av.RhoNew[p]*rn[p] - av.RhoOld[p]*ro[p])

					exa[p] = psi1*e0 + c2*ip2*kb0 + jc*j0 + la*kx
					eya[p] = psi1*e1 + c2*ip2*kb1 + jc*j1 + la*ky
					eza[p] = psi1*e2 + c2*ip2*kb2 + jc*j2 + la*kz

					bxa[p] = psi1*b0 - ip2*ke0 + ia1*kj0
					bya[p] = psi1*b1 - ip2*ke1 + ia1*kj1
					bza[p] = psi1*b2 - ip2*ke2 + ia1*kj2
				}
				p++
			}
		}
	}
}
