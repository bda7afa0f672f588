package psatd

import (
	"fmt"

	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"gonum.org/v1/gonum/floats"
)

// ComputeSpectralDivE computes ∇·E of the physical arrays e into out,
// block by block: each component is transformed into scratch, i k·E is
// accumulated in the DivE slot, and the slot is transformed back.
// It mutates only the DivE slot and the block scratch buffers; E, B, J and
// rho slots keep their values.
//
// Panics when the store has too few slots or a block is missing from e or out.
func (a *Algorithm) ComputeSpectralDivE(store *fields.Store, e [grid.NumAxes]grid.MultiReal, out grid.MultiReal) {
	if store.NumFields() < NumFieldsBaseline {
		panic(fmt.Sprintf("%s: %d < %d", panicSlots, store.NumFields(), NumFieldsBaseline))
	}
	for _, b := range store.Blocks() {
		for ax := range e {
			if e[ax][b.ID()] == nil {
				panic(fmt.Sprintf("%s %d (E%s)", panicMissingArray, b.ID(), grid.Axis(ax)))
			}
		}
		if out[b.ID()] == nil {
			panic(fmt.Sprintf("%s %d (divE)", panicMissingArray, b.ID()))
		}
	}

	cen := a.cfg.Centering()
	store.ForEachBlock(func(b *fields.Block) {
		div := b.Slot(int(DivE))
		div.Zero()
		d := div.Data()
		dims := b.Shape().Dims()
		strides := [grid.NumAxes]int{dims[grid.Y] * dims[grid.Z], dims[grid.Z], 1}
		for ax := grid.X; ax <= grid.Z; ax++ {
			w := store.TransformToScratch(b.ID(), e[ax][b.ID()]).Data()
			k := b.Vectors().Modified(ax, cen)
			for p := range d {
				n := (p / strides[ax]) % dims[ax]
				d[p] += complex(0, k[n]) * w[p]
			}
		}
		store.BackwardTransform(b.ID(), out[b.ID()], int(DivE))
	})
}

// FieldEnergy returns the electromagnetic energy held in the E and B slots,
//
//	W = Σ_cells (ε0/2·|E|² + |B|²/(2μ0))·dV,
//
// evaluated in spectral space through Parseval's identity. Read-only.
func (a *Algorithm) FieldEnergy(store *fields.Store) float64 {
	blocks := store.Blocks()
	if len(blocks) == 0 {
		return 0
	}
	if store.NumFields() < NumFieldsBaseline {
		panic(fmt.Sprintf("%s: %d < %d", panicSlots, store.NumFields(), NumFieldsBaseline))
	}
	pos := make(map[grid.BlockID]int, len(blocks))
	for i, b := range blocks {
		pos[b.ID()] = i
	}
	dv := store.Space().CellVolume()
	per := make([]float64, len(blocks))
	store.ForEachBlock(func(b *fields.Block) {
		var we, wb float64
		for _, idx := range E {
			we += sumSquares(slot(b, idx))
		}
		for _, idx := range B {
			wb += sumSquares(slot(b, idx))
		}
		per[pos[b.ID()]] = (0.5*Eps0*we + 0.5*wb/Mu0) * dv / float64(b.Shape().Len())
	})

	return floats.Sum(per)
}

func sumSquares(z []complex128) float64 {
	var s float64
	for _, v := range z {
		s += real(v)*real(v) + imag(v)*imag(v)
	}

	return s
}
