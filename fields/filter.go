package fields

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpsatd/grid"
)

// InitFilter builds the k-space filter kernel of every block.
// Per axis with npass passes of the 1-2-1 binomial stencil:
//
//	f(k) = cos²(k·dx/2)^npass · (1 + npass·sin²(k·dx/2) if compensation)
//
// and the kernel is the product over the three axes. npass == 0 on an axis
// gives exactly 1 on that axis. Rebuilding replaces any earlier kernel.
// Errors: ErrInvalidFilter.
func (s *Store) InitFilter(npass [grid.NumAxes]int, compensation bool) error {
	for a, n := range npass {
		if n < 0 {
			return fmt.Errorf("fields.InitFilter: axis %s npass=%d: %w", grid.Axis(a), n, ErrInvalidFilter)
		}
	}
	dx := s.space.CellSize()
	for _, b := range s.blocks {
		var f [grid.NumAxes][]float64
		for a := grid.X; a <= grid.Z; a++ {
			f[a] = axisFilter(b.vec.K(a), dx[a], npass[a], compensation)
		}
		kern := make([]float64, b.shape.Len())
		p := 0
		for _, fx := range f[grid.X] {
			for _, fy := range f[grid.Y] {
				for _, fz := range f[grid.Z] {
					kern[p] = fx * fy * fz
					p++
				}
			}
		}
		b.filter = kern
	}

	return nil
}

func axisFilter(k []float64, dx float64, npass int, compensation bool) []float64 {
	out := make([]float64, len(k))
	for i, kv := range k {
		if npass == 0 {
			out[i] = 1
			continue
		}
		sn := math.Sin(0.5 * kv * dx)
		cs := math.Cos(0.5 * kv * dx)
		v := math.Pow(cs*cs, float64(npass))
		if compensation {
			v *= 1 + float64(npass)*sn*sn
		}
		out[i] = v
	}

	return out
}

// ApplyFilter multiplies slot `slot` of every block by its filter kernel.
// Panics before InitFilter or on a bad slot.
func (s *Store) ApplyFilter(slot int) {
	s.checkFilter()
	for _, b := range s.blocks {
		b.checkSlot(slot)
	}
	s.ForEachBlock(func(b *Block) { b.filterSlot(slot) })
}

// ApplyFilterVector filters three slots, typically the components of a vector field.
func (s *Store) ApplyFilterVector(slot1, slot2, slot3 int) {
	s.checkFilter()
	for _, b := range s.blocks {
		b.checkSlot(slot1)
		b.checkSlot(slot2)
		b.checkSlot(slot3)
	}
	s.ForEachBlock(func(b *Block) {
		b.filterSlot(slot1)
		b.filterSlot(slot2)
		b.filterSlot(slot3)
	})
}

func (s *Store) checkFilter() {
	for _, b := range s.blocks {
		if b.filter == nil {
			panic(fmt.Sprintf("%s: block %d", panicNoFilter, b.id))
		}
	}
}

func (b *Block) filterSlot(slot int) {
	c := b.slots[slot]
	for m := 0; m < b.shape.Modes; m++ {
		data := c.Mode(m)
		for p, f := range b.filter {
			data[p] *= complex(f, 0)
		}
	}
}
