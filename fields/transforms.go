package fields

import (
	"fmt"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
)

// ForwardTransform moves a physical array into spectral slot `slot` of block id.
// Cell-centred axes of src are shifted back onto the nodal frame after the FFT.
// Panics on an unknown block, a bad slot or a shape mismatch.
//
// Complexity: O(Size·log N).
func (s *Store) ForwardTransform(id grid.BlockID, src *grid.Real, slot int) {
	b := s.Block(id)
	b.checkSlot(slot)
	b.checkShape(src)

	dst := b.slots[slot]
	loadReal(dst.Data(), src.Data())
	s.opts.transformer.Forward(dst)
	b.applyShift(dst, src.Stagger(), kspace.Forward)
}

// ForwardTransformPair moves two physical arrays with one complex FFT.
// The packed spectrum Z of a + i·b is split with the Hermitian symmetry of
// real inputs: A(k) = (Z(k) + conj Z(−k))/2, B(k) = (Z(k) − conj Z(−k))/(2i).
// Each result is then shifted with its own staggering.
// Panics when slot1 == slot2 or on any ForwardTransform precondition.
func (s *Store) ForwardTransformPair(id grid.BlockID, src1 *grid.Real, slot1 int, src2 *grid.Real, slot2 int) {
	b := s.Block(id)
	b.checkSlot(slot1)
	b.checkSlot(slot2)
	if slot1 == slot2 {
		panic(fmt.Sprintf("%s: pair uses slot %d twice", panicBadSlot, slot1))
	}
	b.checkShape(src1)
	b.checkShape(src2)

	z := b.scratch[0]
	zd, ad, bd := z.Data(), src1.Data(), src2.Data()
	for p := range zd {
		zd[p] = complex(ad[p], bd[p])
	}
	s.opts.transformer.Forward(z)

	d1, d2 := b.slots[slot1].Data(), b.slots[slot2].Data()
	sh := b.shape
	for m := 0; m < sh.Modes; m++ {
		for i := 0; i < sh.Nx; i++ {
			ni := b.vec.Neg(grid.X, i)
			for j := 0; j < sh.Ny; j++ {
				nj := b.vec.Neg(grid.Y, j)
				p := sh.Offset(m, i, j, 0)
				q := sh.Offset(m, ni, nj, 0)
				for k := 0; k < sh.Nz; k++ {
					nk := b.vec.Neg(grid.Z, k)
					zp := zd[p+k]
					zq := conj(zd[q+nk])
					d1[p+k] = 0.5 * (zp + zq)
					d2[p+k] = complex(0, -0.5) * (zp - zq)
				}
			}
		}
	}
	b.applyShift(b.slots[slot1], src1.Stagger(), kspace.Forward)
	b.applyShift(b.slots[slot2], src2.Stagger(), kspace.Forward)
}

// BackwardTransform writes the real part of the inverse transform of slot
// `slot` into dst. The slot itself is left untouched.
// Panics on an unknown block, a bad slot or a shape mismatch.
func (s *Store) BackwardTransform(id grid.BlockID, dst *grid.Real, slot int) {
	b := s.Block(id)
	b.checkSlot(slot)
	b.checkShape(dst)

	z := b.scratch[0]
	copy(z.Data(), b.slots[slot].Data())
	b.applyShift(z, dst.Stagger(), kspace.Backward)
	s.opts.transformer.Backward(z)
	storeReal(dst.Data(), z.Data(), false)
}

// BackwardTransformPair inverts two slots with one complex FFT:
// IFFT(A + i·B) has A's image as real part and B's as imaginary part.
// Each shifted slot is first reduced to its Hermitian part
// (X(k) + conj X(−k))/2, whose image is the real part BackwardTransform keeps.
// Without it an imaginary Nyquist bin or a half-cell shift would leak one
// field into the other.
// Panics when slot1 == slot2 or on any BackwardTransform precondition.
func (s *Store) BackwardTransformPair(id grid.BlockID, dst1 *grid.Real, slot1 int, dst2 *grid.Real, slot2 int) {
	b := s.Block(id)
	b.checkSlot(slot1)
	b.checkSlot(slot2)
	if slot1 == slot2 {
		panic(fmt.Sprintf("%s: pair uses slot %d twice", panicBadSlot, slot1))
	}
	b.checkShape(dst1)
	b.checkShape(dst2)

	z, w := b.scratch[0], b.scratch[1]
	copy(z.Data(), b.slots[slot1].Data())
	copy(w.Data(), b.slots[slot2].Data())
	b.applyShift(z, dst1.Stagger(), kspace.Backward)
	b.applyShift(w, dst2.Stagger(), kspace.Backward)
	b.hermitianPart(z)
	b.hermitianPart(w)
	zd, wd := z.Data(), w.Data()
	for p := range zd {
		zd[p] += complex(0, 1) * wd[p]
	}
	s.opts.transformer.Backward(z)
	storeReal(dst1.Data(), zd, false)
	storeReal(dst2.Data(), zd, true)
}

// TransformToScratch transforms src into a block-private scratch buffer and
// returns it. The buffer is valid until the next transform on the same block.
// Diagnostics use it to read a physical field spectrally without a slot.
func (s *Store) TransformToScratch(id grid.BlockID, src *grid.Real) *grid.Complex {
	b := s.Block(id)
	b.checkShape(src)

	w := b.scratch[1]
	loadReal(w.Data(), src.Data())
	s.opts.transformer.Forward(w)
	b.applyShift(w, src.Stagger(), kspace.Forward)

	return w
}

// applyShift multiplies c by the half-cell shift factors of every
// cell-centred axis of st. Nodal data is left unchanged.
func (b *Block) applyShift(c *grid.Complex, st grid.Stagger, d kspace.Direction) {
	if st.IsNodal() {
		return
	}
	var f [grid.NumAxes][]complex128
	dims := b.shape.Dims()
	for a := grid.X; a <= grid.Z; a++ {
		if st[a] && dims[a] > 1 {
			f[a] = b.vec.Shift(a, d)
		} else {
			f[a] = ones(dims[a])
		}
	}
	data := c.Data()
	sh := b.shape
	for m := 0; m < sh.Modes; m++ {
		for i := 0; i < sh.Nx; i++ {
			fi := f[grid.X][i]
			for j := 0; j < sh.Ny; j++ {
				fij := fi * f[grid.Y][j]
				p := sh.Offset(m, i, j, 0)
				for k, fk := range f[grid.Z] {
					data[p+k] *= fij * fk
				}
			}
		}
	}
}

// hermitianPart replaces c with (c(k) + conj c(−k))/2, mode by mode.
// Each (k, −k) pair is visited once; self-paired bins keep their real part.
func (b *Block) hermitianPart(c *grid.Complex) {
	data := c.Data()
	sh := b.shape
	for m := 0; m < sh.Modes; m++ {
		for i := 0; i < sh.Nx; i++ {
			ni := b.vec.Neg(grid.X, i)
			for j := 0; j < sh.Ny; j++ {
				nj := b.vec.Neg(grid.Y, j)
				p := sh.Offset(m, i, j, 0)
				q := sh.Offset(m, ni, nj, 0)
				for k := 0; k < sh.Nz; k++ {
					pp, qq := p+k, q+b.vec.Neg(grid.Z, k)
					switch {
					case pp == qq:
						data[pp] = complex(real(data[pp]), 0)
					case pp < qq:
						h := 0.5 * (data[pp] + conj(data[qq]))
						data[pp], data[qq] = h, conj(h)
					}
				}
			}
		}
	}
}

func ones(n int) []complex128 {
	o := make([]complex128, n)
	for i := range o {
		o[i] = 1
	}

	return o
}

func loadReal(dst []complex128, src []float64) {
	for p, v := range src {
		dst[p] = complex(v, 0)
	}
}

func storeReal(dst []float64, src []complex128, imagPart bool) {
	if imagPart {
		for p, v := range src {
			dst[p] = imag(v)
		}
		return
	}
	for p, v := range src {
		dst[p] = real(v)
	}
}

func conj(z complex128) complex128 { return complex(real(z), -imag(z)) }
