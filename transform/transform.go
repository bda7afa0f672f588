package transform

import (
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/mjibson/go-dsp/fft"
)

// Transformer is the contract of the physical↔spectral primitive.
//
// Forward maps every mode of c from physical to spectral space in place,
// without normalisation. Backward is its exact inverse.
type Transformer interface {
	Forward(c *grid.Complex)
	Backward(c *grid.Complex)
}

// FFT is the separable discrete Fourier transform along x, y and z.
type FFT struct{}

// Compile-time assertion.
var _ Transformer = FFT{}

// Forward applies the unnormalised forward DFT along every axis of every mode.
// Complexity: O(Size·log N) per axis.
func (FFT) Forward(c *grid.Complex) {
	apply(c, fft.FFT)
}

// Backward applies the 1/N-normalised inverse DFT along every axis of every mode.
func (FFT) Backward(c *grid.Complex) {
	apply(c, fft.IFFT)
}

// apply runs the 1-D line transform f along each axis whose extent is > 1.
func apply(c *grid.Complex, f func([]complex128) []complex128) {
	s := c.Shape()
	dims := s.Dims()
	// strides of the row-major (i, j, k) layout inside one mode
	strides := [grid.NumAxes]int{s.Ny * s.Nz, s.Nz, 1}
	var line []complex128
	for m := 0; m < s.Modes; m++ {
		data := c.Mode(m)
		for a := grid.X; a <= grid.Z; a++ {
			n := dims[a]
			if n == 1 {
				continue
			}
			if cap(line) < n {
				line = make([]complex128, n)
			}
			line = line[:n]
			stride := strides[a]
			for _, base := range lineStarts(dims, a) {
				for p := 0; p < n; p++ {
					line[p] = data[base+p*stride]
				}
				out := f(line)
				for p := 0; p < n; p++ {
					data[base+p*stride] = out[p]
				}
			}
		}
	}
}

// lineStarts returns the flat offset of the first element of every line
// running along axis a.
func lineStarts(dims [grid.NumAxes]int, a grid.Axis) []int {
	nx, ny, nz := dims[0], dims[1], dims[2]
	starts := make([]int, 0, nx*ny*nz/dims[a])
	switch a {
	case grid.X:
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				starts = append(starts, j*nz+k)
			}
		}
	case grid.Y:
		for i := 0; i < nx; i++ {
			for k := 0; k < nz; k++ {
				starts = append(starts, i*ny*nz+k)
			}
		}
	default:
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				starts = append(starts, (i*ny+j)*nz)
			}
		}
	}

	return starts
}
