// Package grid offers the flat, block-local arrays the spectral solver works on.
//
// The grid package provides:
//
//   - Shape and Stagger, describing the index space of one grid block
//     (Nx × Ny × Nz cells, Modes components per cell) and where a field
//     component sits inside a cell.
//   - Real, a physical-space scalar array with error-returning accessors.
//   - Complex, a spectral-space array sharing the same index space.
//   - Box/Layout/MultiReal, the level-wide block decomposition and the
//     per-block collection of physical arrays.
//
// All arrays are stored mode-major and then row-major over (i, j, k), i.e. the
// offset of (m, i, j, k) is ((m*Nx+i)*Ny+j)*Nz+k, so the last axis is the
// contiguous one.
//
// Arrays are never resized after creation. Hot kernels in other packages work
// directly on the flat buffers returned by Data().
package grid
