// Package fields is the spectral field store of one refinement level.
//
// A Store owns, per registered grid block, a fixed number of named spectral
// slots (complex arrays sharing the block's index space), the block's
// wavevector tables, an optional k-space filter kernel and private scratch
// buffers. It moves data between physical arrays (grid.Real) and spectral
// slots, and filters slots in place.
//
// Ownership & concurrency:
//   - A block's slots are owned by the Store; only the Store and the update
//     algorithm of the same level mutate them.
//   - Level-wide operations fan out over blocks with a bounded worker count.
//     Blocks never share storage, so no locking is needed inside a call.
//   - Calls on the same Store must not overlap.
//
// Misuse (unknown slot or block, shape mismatch between a physical array and
// its block) is a programmer error and panics.
package fields
