package fields

import (
	"fmt"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
	"golang.org/x/sync/errgroup"
)

// Block is the spectral state of one grid block.
type Block struct {
	id      grid.BlockID
	shape   grid.Shape
	vec     *kspace.Vectors
	slots   []*grid.Complex
	scratch [2]*grid.Complex
	filter  []float64 // one value per cell of a mode; nil until InitFilter
}

// ID returns the block id.
func (b *Block) ID() grid.BlockID { return b.id }

// Shape returns the index space shared by every slot of the block.
func (b *Block) Shape() grid.Shape { return b.shape }

// Vectors returns the wavevector tables of the block.
func (b *Block) Vectors() *kspace.Vectors { return b.vec }

// NumSlots returns the number of spectral slots.
func (b *Block) NumSlots() int { return len(b.slots) }

// Slot returns spectral slot i. Panics when i is out of range.
func (b *Block) Slot(i int) *grid.Complex {
	b.checkSlot(i)
	return b.slots[i]
}

// Filter returns the k-space filter kernel, or nil before InitFilter.
func (b *Block) Filter() []float64 { return b.filter }

func (b *Block) checkSlot(i int) {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("%s: block %d slot %d (have %d)", panicBadSlot, b.id, i, len(b.slots)))
	}
}

func (b *Block) checkShape(r *grid.Real) {
	if r == nil || r.Shape() != b.shape {
		panic(fmt.Sprintf("%s: block %d", panicShape, b.id))
	}
}

// Store is the registry of spectral slots for every block of one level.
type Store struct {
	space   *kspace.Space
	nfields int
	blocks  []*Block
	byID    map[grid.BlockID]*Block
	opts    options
}

// New creates an empty Store whose blocks will each hold nfields slots.
// nfields is fixed for the lifetime of the Store.
// Errors: ErrNoFields.
func New(space *kspace.Space, nfields int, opts ...Option) (*Store, error) {
	if space == nil {
		panic("fields: New: nil space")
	}
	if nfields <= 0 {
		return nil, fmt.Errorf("fields.New(%d): %w", nfields, ErrNoFields)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		space:   space,
		nfields: nfields,
		byID:    make(map[grid.BlockID]*Block),
		opts:    o,
	}, nil
}

// Register allocates the slots, scratch buffers and wavevector tables of a block.
// Errors: ErrDuplicateBlock, grid.ErrInvalidShape.
//
// Complexity: O(nfields·Size).
func (s *Store) Register(id grid.BlockID, shape grid.Shape) error {
	if _, dup := s.byID[id]; dup {
		return fmt.Errorf("fields.Register(%d): %w", id, ErrDuplicateBlock)
	}
	vec, err := s.space.ForShape(shape)
	if err != nil {
		return fmt.Errorf("fields.Register(%d): %w", id, err)
	}
	b := &Block{id: id, shape: shape, vec: vec, slots: make([]*grid.Complex, s.nfields)}
	for i := range b.slots {
		if b.slots[i], err = grid.NewComplex(shape); err != nil {
			return fmt.Errorf("fields.Register(%d): %w", id, err)
		}
	}
	for i := range b.scratch {
		if b.scratch[i], err = grid.NewComplex(shape); err != nil {
			return fmt.Errorf("fields.Register(%d): %w", id, err)
		}
	}
	s.blocks = append(s.blocks, b)
	s.byID[id] = b

	return nil
}

// RegisterLayout registers every box of l in order.
func (s *Store) RegisterLayout(l grid.Layout) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("fields.RegisterLayout: %w", err)
	}
	for _, box := range l {
		if err := s.Register(box.ID, box.Shape); err != nil {
			return err
		}
	}

	return nil
}

// Space returns the wavevector space of the level.
func (s *Store) Space() *kspace.Space { return s.space }

// NumFields returns the slot count of every block.
func (s *Store) NumFields() int { return s.nfields }

// Blocks returns the registered blocks in registration order.
func (s *Store) Blocks() []*Block { return s.blocks }

// Lookup returns the block with the given id.
func (s *Store) Lookup(id grid.BlockID) (*Block, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// Block returns the block with the given id. Panics when unknown.
func (s *Store) Block(id grid.BlockID) *Block {
	b, ok := s.byID[id]
	if !ok {
		panic(fmt.Sprintf("%s: %d", panicUnknownBlock, id))
	}

	return b
}

// ForEachBlock calls fn once per block, running up to the configured number
// of blocks concurrently. fn must only touch the block it is given.
// With one worker or one block, fn runs on the calling goroutine.
func (s *Store) ForEachBlock(fn func(b *Block)) {
	if s.opts.workers <= 1 || len(s.blocks) <= 1 {
		for _, b := range s.blocks {
			fn(b)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(s.opts.workers)
	for _, b := range s.blocks {
		b := b
		g.Go(func() error {
			fn(b)
			return nil
		})
	}
	_ = g.Wait()
}
