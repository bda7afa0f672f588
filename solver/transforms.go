// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/metrics"
	"github.com/katalvlaran/lvpsatd/psatd"
)

// ForwardTransform moves src into slot idx of every block.
// After Push it starts a new step.
func (s *Solver) ForwardTransform(src grid.MultiReal, idx psatd.Index) {
	defer s.observe(metrics.OpForward, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginForward()
	s.forward(src, idx)
}

// ForwardTransformPair moves two arrays with one FFT per block.
func (s *Solver) ForwardTransformPair(src1 grid.MultiReal, idx1 psatd.Index, src2 grid.MultiReal, idx2 psatd.Index) {
	defer s.observe(metrics.OpForward, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkSlot(idx1, idx2)
	s.beginForward()
	s.check(src1, "forward")
	s.check(src2, "forward")
	s.store.ForEachBlock(func(b *fields.Block) {
		s.store.ForwardTransformPair(b.ID(), src1[b.ID()], int(idx1), src2[b.ID()], int(idx2))
	})
}

// BackwardTransform writes slot idx of every block into dst.
func (s *Solver) BackwardTransform(dst grid.MultiReal, idx psatd.Index) {
	defer s.observe(metrics.OpBackward, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backward(dst, idx)
}

// BackwardTransformPair writes two slots with one FFT per block.
func (s *Solver) BackwardTransformPair(dst1 grid.MultiReal, idx1 psatd.Index, dst2 grid.MultiReal, idx2 psatd.Index) {
	defer s.observe(metrics.OpBackward, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkSlot(idx1, idx2)
	s.check(dst1, "backward")
	s.check(dst2, "backward")
	s.store.ForEachBlock(func(b *fields.Block) {
		s.store.BackwardTransformPair(b.ID(), dst1[b.ID()], int(idx1), dst2[b.ID()], int(idx2))
	})
}

func (s *Solver) beginForward() {
	if s.pushed {
		s.pushed, s.corrected = false, false
	}
}

func (s *Solver) forward(src grid.MultiReal, idx psatd.Index) {
	s.checkSlot(idx)
	s.check(src, "forward")
	s.store.ForEachBlock(func(b *fields.Block) {
		s.store.ForwardTransform(b.ID(), src[b.ID()], int(idx))
	})
}

func (s *Solver) backward(dst grid.MultiReal, idx psatd.Index) {
	s.checkSlot(idx)
	s.check(dst, "backward")
	s.store.ForEachBlock(func(b *fields.Block) {
		s.store.BackwardTransform(b.ID(), dst[b.ID()], int(idx))
	})
}

// check panics unless mr holds an array of the right shape for every block
// of the level. Checking before the fan-out keeps the panic on the caller's
// goroutine.
func (s *Solver) check(mr grid.MultiReal, what string) {
	for _, box := range s.layout {
		r := mr[box.ID]
		if r == nil {
			panic(fmt.Sprintf("%s %d (%s)", panicMissingArray, box.ID, what))
		}
		if r.Shape() != box.Shape {
			panic(fmt.Sprintf("%s %d (%s)", panicShape, box.ID, what))
		}
	}
}

func (s *Solver) checkSlot(idx ...psatd.Index) {
	if len(idx) == 2 && idx[0] == idx[1] {
		panic(fmt.Sprintf("%s: pair uses %s twice", panicBadSlot, idx[0]))
	}
	for _, i := range idx {
		if i < 0 || int(i) >= s.alg.RequiredFieldCount() {
			panic(fmt.Sprintf("%s: %s", panicBadSlot, i))
		}
	}
}
