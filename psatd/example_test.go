package psatd_test

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/sirupsen/logrus"
)

// ExampleAlgorithm_Push advances a single vacuum mode by a quarter period.
func ExampleAlgorithm_Push() {
	log := logrus.New()
	log.SetOutput(io.Discard)

	orders := [3]int{kspace.InfiniteOrder, kspace.InfiniteOrder, kspace.InfiniteOrder}
	const nz, dz = 16, 1.0
	k := 2 * math.Pi / (nz * dz) // first mode
	steps := 8
	dt := math.Pi / 2 / (psatd.C * k) / float64(steps)

	alg, _ := psatd.New(psatd.Config{Orders: orders, Nodal: true, Dt: dt, UpdateWithRho: true},
		psatd.WithLogger(log))
	sp, _ := kspace.New([3]float64{1, 1, dz}, orders)
	st, _ := fields.New(sp, alg.RequiredFieldCount())
	_ = st.Register(0, grid.Shape{Nx: 1, Ny: 1, Nz: nz, Modes: 1})
	_ = alg.InitializeCoefficients(st)

	b := st.Block(0)
	b.Slot(int(psatd.Ex)).Data()[1] = 1
	for i := 0; i < steps; i++ {
		alg.Push(st)
	}
	ex := b.Slot(int(psatd.Ex)).Data()[1]
	by := b.Slot(int(psatd.By)).Data()[1]
	fmt.Printf("|Ex| = %.6f\n", math.Abs(real(ex)))
	fmt.Printf("c·By = %.6fi\n", imag(by)*psatd.C)
	// Output:
	// |Ex| = 0.000000
	// c·By = -1.000000i
}
