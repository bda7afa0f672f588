package psatd

import "fmt"

// Index names a spectral slot of a block.
type Index int

// Slot layout. The baseline set ends at DivE; the averaged set adds the
// time-averaged E and B components.
const (
	Ex Index = iota
	Ey
	Ez
	Bx
	By
	Bz
	Jx
	Jy
	Jz
	RhoOld
	RhoNew
	DivE
	ExAvg
	EyAvg
	EzAvg
	BxAvg
	ByAvg
	BzAvg
)

const (
	// NumFieldsBaseline is the slot count without time averaging.
	NumFieldsBaseline = int(DivE) + 1
	// NumFieldsAveraged is the slot count with time averaging.
	NumFieldsAveraged = int(BzAvg) + 1
)

var indexNames = [...]string{
	"Ex", "Ey", "Ez", "Bx", "By", "Bz", "Jx", "Jy", "Jz",
	"RhoOld", "RhoNew", "DivE",
	"ExAvg", "EyAvg", "EzAvg", "BxAvg", "ByAvg", "BzAvg",
}

// String returns the slot name.
func (i Index) String() string {
	if i < 0 || int(i) >= len(indexNames) {
		return fmt.Sprintf("Index(%d)", int(i))
	}

	return indexNames[i]
}

// E, B and J group the vector components by field.
var (
	E = [3]Index{Ex, Ey, Ez}
	B = [3]Index{Bx, By, Bz}
	J = [3]Index{Jx, Jy, Jz}
)
