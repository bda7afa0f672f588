package psatd

// Physical constants (SI, CODATA 2018).
const (
	// C is the speed of light in vacuum [m/s].
	C = 299792458.0
	// Eps0 is the vacuum permittivity [F/m].
	Eps0 = 8.8541878128e-12
	// Mu0 is the vacuum permeability [H/m], defined as 1/(ε0 c²).
	Mu0 = 1 / (Eps0 * C * C)
)

const c2 = C * C
