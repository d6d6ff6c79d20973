// Package quaternions provides general and unit quaternion value types layered on top of
// gonum's quaternion arithmetic. The Hamiltonian convention is used, where
// Q = w + x*i + y*j + z*k and i*i = j*j = k*k = i*j*k = -1, with coefficients ordered
// (w, x, y, z).
package quaternions

// Float covers the two coefficient precisions a quaternion can be instantiated with.
type Float interface {
	~float32 | ~float64
}

// NormTolerance is the absolute tolerance within which a unit quaternion's norm must
// equal 1. Construction of a UnitQuaternion from coefficients whose norm deviates by
// more than this panics when debug checks are enabled (build with the "debug" tag).
const NormTolerance = 1e-4

// QuaternionF is a general quaternion using float32.
type QuaternionF = Quaternion[float32]

// QuaternionD is a general quaternion using float64.
type QuaternionD = Quaternion[float64]

// UnitQuaternionF is a unit quaternion using float32.
type UnitQuaternionF = UnitQuaternion[float32]

// UnitQuaternionD is a unit quaternion using float64.
type UnitQuaternionD = UnitQuaternion[float64]
