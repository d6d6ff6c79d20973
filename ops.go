package quaternions

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Multiplication and equality live here as explicit free functions resolved at compile
// time rather than as shared behavior on a common base type. The only closed product
// is unit x unit (UnitQuaternion.Mul); every mixed operand pair is spelled through the
// explicit UnitQuaternion.Quaternion conversion and produces a general Quaternion.

// Mul returns the Hamiltonian product a * b.
func Mul[T Float](a, b Quaternion[T]) Quaternion[T] {
	return QuaternionFromNumber[T](quat.Mul(a.Number(), b.Number()))
}

// Equal reports whether the two quaternions have exactly equal coefficients.
func Equal[T Float](a, b Quaternion[T]) bool {
	return a == b
}

// EqualWithin reports whether the two quaternions' coefficients are element-wise equal
// within the given absolute tolerance.
func EqualWithin[T Float](a, b Quaternion[T], tolerance float64) bool {
	return scalar.EqualWithinAbs(float64(a.W), float64(b.W), tolerance) &&
		scalar.EqualWithinAbs(float64(a.X), float64(b.X), tolerance) &&
		scalar.EqualWithinAbs(float64(a.Y), float64(b.Y), tolerance) &&
		scalar.EqualWithinAbs(float64(a.Z), float64(b.Z), tolerance)
}

// ConvertQuaternion casts the quaternion's coefficients element-wise to another
// precision. The cast narrows or widens without range checking.
func ConvertQuaternion[To, From Float](q Quaternion[From]) Quaternion[To] {
	return Quaternion[To]{W: To(q.W), X: To(q.X), Y: To(q.Y), Z: To(q.Z)}
}

// ConvertUnitQuaternion casts the unit quaternion's coefficients element-wise to
// another precision. The cast itself cannot move the norm outside the unit tolerance,
// so no invariant check runs; converting from a general Quaternion instead goes
// through the checked ConvertQuaternion + NewUnitQuaternionFromQuaternion path.
func ConvertUnitQuaternion[To, From Float](u UnitQuaternion[From]) UnitQuaternion[To] {
	return UnitQuaternion[To]{q: ConvertQuaternion[To](u.q)}
}
