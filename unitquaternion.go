package quaternions

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// UnitQuaternion is a quaternion of unit length, commonly used to represent a 3D
// rotation. It owns a single general Quaternion by value and enforces, at every
// construction and conversion path, that the coefficient vector's norm is within
// NormTolerance of 1 (the check is compiled in only under the "debug" build tag; see
// check.go).
//
// Unlike Quaternion, the coefficients are not exposed for direct mutation; the type
// only offers invariant-preserving transformations, plus the validated Replaced
// contract for wholesale coefficient replacement.
type UnitQuaternion[T Float] struct {
	q Quaternion[T]
}

// NewUnitQuaternion creates a new UnitQuaternion from the four coefficients of
// Q = w + x*i + y*j + z*k, which must form a vector of unit length.
func NewUnitQuaternion[T Float](w, x, y, z T) UnitQuaternion[T] {
	u := UnitQuaternion[T]{q: NewQuaternion(w, x, y, z)}
	validateUnitNorm(float64(u.Norm()))
	return u
}

// NewUnitQuaternionIdentity creates a new UnitQuaternion set to the identity rotation
// (1, 0, 0, 0). The zero value of UnitQuaternion is NOT the identity (it is the zero
// quaternion); use this constructor instead.
func NewUnitQuaternionIdentity[T Float]() UnitQuaternion[T] {
	return UnitQuaternion[T]{q: NewQuaternion[T](1, 0, 0, 0)}
}

// NewUnitQuaternionFromParts creates a new UnitQuaternion from a real part and an
// imaginary 3-vector (x, y, z) of combined unit length.
func NewUnitQuaternionFromParts[T Float](real T, imag Vec3[T]) UnitQuaternion[T] {
	u := UnitQuaternion[T]{q: NewQuaternionFromParts(real, imag)}
	validateUnitNorm(float64(u.Norm()))
	return u
}

// NewUnitQuaternionFromVec4 creates a new UnitQuaternion from a coefficient vector
// laid out as [w, x, y, z] of unit length.
func NewUnitQuaternionFromVec4[T Float](v Vec4[T]) UnitQuaternion[T] {
	u := UnitQuaternion[T]{q: NewQuaternionFromVec4(v)}
	validateUnitNorm(float64(u.Norm()))
	return u
}

// NewUnitQuaternionFromQuaternion converts a general Quaternion of unit length into a
// UnitQuaternion. The conversion in this direction is explicit and checked; the
// opposite direction (UnitQuaternion.Quaternion) is implicit and invariant-free.
func NewUnitQuaternionFromQuaternion[T Float](other Quaternion[T]) UnitQuaternion[T] {
	u := UnitQuaternion[T]{q: other}
	validateUnitNorm(float64(u.Norm()))
	return u
}

// UnitQuaternionFromNumber creates a new UnitQuaternion from gonum's quaternion
// representation, which must have unit norm.
func UnitQuaternionFromNumber[T Float](n quat.Number) UnitQuaternion[T] {
	u := UnitQuaternion[T]{q: QuaternionFromNumber[T](n)}
	validateUnitNorm(float64(u.Norm()))
	return u
}

// W returns the real (1st) coefficient of the quaternion.
func (u UnitQuaternion[T]) W() T {
	return u.q.W
}

// X returns the i (2nd) coefficient of the quaternion.
func (u UnitQuaternion[T]) X() T {
	return u.q.X
}

// Y returns the j (3rd) coefficient of the quaternion.
func (u UnitQuaternion[T]) Y() T {
	return u.q.Y
}

// Z returns the k (4th) coefficient of the quaternion.
func (u UnitQuaternion[T]) Z() T {
	return u.q.Z
}

// Real returns the real coefficient w.
func (u UnitQuaternion[T]) Real() T {
	return u.q.W
}

// Imag returns the imaginary coefficients (x, y, z) as a Vec3.
func (u UnitQuaternion[T]) Imag() Vec3[T] {
	return u.q.Imag()
}

// Vec4 returns the coefficient vector [w, x, y, z].
func (u UnitQuaternion[T]) Vec4() Vec4[T] {
	return u.q.Vec4()
}

// Norm returns the Euclidean length of the coefficient vector, which for a healthy
// UnitQuaternion is 1 up to floating-point error.
func (u UnitQuaternion[T]) Norm() T {
	return u.q.Norm()
}

// Number returns the quaternion as gonum's quaternion representation.
func (u UnitQuaternion[T]) Number() quat.Number {
	return u.q.Number()
}

// Quaternion returns the unit quaternion as a general Quaternion. Conversion in this
// direction always succeeds and carries no invariant.
func (u UnitQuaternion[T]) Quaternion() Quaternion[T] {
	return u.q
}

// Conjugated returns the conjugate of the unit quaternion. Conjugation preserves the
// norm, so the result satisfies the unit-norm invariant automatically.
func (u UnitQuaternion[T]) Conjugated() UnitQuaternion[T] {
	return UnitQuaternion[T]{q: u.q.Conjugated()}
}

// Conjugate conjugates the unit quaternion in place.
func (u *UnitQuaternion[T]) Conjugate() *UnitQuaternion[T] {
	u.q.Conjugate()
	return u
}

// Inverted returns the multiplicative inverse of the unit quaternion, which for unit
// quaternions is its conjugate.
func (u UnitQuaternion[T]) Inverted() UnitQuaternion[T] {
	return u.Conjugated()
}

// Invert inverts the unit quaternion in place.
func (u *UnitQuaternion[T]) Invert() *UnitQuaternion[T] {
	return u.Conjugate()
}

// Dot returns the 4-component dot product of the calling quaternion and the other
// quaternion.
func (u UnitQuaternion[T]) Dot(other UnitQuaternion[T]) T {
	return u.q.Dot(other.q)
}

// Mul returns the Hamiltonian product of the calling quaternion and the other
// quaternion. Unit quaternions are closed under multiplication, so the result remains
// a UnitQuaternion; products against general Quaternions go through the explicit
// Quaternion() conversion and the package-level Mul function instead.
func (u UnitQuaternion[T]) Mul(other UnitQuaternion[T]) UnitQuaternion[T] {
	w := UnitQuaternion[T]{q: QuaternionFromNumber[T](quat.Mul(u.Number(), other.Number()))}
	validateUnitNorm(float64(w.Norm()))
	return w
}

// Rotate rotates the given vector by the rotation the unit quaternion represents,
// returning a rotated copy of it. For example, a quaternion describing a rotation of
// pi/2 around the +Y axis rotates (1, 0, 0) onto (0, 0, -1).
func (u UnitQuaternion[T]) Rotate(v Vec3[T]) Vec3[T] {
	n := u.Number()
	p := quat.Number{Imag: float64(v[0]), Jmag: float64(v[1]), Kmag: float64(v[2])}
	r := quat.Mul(quat.Mul(n, p), quat.Conj(n))
	return Vec3[T]{T(r.Imag), T(r.Jmag), T(r.Kmag)}
}

// Replaced returns a new UnitQuaternion with the given coefficients, which replace the
// calling quaternion's wholesale. If the coefficients' norm deviates from 1 by more
// than NormTolerance, an error is returned instead; otherwise the stored coefficients
// are renormalized exactly. This is the only way to write arbitrary coefficients into
// a UnitQuaternion, and unlike construction it reports violations in every build.
func (u UnitQuaternion[T]) Replaced(w, x, y, z T) (UnitQuaternion[T], error) {
	candidate := NewQuaternion(w, x, y, z)
	norm := float64(candidate.Norm())
	if !scalar.EqualWithinAbs(norm, 1, NormTolerance) {
		return UnitQuaternion[T]{}, errors.Newf("replacement coefficients have norm %v, want 1 within %v", norm, NormTolerance)
	}
	return UnitQuaternion[T]{q: candidate.Normalized()}, nil
}

// String returns a string representation of the unit quaternion.
func (u UnitQuaternion[T]) String() string {
	return fmt.Sprintf("UnitQuaternion(%v + %vi + %vj + %vk)", u.q.W, u.q.X, u.q.Y, u.q.Z)
}
