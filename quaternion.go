package quaternions

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a general quaternion of T with coefficients (W, X, Y, Z), where W is
// the real part and (X, Y, Z) the imaginary part. No invariant is enforced; any four
// coefficients form a valid Quaternion, including the zero quaternion produced by the
// zero value.
//
// Quaternions are plain values; the arithmetic itself (inversion, conjugation,
// normalization, multiplication, norm) is delegated to gonum's num/quat package, with
// the result narrowed back to T. Methods ending in -ed return modified copies, while
// their imperative counterparts (Invert, Conjugate, Normalize) modify the calling
// Quaternion in place.
type Quaternion[T Float] struct {
	W T // The real (1st) coefficient of the Quaternion
	X T // The i (2nd) coefficient of the Quaternion
	Y T // The j (3rd) coefficient of the Quaternion
	Z T // The k (4th) coefficient of the Quaternion
}

// NewQuaternion creates a new Quaternion from the four coefficients of
// Q = w + x*i + y*j + z*k.
func NewQuaternion[T Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// NewQuaternionZero creates a new "zero-ed out" Quaternion, with all four coefficients
// set to 0.
func NewQuaternionZero[T Float]() Quaternion[T] {
	return Quaternion[T]{}
}

// NewQuaternionFromParts creates a new Quaternion from a real part and an imaginary
// 3-vector (x, y, z).
func NewQuaternionFromParts[T Float](real T, imag Vec3[T]) Quaternion[T] {
	return Quaternion[T]{W: real, X: imag[0], Y: imag[1], Z: imag[2]}
}

// NewQuaternionFromVec4 creates a new Quaternion from a coefficient vector laid out as
// [w, x, y, z]. The coefficients are taken over exactly; QuaternionFromVec4 followed by
// Vec4 round-trips without precision loss.
func NewQuaternionFromVec4[T Float](v Vec4[T]) Quaternion[T] {
	return Quaternion[T]{W: v[0], X: v[1], Y: v[2], Z: v[3]}
}

// QuaternionFromNumber creates a new Quaternion from gonum's quaternion representation,
// narrowing the coefficients to T.
func QuaternionFromNumber[T Float](n quat.Number) Quaternion[T] {
	return Quaternion[T]{W: T(n.Real), X: T(n.Imag), Y: T(n.Jmag), Z: T(n.Kmag)}
}

// Number returns the quaternion as gonum's quaternion representation, widening the
// coefficients to float64.
func (q Quaternion[T]) Number() quat.Number {
	return quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

// Inverted returns the multiplicative inverse of the quaternion (the conjugate divided
// by the squared norm). Inverting the zero quaternion is not guarded against; the
// non-finite coefficients gonum produces propagate into the result.
func (q Quaternion[T]) Inverted() Quaternion[T] {
	return QuaternionFromNumber[T](quat.Inv(q.Number()))
}

// Invert inverts the quaternion in place.
func (q *Quaternion[T]) Invert() *Quaternion[T] {
	*q = q.Inverted()
	return q
}

// Conjugated returns the conjugate of the quaternion (the imaginary part negated, the
// real part unchanged).
func (q Quaternion[T]) Conjugated() Quaternion[T] {
	return QuaternionFromNumber[T](quat.Conj(q.Number()))
}

// Conjugate conjugates the quaternion in place.
func (q *Quaternion[T]) Conjugate() *Quaternion[T] {
	*q = q.Conjugated()
	return q
}

// Norm returns the Euclidean length of the 4-component coefficient vector.
func (q Quaternion[T]) Norm() T {
	return T(quat.Abs(q.Number()))
}

// Normalized returns a copy of the quaternion scaled to unit norm. Normalizing the
// zero quaternion divides by zero; the resulting non-finite coefficients propagate.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	n := q.Number()
	return QuaternionFromNumber[T](quat.Scale(1/quat.Abs(n), n))
}

// Normalize scales the quaternion to unit norm in place.
func (q *Quaternion[T]) Normalize() *Quaternion[T] {
	*q = q.Normalized()
	return q
}

// SetZero resets all four coefficients to 0.
func (q *Quaternion[T]) SetZero() *Quaternion[T] {
	*q = Quaternion[T]{}
	return q
}

// Real returns the real coefficient w.
func (q Quaternion[T]) Real() T {
	return q.W
}

// Imag returns the imaginary coefficients (x, y, z) as a Vec3.
func (q Quaternion[T]) Imag() Vec3[T] {
	return Vec3[T]{q.X, q.Y, q.Z}
}

// Vec4 returns the coefficient vector [w, x, y, z].
func (q Quaternion[T]) Vec4() Vec4[T] {
	return Vec4[T]{q.W, q.X, q.Y, q.Z}
}

// Dot returns the 4-component dot product of the calling quaternion and the other
// quaternion.
func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z
}

// ToUnitQuaternion returns the quaternion normalized and converted to a UnitQuaternion.
// The result satisfies the unit-norm invariant by construction as long as the calling
// quaternion is nonzero.
func (q Quaternion[T]) ToUnitQuaternion() UnitQuaternion[T] {
	return NewUnitQuaternionFromQuaternion(q.Normalized())
}

// String returns a string representation of the quaternion.
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("Quaternion(%v + %vi + %vj + %vk)", q.W, q.X, q.Y, q.Z)
}
