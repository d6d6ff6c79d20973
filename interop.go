package quaternions

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Converters to and from go-gl/mathgl's quaternion types, for code that already moves
// rotations around as mgl values (transforms, camera code, and so on).

// Mgl64 returns the quaternion as an mgl64.Quat.
func (q Quaternion[T]) Mgl64() mgl64.Quat {
	return mgl64.Quat{W: float64(q.W), V: mgl64.Vec3{float64(q.X), float64(q.Y), float64(q.Z)}}
}

// Mgl32 returns the quaternion as an mgl32.Quat.
func (q Quaternion[T]) Mgl32() mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: mgl32.Vec3{float32(q.X), float32(q.Y), float32(q.Z)}}
}

// QuaternionFromMgl64 creates a new Quaternion from an mgl64.Quat.
func QuaternionFromMgl64[T Float](m mgl64.Quat) Quaternion[T] {
	return Quaternion[T]{W: T(m.W), X: T(m.V[0]), Y: T(m.V[1]), Z: T(m.V[2])}
}

// QuaternionFromMgl32 creates a new Quaternion from an mgl32.Quat.
func QuaternionFromMgl32[T Float](m mgl32.Quat) Quaternion[T] {
	return Quaternion[T]{W: T(m.W), X: T(m.V[0]), Y: T(m.V[1]), Z: T(m.V[2])}
}

// Mgl64 returns the unit quaternion as an mgl64.Quat.
func (u UnitQuaternion[T]) Mgl64() mgl64.Quat {
	return u.q.Mgl64()
}

// Mgl32 returns the unit quaternion as an mgl32.Quat.
func (u UnitQuaternion[T]) Mgl32() mgl32.Quat {
	return u.q.Mgl32()
}

// UnitQuaternionFromMgl64 creates a new UnitQuaternion from an mgl64.Quat, which must
// have unit norm.
func UnitQuaternionFromMgl64[T Float](m mgl64.Quat) UnitQuaternion[T] {
	return NewUnitQuaternionFromQuaternion(QuaternionFromMgl64[T](m))
}

// UnitQuaternionFromMgl32 creates a new UnitQuaternion from an mgl32.Quat, which must
// have unit norm.
func UnitQuaternionFromMgl32[T Float](m mgl32.Quat) UnitQuaternion[T] {
	return NewUnitQuaternionFromQuaternion(QuaternionFromMgl32[T](m))
}
