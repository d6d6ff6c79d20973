package quaternions

// AxisAngle represents a rotation in radians around a given 3D axis. It's kept as a
// separate 3D vector and angle for simplicity and readability, and converts to and
// from UnitQuaternion.
type AxisAngle[T Float] struct {
	Axis  Vec3[T] // 3 dimensional axis to rotate around
	Angle T       // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular
// rotation. The axis is normalized.
func NewAxisAngle[T Float](axis Vec3[T], angle T) AxisAngle[T] {
	return AxisAngle[T]{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// UnitQuaternion returns the rotation as a unit quaternion,
// (cos(angle/2), axis*sin(angle/2)). The result has unit norm by construction for any
// nonzero axis.
func (aa AxisAngle[T]) UnitQuaternion() UnitQuaternion[T] {
	half := aa.Angle / 2
	s := sin(half)
	return UnitQuaternion[T]{q: NewQuaternionFromParts(cos(half), aa.Axis.Unit().Scale(s))}
}

// UnitQuaternionFromAxisAngle creates a new UnitQuaternion out of the given 3D vector
// axis and angular rotation in radians.
func UnitQuaternionFromAxisAngle[T Float](axis Vec3[T], angle T) UnitQuaternion[T] {
	return NewAxisAngle(axis, angle).UnitQuaternion()
}

// ToAxisAngle returns the rotation the unit quaternion represents as an axis and an
// angle in radians. The identity rotation (and anything within floating-point noise of
// it) has no meaningful axis; the +X axis is returned for it with an angle of 0.
func (u UnitQuaternion[T]) ToAxisAngle() AxisAngle[T] {
	w := u.W()
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}

	angle := 2 * acos(w)
	s := sqrt(1 - w*w)

	if s < 1e-6 {
		return AxisAngle[T]{Axis: Vec3[T]{1, 0, 0}, Angle: 0}
	}

	return AxisAngle[T]{
		Axis:  u.Imag().Scale(1 / s),
		Angle: angle,
	}
}
