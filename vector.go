package quaternions

// Vec3 is a 3-component vector of T, used for the imaginary part of a quaternion and
// for rotation axes. Vectors are plain values; methods return modified copies, so they
// can be chained easily.
type Vec3[T Float] [3]T

// NewVec3 creates a new Vec3 with the specified x, y, and z components.
func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Add returns a copy of the calling vector, added together with the other vector.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

// Sub returns a copy of the calling vector, with the other vector subtracted from it.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	for i := range v {
		v[i] -= other[i]
	}
	return v
}

// Scale returns a copy of the calling vector, with all components multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Dot returns the dot product of the calling vector and the other vector.
func (v Vec3[T]) Dot(other Vec3[T]) (d T) {
	for i := range v {
		d += v[i] * other[i]
	}
	return
}

// Cross returns the cross product of the calling vector and the other vector.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Magnitude returns the length of the vector.
func (v Vec3[T]) Magnitude() T {
	return sqrt(v.Dot(v))
}

// Unit returns a copy of the vector, normalized to unit length. A zero vector is
// returned unchanged.
func (v Vec3[T]) Unit() Vec3[T] {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// Vec4 is a 4-component vector of T. A quaternion's coefficient vector is laid out as
// [w, x, y, z].
type Vec4[T Float] [4]T

// NewVec4 creates a new Vec4 with the specified components.
func NewVec4[T Float](a, b, c, d T) Vec4[T] {
	return Vec4[T]{a, b, c, d}
}

// Add returns a copy of the calling vector, added together with the other vector.
func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

// Scale returns a copy of the calling vector, with all components multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Dot returns the dot product of the calling vector and the other vector.
func (v Vec4[T]) Dot(other Vec4[T]) (d T) {
	for i := range v {
		d += v[i] * other[i]
	}
	return
}

// Magnitude returns the length of the vector.
func (v Vec4[T]) Magnitude() T {
	return sqrt(v.Dot(v))
}
