package quaternions

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Slerp spherically interpolates between the calling quaternion and the other
// quaternion by the given percentage (from 0 to 1), always taking the shorter arc.
// Percentages outside of [0, 1] are clamped to the endpoints.
func (u UnitQuaternion[T]) Slerp(other UnitQuaternion[T], percent T) UnitQuaternion[T] {

	if percent <= 0 {
		return u
	} else if percent >= 1 {
		return other
	}

	d := u.Dot(other)
	ov := other.Vec4()

	// Negating one endpoint keeps the interpolation on the shorter arc.
	if d < 0 {
		d = -d
		ov = ov.Scale(-1)
	}

	if d >= 1 {
		return u
	}

	sinHalfTheta := sqrt(1 - d*d)

	// The endpoints are close enough that the spherical ratios degenerate; linear
	// interpolation is indistinguishable here.
	if sinHalfTheta < 1e-6 {
		return u.Lerp(other, percent)
	}

	halfTheta := atan2(sinHalfTheta, d)

	ratioA := sin((1-percent)*halfTheta) / sinHalfTheta
	ratioB := sin(percent*halfTheta) / sinHalfTheta

	v := u.Vec4().Scale(ratioA).Add(ov.Scale(ratioB))

	return UnitQuaternion[T]{q: NewQuaternionFromVec4(v)}

}

// Lerp linearly interpolates between the calling quaternion and the other quaternion
// by the given percentage (from 0 to 1) and renormalizes the result, always taking the
// shorter arc. It's cheaper than Slerp but does not advance at constant angular
// velocity. Percentages outside of [0, 1] are clamped to the endpoints.
func (u UnitQuaternion[T]) Lerp(other UnitQuaternion[T], percent T) UnitQuaternion[T] {

	if percent <= 0 {
		return u
	} else if percent >= 1 {
		return other
	}

	ov := other.Vec4()

	if u.Dot(other) < 0 {
		ov = ov.Scale(-1)
	}

	v := u.Vec4().Scale(1 - percent).Add(ov.Scale(percent))

	return UnitQuaternion[T]{q: NewQuaternionFromVec4(v).Normalized()}

}

// A RotationTween interpolates between two rotations over a duration of time, shaping
// the playhead with a gween easing function (ease.Linear, ease.InOutQuad, and so on).
type RotationTween[T Float] struct {
	From, To UnitQuaternion[T]
	tween    *gween.Tween
}

// NewRotationTween creates a new RotationTween from one rotation to another over the
// given duration (in whatever time unit you pass to Update, commonly seconds).
func NewRotationTween[T Float](from, to UnitQuaternion[T], duration float32, easing ease.TweenFunc) *RotationTween[T] {
	return &RotationTween[T]{
		From:  from,
		To:    to,
		tween: gween.New(0, 1, duration, easing),
	}
}

// Update advances the tween by dt and returns the rotation for the new playhead
// position, along with whether the tween has finished. After finishing, Update keeps
// returning the target rotation.
func (rt *RotationTween[T]) Update(dt float32) (UnitQuaternion[T], bool) {
	percent, finished := rt.tween.Update(dt)
	return rt.From.Slerp(rt.To, T(percent)), finished
}

// Reset rewinds the tween back to the starting rotation.
func (rt *RotationTween[T]) Reset() {
	rt.tween.Reset()
}
