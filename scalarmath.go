package quaternions

import (
	"math"

	"github.com/chewxy/math32"
)

// Generic scalar math helpers; float32 instantiations go through math32 rather than
// widening to float64 and back.

func sqrt[T Float](v T) T {
	if f, ok := any(v).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(v)))
}

func abs[T Float](v T) T {
	if f, ok := any(v).(float32); ok {
		return T(math32.Abs(f))
	}
	return T(math.Abs(float64(v)))
}

func sin[T Float](v T) T {
	if f, ok := any(v).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(math.Sin(float64(v)))
}

func cos[T Float](v T) T {
	if f, ok := any(v).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(math.Cos(float64(v)))
}

func acos[T Float](v T) T {
	if f, ok := any(v).(float32); ok {
		return T(math32.Acos(f))
	}
	return T(math.Acos(float64(v)))
}

func atan2[T Float](y, x T) T {
	if f, ok := any(y).(float32); ok {
		return T(math32.Atan2(f, any(x).(float32)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}
