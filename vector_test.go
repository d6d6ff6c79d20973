package quaternions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {

	a := NewVec3(1.0, 2.0, 3.0)
	b := NewVec3(-1.0, 0.5, 2.0)

	assert.Equal(t, NewVec3(0.0, 2.5, 5.0), a.Add(b))
	assert.Equal(t, NewVec3(2.0, 1.5, 1.0), a.Sub(b))
	assert.Equal(t, NewVec3(2.0, 4.0, 6.0), a.Scale(2))
	assert.Equal(t, 6.0, a.Dot(b))

}

func TestVec3Cross(t *testing.T) {

	x := NewVec3(1.0, 0, 0)
	y := NewVec3(0.0, 1, 0)

	assert.Equal(t, NewVec3(0.0, 0, 1), x.Cross(y))

}

func TestVec3Unit(t *testing.T) {

	v := NewVec3(3.0, 0, 4.0)

	assert.Equal(t, 5.0, v.Magnitude())
	assert.InDelta(t, 1, v.Unit().Magnitude(), 1e-12)

	// The zero vector can't be normalized and comes back unchanged.
	assert.Equal(t, Vec3[float64]{}, Vec3[float64]{}.Unit())

}

func TestVec4Arithmetic(t *testing.T) {

	a := NewVec4(1.0, 2.0, 3.0, 4.0)
	b := NewVec4(4.0, 3.0, 2.0, 1.0)

	assert.Equal(t, NewVec4(5.0, 5.0, 5.0, 5.0), a.Add(b))
	assert.Equal(t, NewVec4(0.5, 1.0, 1.5, 2.0), a.Scale(0.5))
	assert.Equal(t, 20.0, a.Dot(b))
	assert.Equal(t, 2.0, NewVec4(0.0, 0, 0, 2.0).Magnitude())

}

func BenchmarkVec3Cross(b *testing.B) {

	b.ReportAllocs()

	vecs := make([]Vec3[float64], 0, 1200)

	r := rand.New(rand.NewSource(16))

	for i := 0; i < 1200; i++ {
		vecs = append(vecs, NewVec3(r.Float64(), r.Float64(), r.Float64()))
	}

	b.ResetTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < len(vecs)-1; i++ {
			vecs[i].Cross(vecs[i+1])
		}
	}

}
