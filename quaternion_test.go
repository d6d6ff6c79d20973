package quaternions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomQuaternions(n int) []QuaternionD {

	quats := make([]QuaternionD, 0, n)

	r := rand.New(rand.NewSource(4))

	for i := 0; i < n; i++ {
		quats = append(quats, NewQuaternion(
			r.Float64()*20-10,
			r.Float64()*20-10,
			r.Float64()*20-10,
			r.Float64()*20-10,
		))
	}

	return quats

}

func TestConjugatedTwiceIsIdentity(t *testing.T) {

	for _, q := range randomQuaternions(32) {
		assert.Equal(t, q, q.Conjugated().Conjugated())
	}

}

func TestConjugatedNegatesImaginary(t *testing.T) {

	q := NewQuaternion(1.0, 2.0, -3.0, 4.0)
	c := q.Conjugated()

	assert.Equal(t, NewQuaternion(1.0, -2.0, 3.0, -4.0), c)
	assert.Equal(t, q.Real(), c.Real())

}

func TestInvertedTwiceRecovers(t *testing.T) {

	for _, q := range randomQuaternions(32) {
		assert.True(t, EqualWithin(q, q.Inverted().Inverted(), 1e-9), "inv(inv(%v)) should recover the original", q)
	}

}

func TestInvertedTimesOriginalIsIdentity(t *testing.T) {

	q := NewQuaternion(0.3, -1.2, 4.0, 0.25)
	p := Mul(q, q.Inverted())

	assert.True(t, EqualWithin(p, NewQuaternion(1.0, 0, 0, 0), 1e-12), "q * q^-1 should be the identity, got %v", p)

}

func TestNormalizedHasUnitNorm(t *testing.T) {

	for _, q := range randomQuaternions(32) {
		assert.InDelta(t, 1, q.Normalized().Norm(), 1e-12)
	}

}

func TestInPlaceFormsMatchValueForms(t *testing.T) {

	q := NewQuaternion(2.0, -1.0, 0.5, 3.0)

	inverted := q
	inverted.Invert()
	assert.Equal(t, q.Inverted(), inverted)

	conjugated := q
	conjugated.Conjugate()
	assert.Equal(t, q.Conjugated(), conjugated)

	normalized := q
	normalized.Normalize()
	assert.Equal(t, q.Normalized(), normalized)

}

func TestZeroQuaternion(t *testing.T) {

	assert.Equal(t, Vec4[float64]{0, 0, 0, 0}, NewQuaternionZero[float64]().Vec4())

	q := NewQuaternion(5.0, 6.0, 7.0, 8.0)
	q.SetZero()
	assert.Equal(t, Vec4[float64]{0, 0, 0, 0}, q.Vec4())

}

func TestVec4RoundTripIsExact(t *testing.T) {

	v := NewVec4(0.1, -2.25, 3.5, 1e-20)
	assert.Equal(t, v, NewQuaternionFromVec4(v).Vec4())

}

func TestPartsAccessors(t *testing.T) {

	q := NewQuaternionFromParts(4.0, NewVec3(1.0, 2.0, 3.0))

	assert.Equal(t, 4.0, q.Real())
	assert.Equal(t, NewVec3(1.0, 2.0, 3.0), q.Imag())
	assert.Equal(t, NewVec4(4.0, 1.0, 2.0, 3.0), q.Vec4())

}

func TestToUnitQuaternionNormalizes(t *testing.T) {

	u := NewQuaternion(2.0, 0, 0, 0).ToUnitQuaternion()

	assert.Equal(t, NewVec4(1.0, 0, 0, 0), u.Vec4())

}

func TestNumberRoundTrip(t *testing.T) {

	q := NewQuaternion(1.5, -0.5, 0.25, 8.0)
	assert.Equal(t, q, QuaternionFromNumber[float64](q.Number()))

}

func TestMulBasisElements(t *testing.T) {

	i := NewQuaternion(0.0, 1, 0, 0)
	j := NewQuaternion(0.0, 0, 1, 0)
	k := NewQuaternion(0.0, 0, 0, 1)

	// i*j = k, j*k = i, k*i = j under the Hamiltonian convention.
	assert.Equal(t, k, Mul(i, j))
	assert.Equal(t, i, Mul(j, k))
	assert.Equal(t, j, Mul(k, i))

	// i*i = -1
	assert.Equal(t, NewQuaternion(-1.0, 0, 0, 0), Mul(i, i))

}

func TestEquality(t *testing.T) {

	a := NewQuaternion(1.0, 2.0, 3.0, 4.0)
	b := NewQuaternion(1.0, 2.0, 3.0, 4.0)

	require.True(t, Equal(a, b))
	require.False(t, Equal(a, a.Conjugated()))

	assert.True(t, EqualWithin(a, NewQuaternion(1.0+1e-8, 2.0, 3.0, 4.0), 1e-6))
	assert.False(t, EqualWithin(a, NewQuaternion(1.1, 2.0, 3.0, 4.0), 1e-6))

}

func TestConvertQuaternion(t *testing.T) {

	d := NewQuaternion(1.5, -2.25, 0.5, 100.0)
	f := ConvertQuaternion[float32](d)

	// All of these coefficients are exactly representable in float32, so converting
	// down and back up changes nothing.
	assert.Equal(t, d, ConvertQuaternion[float64](f))

}

func TestFloat32Instantiation(t *testing.T) {

	q := NewQuaternion[float32](0, 3, 0, 4)

	assert.InDelta(t, 5, q.Norm(), 1e-6)
	assert.InDelta(t, 1, q.Normalized().Norm(), 1e-6)

}

func BenchmarkMul(b *testing.B) {

	b.ReportAllocs()

	p := NewQuaternion(0.2, 1.0, -0.4, 0.8)
	q := NewQuaternion(-1.2, 0.3, 2.2, 0.1)

	for i := 0; i < b.N; i++ {
		p = Mul(p, q)
	}

}

func BenchmarkNormalized(b *testing.B) {

	b.ReportAllocs()

	q := NewQuaternion(0.2, 1.0, -0.4, 0.8)

	for i := 0; i < b.N; i++ {
		q.Normalized()
	}

}
