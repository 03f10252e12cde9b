package chem

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soagen/pkg/soa"
)

type particles = soa.Container[*ParticleVec, Particle, ParticleRef, ParticleRefMut, ParticleSlice, ParticleSliceMut]

// sortGeneric orders any struct-of-arrays vector by reading its elements
// through Index and moving the columns once.
func sortGeneric[V, T, R, RM any, S soa.Slice[R], SM soa.SliceMut[R, RM]](v soa.Container[V, T, R, RM, S, SM], compare func(a, b R) int) {
	indices := make([]int, v.Len())
	for i := range indices {
		indices[i] = i
	}
	slices.SortStableFunc(indices, func(j, k int) int {
		return compare(v.Index(j), v.Index(k))
	})
	v.AsMutSlice().ApplyIndex(indices)
}

func sortParticles(v particles, compare func(a, b ParticleRef) int) {
	sortGeneric[*ParticleVec, Particle, ParticleRef, ParticleRefMut, ParticleSlice, ParticleSliceMut](v, compare)
}

// maxGeneric returns the greatest element of s.
func maxGeneric[R any](s soa.Slice[R], compare func(a, b R) int) (R, bool) {
	best, ok := s.First()
	for i := 1; i < s.Len(); i++ {
		if r := s.Index(i); compare(r, best) > 0 {
			best = r
		}
	}
	return best, ok
}

func byMass(a, b ParticleRef) int {
	return cmp.Compare(*a.Mass, *b.Mass)
}

func TestGenericSort(t *testing.T) {
	var v particles = NewParticleVec()
	v.Push(Particle{Name: "foo", Mass: 100})
	v.Push(Particle{Name: "bar", Mass: 1000})
	assert.Equal(t, 2, v.Len())

	sortParticles(v, ParticleRef.Compare)
	first, ok := v.AsSlice().First()
	require.True(t, ok)
	assert.Equal(t, "bar", *first.Name)

	v.AsMutSlice().SortBy(func(a, b ParticleRef) int { return -byMass(a, b) })
	assert.Greater(t, *v.Index(0).Mass, *v.Index(1).Mass)

	sortParticles(v, byMass)
	assert.Less(t, *v.Index(0).Mass, *v.Index(1).Mass)
}

func TestGenericSortMatchesSortBy(t *testing.T) {
	a, b := filled(sample()), filled(sample())
	sortParticles(a, byMass)
	b.AsMutSlice().SortBy(byMass)
	assert.Equal(t, values(b.AsSlice()), values(a.AsSlice()))
	columnsAgree(t, a)
}

func TestGenericMax(t *testing.T) {
	v := filled([]Particle{{Name: "foo", Mass: 100}, {Name: "bar", Mass: 1000}, {Name: "baz", Mass: 50}})
	for _, r := range v.AllMut() {
		*r.Mass *= 2
	}

	heaviest, ok := maxGeneric[ParticleRef](v.AsSlice(), byMass)
	require.True(t, ok)
	assert.Equal(t, "bar", *heaviest.Name)
	assert.Equal(t, 2000.0, *heaviest.Mass)

	last, ok := maxGeneric[ParticleRef](v.AsSlice(), ParticleRef.Compare)
	require.True(t, ok)
	assert.Equal(t, "foo", *last.Name)

	_, ok = maxGeneric[ParticleRef](NewParticleVec().AsSlice(), byMass)
	assert.False(t, ok)
}

func TestGenericContainer(t *testing.T) {
	var v particles = filled(sample())

	r, ok := v.Get(1)
	require.True(t, ok)
	assert.Equal(t, "O", *r.Name)
	_, ok = v.Get(v.Len())
	assert.False(t, ok)

	assert.Equal(t, sample()[0], v.SwapRemove(0))
	assert.Equal(t, "N", *v.Index(0).Name)

	tail := v.SplitOff(1)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, 2, tail.Len())

	v.Append(tail)
	assert.Equal(t, 3, v.Len())
	assert.True(t, tail.IsEmpty())

	var mut soa.SliceMut[ParticleRef, ParticleRefMut] = v.AsMutSlice()
	*mut.IndexMut(2).Mass = 0
	mut.ApplyIndex([]int{2, 0, 1})
	assert.Equal(t, []string{"C", "N", "O"}, v.AsSlice().Name)
}
