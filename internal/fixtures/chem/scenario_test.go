package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soagen/pkg/soa"
)

func named(pairs ...any) *ParticleVec {
	v := NewParticleVec()
	for i := 0; i < len(pairs); i += 2 {
		v.Push(Particle{Name: pairs[i].(string), Mass: pairs[i+1].(float64)})
	}
	return v
}

func TestScenarioPushReadBack(t *testing.T) {
	v := NewParticleVec()
	v.Push(Particle{Name: "Na", Mass: 22.99})
	assert.Equal(t, "Na", v.Name[0])
	assert.Equal(t, 22.99, v.Mass[0])
	assert.Equal(t, 1, v.Len())
}

func TestScenarioCapacityFloor(t *testing.T) {
	v := NewParticleVecWithCapacity(9)
	v.ReserveExact(100)
	assert.Equal(t, 100, v.Cap())

	v.Push(Particle{Name: "Na"})
	v.Push(Particle{Name: "Cl"})
	v.ShrinkToFit()
	assert.Equal(t, 2, v.Cap())
}

func TestScenarioSwapRemove(t *testing.T) {
	v := named("Cl", 0.0, "Na", 0.0, "Br", 0.0, "Zn", 0.0)
	assert.Equal(t, Particle{Name: "Na"}, v.SwapRemove(1))
	assert.Equal(t, []string{"Cl", "Zn", "Br"}, v.Name)
}

func TestScenarioSortBy(t *testing.T) {
	v := named("Na3", 168.0, "Na", 56.0, "Na4", 224.0, "Na2", 112.0)
	v.AsMutSlice().SortBy(func(a, b ParticleRef) int {
		switch {
		case *a.Mass < *b.Mass:
			return -1
		case *a.Mass > *b.Mass:
			return 1
		}
		return 0
	})
	assert.Equal(t, []string{"Na", "Na2", "Na3", "Na4"}, v.Name)
	assert.Equal(t, []float64{56, 112, 168, 224}, v.Mass)
}

func TestScenarioRangeIndexing(t *testing.T) {
	v := named("a", 1.0, "b", 2.0, "c", 3.0, "d", 4.0)
	native := []float64{1, 2, 3, 4}

	tests := []struct {
		r    soa.Range
		want []float64
	}{
		{soa.Span(0, 1), native[0:1]},
		{soa.To(3), native[:3]},
		{soa.From(1), native[1:]},
		{soa.Full(), native[:]},
		{soa.Inclusive(0, 1), native[0:2]},
		{soa.ToInclusive(2), native[:3]},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, v.AsSlice().Slice(tt.r).Mass)
			assert.Equal(t, tt.want, v.AsMutSlice().SliceMut(tt.r).Mass)
		})
	}
}

func TestScenarioPointerReconstruct(t *testing.T) {
	v := named("Na", 22.99, "Cl", 35.45, "K", 39.1)
	want := values(v.AsSlice())
	ptr, length, capacity := v.AsMutPtr(), v.Len(), v.Cap()

	rebuilt := ParticleVecFromRawParts(ptr, length, capacity)
	assert.Equal(t, want, values(rebuilt.AsSlice()))
	assert.Equal(t, capacity, rebuilt.Cap())
}
