package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesAndPointers(t *testing.T) {
	column := []int{1, 2, 3}

	values := ValuesOf(column)
	assert.Equal(t, 3, values.Len())
	assert.Equal(t, []int{1, 2, 3}, Collect[int](values))
	assert.Equal(t, 0, values.Len())

	pointers := PointersOf(column)
	for {
		p, ok := pointers.Next()
		if !ok {
			break
		}
		*p *= 10
	}
	assert.Equal(t, []int{10, 20, 30}, column)

	_, ok := pointers.Next()
	assert.False(t, ok, "exhausted iterators stay exhausted")
}

func TestZipStopsAtShortest(t *testing.T) {
	names := []string{"Na", "Cl", "Br"}
	masses := []float64{22.99, 35.45}

	z := Zip2[string, float64](ValuesOf(names), ValuesOf(masses))
	var got []Tuple2[string, float64]
	for tuple := range z.All() {
		got = append(got, tuple)
	}
	assert.Equal(t, []Tuple2[string, float64]{{"Na", 22.99}, {"Cl", 35.45}}, got)
}

func TestZipWithExternalStream(t *testing.T) {
	xs := []int{1, 2, 3}
	ys := []int{4, 5, 6}
	n := 0
	counter := IteratorFunc[int](func() (int, bool) {
		n++
		return n, n <= 10
	})

	z := Zip3[*int, int, int](PointersOf(xs), ValuesOf(ys), counter)
	for {
		tuple, ok := z.Next()
		if !ok {
			break
		}
		*tuple.V0 += tuple.V1 * tuple.V2
	}
	assert.Equal(t, []int{5, 12, 21}, xs)
}

func TestZipEarlyBreak(t *testing.T) {
	z := Zip4[int, int, int, int](ValuesOf([]int{1, 2}), ValuesOf([]int{3, 4}), ValuesOf([]int{5, 6}), ValuesOf([]int{7, 8}))
	for tuple := range z.All() {
		require.Equal(t, Tuple4[int, int, int, int]{1, 3, 5, 7}, tuple)
		break
	}
	tuple, ok := z.Next()
	require.True(t, ok)
	assert.Equal(t, Tuple4[int, int, int, int]{2, 4, 6, 8}, tuple)
}
