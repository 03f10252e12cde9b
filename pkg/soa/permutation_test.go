package soa

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func swapper[T any](s []T) func(i, j int) {
	return func(i, j int) { s[i], s[j] = s[j], s[i] }
}

func TestOnelineInverseApply(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    []string
	}{
		{"identity", []int{0, 1, 2, 3}, []string{"a", "b", "c", "d"}},
		{"rotation", []int{2, 0, 1, 3}, []string{"c", "a", "b", "d"}},
		{"reverse", []int{3, 2, 1, 0}, []string{"d", "c", "b", "a"}},
		{"two cycles", []int{1, 0, 3, 2}, []string{"b", "a", "d", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := []string{"a", "b", "c", "d"}
			Oneline(tt.indices).Inverse().Apply(swapper(s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestInverse(t *testing.T) {
	p := Oneline([]int{2, 0, 1})
	q := p.Inverse()
	for i := 0; i < p.Len(); i++ {
		assert.Equal(t, i, q.Target(p.Target(i)))
	}
}

func TestOnelineRejectsNonPermutations(t *testing.T) {
	assert.Panics(t, func() { Oneline([]int{0, 0}) })
	assert.Panics(t, func() { Oneline([]int{0, 2}) })
	assert.Panics(t, func() { Oneline([]int{-1, 0}) })
	assert.NotPanics(t, func() { Oneline(nil) })
}

func TestApplySwapCount(t *testing.T) {
	swaps := 0
	Oneline([]int{1, 2, 3, 4, 0}).Inverse().Apply(func(i, j int) { swaps++ })
	assert.Equal(t, 4, swaps)
}

func TestSortPermutationIsStable(t *testing.T) {
	type item struct {
		key   int
		label string
	}
	items := []item{{3, "a"}, {1, "b"}, {3, "c"}, {2, "d"}, {1, "e"}}
	p := SortPermutation(len(items), func(i, j int) int {
		return cmp.Compare(items[i].key, items[j].key)
	})
	p.Apply(swapper(items))
	assert.Equal(t, []item{{1, "b"}, {1, "e"}, {2, "d"}, {3, "a"}, {3, "c"}}, items)
}
