package soa

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// words is a single-column SliceMut over strings.
type words []string

var _ SliceMut[string, *string] = words(nil)

func (w words) Len() int      { return len(w) }
func (w words) IsEmpty() bool { return len(w) == 0 }

func (w words) Index(index int) string { return w[index] }

func (w words) Get(index int) (string, bool) {
	if index < 0 || index >= len(w) {
		return "", false
	}
	return w[index], true
}

func (w words) First() (string, bool) { return w.Get(0) }
func (w words) Last() (string, bool)  { return w.Get(len(w) - 1) }

func (w words) IndexMut(index int) *string { return &w[index] }

func (w words) GetMut(index int) (*string, bool) {
	if index < 0 || index >= len(w) {
		return nil, false
	}
	return &w[index], true
}

func (w words) Swap(a, b int) { w[a], w[b] = w[b], w[a] }

func (w words) ApplyIndex(indices []int) {
	w.ApplyPermutation(Oneline(indices).Inverse())
}

func (w words) ApplyPermutation(p *Permutation) {
	CheckLen("apply permutation", p.Len(), w.Len())
	p.Apply(w.Swap)
}

func (w words) SortBy(compare func(a, b string) int) {
	SortIndexBy[string, *string](w, compare)
}

func TestSortIndexBy(t *testing.T) {
	w := words{"pear", "Fig", "apple", "fig", "Kiwi"}
	SortIndexBy[string, *string](w, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	assert.Equal(t, words{"apple", "Fig", "fig", "Kiwi", "pear"}, w)
}

func TestSortIndexByEmpty(t *testing.T) {
	var w words
	assert.NotPanics(t, func() { SortIndexBy[string, *string](w, strings.Compare) })
}

func TestSliceMutThroughInterface(t *testing.T) {
	var s SliceMut[string, *string] = words{"b", "a"}
	*s.IndexMut(0) = "c"
	s.SortBy(strings.Compare)

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, "a", first)
	_, ok = s.GetMut(2)
	assert.False(t, ok)
}
