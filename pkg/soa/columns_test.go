package soa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinCap(t *testing.T) {
	assert.Equal(t, math.MaxInt, MinCap())
	assert.Equal(t, 3, MinCap(9, 3, 7))
}

func TestGrowExact(t *testing.T) {
	s := make([]int, 0, 9)
	s = GrowExact(s, 100)
	assert.Equal(t, 100, cap(s))
	assert.Empty(t, s)

	s = append(s, 1, 2)
	same := GrowExact(s, 10)
	assert.Equal(t, 100, cap(same), "enough headroom, no reallocation")

	assert.Panics(t, func() { GrowExact(s, -1) })
}

func TestShrinkToFit(t *testing.T) {
	s := make([]string, 2, 100)
	s[0], s[1] = "Na", "Cl"
	s = ShrinkToFit(s)
	assert.Equal(t, 2, cap(s))
	assert.Equal(t, []string{"Na", "Cl"}, s)

	assert.Nil(t, ShrinkToFit(make([]string, 0, 4)))
}

func TestTruncateZeroesTail(t *testing.T) {
	backing := []string{"a", "b", "c", "d"}
	s := Truncate(backing, 1)
	assert.Equal(t, []string{"a"}, s)
	assert.Equal(t, []string{"a", "", "", ""}, backing)

	assert.Len(t, Truncate(s, 5), 1)
	assert.PanicsWithError(t, "soa: truncate: index -1 out of bounds for length 1", func() {
		Truncate(s, -1)
	})
}

func TestPopRemoveSwapRemove(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	s, v := Pop(s)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{1, 2, 3, 4}, s)

	s, v = Remove(s, 1)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 3, 4}, s)

	s, v = SwapRemove(s, 0)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{4, 3}, s)
}

func TestSplitOff(t *testing.T) {
	s := []int{1, 2, 3, 4}
	head, tail := SplitOff(s, 1)
	assert.Equal(t, []int{1}, head)
	assert.Equal(t, []int{2, 3, 4}, tail)

	// the tail owns its storage
	tail[0] = 20
	assert.Equal(t, 0, s[1])
}

func TestResize(t *testing.T) {
	s := Resize([]int{1}, 3, 7)
	assert.Equal(t, []int{1, 7, 7}, s)
	s = Resize(s, 2, 0)
	assert.Equal(t, []int{1, 7}, s)
}

func TestAssertLen(t *testing.T) {
	assert.Equal(t, 2, AssertLen(2, 2, 2))
	assert.True(t, SameLen(1))
	assert.PanicsWithValue(t, ErrColumnLength, func() { AssertLen(2, 2, 3) })
}

func TestBounds(t *testing.T) {
	require.NotPanics(t, func() {
		CheckIndex("index", 0, 1)
		CheckPosition("insert", 1, 1)
	})
	assert.PanicsWithError(t, "soa: remove: index 3 out of bounds for length 3", func() {
		CheckIndex("remove", 3, 3)
	})
	assert.PanicsWithError(t, "soa: insert: index 4 out of bounds for length 3", func() {
		CheckPosition("insert", 4, 3)
	})
	assert.Panics(t, func() { CheckIndex("index", -1, 3) })
}

func TestCheckLen(t *testing.T) {
	assert.NotPanics(t, func() { CheckLen("apply permutation", 3, 3) })
	assert.PanicsWithValue(t, "soa: apply permutation: got 2 elements for length 3", func() {
		CheckLen("apply permutation", 2, 3)
	})
}
