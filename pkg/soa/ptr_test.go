package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset(t *testing.T) {
	s := []float64{1, 2, 3, 4}
	p := SliceData(s)
	assert.Equal(t, 3.0, *Offset(p, 2))
	assert.Equal(t, 2.0, *Offset(Offset(p, 3), -2))
	assert.Same(t, p, Offset(p, 0))

	var null *float64
	assert.Nil(t, Offset(null, 3))
	assert.Nil(t, SliceData[float64](nil))
}

func TestFromRawParts(t *testing.T) {
	s := make([]string, 3, 8)
	s[0], s[1], s[2] = "a", "b", "c"

	assert.Equal(t, []string{"a", "b"}, FromRawParts(SliceData(s), 2))

	rebuilt := FromRawPartsCap(SliceData(s), 3, cap(s))
	assert.Equal(t, s, rebuilt)
	assert.Equal(t, 8, cap(rebuilt))

	assert.Nil(t, FromRawParts[int](nil, 0))
	assert.Panics(t, func() { FromRawParts[int](nil, 1) })
	assert.Panics(t, func() { FromRawPartsCap(SliceData(s), 9, 8) })
}
