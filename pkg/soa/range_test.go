package soa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeBounds(t *testing.T) {
	tests := []struct {
		r          Range
		start, end int
		ok         bool
	}{
		{Span(0, 1), 0, 1, true},
		{To(3), 0, 3, true},
		{From(1), 1, 4, true},
		{Full(), 0, 4, true},
		{Inclusive(0, 1), 0, 2, true},
		{ToInclusive(2), 0, 3, true},
		{ToInclusive(3), 0, 4, true},
		{Range{}, 0, 0, true},
		{Span(2, 1), 0, 0, false},
		{Span(-1, 1), 0, 0, false},
		{To(5), 0, 0, false},
		{From(5), 0, 0, false},
		{ToInclusive(4), 0, 0, false},
		{Inclusive(0, math.MaxInt), 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			start, end, ok := tt.r.Bounds(4)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestRangeMustBounds(t *testing.T) {
	start, end := From(2).MustBounds(4)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	assert.PanicsWithError(t, "soa: slice 1..9: range [1:9] out of bounds for length 4", func() {
		Span(1, 9).MustBounds(4)
	})
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "0..1", Span(0, 1).String())
	assert.Equal(t, "..3", To(3).String())
	assert.Equal(t, "1..", From(1).String())
	assert.Equal(t, "..", Full().String())
	assert.Equal(t, "0..=1", Inclusive(0, 1).String())
	assert.Equal(t, "..=2", ToInclusive(2).String())
}

func TestRangeResolve(t *testing.T) {
	start, end := From(2).Resolve(5)
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)

	start, end = Inclusive(1, 3).Resolve(0)
	assert.Equal(t, 1, start)
	assert.Equal(t, 4, end, "resolving does not validate")
}
