package soa

import (
	"math"
	"slices"
)

// MinCap returns the smallest of caps, the capacity of a container whose
// columns report caps. A container without columns never needs to grow and
// reports math.MaxInt.
func MinCap(caps ...int) int {
	if len(caps) == 0 {
		return math.MaxInt
	}
	return slices.Min(caps)
}

// GrowExact makes room for n more elements without the headroom append
// would add: the resulting capacity is len(s)+n when a reallocation happens.
func GrowExact[S ~[]E, E any](s S, n int) S {
	if n < 0 {
		panic("soa: cannot reserve a negative count")
	}
	if cap(s)-len(s) >= n {
		return s
	}
	grown := make(S, len(s), len(s)+n)
	copy(grown, s)
	return grown
}

// ShrinkToFit reallocates s so that its capacity equals its length.
func ShrinkToFit[S ~[]E, E any](s S) S {
	if cap(s) == len(s) {
		return s
	}
	if len(s) == 0 {
		return nil
	}
	shrunk := make(S, len(s))
	copy(shrunk, s)
	return shrunk
}

// Truncate shortens s to n elements. The dropped slots are zeroed from the
// last one down so that the garbage collector can reclaim what they held.
// Truncate is a no-op when n >= len(s).
func Truncate[S ~[]E, E any](s S, n int) S {
	if n < 0 {
		panic(&BoundsError{Op: "truncate", Index: n, End: -1, Len: len(s)})
	}
	if n >= len(s) {
		return s
	}
	var zero E
	for i := len(s) - 1; i >= n; i-- {
		s[i] = zero
	}
	return s[:n]
}

// Pop removes the last element of a non-empty s.
func Pop[S ~[]E, E any](s S) (S, E) {
	last := len(s) - 1
	value := s[last]
	var zero E
	s[last] = zero
	return s[:last], value
}

// Remove deletes s[i], shifting the tail down by one.
func Remove[S ~[]E, E any](s S, i int) (S, E) {
	value := s[i]
	return slices.Delete(s, i, i+1), value
}

// SwapRemove deletes s[i] by moving the last element into its slot.
func SwapRemove[S ~[]E, E any](s S, i int) (S, E) {
	last := len(s) - 1
	s[i], s[last] = s[last], s[i]
	return Pop(s)
}

// SplitOff moves s[at:] into a freshly allocated slice and truncates s to
// at elements.
func SplitOff[S ~[]E, E any](s S, at int) (S, S) {
	tail := make(S, len(s)-at)
	copy(tail, s[at:])
	return Truncate(s, at), tail
}

// Resize grows s to n elements by appending copies of value, or truncates
// it when n is smaller than len(s).
func Resize[S ~[]E, E any](s S, n int, value E) S {
	if n <= len(s) {
		return Truncate(s, n)
	}
	s = slices.Grow(s, n-len(s))
	for len(s) < n {
		s = append(s, value)
	}
	return s
}
