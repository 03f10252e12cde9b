package soa

import "slices"

// Vector is the element-level surface shared by every generated vector,
// where T is the record type and R its shared reference type. Generic code
// can fill and drain any struct-of-arrays container through it.
type Vector[T, R any] interface {
	Len() int
	IsEmpty() bool
	Cap() int
	Push(value T)
	Pop() (T, bool)
	Insert(index int, value T)
	Remove(index int) T
	SwapRemove(index int) T
	Replace(index int, value T) T
	Index(index int) R
	Get(index int) (R, bool)
	Truncate(n int)
	Clear()
}

// Slice is the read surface of a generated shared view. R is the shared
// reference type of its elements.
type Slice[R any] interface {
	Len() int
	IsEmpty() bool
	Index(index int) R
	Get(index int) (R, bool)
	First() (R, bool)
	Last() (R, bool)
}

// SliceMut is the surface of a generated exclusive view. RM is the exclusive
// reference type of its elements.
type SliceMut[R, RM any] interface {
	Slice[R]
	IndexMut(index int) RM
	GetMut(index int) (RM, bool)
	Swap(a, b int)
	ApplyIndex(indices []int)
	ApplyPermutation(p *Permutation)
	SortBy(compare func(a, b R) int)
}

// Container is a Vector together with its views. V is the vector type
// itself, so that Append and SplitOff can be expressed.
type Container[V, T, R, RM any, S Slice[R], SM SliceMut[R, RM]] interface {
	Vector[T, R]
	AsSlice() S
	AsMutSlice() SM
	Append(other V)
	SplitOff(at int) V
}

// SortIndexBy sorts s by reading every element through Index and moving
// the columns once with ApplyIndex. The sort is stable.
func SortIndexBy[R, RM any](s SliceMut[R, RM], compare func(a, b R) int) {
	indices := make([]int, s.Len())
	for i := range indices {
		indices[i] = i
	}
	slices.SortStableFunc(indices, func(a, b int) int {
		return compare(s.Index(a), s.Index(b))
	})
	s.ApplyIndex(indices)
}
