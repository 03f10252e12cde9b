package soa

import "unsafe"

// SliceData returns the address of the first element of s, or nil for a nil
// slice.
func SliceData[T any](s []T) *T {
	return unsafe.SliceData(s)
}

// Offset moves p by count elements of T. A nil p stays nil. The caller
// guarantees that the result stays inside the allocation p points into.
func Offset[T any](p *T, count int) *T {
	if p == nil || count == 0 {
		return p
	}
	return (*T)(unsafe.Add(unsafe.Pointer(p), count*int(unsafe.Sizeof(*p))))
}

// FromRawParts rebuilds a slice of length elements starting at p.
func FromRawParts[T any](p *T, length int) []T {
	if p == nil {
		if length != 0 {
			panic("soa: nil pointer with non-zero length")
		}
		return nil
	}
	return unsafe.Slice(p, length)
}

// FromRawPartsCap rebuilds a slice of length elements and capacity elements
// starting at p.
func FromRawPartsCap[T any](p *T, length, capacity int) []T {
	if length > capacity {
		panic(&BoundsError{Op: "from raw parts", Index: 0, End: length, Len: capacity})
	}
	return FromRawParts(p, capacity)[:length]
}
