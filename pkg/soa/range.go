package soa

import (
	"fmt"
	"math"
)

type rangeKind uint8

const (
	rangeSpan rangeKind = iota
	rangeFrom
	rangeTo
	rangeFull
	rangeInclusive
	rangeToInclusive
)

// Range selects a contiguous run of positions. The zero Range is the empty
// span [0, 0); build other ranges with Span, From, To, Full, Inclusive and
// ToInclusive.
type Range struct {
	kind  rangeKind
	start int
	end   int
}

// Span is the half-open range [start, end).
func Span(start, end int) Range {
	return Range{kind: rangeSpan, start: start, end: end}
}

// From is the range [start, len).
func From(start int) Range {
	return Range{kind: rangeFrom, start: start}
}

// To is the range [0, end).
func To(end int) Range {
	return Range{kind: rangeTo, end: end}
}

// Full is the range [0, len).
func Full() Range {
	return Range{kind: rangeFull}
}

// Inclusive is the closed range [start, end].
func Inclusive(start, end int) Range {
	return Range{kind: rangeInclusive, start: start, end: end}
}

// ToInclusive is the closed range [0, end].
func ToInclusive(end int) Range {
	return Range{kind: rangeToInclusive, end: end}
}

// Resolve returns the half-open bounds r denotes against a container of the
// given length, without validating them. Unchecked accessors use it.
func (r Range) Resolve(length int) (start, end int) {
	switch r.kind {
	case rangeFrom:
		return r.start, length
	case rangeTo:
		return 0, r.end
	case rangeFull:
		return 0, length
	case rangeInclusive, rangeToInclusive:
		return r.start, r.end + 1
	default:
		return r.start, r.end
	}
}

// Bounds resolves r against a container of the given length and returns the
// half-open bounds it denotes. ok is false when the bounds do not satisfy
// 0 <= start <= end <= length, or when a closed range ends at math.MaxInt
// and its exclusive end cannot be represented.
func (r Range) Bounds(length int) (start, end int, ok bool) {
	if (r.kind == rangeInclusive || r.kind == rangeToInclusive) && r.end == math.MaxInt {
		return 0, 0, false
	}
	start, end = r.Resolve(length)
	if start < 0 || start > end || end > length {
		return 0, 0, false
	}
	return start, end, true
}

// MustBounds is like Bounds but panics with a *BoundsError when r does not
// fit a container of the given length.
func (r Range) MustBounds(length int) (start, end int) {
	start, end, ok := r.Bounds(length)
	if !ok {
		panic(&BoundsError{Op: "slice " + r.String(), Index: r.start, End: r.end, Len: length})
	}
	return start, end
}

func (r Range) String() string {
	switch r.kind {
	case rangeFrom:
		return fmt.Sprintf("%d..", r.start)
	case rangeTo:
		return fmt.Sprintf("..%d", r.end)
	case rangeFull:
		return ".."
	case rangeInclusive:
		return fmt.Sprintf("%d..=%d", r.start, r.end)
	case rangeToInclusive:
		return fmt.Sprintf("..=%d", r.end)
	default:
		return fmt.Sprintf("%d..%d", r.start, r.end)
	}
}
