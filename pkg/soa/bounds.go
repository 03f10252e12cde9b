package soa

import (
	"fmt"

	"github.com/thorn-jmh/errorst"
)

// ErrColumnLength is raised when the columns of a container disagree on
// their length.
var ErrColumnLength = errorst.NewError("soa: columns have different lengths")

// BoundsError describes an index or range that falls outside a container.
// Generated code panics with a *BoundsError before touching any column.
type BoundsError struct {
	Op    string // operation that failed, e.g. "insert"
	Index int    // offending index, or range start
	End   int    // range end, -1 for point indexes
	Len   int    // container length
}

func (e *BoundsError) Error() string {
	if e.End >= 0 {
		return fmt.Sprintf("soa: %s: range [%d:%d] out of bounds for length %d", e.Op, e.Index, e.End, e.Len)
	}
	return fmt.Sprintf("soa: %s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

// CheckIndex panics unless 0 <= index < length.
func CheckIndex(op string, index, length int) {
	if index < 0 || index >= length {
		panic(&BoundsError{Op: op, Index: index, End: -1, Len: length})
	}
}

// CheckPosition panics unless 0 <= index <= length. Insertion points and
// split points are positions.
func CheckPosition(op string, index, length int) {
	if index < 0 || index > length {
		panic(&BoundsError{Op: op, Index: index, End: -1, Len: length})
	}
}

// CheckLen panics unless got equals length. Per-element inputs such as
// permutations must match the container they are applied to.
func CheckLen(op string, got, length int) {
	if got != length {
		panic(fmt.Sprintf("soa: %s: got %d elements for length %d", op, got, length))
	}
}

// SameLen reports whether every length in lens equals n.
func SameLen(n int, lens ...int) bool {
	for _, l := range lens {
		if l != n {
			return false
		}
	}
	return true
}

// AssertLen returns n, or panics with ErrColumnLength when one of lens
// differs from it.
func AssertLen(n int, lens ...int) int {
	if !SameLen(n, lens...) {
		panic(ErrColumnLength)
	}
	return n
}

// ColumnLengthError builds the error returned by decoders that receive
// columns of different lengths for the container named typ.
func ColumnLengthError(typ string) error {
	return errorst.Wrap(ErrColumnLength, "cannot decode %s", typ)
}
