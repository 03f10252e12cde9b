package soa

// Iterator is a finite, non-restartable sequence. Next returns false once
// the sequence is exhausted and keeps returning false afterwards.
type Iterator[T any] interface {
	Next() (T, bool)
}

// ExactIterator is an Iterator that knows how many items remain.
type ExactIterator[T any] interface {
	Iterator[T]
	Len() int
}

// IteratorFunc adapts a plain function to the Iterator interface, which lets
// external streams take part in a multizip.
type IteratorFunc[T any] func() (T, bool)

func (f IteratorFunc[T]) Next() (T, bool) {
	return f()
}

// Values iterates over copies of the elements of a column.
type Values[T any] struct {
	column []T
}

// ValuesOf returns an iterator over the elements of column.
func ValuesOf[T any](column []T) *Values[T] {
	return &Values[T]{column: column}
}

func (it *Values[T]) Next() (T, bool) {
	if len(it.column) == 0 {
		var zero T
		return zero, false
	}
	value := it.column[0]
	it.column = it.column[1:]
	return value, true
}

func (it *Values[T]) Len() int {
	return len(it.column)
}

// Pointers iterates over the addresses of the elements of a column.
type Pointers[T any] struct {
	column []T
}

// PointersOf returns an iterator over pointers to the elements of column.
func PointersOf[T any](column []T) *Pointers[T] {
	return &Pointers[T]{column: column}
}

func (it *Pointers[T]) Next() (*T, bool) {
	if len(it.column) == 0 {
		return nil, false
	}
	p := &it.column[0]
	it.column = it.column[1:]
	return p, true
}

func (it *Pointers[T]) Len() int {
	return len(it.column)
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
