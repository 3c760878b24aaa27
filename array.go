package eytzinger

import (
	"cmp"
	"iter"
	"slices"
)

// Array is a fixed capacity ordered container holding its elements in
// Eytzinger order. It owns its backing storage and comparator and is
// immutable once constructed, so any number of goroutines may query it
// concurrently without synchronisation. Construction must complete before
// the value is shared.
type Array[T any] struct {
	es   []T
	less func(a, b T) bool
}

// New builds an Array from values using the natural ascending order of T.
func New[T cmp.Ordered](values []T) Array[T] {
	return NewFunc(values, cmp.Less[T])
}

// NewFunc builds an Array from values ordered by less, which must be a
// strict weak ordering. The input is copied, never retained or modified, and
// its order is irrelevant: the layout depends only on the multiset of values
// and len(values). A nil or empty input yields a valid empty Array.
func NewFunc[T any](values []T, less func(a, b T) bool) Array[T] {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
	return Array[T]{es: FromSorted(sorted), less: less}
}

// Len returns the number of stored elements.
func (a Array[T]) Len() int {
	return len(a.es)
}

// At returns the element at zero based storage index i. Bounds are the
// caller's responsibility.
func (a Array[T]) At(i int) T {
	return a.es[i]
}

// Search returns the storage index of the smallest element that does not
// compare less than value, and true. When value compares greater than every
// stored element, or the Array is empty, no lower bound exists and Search
// returns -1, false.
func (a Array[T]) Search(value T) (int, bool) {
	i := SearchSlice(a.es, value, a.less)
	return i, i >= 0
}

// All iterates index, element pairs in storage (Eytzinger) order.
func (a Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range a.es {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Ascending returns the elements in ascending order, by walking the implicit
// shape in-order. It is the inverse of the construction permutation.
func (a Array[T]) Ascending() []T {
	out := make([]T, len(a.es))
	for i, j := range InOrder(len(a.es)) {
		out[i] = a.es[j]
	}
	return out
}
