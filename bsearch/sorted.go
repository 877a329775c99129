package bsearch

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidInput is returned when a sequence is not sorted in non-decreasing
// order, or when explicit search bounds fall outside the sequence.
var ErrInvalidInput = errors.New("input must be a sorted array")

// IsSorted reports whether every adjacent pair a, b of s satisfies a <= b.
func IsSorted[T cmp.Ordered](s []T) bool {
	return IsSortedFunc(s, cmp.Compare[T])
}

func IsSortedFunc[E any](s []E, compare func(a, b E) int) bool {
	return unsortedAt(s, compare) < 0
}

// unsortedAt returns the first index whose element is smaller than its
// predecessor, or -1.
func unsortedAt[E any](s []E, compare func(a, b E) int) int {
	for i := 1; i < len(s); i++ {
		if compare(s[i-1], s[i]) > 0 {
			return i
		}
	}
	return -1
}

func checkSorted[E any](s []E, compare func(a, b E) int) error {
	if i := unsortedAt(s, compare); i >= 0 {
		return fmt.Errorf("%w: element at index %d is smaller than its predecessor", ErrInvalidInput, i)
	}
	return nil
}

func checkBounds(n, left, right int) error {
	if left > right {
		return nil
	}
	if left < 0 || right >= n {
		return fmt.Errorf("%w: bounds [%d, %d] outside sequence of length %d", ErrInvalidInput, left, right, n)
	}
	return nil
}

// Sorted ======================================================================

// Sorted is a sequence whose order has already been checked. Its methods skip
// the per-call order check the package functions perform.
type Sorted[T cmp.Ordered] struct {
	values []T
}

// NewSorted checks the order of values once and keeps its own copy of them.
func NewSorted[T cmp.Ordered](values []T) (*Sorted[T], error) {
	if err := checkSorted(values, cmp.Compare[T]); err != nil {
		return nil, err
	}
	return &Sorted[T]{values: slices.Clone(values)}, nil
}

func (s *Sorted[T]) Len() int {
	return len(s.values)
}

func (s *Sorted[T]) Search(target T) (int, bool) {
	return search(s.values, target, cmp.Compare[T])
}

func (s *Sorted[T]) RecursiveSearch(target T) (int, bool) {
	return recursiveSearch(s.values, target, 0, len(s.values)-1, cmp.Compare[T])
}

func (s *Sorted[T]) First(target T) (int, bool) {
	return findFirst(s.values, target, cmp.Compare[T])
}

func (s *Sorted[T]) Last(target T) (int, bool) {
	return findLast(s.values, target, cmp.Compare[T])
}

func (s *Sorted[T]) Count(target T) int {
	return count(s.values, target, cmp.Compare[T])
}
