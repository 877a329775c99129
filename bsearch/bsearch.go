// Package bsearch implements binary search over sequences sorted in
// non-decreasing order.
//
// Every function taking a slice checks the order of its input first and fails
// with ErrInvalidInput when the slice is not sorted. Sorted runs the same
// searches after checking once. A missing target is not an
// error: the operations report it as (-1, false).
package bsearch

import (
	"cmp"

	"github.com/yuya-isaka/chibisearch/util"
)

// BinarySearch searches the index range [0, size) with f, which reports how the
// element at an index orders against the target. When nothing matches it
// returns the position the target would be inserted at and false.
func BinarySearch(size int, f func(int) util.Ordering) (int, bool) {
	left := 0
	right := size
	for left < right {
		mid := left + (right-left)/2
		ord := f(mid)
		if ord == util.Less {
			left = mid + 1
		} else if ord == util.Greater {
			right = mid
		} else {
			return mid, true
		}
	}
	return left, false
}

// Search returns an index whose element equals target. Among duplicates the
// index returned is whichever one the midpoint lands on first.
func Search[T cmp.Ordered](s []T, target T) (int, bool, error) {
	return SearchFunc(s, target, cmp.Compare[T])
}

// SearchFunc is Search with a custom comparison, which must return a negative
// number when a < b, zero when they are equal and a positive number otherwise.
func SearchFunc[E any](s []E, target E, compare func(a, b E) int) (int, bool, error) {
	if err := checkSorted(s, compare); err != nil {
		return -1, false, err
	}
	i, ok := search(s, target, compare)
	return i, ok, nil
}

func search[E any](s []E, target E, compare func(a, b E) int) (int, bool) {
	left, right := 0, len(s)-1
	for left <= right {
		mid := left + (right-left)/2

		switch c := compare(target, s[mid]); {
		case c == 0:
			return mid, true
		case c > 0:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1, false
}

// Recursive ====================================================================

// RecursiveSearch is the recursive form of Search over the whole sequence.
// The order of s is checked once, not on every level of recursion.
func RecursiveSearch[T cmp.Ordered](s []T, target T) (int, bool, error) {
	return RecursiveSearchRangeFunc(s, target, 0, len(s)-1, cmp.Compare[T])
}

// RecursiveSearchFunc is RecursiveSearch with a custom comparison.
func RecursiveSearchFunc[E any](s []E, target E, compare func(a, b E) int) (int, bool, error) {
	return RecursiveSearchRangeFunc(s, target, 0, len(s)-1, compare)
}

// RecursiveSearchRange searches only the inclusive index range [left, right].
// An empty range (left > right) finds nothing; a non-empty range reaching
// outside s is invalid input.
func RecursiveSearchRange[T cmp.Ordered](s []T, target T, left, right int) (int, bool, error) {
	return RecursiveSearchRangeFunc(s, target, left, right, cmp.Compare[T])
}

func RecursiveSearchRangeFunc[E any](s []E, target E, left, right int, compare func(a, b E) int) (int, bool, error) {
	if err := checkSorted(s, compare); err != nil {
		return -1, false, err
	}
	if err := checkBounds(len(s), left, right); err != nil {
		return -1, false, err
	}
	i, ok := recursiveSearch(s, target, left, right, compare)
	return i, ok, nil
}

func recursiveSearch[E any](s []E, target E, left, right int, compare func(a, b E) int) (int, bool) {
	if left > right {
		return -1, false
	}

	mid := left + (right-left)/2
	switch c := compare(target, s[mid]); {
	case c == 0:
		return mid, true
	case c > 0:
		return recursiveSearch(s, target, mid+1, right, compare)
	default:
		return recursiveSearch(s, target, left, mid-1, compare)
	}
}
