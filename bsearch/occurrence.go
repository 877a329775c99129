package bsearch

import "cmp"

// FindFirstOccurrence returns the smallest index whose element equals target.
func FindFirstOccurrence[T cmp.Ordered](s []T, target T) (int, bool, error) {
	return FindFirstOccurrenceFunc(s, target, cmp.Compare[T])
}

func FindFirstOccurrenceFunc[E any](s []E, target E, compare func(a, b E) int) (int, bool, error) {
	if err := checkSorted(s, compare); err != nil {
		return -1, false, err
	}
	i, ok := findFirst(s, target, compare)
	return i, ok, nil
}

// FindLastOccurrence returns the largest index whose element equals target.
func FindLastOccurrence[T cmp.Ordered](s []T, target T) (int, bool, error) {
	return FindLastOccurrenceFunc(s, target, cmp.Compare[T])
}

func FindLastOccurrenceFunc[E any](s []E, target E, compare func(a, b E) int) (int, bool, error) {
	if err := checkSorted(s, compare); err != nil {
		return -1, false, err
	}
	i, ok := findLast(s, target, compare)
	return i, ok, nil
}

// CountOccurrences returns how many elements of s equal target.
func CountOccurrences[T cmp.Ordered](s []T, target T) (int, error) {
	return CountOccurrencesFunc(s, target, cmp.Compare[T])
}

func CountOccurrencesFunc[E any](s []E, target E, compare func(a, b E) int) (int, error) {
	if err := checkSorted(s, compare); err != nil {
		return 0, err
	}
	return count(s, target, compare), nil
}

// ==============================================================================

func findFirst[E any](s []E, target E, compare func(a, b E) int) (int, bool) {
	left, right := 0, len(s)-1
	result := -1
	for left <= right {
		mid := left + (right-left)/2

		c := compare(target, s[mid])
		if c == 0 {
			// 候補を記録して左半分を探し続ける
			result = mid
			right = mid - 1
		} else if c < 0 {
			right = mid - 1
		} else {
			left = mid + 1
		}
	}
	return result, result >= 0
}

func findLast[E any](s []E, target E, compare func(a, b E) int) (int, bool) {
	left, right := 0, len(s)-1
	result := -1
	for left <= right {
		mid := left + (right-left)/2

		c := compare(target, s[mid])
		if c == 0 {
			// 候補を記録して右半分を探し続ける
			result = mid
			left = mid + 1
		} else if c < 0 {
			right = mid - 1
		} else {
			left = mid + 1
		}
	}
	return result, result >= 0
}

func count[E any](s []E, target E, compare func(a, b E) int) int {
	first, ok := findFirst(s, target, compare)
	if !ok {
		return 0
	}
	// first が見つかった以上 last も必ず見つかる
	last, _ := findLast(s, target, compare)
	return last - first + 1
}
