package util

import "cmp"

type Ordering interface {
	orderProtexted()
}

type order int

func (o order) orderProtexted() {}

const (
	Less    order = -1
	Equal   order = 0
	Greater order = 1
)

// OrderingOf converts a -1/0/+1 style comparison result into an Ordering.
// Any negative value is Less and any positive value is Greater.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Compare orders a against b.
func Compare[T cmp.Ordered](a, b T) Ordering {
	return OrderingOf(cmp.Compare(a, b))
}

// ===================================================

func CompareByteSlice(a, b []byte) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return Less
		}
		if a[i] > b[i] {
			return Greater
		}
	}

	// 共通部分が等しいので長さで決める
	if len(a) < len(b) {
		return Less
	}
	if len(a) > len(b) {
		return Greater
	}

	return Equal
}
