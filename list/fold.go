package list

import (
	"github.com/npillmayer/fplist"
)

// FoldR is the right fold over a list: it combines elements with f such that
// the rightmost element is combined with `zero` first, conceptually nested as
//
//     f(x1, f(x2, … f(xn, zero)))
//
// FoldR is defined by structural recursion through Cases: the empty list
// yields `zero`, a cons yields f(head, FoldR(f, zero, tail)). Recursion depth
// equals the length of the list, so folding a very long list may exhaust the
// call stack.
func FoldR[T, R any](f func(T, R) R, zero R, l List[T]) R {
	return Cases(l, func(head T, tail List[T]) R {
		return f(head, FoldR(f, zero, tail))
	}, fplist.Const(zero))
}

// --- Fold-derived combinators ----------------------------------------------

// Summable captures the element types Sum can fold: everything with a '+'
// operator and a neutral zero value.
type Summable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~string
}

// Sum folds a list with '+', seeded with the zero value of T. For strings
// this is concatenation.
func Sum[T Summable](l List[T]) T {
	var zero T
	return FoldR(func(x, acc T) T {
		return x + acc
	}, zero, l)
}

// Map returns a new list holding f applied to every element of l, preserving
// length and order. l is left untouched.
func Map[T, U any](f func(T) U, l List[T]) List[U] {
	return FoldR(func(x T, acc List[U]) List[U] {
		return Cons(f(x), acc)
	}, Nil[U](), l)
}

// Filter returns a new list holding the elements of l for which pred is true,
// in their original order. l is left untouched.
func Filter[T any](pred func(T) bool, l List[T]) List[T] {
	return FoldR(func(x T, acc List[T]) List[T] {
		if pred(x) {
			return Cons(x, acc)
		}
		return acc
	}, Nil[T](), l)
}

// Len returns the number of elements of a list.
func Len[T any](l List[T]) int {
	return FoldR(func(_ T, n int) int {
		return n + 1
	}, 0, l)
}

// Slice returns the elements of a list as a Go slice, in list order.
func Slice[T any](l List[T]) []T {
	return FoldR(func(x T, acc []T) []T {
		return append([]T{x}, acc...)
	}, []T{}, l)
}
