package list

import (
	"fmt"

	"github.com/npillmayer/fplist/maybe"
)

// List is an immutable singly-linked list with structural sharing of tails.
// The zero value is a usable empty list, i.e. this is legal:
//
//     l := list.List[int]{}
//     l = list.Cons(7, l)
//
// returning a one-element list ⟨7⟩.
type List[T any] struct {
	cell *cell[T]
}

// cell is a cons cell. Cells are never mutated after construction; a tail may
// be shared by any number of lists.
type cell[T any] struct {
	head T
	tail List[T]
}

// --- Introduction ----------------------------------------------------------

// Nil returns the empty list.
func Nil[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with `head` in front of `tail`. The new list shares
// `tail` with the caller; nothing is copied.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{cell: &cell[T]{head: head, tail: tail}}
}

// Of builds a list from items, consing right to left, so that
//
//     list.Of(1, 2, 3)
//
// is the same list as
//
//     list.Cons(1, list.Cons(2, list.Cons(3, list.Nil[int]())))
//
// Of() without arguments returns the empty list.
func Of[T any](items ...T) List[T] {
	l := Nil[T]()
	for i := len(items) - 1; i >= 0; i-- {
		l = Cons(items[i], l)
	}
	tracer().Debugf("built list of %d items: %v", len(items), l)
	return l
}

// --- Elimination -----------------------------------------------------------

// Cases takes a list apart by exhaustive case analysis: it invokes exactly one
// of `onCons` or `onNil`, depending on the variant of l, and returns the
// result. Cases is the single primitive for inspecting a list; every other
// operation in this package is defined in terms of it.
//
// Use it like this:
//
//     n := list.Cases(l,
//         func(head int, tail list.List[int]) int { return head },
//         func() int { return -1 },
//     )
//
func Cases[T, R any](l List[T], onCons func(head T, tail List[T]) R, onNil func() R) R {
	if l.cell == nil {
		return onNil()
	}
	return onCons(l.cell.head, l.cell.tail)
}

// --- Matching --------------------------------------------------------------

// Match returns a Matcher for use in a switch statement:
//
//     var h int
//     var t list.List[int]
//     switch m := l.Match(); m {
//     case m.Cons(&h, &t):
//         …
//     case m.Nil():
//         …
//     }
//
// Exactly one case will match.
func (l List[T]) Match() Matcher[T] {
	return matcher[T]{l: l}
}

type Matcher[T any] interface {
	Cons(*T, *List[T]) Matcher[T]
	Nil() Matcher[T]
}

type matcher[T any] struct {
	l List[T]
}

func (lm matcher[T]) Cons(head *T, tail *List[T]) Matcher[T] {
	return Cases(lm.l, func(h T, t List[T]) Matcher[T] {
		*head = h
		*tail = t
		return lm
	}, func() Matcher[T] {
		return nil
	})
}

func (lm matcher[T]) Nil() Matcher[T] {
	return Cases(lm.l, func(T, List[T]) Matcher[T] {
		return nil
	}, func() Matcher[T] {
		return lm
	})
}

// --- Accessors -------------------------------------------------------------

// Head returns the first value of a list, or Nothing for the empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	return Cases(l, func(head T, _ List[T]) maybe.Maybe[T] {
		return maybe.Just(head)
	}, maybe.Nothing[T])
}

// Tail returns a list without its first value, or Nothing for the empty list.
// The returned tail is shared with l.
func (l List[T]) Tail() maybe.Maybe[List[T]] {
	return Cases(l, func(_ T, tail List[T]) maybe.Maybe[List[T]] {
		return maybe.Just(tail)
	}, maybe.Nothing[List[T]])
}

// --- Rendering -------------------------------------------------------------

// String renders a list in cons notation, e.g. "1 :: 2 :: 3 :: nil".
// The empty list renders as "nil".
func (l List[T]) String() string {
	return FoldR(func(head T, acc string) string {
		return fmt.Sprintf("%v :: %s", head, acc)
	}, "nil", l)
}
