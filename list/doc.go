/*
Package list implements an immutable persistent cons list, the classic
algebraic data type of functional programming:

    data List a = Cons { head :: a, tail :: List a } | Nil

A list is either empty, or a head value in front of a tail list. Lists are
never modified after construction: prepending a value allocates one new cell
and shares the tail with the original list. Structural sharing makes copies
cheap and lists safe for concurrent traversal without synchronization.

The only way to inspect a list is exhaustive case analysis, either with the
Cases function or with the switch-based Match idiom. Everything else in this
package — folds, map, filter, sum, rendering — is defined on top of Cases.

Status

Requires Go 1.18 (generics).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fplist.list'.
func tracer() tracing.Trace {
	return tracing.Select("fplist.list")
}
