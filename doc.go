/*
Package fplist provides a persistent immutable list in the style of functional
programming languages, together with a handful of generic function combinators.

A persistent list is built from shared, immutable cons cells: prepending an
element to a list creates a single new cell and leaves the original list
unchanged and fully usable. Two lists may therefore share most of their memory,
transparently to clients. Immutable lists are inherently concurrency-safe.

The list type itself lives in sub-package list; this top-level package holds
small general-purpose helpers (composition, constant functions) used throughout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fplist
