// Package lazycell provides lazily initialized value containers.
//
// # Overview
//
// A cell holds either nothing or exactly one value of type T. The
// value is computed on first access by a caller-supplied fill function,
// stored, and handed back unchanged on every access after that. The
// fill function runs at most once over the life of the cell; there is
// no reset and no replacement after the first successful fill.
//
// Two containers are provided:
//
//   - Cell[T]: unsynchronized, for use by a single goroutine. Zero
//     overhead beyond a boolean flag. Reentrant initialization (the
//     fill function filling its own cell) is detected and panics.
//   - SyncCell[T]: synchronized with sync.Once, safe for concurrent
//     use from any number of goroutines. Reentrant use deadlocks
//     instead, as sync.Once blocks on itself.
//
// Cell makes no cross-goroutine promises at all: Go has no way to mark
// a type as unshareable, so the restriction is contractual. When a
// value outlives a single goroutine, reach for SyncCell and pay for
// the synchronization explicitly.
//
// # Quick Start
//
// Defer an expensive computation until (and unless) it is needed:
//
//	var tables lazycell.Cell[*RouteTable]
//
//	func routes() *RouteTable {
//	    return tables.Get(func() *RouteTable {
//	        return buildRouteTable() // runs once, on first call
//	    })
//	}
//
// Inspect without triggering the computation:
//
//	if rt, ok := tables.Peek(); ok {
//	    fmt.Println("already built:", rt)
//	}
//
// Move the value out when the cell's owner is done with it:
//
//	rt, ok := tables.IntoInner() // cell must not be used afterward
//
// # Fallible Initialization
//
// GetErr accepts a fill function that can fail. The two containers
// deliberately disagree on what an error means:
//
//   - Cell.GetErr leaves the cell empty on error; the next call runs
//     its fill function again, as if the failed attempt never happened.
//   - SyncCell.GetErr fires its fill exactly once and remembers the
//     error; every later call gets the same error back.
//
// A panicking fill follows the same split: Cell stays empty and
// retryable, while SyncCell is poisoned — its sync.Once has fired, so
// later Gets panic with a diagnostic and GetErr/PeekErr report the
// poisoning as an error rather than handing out a value that was never
// computed.
//
// # Reentrancy
//
// A fill function may read and fill other cells freely, but it must
// not cause its own cell to become filled. Cell checks for this after
// the fill function returns and panics with a diagnostic, because two
// candidate values exist at that point and discarding either would
// paper over a logic error in the caller:
//
//	var c lazycell.Cell[int]
//	c.Get(func() int {
//	    c.Get(func() int { return 0 }) // panics: reentrant initialization
//	    return 0
//	})
//
// # Function Wrappers
//
// Func, FuncErr, SyncFunc, and SyncFuncErr wrap a fill function into a
// memoized function when there is no struct to hang a cell off:
//
//	version := lazycell.SyncFunc(readBuildInfo)
//	...
//	log.Printf("version %s", version()) // readBuildInfo ran at most once
//
// # Duplication
//
// Clone copies a cell when T knows how to copy itself (a Clone() T
// method). The copy is independent: empty if the source was empty,
// otherwise pre-filled with T's own idea of a duplicate. Clone never
// runs a fill function.
//
// # See Also
//
//   - examples/ - runnable programs, including lazy template loading
//     in an HTTP server
package lazycell
