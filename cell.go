package lazycell

import "fmt"

// A Cell is a lazily initialized value holder for use by a single
// goroutine. It starts empty, fills exactly once on first use, and
// hands out the stored value on every access after that.
//
// The zero value is an empty, ready-to-use cell. Cell performs no
// synchronization whatsoever: it must not be shared between goroutines
// (Go cannot enforce that statically, so it is a documented contract;
// see SyncCell for the synchronized variant).
//
// At most one value is ever written to a cell. There is no reset: once
// filled, a cell stays filled for the rest of its life, and every fill
// function passed afterward is ignored.
type Cell[T any] struct {
	value T
	ready bool
}

// New returns a new empty cell.
//
// It exists for symmetry with call sites that want an explicit
// constructor; `var c lazycell.Cell[T]` or embedding a Cell field in a
// struct works just as well.
func New[T any]() *Cell[T] {
	return new(Cell[T])
}

// Peek returns the stored value and whether the cell has been filled.
// It never invokes a fill function and has no side effects. While the
// cell is empty, Peek returns the zero value of T and false.
func (c *Cell[T]) Peek() (T, bool) {
	if c.ready {
		return c.value, true
	}
	var zero T
	return zero, false
}

// Get returns the cell's value, calling fill to compute it if the cell
// is still empty. Over the life of the cell, fill functions run at
// most once in total: once a value is stored, Get returns it without
// looking at fill.
//
// fill may touch other cells, but it must not fill c itself. If the
// cell becomes filled while fill is running, Get panics: two candidate
// values exist and silently discarding either would hide a logic error.
//
// If fill panics, the cell stays empty and the next Get starts over as
// if this call never happened.
func (c *Cell[T]) Get(fill func() T) T {
	if !c.ready {
		v := fill()
		if c.ready {
			panic("lazycell: reentrant initialization of Cell")
		}
		c.value = v
		c.ready = true
	}
	return c.value
}

// GetErr is Get for fill functions that can fail. On error the cell
// stays empty, the error is returned alongside the zero value of T,
// and the error is NOT remembered: a later Get or GetErr runs its fill
// function as if this attempt never happened.
//
// This differs from SyncCell.GetErr, which fires its fill exactly once
// and memoizes the error.
func (c *Cell[T]) GetErr(fill func() (T, error)) (T, error) {
	if c.ready {
		return c.value, nil
	}
	v, err := fill()
	if c.ready {
		panic("lazycell: reentrant initialization of Cell")
	}
	if err != nil {
		var zero T
		return zero, err
	}
	c.value = v
	c.ready = true
	return c.value, nil
}

// Set fills the cell with v and reports whether it succeeded. Set only
// succeeds on an empty cell; once any value is stored, Set returns
// false and the cell keeps its original value.
func (c *Cell[T]) Set(v T) bool {
	if c.ready {
		return false
	}
	c.value = v
	c.ready = true
	return true
}

// MustSet fills the cell with v, or panics if the cell already holds a
// value.
func (c *Cell[T]) MustSet(v T) {
	if !c.Set(v) {
		panic("lazycell: MustSet on a filled Cell")
	}
}

// IntoInner moves the stored value out of the cell, returning it and
// whether the cell was filled. On an empty cell it returns the zero
// value of T and false.
//
// IntoInner consumes the cell: the slot is zeroed so the cell no
// longer retains the value, and the cell must not be used afterward.
func (c *Cell[T]) IntoInner() (T, bool) {
	v, ok := c.value, c.ready
	var zero T
	c.value = zero
	c.ready = false
	return v, ok
}

// String renders the cell for debugging: "Cell(<empty>)" while empty,
// otherwise "Cell(v)" using T's default formatting.
func (c *Cell[T]) String() string {
	if c.ready {
		return fmt.Sprintf("Cell(%v)", c.value)
	}
	return "Cell(<empty>)"
}

// Cloner is satisfied by types that can produce an independent copy of
// themselves. How deep the copy goes is T's own business; Clone only
// delegates.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns a new cell that is independent of c: empty if c is
// empty, otherwise pre-filled with a copy of c's value obtained from
// T's Clone method. It never invokes a fill function.
//
// Clone is a function rather than a method because Go methods cannot
// narrow the type parameter to require the Clone capability.
func Clone[T Cloner[T]](c *Cell[T]) *Cell[T] {
	out := new(Cell[T])
	if v, ok := c.Peek(); ok {
		out.value = v.Clone()
		out.ready = true
	}
	return out
}
