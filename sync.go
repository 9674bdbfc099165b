package lazycell

import (
	"errors"
	"sync"
	"sync/atomic"
)

// filledNoErr is the sentinel *error stored in SyncCell.err to publish
// "filled, and the fill returned no error".
var filledNoErr = new(error)

// errFillPanicked is published when a fill function panicked before
// producing a value. The cell is poisoned: sync.Once has fired, so no
// later fill can run, and the slot holds no usable value.
var errFillPanicked = errors.New("lazycell: fill function panicked")

// errPtr encodes a fill outcome for SyncCell.err.
func errPtr(err error) *error {
	if err == nil {
		return filledNoErr
	}
	return &err
}

// A SyncCell is the goroutine-safe counterpart of Cell. Where Cell
// relies on single-goroutine use and detects reentrancy, SyncCell pays
// for a sync.Once so that any number of goroutines may race to fill
// and read it.
//
// The zero value is an empty, ready-to-use cell.
//
// Calling Get or GetErr on a SyncCell from inside its own fill
// function deadlocks (sync.Once blocks on itself); keep fill functions
// free of recursion into the same cell, exactly as with Cell.
//
// A fill function that panics poisons the cell: the panic propagates
// to the filling caller, and because sync.Once never re-fires, no
// later fill can run either. Afterward Get panics with a diagnostic,
// GetErr and PeekErr report the poisoning as an error, and Peek
// reports the cell unfilled. This differs from Cell, which stays empty
// and retryable after a panicking fill; a cell shared between
// goroutines cannot retry without readmitting the race that sync.Once
// exists to close.
type SyncCell[T any] struct {
	once sync.Once
	v    T

	// err publishes the fill outcome:
	//   nil              not filled yet
	//   filledNoErr      filled, fill returned nil
	//   errFillPanicked  fill panicked; c.v was never written
	//   otherwise        points at the fill error
	//
	// It is stored after v is written, so a goroutine that loads
	// filledNoErr may safely read v without holding the Once.
	err atomic.Pointer[error]
}

// sealPanic publishes the poison sentinel when a fill unwound before
// its outcome was stored. Deferred inside every fill-running once.Do
// body, where a nil err can only mean the fill did not complete.
func (c *SyncCell[T]) sealPanic() {
	if c.err.Load() == nil {
		c.err.Store(&errFillPanicked)
	}
}

// Get returns the cell's value, calling fill to compute it if needed.
// fill runs at most once across all goroutines and all Get/GetErr/Set
// calls.
//
// If the cell was poisoned by an earlier panicking fill, Get panics
// rather than passing off the zero value of T as a fill result.
func (c *SyncCell[T]) Get(fill func() T) T {
	c.once.Do(func() {
		defer c.sealPanic()
		c.v = fill()
		c.err.Store(filledNoErr) // after the write to c.v
	})
	if c.err.Load() == &errFillPanicked {
		panic("lazycell: Get on a SyncCell whose fill function panicked")
	}
	return c.v
}

// GetErr returns the cell's value, calling fill to compute it if
// needed. fill runs at most once, and both of its results are
// remembered: a fill error is returned to this and every later caller.
//
// This differs from Cell.GetErr, which leaves the cell empty on error
// so a later attempt can retry.
//
// If the cell was poisoned by an earlier panicking fill, GetErr
// reports that as an error.
func (c *SyncCell[T]) GetErr(fill func() (T, error)) (T, error) {
	c.once.Do(func() {
		defer c.sealPanic()
		var err error
		c.v, err = fill()
		c.err.Store(errPtr(err)) // after the write to c.v
	})
	return c.v, *c.err.Load()
}

// Set fills the cell with v and reports whether it succeeded. Set only
// succeeds if none of Get, GetErr, or Set have completed before.
func (c *SyncCell[T]) Set(v T) bool {
	var won bool
	c.once.Do(func() {
		c.v = v
		c.err.Store(filledNoErr) // after the write to c.v
		won = true
	})
	return won
}

// MustSet fills the cell with v, or panics if the cell already holds a
// value or error.
func (c *SyncCell[T]) MustSet(v T) {
	if !c.Set(v) {
		panic("lazycell: MustSet on a filled SyncCell")
	}
}

// Peek returns the stored value and whether the cell has been filled
// successfully. It never invokes a fill function. If GetErr's fill
// returned an error, or a fill panicked, Peek reports false; use
// PeekErr to see the error.
//
// Peek is safe to call concurrently with Get/GetErr/Set, but whether
// it observes a concurrent fill is unspecified.
func (c *SyncCell[T]) Peek() (T, bool) {
	if c.err.Load() == filledNoErr {
		return c.v, true
	}
	var zero T
	return zero, false
}

// PeekErr returns the stored value, the fill error, and whether the
// cell has been filled at all. Unlike Peek it reports true for an
// errored (or panicked) fill, handing back both of the fill's results.
func (c *SyncCell[T]) PeekErr() (T, error, bool) {
	if e := c.err.Load(); e != nil {
		return c.v, *e, true
	}
	var zero T
	return zero, nil, false
}

// TB is the subset of testing.TB that SetForTest needs. It is declared
// here so the package does not import testing.
type TB interface {
	Helper()
	Cleanup(func())
}

// SetForTest overrides the cell's value and error for the duration of
// a test, reverting the cell when tb and its subtests finish. It must
// not run concurrently with any other SyncCell method, including
// another SetForTest.
func (c *SyncCell[T]) SetForTest(tb TB, v T, err error) {
	tb.Helper()

	prevVal, prevErr := c.v, c.err.Load()
	wasFilled := prevErr != nil

	c.once.Do(func() {}) // burn the Once so no fill can fire mid-test
	c.v = v
	c.err.Store(errPtr(err))

	tb.Cleanup(func() {
		if !wasFilled {
			*c = SyncCell[T]{}
			return
		}
		c.v = prevVal
		c.err.Store(prevErr)
	})
}
