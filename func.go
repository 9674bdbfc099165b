package lazycell

// Func wraps fill into a memoized function for single-goroutine use:
// the first call runs fill, every later call returns the same result
// without running anything. The returned function panics if fill
// reenters it.
func Func[T any](fill func() T) func() T {
	var c Cell[T]
	return func() T {
		return c.Get(fill)
	}
}

// FuncErr is Func for fill functions that can fail. Like Cell.GetErr,
// an error is not memoized: the next call runs fill again.
func FuncErr[T any](fill func() (T, error)) func() (T, error) {
	var c Cell[T]
	return func() (T, error) {
		return c.GetErr(fill)
	}
}

// SyncFunc wraps fill into a memoized function that is safe for
// concurrent use. fill runs at most once.
func SyncFunc[T any](fill func() T) func() T {
	var c SyncCell[T]
	return func() T {
		return c.Get(fill)
	}
}

// SyncFuncErr is SyncFunc for fill functions that can fail. fill runs
// at most once and both results are remembered, errors included, per
// SyncCell.GetErr.
func SyncFuncErr[T any](fill func() (T, error)) func() (T, error) {
	var c SyncCell[T]
	return func() (T, error) {
		return c.GetErr(fill)
	}
}
