package lazycell_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/alexshd/lazycell"
)

func TestSyncCell_Get(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[int]
	var calls atomic.Int64

	v := c.Get(func() int {
		calls.Add(1)
		return 1
	})
	require.Equal(t, 1, v)

	v = c.Get(func() int {
		calls.Add(1)
		return 2
	})
	require.Equal(t, 1, v)
	require.EqualValues(t, 1, calls.Load())
}

func TestSyncCell_GetConcurrent(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[int]
	var calls atomic.Int64
	var wg sync.WaitGroup

	got := make([]int, 32)
	for i := range got {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = c.Get(func() int {
				calls.Add(1)
				return 7
			})
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, calls.Load(), "fill ran more than once under contention")
	for _, v := range got {
		require.Equal(t, 7, v)
	}
}

func TestSyncCell_GetErrOK(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[int]
	v, err := c.GetErr(func() (int, error) {
		return 1, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestSyncCell_GetErrRemembersError(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[int]
	wantErr := xerrors.New("oh no! everything that could went horribly wrong!")

	_, err := c.GetErr(func() (int, error) {
		return 0, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// Unlike Cell, the error is memoized: the second fill never runs.
	_, err = c.GetErr(func() (int, error) {
		t.Error("fill ran again after an errored fill")
		return 9, nil
	})
	require.ErrorIs(t, err, wantErr)

	_, ok := c.Peek()
	require.False(t, ok, "Peek reported ok for an errored fill")

	v, err, ok := c.PeekErr()
	require.True(t, ok)
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 0, v)
}

func TestSyncCell_FillPanicPoisons(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[int]

	require.PanicsWithValue(t, "boom", func() {
		_, _ = c.GetErr(func() (int, error) { panic("boom") })
	})

	// The cell is poisoned, not silently zero-valued: Get refuses to
	// pass off the never-written slot as a fill result.
	require.Panics(t, func() {
		c.Get(func() int { return 1 })
	})

	// GetErr surfaces the poisoning as an error.
	v, err := c.GetErr(func() (int, error) { return 1, nil })
	require.ErrorContains(t, err, "panicked")
	require.Equal(t, 0, v)

	// Peek treats a panicked fill like an errored one; PeekErr shows it.
	_, ok := c.Peek()
	require.False(t, ok)

	v, err, ok = c.PeekErr()
	require.True(t, ok)
	require.ErrorContains(t, err, "panicked")
	require.Equal(t, 0, v)
}

func TestSyncCell_GetFillPanicPoisons(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[string]

	require.PanicsWithValue(t, "boom", func() {
		c.Get(func() string { panic("boom") })
	})

	_, err := c.GetErr(func() (string, error) { return "late", nil })
	require.ErrorContains(t, err, "panicked")

	_, ok := c.Peek()
	require.False(t, ok)
}

func TestSyncCell_Peek(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[string]
	_, ok := c.Peek()
	require.False(t, ok)
	_, _, ok = c.PeekErr()
	require.False(t, ok)

	c.MustSet("hi")

	v, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, "hi", v)

	v, err, ok := c.PeekErr()
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, "hi", v)
}

func TestSyncCell_Set(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[int]
	require.True(t, c.Set(42))
	require.False(t, c.Set(43))

	v := c.Get(func() int {
		t.Error("fill ran after Set")
		return 0
	})
	require.Equal(t, 42, v)

	require.Panics(t, func() { c.MustSet(44) })
}

func TestSyncCell_SetForTest(t *testing.T) {
	t.Parallel()

	var c lazycell.SyncCell[int]
	c.MustSet(1)

	t.Run("override", func(t *testing.T) {
		c.SetForTest(t, 2, nil)
		v, ok := c.Peek()
		require.True(t, ok)
		require.Equal(t, 2, v)
	})

	// Reverted once the subtest's cleanups have run.
	v, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, 1, v)
}
