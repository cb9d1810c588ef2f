package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetSetExpiry(t *testing.T) {
	c := New()

	_, ok := c.Get("k")
	require.False(t, ok)

	c.Set("k", "v", 50*time.Millisecond)
	v, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)

	time.Sleep(60 * time.Millisecond)
	_, ok = c.Get("k")
	require.False(t, ok, "expired entry must read as absent")
}

func TestClear(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Clear("a")
	_, ok := c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.True(t, ok)

	c.ClearAll()
	_, ok = c.Get("b")
	require.False(t, ok)
}

func TestFetchWithDedup(t *testing.T) {
	c := New()
	var calls atomic.Int32

	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(100 * time.Millisecond)
		return "balance", nil
	}

	// 5 concurrent callers, one underlying fetch, identical results
	var wg sync.WaitGroup
	results := make([]any, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.FetchWithDedup(context.Background(), "k", time.Minute, fetch)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	require.EqualValues(t, 1, calls.Load())
	for _, v := range results {
		require.Equal(t, "balance", v)
	}

	// subsequent call hits the cache, not the fetcher
	v, err := c.FetchWithDedup(context.Background(), "k", time.Minute, fetch)
	require.NoError(t, err)
	require.Equal(t, "balance", v)
	require.EqualValues(t, 1, calls.Load())
}

func TestFetchWithDedupFailureNotCached(t *testing.T) {
	c := New()
	var calls atomic.Int32
	boom := errors.New("rpc down")

	fail := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return nil, boom
	}

	_, err := c.FetchWithDedup(context.Background(), "k", time.Minute, fail)
	require.ErrorIs(t, err, boom)

	// the in-flight slot cleared; the next call fetches again
	_, err = c.FetchWithDedup(context.Background(), "k", time.Minute, fail)
	require.ErrorIs(t, err, boom)
	require.EqualValues(t, 2, calls.Load())
}

func TestFetchWithDedupStaleValueSurvivesFailure(t *testing.T) {
	c := New()
	c.Set("k", "stale", time.Minute)

	// fresh entry short-circuits, fetcher never runs
	v, err := c.FetchWithDedup(context.Background(), "k", time.Minute, func(ctx context.Context) (any, error) {
		return nil, errors.New("unreachable")
	})
	require.NoError(t, err)
	require.Equal(t, "stale", v)
}

func TestFetchWithDedupContextCancel(t *testing.T) {
	c := New()
	ctx, cancel := context.WithCancel(context.Background())

	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := c.FetchWithDedup(ctx, "k", time.Minute, func(ctx context.Context) (any, error) {
			<-release
			return "late", nil
		})
		require.ErrorIs(t, err, context.Canceled)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("caller did not observe cancellation")
	}
	close(release)
}

func TestFetchWithDedupCancelDoesNotPoisonWaiters(t *testing.T) {
	c := New()
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		select {
		case <-release:
			return "balance", nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ctx1, cancel1 := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := c.FetchWithDedup(ctx1, "k", time.Minute, fetch)
		first <- err
	}()
	<-started

	// second caller joins the in-flight fetch
	type result struct {
		v   any
		err error
	}
	second := make(chan result, 1)
	go func() {
		v, err := c.FetchWithDedup(context.Background(), "k", time.Minute, fetch)
		second <- result{v, err}
	}()
	time.Sleep(50 * time.Millisecond)

	// canceling the caller that started the fetch fails only that caller
	cancel1()
	require.ErrorIs(t, <-first, context.Canceled)

	close(release)
	r := <-second
	require.NoError(t, r.err)
	require.Equal(t, "balance", r.v)
	require.EqualValues(t, 1, calls.Load())
}
