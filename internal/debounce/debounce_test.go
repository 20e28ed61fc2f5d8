package debounce

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_BurstIssuesOneCallWithLastValue(t *testing.T) {
	g := NewGroup[string](300 * time.Millisecond)

	var calls atomic.Int32
	var got atomic.Value
	var wg sync.WaitGroup
	errs := make([]error, 5)

	keystrokes := []string{"H", "Ha", "Han", "Hano", "Hanoi"}
	for i, q := range keystrokes {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			_, errs[i] = g.Do(context.Background(), "visitor-1/city", func(ctx context.Context) (string, error) {
				calls.Add(1)
				got.Store(q)
				return q, nil
			})
		}(i, q)
		time.Sleep(20 * time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "Hanoi", got.Load())
	for i := 0; i < 4; i++ {
		assert.ErrorIs(t, errs[i], ErrSuperseded)
	}
	assert.NoError(t, errs[4])
	assert.Equal(t, 0, g.Pending())
}

func TestGroup_KeysAreIndependent(t *testing.T) {
	g := NewGroup[int](30 * time.Millisecond)

	var wg sync.WaitGroup
	var calls atomic.Int32
	for _, key := range []string{"a", "b"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			_, err := g.Do(context.Background(), key, func(ctx context.Context) (int, error) {
				calls.Add(1)
				return 0, nil
			})
			assert.NoError(t, err)
		}(key)
	}
	wg.Wait()
	assert.Equal(t, int32(2), calls.Load())
}

func TestGroup_SeparateBurstsEachRun(t *testing.T) {
	g := NewGroup[int](20 * time.Millisecond)
	calls := 0
	for i := 0; i < 3; i++ {
		v, err := g.Do(context.Background(), "k", func(ctx context.Context) (int, error) {
			calls++
			return calls, nil
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, v)
	}
}

func TestGroup_ContextCancelled(t *testing.T) {
	g := NewGroup[int](time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Do(ctx, "k", func(ctx context.Context) (int, error) {
		t.Fatal("must not run")
		return 0, nil
	})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, g.Pending())
}

func TestGroup_CancelledCallDoesNotReviveOlderOne(t *testing.T) {
	g := NewGroup[string](100 * time.Millisecond)

	var mu sync.Mutex
	var ran []string
	results := make(map[string]error)
	var wg sync.WaitGroup

	call := func(ctx context.Context, q string) {
		defer wg.Done()
		_, err := g.Do(ctx, "visitor-1/address", func(ctx context.Context) (string, error) {
			mu.Lock()
			ran = append(ran, q)
			mu.Unlock()
			return q, nil
		})
		mu.Lock()
		results[q] = err
		mu.Unlock()
	}

	wg.Add(3)
	go call(context.Background(), "ha")
	time.Sleep(20 * time.Millisecond)

	// the request for the second keystroke is aborted while the first still waits
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	go call(ctx, "han")
	time.Sleep(40 * time.Millisecond)

	go call(context.Background(), "hanoi")
	wg.Wait()

	assert.Equal(t, []string{"hanoi"}, ran)
	assert.ErrorIs(t, results["ha"], ErrSuperseded)
	assert.ErrorIs(t, results["han"], context.DeadlineExceeded)
	assert.NoError(t, results["hanoi"])
	assert.Equal(t, 0, g.Pending())
}

func TestGroup_NewBurstWhilePreviousCallRuns(t *testing.T) {
	g := NewGroup[string](20 * time.Millisecond)

	release := make(chan struct{})
	started := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		_, err := g.Do(context.Background(), "k", func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "first", nil
		})
		firstDone <- err
	}()
	<-started
	assert.Equal(t, 1, g.Pending())

	v, err := g.Do(context.Background(), "k", func(ctx context.Context) (string, error) {
		return "second", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "second", v)

	close(release)
	assert.NoError(t, <-firstDone)
	assert.Equal(t, 0, g.Pending())
}
