package snapshot_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/SscSPs/def_finance/internal/core/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesWithID(ids ...string) []domain.Entry {
	out := make([]domain.Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Entry{ID: id})
	}
	return out
}

func ids(entries []domain.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestLoader_CachesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	loader := snapshot.NewLoader(func(context.Context) ([]domain.Entry, error) {
		calls.Add(1)
		return entriesWithID("a"), nil
	}, snapshot.WithTTL(time.Minute), snapshot.WithClock(func() time.Time { return now }))

	_, err := loader.Entries(context.Background())
	require.NoError(t, err)
	_, err = loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	now = now.Add(2 * time.Minute)
	_, err = loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoader_InvalidateForcesRefetch(t *testing.T) {
	var calls atomic.Int32
	loader := snapshot.NewLoader(func(context.Context) ([]domain.Entry, error) {
		calls.Add(1)
		return entriesWithID("a"), nil
	}, snapshot.WithTTL(time.Hour))

	_, err := loader.Entries(context.Background())
	require.NoError(t, err)
	loader.Invalidate()
	_, err = loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoader_OlderResponseDoesNotOverwriteNewer(t *testing.T) {
	slowRelease := make(chan struct{})
	var calls atomic.Int32
	loader := snapshot.NewLoader(func(context.Context) ([]domain.Entry, error) {
		if calls.Add(1) == 1 {
			<-slowRelease
			return entriesWithID("old"), nil
		}
		return entriesWithID("new"), nil
	})

	var wg sync.WaitGroup
	var slowResult []domain.Entry
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowResult, _ = loader.Refresh(context.Background())
	}()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	fast, err := loader.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, ids(fast))

	close(slowRelease)
	wg.Wait()

	assert.Equal(t, []string{"new"}, ids(slowResult))
	assert.Equal(t, uint64(2), loader.Generation())
}

func TestLoader_FailureKeepsPreviousList(t *testing.T) {
	fail := false
	loader := snapshot.NewLoader(func(context.Context) ([]domain.Entry, error) {
		if fail {
			return nil, errors.New("connection reset")
		}
		return entriesWithID("a", "b"), nil
	}, snapshot.WithTTL(0))

	first, err := loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(first))

	fail = true
	_, err = loader.Entries(context.Background())
	require.Error(t, err)
	assert.Equal(t, uint64(1), loader.Generation())

	fail = false
	again, err := loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(again))
}

func TestLoader_ReturnsIndependentCopies(t *testing.T) {
	loader := snapshot.NewLoader(func(context.Context) ([]domain.Entry, error) {
		return entriesWithID("a"), nil
	}, snapshot.WithTTL(time.Hour))

	first, err := loader.Entries(context.Background())
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", second[0].ID)
}

func TestLoader_InvalidateDuringFetchKeepsListStale(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	loader := snapshot.NewLoader(func(context.Context) ([]domain.Entry, error) {
		if calls.Add(1) == 1 {
			<-release
			return entriesWithID("before-write"), nil
		}
		return entriesWithID("before-write", "after-write"), nil
	}, snapshot.WithTTL(time.Hour))

	done := make(chan []domain.Entry, 1)
	go func() {
		got, err := loader.Entries(context.Background())
		assert.NoError(t, err)
		done <- got
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	loader.Invalidate()
	close(release)
	assert.Equal(t, []string{"before-write"}, ids(<-done))

	got, err := loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"before-write", "after-write"}, ids(got))
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoader_CallerAfterInvalidateStartsItsOwnFetch(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	loader := snapshot.NewLoader(func(context.Context) ([]domain.Entry, error) {
		if calls.Add(1) == 1 {
			<-release
			return entriesWithID("before-write"), nil
		}
		return entriesWithID("before-write", "after-write"), nil
	}, snapshot.WithTTL(time.Hour))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := loader.Entries(context.Background())
		assert.NoError(t, err)
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	loader.Invalidate()
	got, err := loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"before-write", "after-write"}, ids(got))

	close(release)
	wg.Wait()

	cached, err := loader.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"before-write", "after-write"}, ids(cached))
	assert.Equal(t, int32(2), calls.Load())
}
