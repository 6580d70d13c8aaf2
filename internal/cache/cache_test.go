package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader returns a load func that counts its invocations.
func countingLoader(value string, calls *int) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		*calls++
		return value, nil
	}
}

func TestCacheServesFreshEntry(t *testing.T) {
	c := New[string](5 * time.Minute)
	ctx := context.Background()

	calls := 0
	got, err := c.Get(ctx, "u1", false, countingLoader("alpha", &calls))
	require.NoError(t, err)
	assert.Equal(t, "alpha", got)
	assert.Equal(t, 1, calls)

	// Second read within the window never touches the loader
	got, err = c.Get(ctx, "u1", false, countingLoader("beta", &calls))
	require.NoError(t, err)
	assert.Equal(t, "alpha", got)
	assert.Equal(t, 1, calls)
}

func TestCacheExpiry(t *testing.T) {
	c := New[string](5 * time.Minute)
	ctx := context.Background()

	current := time.Now()
	c.now = func() time.Time { return current }

	calls := 0
	_, err := c.Get(ctx, "u1", false, countingLoader("alpha", &calls))
	require.NoError(t, err)

	// Just inside the window
	current = current.Add(5*time.Minute - time.Second)
	got, err := c.Get(ctx, "u1", false, countingLoader("beta", &calls))
	require.NoError(t, err)
	assert.Equal(t, "alpha", got)
	assert.Equal(t, 1, calls)

	// Past it
	current = current.Add(2 * time.Second)
	got, err = c.Get(ctx, "u1", false, countingLoader("beta", &calls))
	require.NoError(t, err)
	assert.Equal(t, "beta", got)
	assert.Equal(t, 2, calls)
}

func TestCacheForceBypassesFreshness(t *testing.T) {
	c := New[string](5 * time.Minute)
	ctx := context.Background()

	calls := 0
	_, err := c.Get(ctx, "u1", false, countingLoader("alpha", &calls))
	require.NoError(t, err)

	got, err := c.Get(ctx, "u1", true, countingLoader("beta", &calls))
	require.NoError(t, err)
	assert.Equal(t, "beta", got)
	assert.Equal(t, 2, calls)

	// The forced result replaced the cached value
	got, err = c.Get(ctx, "u1", false, countingLoader("gamma", &calls))
	require.NoError(t, err)
	assert.Equal(t, "beta", got)
	assert.Equal(t, 2, calls)
}

func TestCacheInvalidate(t *testing.T) {
	c := New[string](5 * time.Minute)
	ctx := context.Background()

	calls := 0
	_, err := c.Get(ctx, "u1", false, countingLoader("alpha", &calls))
	require.NoError(t, err)
	_, err = c.Get(ctx, "u2", false, countingLoader("alpha", &calls))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	c.Invalidate("u1")
	assert.Equal(t, 1, c.Len())

	got, err := c.Get(ctx, "u1", false, countingLoader("beta", &calls))
	require.NoError(t, err)
	assert.Equal(t, "beta", got)

	c.InvalidateAll()
	assert.Equal(t, 0, c.Len())
}

func TestCacheFailedLoadKeepsOldEntry(t *testing.T) {
	c := New[string](5 * time.Minute)
	ctx := context.Background()

	calls := 0
	_, err := c.Get(ctx, "u1", false, countingLoader("alpha", &calls))
	require.NoError(t, err)

	loadErr := errors.New("db down")
	got, err := c.Get(ctx, "u1", true, func(ctx context.Context) (string, error) {
		return "", loadErr
	})
	assert.ErrorIs(t, err, loadErr)
	assert.Empty(t, got)

	// The stale-but-successful value survives for non-forced reads
	got, err = c.Get(ctx, "u1", false, countingLoader("beta", &calls))
	require.NoError(t, err)
	assert.Equal(t, "alpha", got)
	assert.Equal(t, 1, calls)
}
