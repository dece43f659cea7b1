package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqGenerator is a deterministic IDGenerator for tests.
type seqGenerator struct {
	n int
}

func (g *seqGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("session-%d", g.n)
}

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu      sync.Mutex
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

func TestMemoryRegistry_CreateAndResolve(t *testing.T) {
	r := newMemoryRegistry(&seqGenerator{}, 0)
	ctx := context.Background()

	id, err := r.Create(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	userID, err := r.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestMemoryRegistry_CreateInvalidUserID(t *testing.T) {
	r := newMemoryRegistry(&seqGenerator{}, 0)

	for _, userID := range []int64{0, -1} {
		_, err := r.Create(context.Background(), userID)
		require.ErrorIs(t, err, ErrInvalidUserID)
	}
}

func TestMemoryRegistry_ResolveUnknown(t *testing.T) {
	r := newMemoryRegistry(&seqGenerator{}, 0)

	_, err := r.Resolve(context.Background(), "never-issued")
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = r.Resolve(context.Background(), "")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryRegistry_NeverExpiresWithZeroDuration(t *testing.T) {
	clock := newFakeClock()
	r := newMemoryRegistry(&seqGenerator{}, 0)
	r.now = clock.Now

	id, err := r.Create(context.Background(), 7)
	require.NoError(t, err)

	// far beyond any plausible lifetime
	clock.Advance(10 * 365 * 24 * time.Hour)

	userID, err := r.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestMemoryRegistry_ExpiresAfterDuration(t *testing.T) {
	const duration = 60 * time.Second

	clock := newFakeClock()
	r := newMemoryRegistry(&seqGenerator{}, duration)
	r.now = clock.Now

	id, err := r.Create(context.Background(), 7)
	require.NoError(t, err)

	// t < D: still valid
	clock.Advance(duration - time.Second)
	userID, err := r.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	// t == D: expired
	clock.Advance(time.Second)
	_, err = r.Resolve(context.Background(), id)
	require.ErrorIs(t, err, ErrSessionExpired)

	// stale entry stays in the map and keeps reporting expiry
	_, err = r.Resolve(context.Background(), id)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestMemoryRegistry_NegativeDurationNeverExpires(t *testing.T) {
	clock := newFakeClock()
	r := newMemoryRegistry(&seqGenerator{}, -time.Minute)
	r.now = clock.Now

	id, err := r.Create(context.Background(), 7)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)

	userID, err := r.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestMemoryRegistry_Destroy(t *testing.T) {
	r := newMemoryRegistry(&seqGenerator{}, 0)
	ctx := context.Background()

	id, err := r.Create(ctx, 7)
	require.NoError(t, err)

	removed, err := r.Destroy(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = r.Resolve(ctx, id)
	require.ErrorIs(t, err, ErrSessionNotFound)

	// second destroy is a no-op, never an error
	removed, err = r.Destroy(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = r.Destroy(ctx, "")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	r := newMemoryRegistry(&seqGenerator{}, 0)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 50)

	// Generate ids up front; seqGenerator is not safe for concurrent use.
	for i := range ids {
		id, err := r.Create(ctx, int64(i+1))
		require.NoError(t, err)
		ids[i] = id
	}

	for _, id := range ids {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			_, _ = r.Resolve(ctx, id)
		}(id)
		go func(id string) {
			defer wg.Done()
			_, _ = r.Destroy(ctx, id)
		}(id)
	}

	wg.Wait()
}
