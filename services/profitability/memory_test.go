package profitability

import (
	"testing"
	"time"

	"minerprofit-backend/lib/chrono"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	clock := chrono.NewFakeClock(testStart)
	cache := NewMemoryCache(clock, time.Hour)

	_, err := cache.Get()
	require.ErrorIs(t, err, ErrCacheMiss)

	cache.Set(CacheEntry{Miners: liveMiners(testStart), FetchedAt: testStart, Source: TierLive})
	entry, err := cache.Get()
	require.NoError(t, err)
	require.Len(t, entry.Miners, 6)

	clock.Advance(time.Hour)
	_, err = cache.Get()
	require.ErrorIs(t, err, ErrCacheMiss)

	snapshot, ok := cache.Snapshot()
	require.True(t, ok)
	require.Equal(t, TierLive, snapshot.Source)
}
