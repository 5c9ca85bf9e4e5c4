package profitability

import (
	"context"
	"errors"
	"testing"
	"time"

	"minerprofit-backend/lib/scrapers/asicminervalue"

	"github.com/stretchr/testify/require"
)

func TestStoreCachesWithinTTL(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	ctx := context.Background()

	first, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierLive, first.Source)
	require.Len(t, first.Miners, 6)

	f.clock.Advance(23 * time.Hour)
	second, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierMemory, second.Source)
	require.Equal(t, 1, f.live.Calls())

	f.clock.Advance(time.Hour)
	third, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierLive, third.Source)
	require.Equal(t, 2, f.live.Calls())
}

func TestStoreForceRefresh(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	ctx := context.Background()

	_, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)

	snapshot, err := f.store.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, TierLive, snapshot.Source)
	require.Equal(t, 2, f.live.Calls())

	_, err = f.store.GetAll(ctx, true)
	require.NoError(t, err)
	require.Equal(t, 3, f.live.Calls())
}

func TestStoreFallsBackWhenLiveFails(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	f.live.Fail(errSourceDown)
	ctx := context.Background()

	snapshot, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierFallback, snapshot.Source)
	require.Len(t, snapshot.Miners, len(fallbackMiners))
	for _, m := range snapshot.Miners {
		require.Equal(t, testStart, m.FetchedAt)
	}

	// the fallback is cached so a failing source is not hit again
	snapshot, err = f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierMemory, snapshot.Source)
	require.Equal(t, 1, f.live.Calls())
}

func TestStoreRejectsSparseLiveResult(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	f.live.records = f.live.records[:2]

	snapshot, err := f.store.GetAll(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, TierFallback, snapshot.Source)
}

func TestStoreEmptyFallbackFails(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{fallback: []asicminervalue.MinerRecord{}})
	f.live.Fail(errSourceDown)

	_, err := f.store.GetAll(context.Background(), false)
	require.Error(t, err)
	require.ErrorIs(t, err, errSourceDown)

	var tierErr TierError
	require.True(t, errors.As(err, &tierErr))
}

func TestStoreReadsPersistentTier(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{withDB: true})
	ctx := context.Background()

	err := f.persistent.Save(ctx, liveMiners(testStart.Add(-time.Hour)))
	require.NoError(t, err)

	snapshot, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierDatabase, snapshot.Source)
	require.Len(t, snapshot.Miners, 6)
	require.Equal(t, 0, f.live.Calls())

	snapshot, err = f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierMemory, snapshot.Source)
}

func TestStoreIgnoresStalePersistentRows(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{withDB: true})
	ctx := context.Background()

	err := f.persistent.Save(ctx, liveMiners(testStart.Add(-25*time.Hour)))
	require.NoError(t, err)

	snapshot, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierLive, snapshot.Source)
	require.Equal(t, 1, f.live.Calls())
}

func TestStoreWritesLiveResultThrough(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{withDB: true})
	ctx := context.Background()

	_, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)

	records, err := f.persistent.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 6)
}

func TestStoreCached(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})

	_, ok := f.store.Cached()
	require.False(t, ok)

	_, err := f.store.GetAll(context.Background(), false)
	require.NoError(t, err)

	f.clock.Advance(48 * time.Hour)
	cached, ok := f.store.Cached()
	require.True(t, ok)
	require.Equal(t, TierLive, cached.Source)
}

func TestStoreFailedRefreshServesPersistentRows(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{withDB: true})
	ctx := context.Background()

	live, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierLive, live.Source)

	f.clock.Advance(6 * time.Hour)
	f.live.Fail(errSourceDown)

	snapshot, err := f.store.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, TierDatabase, snapshot.Source)
	require.Len(t, snapshot.Miners, len(live.Miners))
	require.Equal(t, 2, f.live.Calls())

	// the stored rows, not the static table, stay in memory
	f.clock.Advance(12 * time.Hour)
	snapshot, err = f.store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, TierMemory, snapshot.Source)
	require.Equal(t, live.Miners[0].Name, snapshot.Miners[0].Name)
	require.Equal(t, 2, f.live.Calls())
}

func TestStoreFailedRefreshKeepsMemory(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	ctx := context.Background()

	live, err := f.store.GetAll(ctx, false)
	require.NoError(t, err)

	f.clock.Advance(6 * time.Hour)
	f.live.Fail(errSourceDown)

	snapshot, err := f.store.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, TierMemory, snapshot.Source)
	require.Equal(t, live.Miners, snapshot.Miners)
}

func TestStoreFailedRefreshWithoutStoredRows(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{withDB: true})
	f.live.Fail(errSourceDown)

	snapshot, err := f.store.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, TierFallback, snapshot.Source)
	require.Len(t, snapshot.Miners, len(fallbackMiners))
}
