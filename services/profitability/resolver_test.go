package profitability

import (
	"context"
	"testing"

	"minerprofit-backend/lib/matcher"
	"minerprofit-backend/lib/minername"
	"minerprofit-backend/lib/scrapers/asicminervalue"

	"github.com/stretchr/testify/require"
)

func TestResolveProfitLive(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	resolver := NewResolver(f.store, ResolverOptions{})

	record, err := resolver.ResolveProfit(context.Background(), "Antminer S21 Pro 234Th", false)
	require.NoError(t, err)
	require.Equal(t, "Bitmain Antminer S21 Pro", record.Name)

	record, err = resolver.ResolveProfit(context.Background(), "Bitmain Antminer S21 XP Hydro 473 TH", false)
	require.NoError(t, err)
	require.Equal(t, "Bitmain Antminer S21 XP Hyd", record.Name)

	require.Equal(t, 1, f.live.Calls())
}

func TestResolveProfitUnknownModel(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	resolver := NewResolver(f.store, ResolverOptions{})

	_, err := resolver.ResolveProfit(context.Background(), "Unknown Alien Miner 9000", false)
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestResolveProfitCoolingMismatch(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{
		fallback: []asicminervalue.MinerRecord{
			{Slug: "antminer-s21-xp-270-th", Name: "Antminer S21 XP 270 TH", DailyProfitUsd: 2.80},
		},
	})
	f.live.Fail(errSourceDown)
	resolver := NewResolver(f.store, ResolverOptions{})

	res, err := resolver.Resolve(context.Background(), "Antminer S21 XP Hydro 395Th", false)
	require.NoError(t, err)
	require.False(t, res.Matched)
	require.Equal(t, TierFallback, res.Snapshot.Source)
}

func TestResolveProfitFallbackCoversTable(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	f.live.Fail(errSourceDown)
	resolver := NewResolver(f.store, ResolverOptions{})

	for _, miner := range fallbackMiners {
		res, err := resolver.Resolve(context.Background(), miner.Name, false)
		require.NoError(t, err)
		require.True(t, res.Matched, miner.Name)
		require.GreaterOrEqual(t, res.Score, float64(matcher.DefaultThreshold), miner.Name)
		require.Equal(t, minername.Parse(miner.Name).Model, minername.Parse(res.Record.Name).Model, miner.Name)
	}
	require.Equal(t, 1, f.live.Calls())
}

func TestResolveProfitForceRefresh(t *testing.T) {
	f := newStoreFixture(t, fixtureOptions{})
	resolver := NewResolver(f.store, ResolverOptions{})
	ctx := context.Background()

	_, err := resolver.ResolveProfit(ctx, "Antminer T21 190 TH", false)
	require.NoError(t, err)
	_, err = resolver.ResolveProfit(ctx, "Antminer T21 190 TH", false)
	require.NoError(t, err)
	require.Equal(t, 1, f.live.Calls())

	_, err = resolver.ResolveProfit(ctx, "Antminer T21 190 TH", true)
	require.NoError(t, err)
	require.Equal(t, 2, f.live.Calls())
}

func TestMinerNameAppendsHashrate(t *testing.T) {
	require.Equal(t, "Bitmain Antminer T21 190 Th/s", minerName(asicminervalue.MinerRecord{Name: "Bitmain Antminer T21", Hashrate: "190 Th/s"}))
	require.Equal(t, "Antminer T21 190 TH", minerName(asicminervalue.MinerRecord{Name: "Antminer T21 190 TH", Hashrate: "190 Th/s"}))
	require.Equal(t, "Antminer T21", minerName(asicminervalue.MinerRecord{Name: "Antminer T21"}))
}
