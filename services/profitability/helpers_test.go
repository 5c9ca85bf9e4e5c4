package profitability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"minerprofit-backend/lib/chrono"
	"minerprofit-backend/lib/scrapers/asicminervalue"
	"minerprofit-backend/lib/testutil"
	"minerprofit-backend/services/profitability/db"
)

var errSourceDown = errors.New("source down")

var testStart = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	mutex   sync.Mutex
	calls   int
	records []asicminervalue.MinerRecord
	err     error
}

func (f *fakeFetcher) FetchMiners(ctx context.Context) ([]asicminervalue.MinerRecord, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeFetcher) Calls() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls
}

func (f *fakeFetcher) Fail(err error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.err = err
}

func liveMiners(fetchedAt time.Time) []asicminervalue.MinerRecord {
	records := []asicminervalue.MinerRecord{
		{Slug: "bitmain-antminer-s21-pro", Name: "Bitmain Antminer S21 Pro", Manufacturer: "Bitmain", DailyProfitUsd: 2.45, Hashrate: "234 Th/s", Power: "3510W", Algorithm: "SHA-256", Coin: "Bitcoin"},
		{Slug: "bitmain-antminer-s21-xp-hyd", Name: "Bitmain Antminer S21 XP Hyd", Manufacturer: "Bitmain", DailyProfitUsd: 5.00, Hashrate: "473 Th/s", Power: "5676W", Algorithm: "SHA-256", Coin: "Bitcoin"},
		{Slug: "bitmain-antminer-s19-xp", Name: "Bitmain Antminer S19 XP", Manufacturer: "Bitmain", DailyProfitUsd: 1.20, Hashrate: "141 Th/s", Power: "3010W", Algorithm: "SHA-256", Coin: "Bitcoin"},
		{Slug: "bitmain-antminer-t21", Name: "Bitmain Antminer T21", Manufacturer: "Bitmain", DailyProfitUsd: 1.95, Hashrate: "190 Th/s", Power: "3610W", Algorithm: "SHA-256", Coin: "Bitcoin"},
		{Slug: "volcminer-d3", Name: "VolcMiner D3", Manufacturer: "VolcMiner", DailyProfitUsd: 6.91, Hashrate: "20 Gh/s", Power: "3580W", Algorithm: "Scrypt", Coin: "LTC/DOGE"},
		{Slug: "iceriver-ks5l", Name: "IceRiver KS5L", Manufacturer: "IceRiver", DailyProfitUsd: 3.30, Hashrate: "12 Th/s", Power: "3400W", Algorithm: "KHeavyHash", Coin: "Kaspa"},
	}
	for i := range records {
		records[i].FetchedAt = fetchedAt
	}
	return records
}

type storeFixture struct {
	clock      *chrono.FakeClock
	live       *fakeFetcher
	persistent *PersistentStore
	store      *Store
}

type fixtureOptions struct {
	withDB   bool
	fallback []asicminervalue.MinerRecord
}

func newStoreFixture(t *testing.T, opts fixtureOptions) storeFixture {
	t.Helper()

	clock := chrono.NewFakeClock(testStart)
	live := &fakeFetcher{records: liveMiners(testStart)}

	var persistent *PersistentStore
	if opts.withDB {
		setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
			Name:     "services/profitability",
			DbSchema: db.Schema,
		})
		t.Cleanup(cleanup)
		persistent = NewPersistentStore(setup.DB, clock, DefaultTTL)
	}

	store := NewStore(StoreOptions{
		Clock:      clock,
		TTL:        DefaultTTL,
		Persistent: persistent,
		Live:       live,
		Fallback:   opts.fallback,
	})

	return storeFixture{
		clock:      clock,
		live:       live,
		persistent: persistent,
		store:      store,
	}
}
