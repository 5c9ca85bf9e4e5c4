package profitability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"minerprofit-backend/lib/chrono"
	"minerprofit-backend/lib/scrapers/asicminervalue"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

const (
	DefaultTTL        = 24 * time.Hour
	DefaultMinRecords = asicminervalue.DefaultMinRecords
)

// Fetcher is the live tier.
type Fetcher interface {
	FetchMiners(ctx context.Context) ([]asicminervalue.MinerRecord, error)
}

// Snapshot is the candidate list handed to callers along with the tier it
// was served from.
type Snapshot struct {
	Miners    []asicminervalue.MinerRecord
	Source    Tier
	FetchedAt time.Time
}

type StoreOptions struct {
	Clock chrono.Clock
	// TTL applies to the memory and persistent tiers alike.
	TTL time.Duration
	// MinRecords is the smallest live result that is trusted.
	MinRecords int
	// Memory defaults to a MemoryCache.
	Memory Cache
	// Persistent may be nil, the tier is then skipped.
	Persistent *PersistentStore
	Live       Fetcher
	// Fallback defaults to the bundled static table.
	Fallback []asicminervalue.MinerRecord
}

// Store reads miners through memory, persistent, live and static tiers in
// that order.
type Store struct {
	clock      chrono.Clock
	minRecords int
	memory     Cache
	persistent *PersistentStore
	live       Fetcher
	fallback   []asicminervalue.MinerRecord
}

func NewStore(opts StoreOptions) *Store {
	if opts.Clock == nil {
		opts.Clock = chrono.NewStandardClock()
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MinRecords <= 0 {
		opts.MinRecords = DefaultMinRecords
	}
	if opts.Memory == nil {
		opts.Memory = NewMemoryCache(opts.Clock, opts.TTL)
	}
	if opts.Fallback == nil {
		opts.Fallback = fallbackMiners
	}
	return &Store{
		clock:      opts.Clock,
		minRecords: opts.MinRecords,
		memory:     opts.Memory,
		persistent: opts.Persistent,
		live:       opts.Live,
		fallback:   opts.Fallback,
	}
}

// GetAll returns the freshest candidate list available. force tries the
// live tier first and only falls back to stored rows when it fails. It only
// fails when every tier fails, which requires an empty fallback table.
func (s *Store) GetAll(ctx context.Context, force bool) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "Store:GetAll")
	defer span.End()
	span.SetAttributes(attribute.Bool("force", force))

	snapshot, err := s.getAll(ctx, force)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Snapshot{}, err
	}
	span.SetAttributes(
		attribute.String("source", string(snapshot.Source)),
		attribute.Int("count", len(snapshot.Miners)),
	)
	return snapshot, nil
}

// Refresh forces a live fetch.
func (s *Store) Refresh(ctx context.Context) (Snapshot, error) {
	return s.GetAll(ctx, true)
}

// Cached returns the memory tier's entry regardless of age.
func (s *Store) Cached() (Snapshot, bool) {
	entry, ok := s.memory.Snapshot()
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{Miners: entry.Miners, Source: entry.Source, FetchedAt: entry.FetchedAt}, true
}

func (s *Store) getAll(ctx context.Context, force bool) (Snapshot, error) {
	var errs []error

	if !force {
		if snapshot, ok := s.tryMemory(ctx, &errs); ok {
			return snapshot, nil
		}
		if snapshot, ok := s.tryPersistent(ctx, &errs); ok {
			return snapshot, nil
		}
	}

	snapshot, err := s.fromLive(ctx)
	if err == nil {
		slog.InfoContext(ctx, "profit tier hit", "tier", TierLive, "count", len(snapshot.Miners))
		return snapshot, nil
	}
	errs = append(errs, TierError{Tier: TierLive, Err: err})
	slog.WarnContext(ctx, "profit tier failed", "tier", TierLive, "err", err, "force", force)

	// a failed refresh keeps serving stored rows, the static table is only
	// used once those are gone too
	if force {
		if snapshot, ok := s.tryPersistent(ctx, &errs); ok {
			return snapshot, nil
		}
		if snapshot, ok := s.tryMemory(ctx, &errs); ok {
			return snapshot, nil
		}
	}

	snapshot, err = s.fromFallback(ctx)
	if err == nil {
		slog.WarnContext(ctx, "profit tier hit", "tier", TierFallback, "count", len(snapshot.Miners))
		return snapshot, nil
	}
	errs = append(errs, TierError{Tier: TierFallback, Err: err})

	return Snapshot{}, errors.Join(errs...)
}

func (s *Store) tryMemory(ctx context.Context, errs *[]error) (Snapshot, bool) {
	snapshot, err := s.fromMemory()
	if err != nil {
		*errs = append(*errs, TierError{Tier: TierMemory, Err: err})
		return Snapshot{}, false
	}
	slog.DebugContext(ctx, "profit tier hit", "tier", TierMemory, "count", len(snapshot.Miners))
	return snapshot, true
}

func (s *Store) tryPersistent(ctx context.Context, errs *[]error) (Snapshot, bool) {
	snapshot, err := s.fromPersistent(ctx)
	if err != nil {
		*errs = append(*errs, TierError{Tier: TierDatabase, Err: err})
		if !errors.Is(err, ErrCacheMiss) && s.persistent != nil {
			slog.WarnContext(ctx, "profit tier failed", "tier", TierDatabase, "err", err)
		}
		return Snapshot{}, false
	}
	slog.InfoContext(ctx, "profit tier hit", "tier", TierDatabase, "count", len(snapshot.Miners))
	return snapshot, true
}

func (s *Store) fromMemory() (Snapshot, error) {
	entry, err := s.memory.Get()
	if err != nil {
		return Snapshot{}, err
	}
	if len(entry.Miners) == 0 {
		return Snapshot{}, ErrCacheMiss
	}
	return Snapshot{Miners: entry.Miners, Source: TierMemory, FetchedAt: entry.FetchedAt}, nil
}

func (s *Store) fromPersistent(ctx context.Context) (Snapshot, error) {
	records, err := s.persistent.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	now := s.clock.Now()
	s.memory.Set(CacheEntry{Miners: records, FetchedAt: now, Source: TierDatabase})
	return Snapshot{Miners: records, Source: TierDatabase, FetchedAt: now}, nil
}

func (s *Store) fromLive(ctx context.Context) (Snapshot, error) {
	if s.live == nil {
		return Snapshot{}, errors.New("no live source configured")
	}

	records, err := s.live.FetchMiners(ctx)
	liveFetchCounter.Add(ctx, 1, metric.WithAttributes(attribute.Bool("ok", err == nil)))
	if err != nil {
		return Snapshot{}, err
	}
	if len(records) < s.minRecords {
		return Snapshot{}, fmt.Errorf(
			"%w: got %d, need %d",
			asicminervalue.ErrTooFewRecords, len(records), s.minRecords,
		)
	}

	now := s.clock.Now()
	s.memory.Set(CacheEntry{Miners: records, FetchedAt: now, Source: TierLive})

	err = s.persistent.Save(ctx, records)
	if err != nil && !errors.Is(err, ErrStoreUnavailable) {
		slog.WarnContext(ctx, "failed to write miners to persistent store", "err", err)
	}

	return Snapshot{Miners: records, Source: TierLive, FetchedAt: now}, nil
}

func (s *Store) fromFallback(ctx context.Context) (Snapshot, error) {
	if len(s.fallback) == 0 {
		return Snapshot{}, errors.New("fallback table is empty")
	}
	fallbackCounter.Add(ctx, 1)

	now := s.clock.Now()
	records := make([]asicminervalue.MinerRecord, len(s.fallback))
	for i, r := range s.fallback {
		r.FetchedAt = now
		records[i] = r
	}
	s.memory.Set(CacheEntry{Miners: records, FetchedAt: now, Source: TierFallback})
	return Snapshot{Miners: records, Source: TierFallback, FetchedAt: now}, nil
}
