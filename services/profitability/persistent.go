package profitability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"minerprofit-backend/lib/chrono"
	"minerprofit-backend/lib/scrapers/asicminervalue"
	"minerprofit-backend/services/profitability/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PersistentStore is the record store shared between instances. A nil
// *PersistentStore is valid and behaves as an unconfigured store.
type PersistentStore struct {
	db    *sql.DB
	qry   *db.Queries
	clock chrono.Clock
	ttl   time.Duration
}

func NewPersistentStore(database *sql.DB, clock chrono.Clock, ttl time.Duration) *PersistentStore {
	return &PersistentStore{
		db:    database,
		qry:   db.New(database),
		clock: clock,
		ttl:   ttl,
	}
}

// Migrate creates the miner_profits table if it does not exist.
func (s *PersistentStore) Migrate(ctx context.Context) error {
	if s == nil {
		return ErrStoreUnavailable
	}
	_, err := s.db.ExecContext(ctx, db.Schema)
	return err
}

func recordFromRow(row db.MinerProfit) asicminervalue.MinerRecord {
	return asicminervalue.MinerRecord{
		Slug:           row.ProductSlug,
		Name:           row.MinerName,
		Manufacturer:   row.Manufacturer,
		DailyProfitUsd: row.DailyProfitUsd,
		Hashrate:       row.Hashrate,
		Power:          row.Power,
		Algorithm:      row.Algorithm,
		Coin:           row.Coin,
		FetchedAt:      time.Unix(row.FetchedAt, 0).UTC(),
	}
}

// Load returns every row fetched within the TTL. It fails with
// ErrCacheMiss when there is none.
func (s *PersistentStore) Load(ctx context.Context) ([]asicminervalue.MinerRecord, error) {
	if s == nil {
		return nil, ErrStoreUnavailable
	}

	ctx, span := tracer.Start(ctx, "PersistentStore:Load")
	defer span.End()

	cutoff := s.clock.Now().Add(-s.ttl).Unix()
	rows, err := s.qry.ListMinerProfitsSince(ctx, cutoff)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err.Error())
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))
	if len(rows) == 0 {
		return nil, ErrCacheMiss
	}

	records := make([]asicminervalue.MinerRecord, len(rows))
	for i, row := range rows {
		records[i] = recordFromRow(row)
	}
	return records, nil
}

// LoadAll returns every row regardless of age.
func (s *PersistentStore) LoadAll(ctx context.Context) ([]asicminervalue.MinerRecord, error) {
	if s == nil {
		return nil, ErrStoreUnavailable
	}
	rows, err := s.qry.ListMinerProfits(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]asicminervalue.MinerRecord, len(rows))
	for i, row := range rows {
		records[i] = recordFromRow(row)
	}
	return records, nil
}

// Save upserts records by slug in a single transaction. Records without a
// positive profit are skipped. Each row remembers its index in records so
// Load returns a batch in the order it was saved.
func (s *PersistentStore) Save(ctx context.Context, records []asicminervalue.MinerRecord) error {
	if s == nil {
		return ErrStoreUnavailable
	}

	ctx, span := tracer.Start(ctx, "PersistentStore:Save")
	defer span.End()
	span.SetAttributes(attribute.Int("records", len(records)))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	for i, r := range records {
		if r.DailyProfitUsd <= 0 {
			continue
		}
		fetchedAt := r.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = s.clock.Now()
		}
		err := txqry.UpsertMinerProfit(ctx, db.UpsertMinerProfitParams{
			ProductSlug:    r.Slug,
			MinerName:      r.Name,
			DailyProfitUsd: r.DailyProfitUsd,
			Hashrate:       r.Hashrate,
			Power:          r.Power,
			Algorithm:      r.Algorithm,
			Coin:           r.Coin,
			Manufacturer:   r.Manufacturer,
			FetchedAt:      fetchedAt.Unix(),
			Position:       int64(i),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Prune deletes rows older than the TTL.
func (s *PersistentStore) Prune(ctx context.Context) error {
	if s == nil {
		return ErrStoreUnavailable
	}
	return s.qry.DeleteMinerProfitsBefore(ctx, s.clock.Now().Add(-s.ttl).Unix())
}
