package profitability

import (
	"context"
	"time"

	"minerprofit-backend/lib/chrono"
	configlibsql "minerprofit-backend/lib/configutil/libsql"
	"minerprofit-backend/lib/matcher"
	"minerprofit-backend/lib/restyutil"
	"minerprofit-backend/lib/scrapers/asicminervalue"
)

type SourceConfig struct {
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type CacheConfig struct {
	TtlHours   int `json:"ttl_hours"`
	MinRecords int `json:"min_records"`
}

type MatchConfig struct {
	Threshold float64 `json:"threshold"`
	// Weights replaces matcher.DefaultWeights when set.
	Weights *matcher.Weights `json:"weights"`
}

type RefreshConfig struct {
	// Cron is a standard 5 field cron spec, empty disables scheduled refreshes.
	Cron string `json:"cron"`
}

// Config is the profitability section of config.json5.
type Config struct {
	Source  SourceConfig        `json:"source"`
	Cache   CacheConfig         `json:"cache"`
	Match   MatchConfig         `json:"match"`
	Store   configlibsql.Struct `json:"store"`
	Refresh RefreshConfig       `json:"refresh"`
}

func (c Config) TTL() time.Duration {
	if c.Cache.TtlHours <= 0 {
		return DefaultTTL
	}
	return time.Duration(c.Cache.TtlHours) * time.Hour
}

func (c Config) Timeout() time.Duration {
	if c.Source.TimeoutSeconds <= 0 {
		return asicminervalue.DefaultTimeout
	}
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// Components are the wired pieces built from a Config.
type Components struct {
	Client     *asicminervalue.Client
	Persistent *PersistentStore
	Store      *Store
	Resolver   *Resolver
}

// Close releases the persistent store's database, if any.
func (c Components) Close() error {
	if c.Persistent == nil {
		return nil
	}
	return c.Persistent.db.Close()
}

type BuildOptions struct {
	Clock            chrono.Clock
	InstrumentOutput restyutil.InstrumentOutput
}

// Build wires the client, tiers and resolver described by cfg. The
// persistent tier is only opened when the store section is set.
func Build(ctx context.Context, cfg Config, opts BuildOptions) (Components, error) {
	if opts.Clock == nil {
		opts.Clock = chrono.NewStandardClock()
	}

	client := asicminervalue.NewClient(asicminervalue.ClientOptions{
		BaseUrl:          cfg.Source.BaseUrl,
		Timeout:          cfg.Timeout(),
		MinRecords:       cfg.Cache.MinRecords,
		Clock:            opts.Clock,
		InstrumentOutput: opts.InstrumentOutput,
	})

	var persistent *PersistentStore
	if cfg.Store.Enabled() {
		database, err := cfg.Store.OpenDB()
		if err != nil {
			return Components{}, err
		}
		persistent = NewPersistentStore(database, opts.Clock, cfg.TTL())
		err = persistent.Migrate(ctx)
		if err != nil {
			database.Close()
			return Components{}, err
		}
	}

	store := NewStore(StoreOptions{
		Clock:      opts.Clock,
		TTL:        cfg.TTL(),
		MinRecords: cfg.Cache.MinRecords,
		Persistent: persistent,
		Live:       client,
	})

	var scorer matcher.Scorer
	if cfg.Match.Weights != nil {
		scorer = matcher.NewWeightedScorer(*cfg.Match.Weights)
	}
	resolver := NewResolver(store, ResolverOptions{
		Scorer:    scorer,
		Threshold: cfg.Match.Threshold,
	})

	return Components{
		Client:     client,
		Persistent: persistent,
		Store:      store,
		Resolver:   resolver,
	}, nil
}
