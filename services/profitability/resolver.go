package profitability

import (
	"context"
	"log/slog"

	"minerprofit-backend/lib/matcher"
	"minerprofit-backend/lib/minername"
	"minerprofit-backend/lib/scrapers/asicminervalue"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// Source supplies the candidate list, *Store implements it.
type Source interface {
	GetAll(ctx context.Context, force bool) (Snapshot, error)
}

type ResolverOptions struct {
	// Scorer defaults to a WeightedScorer with matcher.DefaultWeights.
	Scorer    matcher.Scorer
	Threshold float64
}

// Resolver picks the miner record that best matches a product name.
type Resolver struct {
	source    Source
	scorer    matcher.Scorer
	threshold float64
}

func NewResolver(source Source, opts ResolverOptions) *Resolver {
	if opts.Scorer == nil {
		opts.Scorer = matcher.NewWeightedScorer(matcher.DefaultWeights)
	}
	if opts.Threshold <= 0 {
		opts.Threshold = matcher.DefaultThreshold
	}
	return &Resolver{
		source:    source,
		scorer:    opts.Scorer,
		threshold: opts.Threshold,
	}
}

// Resolution is the outcome of Resolve. Record is only meaningful when
// Matched is true, Snapshot is always the candidate list that was scored.
type Resolution struct {
	Snapshot Snapshot
	Record   asicminervalue.MinerRecord
	Score    float64
	Matched  bool
}

// minerName is the name a record is scored by. Scraped names carry the
// hashrate in a separate field, it is appended so hashrates can be compared.
func minerName(r asicminervalue.MinerRecord) string {
	if r.Hashrate == "" || minername.Parse(r.Name).HasHashrate {
		return r.Name
	}
	return r.Name + " " + r.Hashrate
}

// Resolve scores every candidate against productName. A missing match is
// reported through Resolution.Matched, errors only come from the source.
func (r *Resolver) Resolve(ctx context.Context, productName string, force bool) (Resolution, error) {
	ctx, span := tracer.Start(ctx, "Resolver:Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("product", productName))

	snapshot, err := r.source.GetAll(ctx, force)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Resolution{}, err
	}

	best, ok := matcher.Best(r.scorer, productName, snapshot.Miners, minerName, r.threshold)
	resolutionCounter.Add(ctx, 1, metric.WithAttributes(attribute.Bool("matched", ok)))
	if !ok {
		slog.DebugContext(ctx, "no profit match", "product", productName, "candidates", len(snapshot.Miners))
		return Resolution{Snapshot: snapshot}, nil
	}

	span.SetAttributes(
		attribute.String("matched", best.Candidate.Name),
		attribute.Float64("score", best.Score),
	)
	slog.DebugContext(
		ctx, "profit match",
		"product", productName,
		"miner", best.Candidate.Name,
		"score", best.Score,
	)
	return Resolution{
		Snapshot: snapshot,
		Record:   best.Candidate,
		Score:    best.Score,
		Matched:  true,
	}, nil
}

// ResolveProfit returns the best matching record or ErrNoMatch.
func (r *Resolver) ResolveProfit(ctx context.Context, productName string, forceRefresh bool) (asicminervalue.MinerRecord, error) {
	res, err := r.Resolve(ctx, productName, forceRefresh)
	if err != nil {
		return asicminervalue.MinerRecord{}, err
	}
	if !res.Matched {
		return asicminervalue.MinerRecord{}, ErrNoMatch
	}
	return res.Record, nil
}
