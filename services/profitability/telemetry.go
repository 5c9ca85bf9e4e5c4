package profitability

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/profitability")
var meter = otel.Meter("services/profitability")

var liveFetchCounter, _ = meter.Int64Counter("live_fetches")
var fallbackCounter, _ = meter.Int64Counter("fallback_uses")
var resolutionCounter, _ = meter.Int64Counter("resolutions")
