package asicminervalue

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/asicminervalue")
var meter = otel.Meter("scrapers/asicminervalue")

var extractedCounter, _ = meter.Int64Counter("extracted_miners")
