package abokifx

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("aboki.lib.scrapers.abokifx")

var meter = otel.Meter("aboki.lib.scrapers.abokifx")
var fetchCounter, _ = meter.Int64Counter(
	"abokifx.fetches",
	metric.WithDescription("pages fetched from abokifx, by path and outcome"),
)
