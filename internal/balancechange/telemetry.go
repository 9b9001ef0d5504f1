package balancechange

import (
	"context"
	"time"

	"github.com/gabapcia/maxdelta/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies the meter and tracer used by this package.
const instrumentationName = "github.com/gabapcia/maxdelta/internal/balancechange"

// instruments groups the metrics recorded by the service.
type instruments struct {
	tracer       trace.Tracer
	cacheHits    metric.Int64Counter     // blocks served from the cache
	cacheMisses  metric.Int64Counter     // blocks fetched from the provider
	computations metric.Float64Histogram // duration of each computation, in seconds
}

// newInstruments creates the service instruments from the global providers.
//
// The OpenTelemetry API returns usable no-op instruments alongside any
// creation error, so failures are only logged.
func newInstruments() instruments {
	var (
		ctx   = context.Background()
		meter = otel.Meter(instrumentationName)
	)

	cacheHits, err := meter.Int64Counter("balancechange.cache.hits",
		metric.WithDescription("Number of blocks served from the block cache."),
	)
	if err != nil {
		logger.Warn(ctx, "failed to create cache hits counter", "error", err)
	}

	cacheMisses, err := meter.Int64Counter("balancechange.cache.misses",
		metric.WithDescription("Number of blocks fetched from the chain provider."),
	)
	if err != nil {
		logger.Warn(ctx, "failed to create cache misses counter", "error", err)
	}

	computations, err := meter.Float64Histogram("balancechange.computation.duration",
		metric.WithDescription("Duration of max balance change computations."),
		metric.WithUnit("s"),
	)
	if err != nil {
		logger.Warn(ctx, "failed to create computation duration histogram", "error", err)
	}

	return instruments{
		tracer:       otel.Tracer(instrumentationName),
		cacheHits:    cacheHits,
		cacheMisses:  cacheMisses,
		computations: computations,
	}
}

// recordCacheLookup increments the hit or miss counter.
func (i instruments) recordCacheLookup(ctx context.Context, hit bool) {
	if hit {
		i.cacheHits.Add(ctx, 1)
		return
	}

	i.cacheMisses.Add(ctx, 1)
}

// recordComputation records how long a computation took and whether it succeeded.
func (i instruments) recordComputation(ctx context.Context, elapsed time.Duration, err error) {
	i.computations.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.Bool("success", err == nil)),
	)
}
