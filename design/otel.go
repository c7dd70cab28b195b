package design

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// builderMetrics holds the OpenTelemetry instruments for a builder.
// They are created once when a meter is configured and reused for every
// freeze.
type builderMetrics struct {
	// freezeCounter increments for each Freeze.
	freezeCounter metric.Int64Counter

	// freezeDuration records freeze duration in milliseconds, index
	// computation included.
	freezeDuration metric.Float64Histogram

	// collisionCounter accumulates the colliding-tile counts surfaced by
	// frozen documents.
	collisionCounter metric.Int64Counter
}

// initMetrics creates the metric instruments when a meter is configured.
// Instrument creation failures are logged and disable metrics; they never
// surface to the model's callers.
func (b *Builder) initMetrics() {
	if b.meter == nil {
		return
	}

	m := &builderMetrics{}
	var err error

	m.freezeCounter, err = b.meter.Int64Counter(
		"design.freeze.count",
		metric.WithDescription("Number of documents frozen"),
		metric.WithUnit("1"),
	)
	if err != nil {
		b.logger.Warn("failed to create freeze counter, metrics disabled", "error", err)
		return
	}

	m.freezeDuration, err = b.meter.Float64Histogram(
		"design.freeze.duration",
		metric.WithDescription("Freeze duration in milliseconds, index computation included"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		b.logger.Warn("failed to create freeze duration histogram, metrics disabled", "error", err)
		return
	}

	m.collisionCounter, err = b.meter.Int64Counter(
		"design.freeze.collisions",
		metric.WithDescription("Colliding tiles surfaced by frozen documents"),
		metric.WithUnit("1"),
	)
	if err != nil {
		b.logger.Warn("failed to create collision counter, metrics disabled", "error", err)
		return
	}

	b.metrics = m
}

// recordFreeze records a span and metrics for a completed freeze. If
// neither tracer nor meter is configured it returns immediately.
func (b *Builder) recordFreeze(doc Document, elapsed time.Duration) {
	if b.tracer == nil && b.metrics == nil {
		return
	}

	counts := doc.Counts()
	collisions := len(doc.Index().CollidingTiles())

	if b.tracer != nil {
		_, span := b.tracer.Start(context.Background(), "design.freeze",
			trace.WithTimestamp(time.Now().Add(-elapsed)),
			trace.WithAttributes(
				attribute.Int("design.blocks", counts.Blocks),
				attribute.Int("design.ports", counts.Ports),
				attribute.Int("design.links", counts.Links),
				attribute.Int("design.nets", counts.Nets),
				attribute.Int("design.annotations", counts.Annotations),
				attribute.Int("design.routes", counts.Routes),
				attribute.Int("design.colliding_tiles", collisions),
				attribute.Int("design.schema_version", int(doc.SchemaVersion())),
			),
		)
		span.End()
	}

	if b.metrics != nil {
		ctx := context.Background()
		b.metrics.freezeCounter.Add(ctx, 1)
		b.metrics.freezeDuration.Record(ctx, float64(elapsed)/float64(time.Millisecond))
		if collisions > 0 {
			b.metrics.collisionCounter.Add(ctx, int64(collisions))
		}
	}
}
