// Package memo provides a memoization gate built on shallow equality.
//
// The external contract is the one a reconciliation engine expects: a
// dependent computation runs unconditionally unless a gate intercepts it.
// A Gate intercepts by remembering the attribute set it last computed with
// and answering from cache whenever the next set is shallow-equal to it.
package memo

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"

	"github.com/amp-labs/shallow/attr"
	"github.com/amp-labs/shallow/shallow"
)

// ComputeFunc is the computation a Gate wraps. It must be deterministic in
// the attribute set for caching to be sound: two shallow-equal sets must
// produce interchangeable results.
type ComputeFunc[T any] func(ctx context.Context, attrs *attr.Set) T

// Gate memoizes a computation keyed by its last attribute set.
//
// Get runs the computation when the incoming set differs (shallowly) from
// the previous one and answers from cache otherwise. A Gate is safe for
// concurrent use; concurrent Gets are serialized.
//
// Example:
//
//	gate := memo.NewGate("button-render", func(ctx context.Context, attrs *attr.Set) string {
//	    return render(attrs)
//	})
//
//	out, skipped := gate.Get(ctx, props)  // first call: computes
//	out, skipped = gate.Get(ctx, props)   // same props: cache hit
type Gate[T any] struct {
	name    string
	id      string
	compute ComputeFunc[T]
	logger  *slog.Logger
	tracer  trace.Tracer

	mu      sync.Mutex
	hasPrev bool
	prev    *attr.Set
	prevFp  uint64
	cached  T

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats is a point-in-time snapshot of a gate's hit/miss counts.
type Stats struct {
	Hits   int64
	Misses int64
}

type settings struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a Gate.
type Option func(*settings)

// WithLogger sets the logger used for per-lookup debug logging.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithTracer enables an OpenTelemetry span around each cache-miss
// computation. Without a tracer, no spans are created.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) {
		s.tracer = tracer
	}
}

// NewGate creates a memoization gate around compute. The name identifies
// the gate in logs and metrics; it does not need to be unique (each gate
// also gets a unique instance id for log correlation).
func NewGate[T any](name string, compute ComputeFunc[T], opts ...Option) *Gate[T] {
	cfg := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Gate[T]{
		name:    name,
		id:      uuid.New().String(),
		compute: compute,
		logger:  cfg.logger,
		tracer:  cfg.tracer,
	}
}

// Name returns the gate's name.
func (g *Gate[T]) Name() string {
	return g.name
}

// ID returns the gate's unique instance id.
func (g *Gate[T]) ID() string {
	return g.id
}

// Get returns the computation's result for next. If next is shallow-equal
// to the attribute set of the previous call, the cached result is returned
// and skipped is true; otherwise the computation runs and skipped is false.
// The first call always computes.
//
// The gate snapshots next (via Clone), so the caller is free to mutate the
// set afterwards. Reference values inside the snapshot keep their identity,
// which is exactly what the shallow comparison needs.
func (g *Gate[T]) Get(ctx context.Context, next *attr.Set) (T, bool) { //nolint:ireturn
	g.mu.Lock()
	defer g.mu.Unlock()

	nextFp := next.Fingerprint()

	// A fingerprint mismatch proves inequality, so the key walk only runs
	// when the digests agree.
	if g.hasPrev && nextFp == g.prevFp && shallow.Equal(g.prev, next) {
		g.hits.Inc()
		gateHits.WithLabelValues(g.name).Inc()
		g.logger.Debug("memo gate hit", "gate", g.name, "id", g.id)

		return g.cached, true
	}

	g.misses.Inc()
	gateMisses.WithLabelValues(g.name).Inc()
	g.logger.Debug("memo gate miss", "gate", g.name, "id", g.id, "keys", next.Size())

	start := time.Now()
	value := g.run(ctx, next)
	computeDuration.WithLabelValues(g.name).Observe(time.Since(start).Seconds())

	g.hasPrev = true
	g.prev = next.Clone()
	g.prevFp = nextFp
	g.cached = value

	return value, false
}

func (g *Gate[T]) run(ctx context.Context, next *attr.Set) T { //nolint:ireturn
	if g.tracer == nil {
		return g.compute(ctx, next)
	}

	ctx, span := g.tracer.Start(ctx, "memo.compute", trace.WithAttributes(
		attribute.String("gate.name", g.name),
		attribute.String("gate.id", g.id),
		attribute.Int("attrs.size", next.Size()),
	))
	defer span.End()

	return g.compute(ctx, next)
}

// Invalidate drops the cached state, forcing the next Get to compute.
func (g *Gate[T]) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	var zero T

	g.hasPrev = false
	g.prev = nil
	g.prevFp = 0
	g.cached = zero

	gateInvalidations.WithLabelValues(g.name).Inc()
	g.logger.Debug("memo gate invalidated", "gate", g.name, "id", g.id)
}

// Stats returns a snapshot of the gate's hit/miss counts.
func (g *Gate[T]) Stats() Stats {
	return Stats{
		Hits:   g.hits.Load(),
		Misses: g.misses.Load(),
	}
}
