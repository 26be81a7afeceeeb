package sim

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "suborbital-sim/internal/sim"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// engineMetrics are recorded against the global meter provider, which is a
// no-op until the binary installs one.
type engineMetrics struct {
	ticks       metric.Int64Counter
	transitions metric.Int64Counter
	runs        metric.Int64Counter
	duration    metric.Float64Histogram
}

func newEngineMetrics() (*engineMetrics, error) {
	m := meter()
	em := &engineMetrics{}

	var err error
	em.ticks, err = m.Int64Counter("sim.ticks",
		metric.WithDescription("Integration steps performed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	em.transitions, err = m.Int64Counter("sim.phase.transitions",
		metric.WithDescription("Flight phase changes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}

	em.runs, err = m.Int64Counter("sim.runs",
		metric.WithDescription("Flights launched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	em.duration, err = m.Float64Histogram("sim.flight.duration",
		metric.WithDescription("Simulated flight time at touchdown"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return em, nil
}

func (em *engineMetrics) recordTransition(ctx context.Context, tr Transition) {
	em.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", tr.From.String()),
		attribute.String("to", tr.To.String()),
		attribute.String("reason", string(tr.Reason)),
	))
	switch tr.To {
	case Launch:
		em.runs.Add(ctx, 1)
	case Landed:
		em.duration.Record(ctx, tr.State.TotalTime)
	}
}
