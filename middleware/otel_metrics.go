package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/analyzer"
	"github.com/hyp3rd/analyzer/internal/telemetry/attrs"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  analyzer.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next analyzer.Service, meter metric.Meter) (analyzer.Service, error) {
	calls, err := meter.Int64Counter("analyzer.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("analyzer.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, durations: durations}, nil
}

// Name implements Service.Name without metrics.
func (mw *OTelMetricsMiddleware) Name() string { return mw.next.Name() }

// AddSample implements Service.AddSample with metrics.
func (mw *OTelMetricsMiddleware) AddSample(value int64) {
	start := time.Now()
	mw.next.AddSample(value)
	mw.rec("AddSample", start, attribute.Int64("sample.value", value))
}

// ComputeAverage implements Service.ComputeAverage with metrics.
func (mw *OTelMetricsMiddleware) ComputeAverage() float64 {
	start := time.Now()
	avg := mw.next.ComputeAverage()
	mw.rec("ComputeAverage", start)

	return avg
}

// Summary implements Service.Summary with metrics.
func (mw *OTelMetricsMiddleware) Summary() analyzer.Summary {
	start := time.Now()
	summary := mw.next.Summary()
	mw.rec("Summary", start, attribute.Int(attrs.AttrSampleCount, summary.Count))

	return summary
}

// Snapshot implements Service.Snapshot with metrics.
func (mw *OTelMetricsMiddleware) Snapshot() analyzer.Snapshot {
	start := time.Now()
	snapshot := mw.next.Snapshot()
	mw.rec("Snapshot", start, attribute.Int(attrs.AttrSampleCount, len(snapshot.Samples)))

	return snapshot
}

// PrintReport implements Service.PrintReport with metrics.
func (mw *OTelMetricsMiddleware) PrintReport() {
	start := time.Now()
	mw.next.PrintReport()
	mw.rec("PrintReport", start)
}

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(method string, start time.Time, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{
		attribute.String(attrs.AttrMethod, method),
		attribute.String(attrs.AttrAnalyzerName, mw.next.Name()),
	}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	ctx := context.Background()
	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(base...))
}
