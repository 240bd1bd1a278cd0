package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/analyzer"
	"github.com/hyp3rd/analyzer/internal/telemetry/attrs"
)

// OTelTracingMiddleware wraps analyzer.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   analyzer.Service
	tracer trace.Tracer
	// base context spans are started from; Background unless overridden
	baseCtx context.Context
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// WithBaseContext sets the context spans are parented to.
func WithBaseContext(ctx context.Context) OTelTracingOption {
	return func(m *OTelTracingMiddleware) {
		if ctx != nil {
			m.baseCtx = ctx
		}
	}
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next analyzer.Service, tracer trace.Tracer, opts ...OTelTracingOption) analyzer.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer, baseCtx: context.Background()}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Name implements Service.Name without tracing.
func (mw OTelTracingMiddleware) Name() string { return mw.next.Name() }

// AddSample implements Service.AddSample with tracing.
func (mw OTelTracingMiddleware) AddSample(value int64) {
	_, span := mw.startSpan("analyzer.AddSample", attribute.Int64("sample.value", value))
	defer span.End()

	mw.next.AddSample(value)
}

// ComputeAverage implements Service.ComputeAverage with tracing.
func (mw OTelTracingMiddleware) ComputeAverage() float64 {
	_, span := mw.startSpan("analyzer.ComputeAverage")
	defer span.End()

	avg := mw.next.ComputeAverage()
	span.SetAttributes(attribute.Float64("average", avg))

	return avg
}

// Summary implements Service.Summary with tracing.
func (mw OTelTracingMiddleware) Summary() analyzer.Summary {
	_, span := mw.startSpan("analyzer.Summary")
	defer span.End()

	summary := mw.next.Summary()
	span.SetAttributes(attribute.Int(attrs.AttrSampleCount, summary.Count))

	return summary
}

// Snapshot implements Service.Snapshot with tracing.
func (mw OTelTracingMiddleware) Snapshot() analyzer.Snapshot {
	_, span := mw.startSpan("analyzer.Snapshot")
	defer span.End()

	snapshot := mw.next.Snapshot()
	span.SetAttributes(attribute.Int(attrs.AttrSampleCount, len(snapshot.Samples)))

	return snapshot
}

// PrintReport implements Service.PrintReport with tracing.
func (mw OTelTracingMiddleware) PrintReport() {
	_, span := mw.startSpan("analyzer.PrintReport")
	defer span.End()

	mw.next.PrintReport()
}

// startSpan opens a span with the common and per-call attributes applied.
func (mw OTelTracingMiddleware) startSpan(name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	all := []attribute.KeyValue{attribute.String(attrs.AttrAnalyzerName, mw.next.Name())}
	all = append(all, mw.commonAttrs...)
	all = append(all, attributes...)

	return mw.tracer.Start(mw.baseCtx, name, trace.WithAttributes(all...))
}
