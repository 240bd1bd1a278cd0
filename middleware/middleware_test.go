package middleware_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/hyp3rd/analyzer"
	"github.com/hyp3rd/analyzer/middleware"
)

// recordingLogger captures log lines for inspection.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Infof(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Errorf(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer

	logger := &recordingLogger{}
	svc := middleware.NewLoggingMiddleware(analyzer.New("Sensor-B", analyzer.WithOutput(&buf)), logger)

	svc.AddSample(10)
	svc.AddSample(20)
	svc.AddSample(30)

	assert.Equal(t, 20.0, svc.ComputeAverage())

	svc.PrintReport()
	assert.Equal(t, "Analyzer: Sensor-B\nAverage: 20\n", buf.String())

	joined := strings.Join(logger.lines, "\n")
	assert.True(t, strings.Contains(joined, "AddSample method called with value: 10"))
	assert.True(t, strings.Contains(joined, "PrintReport method called for analyzer: Sensor-B"))
}

func TestOTelMetricsMiddleware_PassThrough(t *testing.T) {
	var buf bytes.Buffer

	meter := metricnoop.NewMeterProvider().Meter("test")

	svc, err := middleware.NewOTelMetricsMiddleware(analyzer.New("Sensor-C", analyzer.WithOutput(&buf)), meter)
	assert.Nil(t, err)

	svc.AddSample(1)
	svc.AddSample(2)

	assert.Equal(t, "Sensor-C", svc.Name())
	assert.Equal(t, 1.5, svc.ComputeAverage())
	assert.Equal(t, 2, svc.Summary().Count)

	svc.PrintReport()
	assert.Equal(t, "Analyzer: Sensor-C\nAverage: 1.5\n", buf.String())
}

func TestOTelTracingMiddleware_PassThrough(t *testing.T) {
	tracer := tracenoop.NewTracerProvider().Tracer("test")

	svc := middleware.NewOTelTracingMiddleware(analyzer.New("traced"), tracer)

	svc.AddSample(7)

	assert.Equal(t, 7.0, svc.ComputeAverage())
	assert.Equal(t, []int64{7}, svc.Snapshot().Samples)
}

func TestApplyMiddleware_Order(t *testing.T) {
	logger := &recordingLogger{}
	tracer := tracenoop.NewTracerProvider().Tracer("test")

	svc := analyzer.ApplyMiddleware(analyzer.New("chained"),
		func(next analyzer.Service) analyzer.Service {
			return middleware.NewLoggingMiddleware(next, logger)
		},
		func(next analyzer.Service) analyzer.Service {
			return middleware.NewOTelTracingMiddleware(next, tracer)
		},
	)

	svc.AddSample(10)
	svc.AddSample(20)

	assert.Equal(t, 15.0, svc.ComputeAverage())
	assert.True(t, len(logger.lines) > 0)
}
