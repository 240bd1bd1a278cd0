// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrMethod is the telemetry attribute key carrying the service method name.
	AttrMethod = "method"
	// AttrAnalyzerName is the telemetry attribute key carrying the analyzer label.
	AttrAnalyzerName = "analyzer.name"
	// AttrSampleCount is the telemetry attribute key for the number of samples
	// currently held by the analyzer.
	AttrSampleCount = "samples.count"
)
