package analyzer

// Service is the operation surface of a single analyzer.
// It enables middleware to be added in front of an Analyzer.
type Service interface {
	// Name returns the analyzer label
	Name() string
	// AddSample appends a sample to the series
	AddSample(value int64)
	// ComputeAverage returns the mean of the series, 0 when empty
	ComputeAverage() float64
	// Summary returns descriptive statistics for the series
	Summary() Summary
	// Snapshot returns an exportable copy of the current state
	Snapshot() Snapshot
	// PrintReport writes the two-line report to the configured output
	PrintReport()
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}
