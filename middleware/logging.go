// Package middleware contains service middlewares for the analyzer.
package middleware

import (
	"time"

	"github.com/hyp3rd/analyzer"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with logrus, and Uber's Zap (high-performance), but should work with any other logger that matches the interface.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the analyzer.Service interface.
type LoggingMiddleware struct {
	next   analyzer.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next analyzer.Service, logger Logger) analyzer.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Name passes through without logging.
func (mw LoggingMiddleware) Name() string {
	return mw.next.Name()
}

// AddSample logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) AddSample(value int64) {
	defer func(begin time.Time) {
		mw.logger.Infof("method AddSample took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("AddSample method called with value: %d", value)
	mw.next.AddSample(value)
}

// ComputeAverage logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) ComputeAverage() float64 {
	defer func(begin time.Time) {
		mw.logger.Infof("method ComputeAverage took: %s", time.Since(begin))
	}(time.Now())

	return mw.next.ComputeAverage()
}

// Summary logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Summary() analyzer.Summary {
	defer func(begin time.Time) {
		mw.logger.Infof("method Summary took: %s", time.Since(begin))
	}(time.Now())

	return mw.next.Summary()
}

// Snapshot logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Snapshot() analyzer.Snapshot {
	defer func(begin time.Time) {
		mw.logger.Infof("method Snapshot took: %s", time.Since(begin))
	}(time.Now())

	return mw.next.Snapshot()
}

// PrintReport logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) PrintReport() {
	defer func(begin time.Time) {
		mw.logger.Infof("method PrintReport took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("PrintReport method called for analyzer: %s", mw.next.Name())
	mw.next.PrintReport()
}
