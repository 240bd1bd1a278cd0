// Package analyzer provides a named, append-only series of integer samples
// with on-demand statistics and a two-line textual report.
package analyzer

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

const (
	idBytes   = 6
	byteShift = 8
)

// Analyzer holds a name label and an append-only series of integer samples.
// A zero-length series is valid; samples can only be appended, never removed.
//
// An Analyzer is not safe for concurrent use. Callers sharing an instance
// across goroutines must synchronize externally, or use a Registry.
type Analyzer struct {
	name    string
	samples []int64
	out     io.Writer
}

// New creates a new Analyzer with the given name and an empty sample series.
// The name is accepted as-is; empty names are allowed.
func New(name string, opts ...Option) *Analyzer {
	analyzer := &Analyzer{
		name: name,
		out:  os.Stdout,
	}

	ApplyOptions(analyzer, opts...)

	return analyzer
}

// Name returns the label the analyzer was constructed with.
func (a *Analyzer) Name() string {
	return a.name
}

// ID returns a short hex identifier derived from the analyzer name using xxhash64.
// Analyzers constructed with the same name share the same ID.
func (a *Analyzer) ID() string {
	hv := xxhash.Sum64String(a.name)

	b := make([]byte, idBytes)
	for i := range idBytes {
		b[i] = byte(hv >> (byteShift * i))
	}

	return hex.EncodeToString(b)
}

// AddSample appends value to the end of the sample series. It always succeeds.
func (a *Analyzer) AddSample(value int64) {
	a.samples = append(a.samples, value)
}

// Count returns the number of samples collected so far.
func (a *Analyzer) Count() int {
	return len(a.samples)
}

// Samples returns a copy of the sample series in insertion order.
func (a *Analyzer) Samples() []int64 {
	values := make([]int64, len(a.samples))
	copy(values, a.samples)

	return values
}

// ComputeAverage returns the arithmetic mean of the collected samples.
// It returns 0 when no samples have been added; an empty series is not an error.
// Samples are widened to float64 before summation.
func (a *Analyzer) ComputeAverage() float64 {
	if len(a.samples) == 0 {
		return 0.0
	}

	var sum float64
	for _, value := range a.samples {
		sum += float64(value)
	}

	return sum / float64(len(a.samples))
}
