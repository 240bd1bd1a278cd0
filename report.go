package analyzer

import (
	"fmt"
	"io"
)

// Snapshot is an exportable view of an analyzer's state at a point in time.
// It is the unit handed to the `libs/serializer` codecs.
type Snapshot struct {
	Name    string  `json:"name"`
	Samples []int64 `json:"samples"`
	Summary Summary `json:"summary"`
}

// Snapshot returns an exportable copy of the analyzer's current state.
func (a *Analyzer) Snapshot() Snapshot {
	return Snapshot{
		Name:    a.name,
		Samples: a.Samples(),
		Summary: a.Summary(),
	}
}

// WriteReport writes the two-line report to w:
//
//	Analyzer: <name>
//	Average: <average>
//
// The average is recomputed at call time and rendered with the default
// numeric formatting, so no fixed precision is imposed.
func (a *Analyzer) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "Analyzer: %s\n", a.name)
	fmt.Fprintf(w, "Average: %v\n", a.ComputeAverage())
}

// PrintReport writes the report to the analyzer's output, standard output
// unless overridden with `WithOutput`.
func (a *Analyzer) PrintReport() {
	a.WriteReport(a.out)
}
