package analyzer

import "io"

// Option is a function type that can be used to configure the `Analyzer` struct.
type Option func(*Analyzer)

// ApplyOptions applies the given options to the given analyzer.
func ApplyOptions(analyzer *Analyzer, options ...Option) {
	for _, option := range options {
		option(analyzer)
	}
}

// WithOutput is an option that sets the writer `PrintReport` emits to.
// It defaults to standard output; a nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(analyzer *Analyzer) {
		if w != nil {
			analyzer.out = w
		}
	}
}

// WithSamples is an option that seeds the sample series at construction time,
// preserving the order of the given values.
func WithSamples(values ...int64) Option {
	return func(analyzer *Analyzer) {
		analyzer.samples = append(analyzer.samples, values...)
	}
}
