package analyzer

import (
	"slices"
	"strings"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/analyzer/internal/sentinel"
)

// Registry manages a set of analyzers keyed by name. The registry itself is
// safe for concurrent use; mutating an individual analyzer from several
// goroutines still requires caller-side coordination.
type Registry struct {
	mu        sync.RWMutex
	analyzers map[string]*Analyzer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		analyzers: make(map[string]*Analyzer),
	}
}

// Register adds an analyzer under its own name.
// It fails when the name is empty or already taken.
func (r *Registry) Register(analyzer *Analyzer) error {
	if analyzer == nil {
		return sentinel.ErrNilAnalyzer
	}

	if strings.TrimSpace(analyzer.Name()) == "" {
		return ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.analyzers[analyzer.Name()]; ok {
		return ewrap.Wrap(sentinel.ErrAnalyzerExists, analyzer.Name())
	}

	r.analyzers[analyzer.Name()] = analyzer

	return nil
}

// Lookup returns the analyzer registered under name.
func (r *Registry) Lookup(name string) (*Analyzer, error) {
	if name == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	analyzer, ok := r.analyzers[name]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrAnalyzerNotFound, name)
	}

	return analyzer, nil
}

// GetOrCreate returns the analyzer registered under name, creating and
// registering a new one with the given options when none exists yet.
func (r *Registry) GetOrCreate(name string, opts ...Option) (*Analyzer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if analyzer, ok := r.analyzers[name]; ok {
		return analyzer, nil
	}

	analyzer := New(name, opts...)
	r.analyzers[name] = analyzer

	return analyzer, nil
}

// Remove drops the analyzer registered under name, if any.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.analyzers, name)
}

// Names returns the registered names sorted ascending.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.analyzers))
	for name := range r.analyzers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Len returns the number of registered analyzers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.analyzers)
}

// Snapshots returns a snapshot of every registered analyzer, keyed by name.
func (r *Registry) Snapshots() map[string]Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshots := make(map[string]Snapshot, len(r.analyzers))
	for name, analyzer := range r.analyzers {
		snapshots[name] = analyzer.Snapshot()
	}

	return snapshots
}
