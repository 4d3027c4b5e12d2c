package layout

import (
	"sync"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/runenames"
)

// Registry remembers code-points which have been reported as missing from a
// font, so that every code-point is reported once only. It does not influence
// layout results.
//
// Layout calls are logically read-only, but report to the registry. A Registry
// is therefore safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	seen map[rune]struct{}
	sink func(rune)
}

// NewRegistry creates a registry which calls sink for every code-point the
// first time it is reported. If sink is nil, missing code-points are traced.
func NewRegistry(sink func(rune)) *Registry {
	if sink == nil {
		sink = traceUnresolved
	}
	return &Registry{
		seen: make(map[rune]struct{}),
		sink: sink,
	}
}

var defaultRegistry *Registry

var defaultRegistryCreation sync.Once

// DefaultRegistry is an application-wide registry, shared by all engines which
// are not configured with a registry of their own.
func DefaultRegistry() *Registry {
	defaultRegistryCreation.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// Report records r as missing. It returns true and calls the registry's sink
// if r has not been reported before.
func (reg *Registry) Report(r rune) bool {
	reg.mu.Lock()
	if _, ok := reg.seen[r]; ok {
		reg.mu.Unlock()
		return false
	}
	reg.seen[r] = struct{}{}
	sink := reg.sink
	reg.mu.Unlock()
	sink(r)
	return true
}

// Reported tells if r has been reported as missing.
func (reg *Registry) Reported(r rune) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	_, ok := reg.seen[r]
	return ok
}

// Len returns the number of distinct code-points reported.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.seen)
}

func traceUnresolved(r rune) {
	tracer().Errorf("unrecognized character %#U (%s), script %s",
		r, runenames.Name(r), language.LookupScript(r))
}
