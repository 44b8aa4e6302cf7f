package registry

import (
	"sync"

	"github.com/MCP-Pipeline/MCPStack/internal/syncmap"
	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
)

// Entry pairs an identifier with its registered value.
type Entry[T any] struct {
	ID    string
	Value T
}

// Source enumerates entries contributed by an installed plugin package.  It
// is the Go analog of entry-point metadata: packages queue a Source in their
// init function and Discover consumes the queue exactly once per registry.
type Source[T any] func() []Entry[T]

// Registry is a process-scoped mapping from a string identifier to a
// registered value (tool constructor, preset factory, host-config backend).
// Registration of an existing identifier fails unless an explicit override is
// requested so that community-contributed plugins cannot be shadowed
// silently.
type Registry[T any] struct {
	kind    string
	entries *syncmap.Map[T]

	mux        sync.Mutex
	sources    []Source[T]
	discovered bool
}

// New creates an empty registry.  The kind tags error messages so that tool,
// preset and backend lookups stay distinguishable.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, entries: syncmap.New[T]()}
}

// Kind returns the registry discriminator (e.g. "tool").
func (r *Registry[T]) Kind() string { return r.kind }

// RegisterOption customises a Register call.
type RegisterOption func(*registerOptions)

type registerOptions struct {
	override bool
}

// WithOverride permits replacing an existing registration.
func WithOverride() RegisterOption {
	return func(o *registerOptions) { o.override = true }
}

// Register adds a value under the given identifier.  Re-registering an
// existing identifier returns a DuplicateError unless WithOverride is passed.
func (r *Registry[T]) Register(id string, value T, options ...RegisterOption) error {
	opts := &registerOptions{}
	for _, opt := range options {
		opt(opts)
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, exists := r.entries.Lookup(id); exists && !opts.override {
		return &DuplicateError{Kind: r.kind, ID: id}
	}
	r.entries.Set(id, value)
	return nil
}

// Resolve returns the value registered under id or a NotFoundError.
func (r *Registry[T]) Resolve(id string) (T, error) {
	if v, ok := r.entries.Lookup(id); ok {
		return v, nil
	}
	var zero T
	return zero, &NotFoundError{Kind: r.kind, ID: id, Known: r.entries.Keys()}
}

// List returns all registered identifiers in lexical order.
func (r *Registry[T]) List() []string {
	return r.entries.Keys()
}

// AddSource queues an enumeration for the next Discover call.  Sources added
// after discovery ran are consumed by a subsequent Discover invocation.
func (r *Registry[T]) AddSource(src Source[T]) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.sources = append(r.sources, src)
	r.discovered = false
}

// Discover populates the registry from all queued sources.  The call is
// idempotent: a populated registry is not re-scanned, so plugin packages may
// trigger discovery from multiple initialization paths without duplicating
// entries.
func (r *Registry[T]) Discover() error {
	r.mux.Lock()
	if r.discovered {
		r.mux.Unlock()
		return nil
	}
	sources := r.sources
	r.sources = nil
	r.discovered = true
	r.mux.Unlock()

	for _, src := range sources {
		for _, entry := range src() {
			if _, exists := r.entries.Lookup(entry.ID); exists {
				return &DuplicateError{Kind: r.kind, ID: entry.ID}
			}
			r.entries.Set(entry.ID, entry.Value)
			logging.Debug("registry", "discovered %s %q", r.kind, entry.ID)
		}
	}
	return nil
}
