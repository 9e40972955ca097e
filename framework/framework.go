// Package framework adapts an optional job framework's public surface
// into a jobid provider.
//
// The contract mirrors how such frameworks expose identity: a no-arg
// context accessor that returns (creating lazily if needed) the
// framework's active context handle, and an identifier accessor on that
// handle. Both are bound once, at construction; construction fails with
// provider.ErrNotPresent when either is unbound, so the registry can fall
// through to the next candidate.
//
// Binding succeeding does not mean the framework is actually in use by
// this process. It only means the entry points exist and are callable;
// every lookup-time failure is absorbed and reported as absence.
package framework

import (
	"fmt"

	"github.com/xraph/jobid/provider"
)

// Entrypoints binds the two accessors of an optional framework. H is the
// framework's context handle type.
type Entrypoints[H any] struct {
	// Context returns the framework's active context handle, creating
	// one if none exists yet.
	Context func() (H, error)
	// JobID returns the identifier the framework associates with the
	// handle. The value may be user-supplied and is not guaranteed to
	// be unique.
	JobID func(H) (string, error)
}

// Provider extracts a job identifier through bound framework entry
// points. Construct it with New.
type Provider[H any] struct {
	entry Entrypoints[H]
}

// Compile-time interface check.
var _ provider.Provider = (*Provider[any])(nil)

// New binds the entry points into a Provider. It returns an error
// wrapping provider.ErrNotPresent when either entry point is nil, which
// is how a missing or incompatible framework build shows up here.
func New[H any](entry Entrypoints[H]) (*Provider[H], error) {
	if entry.Context == nil {
		return nil, fmt.Errorf("%w: context accessor unbound", provider.ErrNotPresent)
	}
	if entry.JobID == nil {
		return nil, fmt.Errorf("%w: identifier accessor unbound", provider.ErrNotPresent)
	}
	return &Provider[H]{entry: entry}, nil
}

// JobID obtains the framework's context handle and asks it for the
// identifier. Every failure in either entry point — an error return or a
// panic — and an empty identifier are all absorbed and reported as
// absence. Invoking the context accessor may trigger lazy initialization
// of the framework's own global state; that side effect is accepted.
func (p *Provider[H]) JobID() (id string, ok bool) {
	defer func() {
		if recover() != nil {
			id, ok = "", false
		}
	}()

	handle, err := p.entry.Context()
	if err != nil {
		return "", false
	}
	s, err := p.entry.JobID(handle)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}
