package provider

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// ErrNotPresent is returned by a probe when the optional framework it
// binds to is not part of the process's linked code, or is present in an
// incompatible shape (a required entry point is missing or mistyped).
// The registry treats it like any other probe failure: the candidate is
// skipped and resolution falls through to the next one.
var ErrNotPresent = errors.New("jobid: framework not present")

// Registration describes a candidate provider: a name for diagnostics, a
// priority (higher is tried first; candidates with equal priority are
// tried in registration order), and a probe that constructs the provider.
//
// The probe runs at most a handful of times, at first lookup. A probe
// that returns an error declares the candidate unusable in this process;
// probes must not panic.
type Registration struct {
	Name     string
	Priority int
	Probe    func() (Provider, error)
}

// Registry holds candidate registrations and resolves them to a single
// provider. All methods are safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	regs []Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a candidate. It panics on a registration with an empty
// name or nil probe (programming error).
func (r *Registry) Register(reg Registration) {
	if reg.Name == "" {
		panic("provider: registration with empty name")
	}
	if reg.Probe == nil {
		panic(fmt.Sprintf("provider: registration %q with nil probe", reg.Name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.regs = append(r.regs, reg)
	slices.SortStableFunc(r.regs, func(a, b Registration) int {
		return b.Priority - a.Priority
	})
}

// Resolve probes candidates in priority order and returns the first
// provider whose probe succeeds, together with its registration name.
// Probe failures are logged at Debug and never surfaced. When every
// probe fails, or none is registered, Resolve returns Absent under the
// name "absent".
func (r *Registry) Resolve(logger *slog.Logger) (string, Provider) {
	r.mu.RLock()
	regs := slices.Clone(r.regs)
	r.mu.RUnlock()

	for _, reg := range regs {
		p, err := reg.Probe()
		if err != nil {
			logger.Debug("jobid: provider probe failed",
				slog.String("provider", reg.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		return reg.Name, p
	}
	return "absent", Absent{}
}
