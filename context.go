package jobid

import (
	"context"
	"sync"
)

// Carrier extracts a job identifier from a context. Carriers back
// FromContext with request- or execution-scoped identity (OpenTelemetry
// baggage, forge scope) that the process-wide providers cannot see.
// A carrier must never panic and returns ok=false when the context
// carries nothing usable.
type Carrier func(ctx context.Context) (string, bool)

type carrierEntry struct {
	name string
	c    Carrier
}

var carriers struct {
	mu   sync.RWMutex
	list []carrierEntry
}

// RegisterCarrier adds a context carrier, consulted by FromContext in
// registration order. Carrier subpackages call this from init. It panics
// on an empty name or nil carrier (programming error).
func RegisterCarrier(name string, c Carrier) {
	if name == "" {
		panic("jobid: carrier with empty name")
	}
	if c == nil {
		panic("jobid: carrier " + name + " is nil")
	}

	carriers.mu.Lock()
	defer carriers.mu.Unlock()
	carriers.list = append(carriers.list, carrierEntry{name: name, c: c})
}

// FromContext returns the job identifier scoped to ctx, consulting
// registered carriers in registration order and falling back to the
// process-wide Current when none yields a value. Like Current, it never
// panics and never returns an error.
func FromContext(ctx context.Context) (string, bool) {
	carriers.mu.RLock()
	list := carriers.list
	carriers.mu.RUnlock()

	for _, e := range list {
		if id, ok := e.c(ctx); ok {
			return id, true
		}
	}
	return Current()
}
