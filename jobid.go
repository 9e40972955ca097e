package jobid

import (
	"log/slog"
	"sync/atomic"

	"github.com/xraph/jobid/provider"
)

// Observer receives lookup lifecycle notifications. Implementations must
// be safe for concurrent use and must not panic.
type Observer interface {
	// OnResolved fires once, when the process-wide provider is chosen.
	// name is the winning registration's name, or "absent".
	OnResolved(name string)
	// OnLookup fires on every Current call with the lookup outcome.
	OnLookup(found bool)
}

// resolution pairs the resolved provider with the registration name it
// came from, so observers can report which candidate won.
type resolution struct {
	name string
	p    provider.Provider
}

var (
	registry = provider.NewRegistry()

	resolved atomic.Pointer[resolution]
	logger   atomic.Pointer[slog.Logger]
	observer atomic.Pointer[observerSlot]
)

type observerSlot struct{ o Observer }

var discard = slog.New(slog.DiscardHandler)

// Register contributes a candidate provider to the process-wide registry.
// Integration packages call this from init so that linking them into the
// binary is what makes their framework detectable. Registrations made
// after the first Current call have no effect: the resolved provider is
// never re-probed.
func Register(reg provider.Registration) {
	registry.Register(reg)
}

// SetLogger sets the logger for suppressed probe and invocation
// diagnostics, emitted at Debug. The default discards them. A nil logger
// is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

// SetObserver installs an observer for resolution and lookup events,
// replacing any previous one. Install it before the first Current call to
// observe resolution.
func SetObserver(o Observer) {
	observer.Store(&observerSlot{o: o})
}

// Current returns the identifier of the job the current process is
// executing on behalf of, or ok=false when none can be determined.
//
// The first call resolves a provider by probing registered candidates in
// priority order, falling back to absence when every probe fails; the
// outcome is cached for the remaining process lifetime and never
// downgraded or re-probed. Concurrent first calls may each probe
// independently; a single compare-and-swap installs the winner, so every
// caller observes one consistent resolution. Current never panics and
// never returns an error.
func Current() (string, bool) {
	r := resolved.Load()
	if r == nil {
		candidate := resolve()
		if resolved.CompareAndSwap(nil, candidate) {
			if o := loadObserver(); o != nil {
				o.OnResolved(candidate.name)
			}
		}
		r = resolved.Load()
	}

	id, ok := r.p.JobID()
	if o := loadObserver(); o != nil {
		o.OnLookup(ok)
	}
	return id, ok
}

func resolve() *resolution {
	name, p := registry.Resolve(log())
	return &resolution{name: name, p: p}
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}

func loadObserver() Observer {
	if slot := observer.Load(); slot != nil {
		return slot.o
	}
	return nil
}
