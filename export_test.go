package jobid

import "github.com/xraph/jobid/provider"

// Reset clears all process-wide lookup state so each test starts from an
// unresolved selector with an empty registry.
func Reset() {
	registry = provider.NewRegistry()
	resolved.Store(nil)
	logger.Store(nil)
	observer.Store(nil)

	carriers.mu.Lock()
	carriers.list = nil
	carriers.mu.Unlock()
}

// ResolvedName reports the name of the resolved provider, or "" while
// unresolved.
func ResolvedName() string {
	r := resolved.Load()
	if r == nil {
		return ""
	}
	return r.name
}
