// Package procid tags telemetry with a generated process-scoped
// identifier when no job framework is detectable.
//
// Unlike the carrier packages it is strictly opt-in: nothing is
// registered on import, because the default contract of jobid.Current is
// to report absence when no framework is present. Applications that would
// rather correlate records by process than not at all call Install once
// at startup.
//
// The identifier is a TypeID with prefix "proc" (e.g.
// "proc_01h2xcejqtf2nbrexx3vqjhp41"), generated once and stable for the
// process lifetime. It identifies the process, not a job, and carries the
// same non-uniqueness caveats as any other tag.
package procid

import (
	"sync"

	"go.jetify.com/typeid/v2"

	"github.com/xraph/jobid"
	"github.com/xraph/jobid/provider"
)

// Prefix is the TypeID prefix for process identifiers.
const Prefix = "proc"

// PriorityFallback places the process identifier below every framework
// provider, so a detectable framework always wins resolution.
const PriorityFallback = -100

var current = sync.OnceValue(func() string {
	tid, err := typeid.Generate(Prefix)
	if err != nil {
		// Generate cannot fail for a fixed valid prefix.
		return ""
	}
	return tid.String()
})

// ID returns the stable process-scoped identifier.
func ID() string {
	return current()
}

// Install registers the process-identity provider at PriorityFallback.
// Call it before the first jobid.Current; like any registration it has no
// effect once the selector has resolved.
func Install() {
	jobid.Register(provider.Registration{
		Name:     "procid",
		Priority: PriorityFallback,
		Probe: func() (provider.Provider, error) {
			if ID() == "" {
				return nil, provider.ErrNotPresent
			}
			return provider.Func(func() (string, bool) {
				return ID(), true
			}), nil
		},
	})
}
