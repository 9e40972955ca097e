// Package jobid provides a best-effort identifier for the job the current
// process is executing on behalf of, so telemetry and logging code can tag
// emitted records without a hard dependency on any job framework.
//
// jobid is a lookup, not a job system. It does not start, own, track, or
// terminate jobs; it does not guarantee the returned identifier is unique
// (frameworks typically let users set it); and it does not propagate the
// identifier anywhere — that is the caller's responsibility.
//
// # Quick Start
//
//	if id, ok := jobid.Current(); ok {
//	    logger.Info("upload complete", slog.String("job_id", id))
//	}
//
// # Providers
//
// Identity comes from providers contributed by integration packages,
// usually from their init functions, so linking an integration into the
// binary is what makes its framework detectable:
//
//	import _ "example.com/runnerkit/jobidprovider"
//
// The first call to Current probes registered candidates in priority
// order and caches the winner for the life of the process; when no
// candidate binds, every call reports absence. Lookup never fails from
// the caller's perspective: internal probe and invocation failures are
// absorbed (and optionally logged, see SetLogger), never surfaced.
//
// Context-scoped identity (OpenTelemetry baggage, forge scope) is read
// through FromContext and the carrier subpackages.
package jobid
