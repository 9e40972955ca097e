// Package observability provides lookup metrics for jobid. Metrics
// implements the jobid.Observer hooks to count provider resolutions and
// lookup hits and misses; install it with jobid.SetObserver.
package observability
