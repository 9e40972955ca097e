// Package provider defines the pluggable lookup strategy behind jobid.
//
// A Provider answers one question: "what job is this process running on
// behalf of, if any?" Integration packages contribute candidates to a
// Registry as probe factories; the first candidate whose probe succeeds
// becomes the provider for the life of the process, with Absent as the
// terminal fallback.
package provider
