// Package telemetry stamps job identity onto telemetry and log records.
//
// All helpers read identity through jobid.FromContext, so they see both
// context-scoped carriers and the process-wide provider, and all of them
// degrade to no-ops when no identifier is available.
package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xraph/jobid"
)

// Key is the attribute key under which the job identifier is recorded,
// on spans and on log records alike.
const Key = "job.id"

// Attribute returns the job identifier as an OpenTelemetry attribute.
// Returns ok=false when no identifier is available.
func Attribute(ctx context.Context) (attribute.KeyValue, bool) {
	id, ok := jobid.FromContext(ctx)
	if !ok {
		return attribute.KeyValue{}, false
	}
	return attribute.String(Key, id), true
}

// Annotate records the job identifier on the span active in ctx. It is a
// no-op when no identifier is available or no recording span is active.
func Annotate(ctx context.Context) {
	kv, ok := Attribute(ctx)
	if !ok {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(kv)
}

// LogAttr returns the job identifier as a slog attribute.
// Returns ok=false when no identifier is available.
func LogAttr(ctx context.Context) (slog.Attr, bool) {
	id, ok := jobid.FromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String(Key, id), true
}
