// Package baggage reads the job identifier from OpenTelemetry baggage.
//
// Blank-import it to register the carrier with jobid:
//
//	import _ "github.com/xraph/jobid/baggage"
//
// Upstream services that want their job identity to flow across process
// boundaries put it in the "job.id" baggage member; this package makes it
// visible to jobid.FromContext on the receiving side.
package baggage

import (
	"context"

	otelbaggage "go.opentelemetry.io/otel/baggage"

	"github.com/xraph/jobid"
)

// Member is the baggage member key carrying the job identifier.
const Member = "job.id"

func init() {
	jobid.RegisterCarrier("otel-baggage", FromContext)
}

// FromContext extracts the job identifier from the baggage on ctx.
// Returns ok=false when the member is absent or empty.
func FromContext(ctx context.Context) (string, bool) {
	v := otelbaggage.FromContext(ctx).Member(Member).Value()
	return v, v != ""
}
