package baggage_test

import (
	"context"
	"testing"

	otelbaggage "go.opentelemetry.io/otel/baggage"

	"github.com/xraph/jobid"
	jobbaggage "github.com/xraph/jobid/baggage"
)

func ctxWithMember(t *testing.T, key, value string) context.Context {
	t.Helper()
	m, err := otelbaggage.NewMember(key, value)
	if err != nil {
		t.Fatalf("NewMember(%q, %q) error = %v", key, value, err)
	}
	b, err := otelbaggage.New(m)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return otelbaggage.ContextWithBaggage(context.Background(), b)
}

func TestFromContext_ReadsJobIDMember(t *testing.T) {
	ctx := ctxWithMember(t, jobbaggage.Member, "app-123")

	id, ok := jobbaggage.FromContext(ctx)
	if !ok || id != "app-123" {
		t.Errorf("FromContext() = (%q, %v), want (%q, true)", id, ok, "app-123")
	}
}

func TestFromContext_NoBaggageIsAbsent(t *testing.T) {
	if id, ok := jobbaggage.FromContext(context.Background()); ok || id != "" {
		t.Errorf("FromContext() = (%q, %v), want (\"\", false)", id, ok)
	}
}

func TestFromContext_OtherMembersIgnored(t *testing.T) {
	ctx := ctxWithMember(t, "tenant.id", "t-1")

	if id, ok := jobbaggage.FromContext(ctx); ok || id != "" {
		t.Errorf("FromContext() = (%q, %v), want (\"\", false)", id, ok)
	}
}

func TestCarrierRegisteredOnImport(t *testing.T) {
	ctx := ctxWithMember(t, jobbaggage.Member, "job-42")

	id, ok := jobid.FromContext(ctx)
	if !ok || id != "job-42" {
		t.Errorf("jobid.FromContext() = (%q, %v), want (%q, true)", id, ok, "job-42")
	}
}
