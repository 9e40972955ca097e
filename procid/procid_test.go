package procid_test

import (
	"strings"
	"testing"

	"github.com/xraph/jobid"
	"github.com/xraph/jobid/procid"
)

func TestID_StableAndPrefixed(t *testing.T) {
	first := procid.ID()
	if !strings.HasPrefix(first, procid.Prefix+"_") {
		t.Errorf("ID() = %q, want prefix %q", first, procid.Prefix+"_")
	}
	for i := 0; i < 5; i++ {
		if got := procid.ID(); got != first {
			t.Errorf("ID() call %d = %q, want stable %q", i, got, first)
		}
	}
}

func TestInstall_ProvidesProcessIdentity(t *testing.T) {
	// Nothing is registered on import; identity only appears after an
	// explicit Install. This test owns the process-wide state of its
	// test binary.
	procid.Install()

	id, ok := jobid.Current()
	if !ok || id != procid.ID() {
		t.Errorf("Current() = (%q, %v), want (%q, true)", id, ok, procid.ID())
	}
}
