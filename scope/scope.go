// Package scope reads the job identifier from forge multi-tenant scope.
//
// When the forge framework carries a scope on the context (via
// forge.WithScope), its application identifier serves as the job tag.
// Blank-import this package to register the carrier with jobid:
//
//	import _ "github.com/xraph/jobid/scope"
package scope

import (
	"context"

	"github.com/xraph/forge"

	"github.com/xraph/jobid"
)

func init() {
	jobid.RegisterCarrier("forge-scope", FromContext)
}

// FromContext extracts the application identifier from the forge scope on
// ctx. Returns ok=false when no scope is present or it carries no
// application identifier.
func FromContext(ctx context.Context) (string, bool) {
	s, ok := forge.ScopeFrom(ctx)
	if !ok {
		return "", false
	}
	appID := s.AppID()
	return appID, appID != ""
}
