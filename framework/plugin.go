package framework

import (
	"fmt"
	"plugin"

	"github.com/xraph/jobid/provider"
)

// symbolTable is the subset of plugin.Plugin used for symbol binding,
// split out so binding is testable without building a shared object.
type symbolTable interface {
	Lookup(name string) (plugin.Symbol, error)
}

// OpenPlugin opens a Go plugin and binds framework entry points from it
// by symbol name. The context symbol must have type
// func() (any, error) and the identifier symbol func(any) (string, error).
//
// Any failure — the plugin cannot be opened, a symbol is missing, or a
// symbol has the wrong type — is reported as provider.ErrNotPresent so a
// registry probe built on OpenPlugin falls through cleanly.
func OpenPlugin(path, contextSymbol, idSymbol string) (*Provider[any], error) {
	plg, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open plugin %s: %v", provider.ErrNotPresent, path, err)
	}
	return FromPlugin(plg, contextSymbol, idSymbol)
}

// FromPlugin binds framework entry points from an already-opened plugin.
// See OpenPlugin for the required symbol types.
func FromPlugin(plg *plugin.Plugin, contextSymbol, idSymbol string) (*Provider[any], error) {
	return fromTable(plg, contextSymbol, idSymbol)
}

func fromTable(table symbolTable, contextSymbol, idSymbol string) (*Provider[any], error) {
	var entry Entrypoints[any]

	sym, err := table.Lookup(contextSymbol)
	if err != nil {
		return nil, fmt.Errorf("%w: symbol %s: %v", provider.ErrNotPresent, contextSymbol, err)
	}
	ctxFn, ok := sym.(func() (any, error))
	if !ok {
		return nil, fmt.Errorf("%w: symbol %s has type %T, want func() (any, error)",
			provider.ErrNotPresent, contextSymbol, sym)
	}
	entry.Context = ctxFn

	sym, err = table.Lookup(idSymbol)
	if err != nil {
		return nil, fmt.Errorf("%w: symbol %s: %v", provider.ErrNotPresent, idSymbol, err)
	}
	idFn, ok := sym.(func(any) (string, error))
	if !ok {
		return nil, fmt.Errorf("%w: symbol %s has type %T, want func(any) (string, error)",
			provider.ErrNotPresent, idSymbol, sym)
	}
	entry.JobID = idFn

	return New(entry)
}
