package framework

import "plugin"

type lookupFunc func(name string) (plugin.Symbol, error)

func (f lookupFunc) Lookup(name string) (plugin.Symbol, error) { return f(name) }

// FromTable exposes symbol binding for tests, which cannot build a real
// shared object inside the test binary.
func FromTable(lookup func(name string) (plugin.Symbol, error), contextSymbol, idSymbol string) (*Provider[any], error) {
	return fromTable(lookupFunc(lookup), contextSymbol, idSymbol)
}
