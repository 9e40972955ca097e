package observability

import (
	gu "github.com/xraph/go-utils/metrics"

	"github.com/xraph/jobid"
)

// Compile-time interface check.
var _ jobid.Observer = (*Metrics)(nil)

// Metrics counts lookup activity via go-utils MetricFactory. Install it
// with jobid.SetObserver before the first jobid.Current call to capture
// the resolution event.
type Metrics struct {
	Resolved gu.Counter
	Hits     gu.Counter
	Misses   gu.Counter
}

// NewMetrics creates a Metrics observer using a default metrics collector.
func NewMetrics() *Metrics {
	return NewMetricsWithFactory(gu.NewMetricsCollector("jobid/observability"))
}

// NewMetricsWithFactory creates a Metrics observer with the provided
// MetricFactory. Use fapp.Metrics() in forge extensions, or
// gu.NewMetricsCollector for testing.
func NewMetricsWithFactory(factory gu.MetricFactory) *Metrics {
	return &Metrics{
		Resolved: factory.Counter("jobid.resolved"),
		Hits:     factory.Counter("jobid.lookup.hit"),
		Misses:   factory.Counter("jobid.lookup.miss"),
	}
}

// OnResolved implements jobid.Observer.
func (m *Metrics) OnResolved(_ string) {
	m.Resolved.Inc()
}

// OnLookup implements jobid.Observer.
func (m *Metrics) OnLookup(found bool) {
	if found {
		m.Hits.Inc()
	} else {
		m.Misses.Inc()
	}
}
