package conflator

import (
	"github.com/uber-go/tally/v4"
)

type metrics struct {
	inits       tally.Counter
	merges      tally.Counter
	mergeErrors tally.Counter
	resets      tally.Counter
	dirtyKeys   tally.Gauge
	entries     tally.Gauge
}

func newMetrics(scope tally.Scope) *metrics {
	return &metrics{
		inits:       scope.Counter("conflator_inits"),
		merges:      scope.Counter("conflator_merges"),
		mergeErrors: scope.Counter("conflator_merge_errors"),
		resets:      scope.Counter("conflator_resets"),
		dirtyKeys:   scope.Gauge("conflator_dirty_keys"),
		entries:     scope.Gauge("conflator_entries"),
	}
}

func (m *metrics) report(dirty int, entries int) {
	m.dirtyKeys.Update(float64(dirty))
	m.entries.Update(float64(entries))
}
