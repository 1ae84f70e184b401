// Package telemetry provides thin wrappers over go-metrics counters so
// keeper code can record state-transition metrics without carrying the
// metrics API surface.
package telemetry

import (
	metrics "github.com/hashicorp/go-metrics"
)

// NewLabel creates a new metrics label.
func NewLabel(name, value string) metrics.Label {
	return metrics.Label{Name: name, Value: value}
}

// IncrCounter increments a counter identified by the key path.
func IncrCounter(val float32, keys ...string) {
	metrics.IncrCounter(keys, val)
}

// IncrCounterWithLabels increments a labeled counter identified by the
// key path.
func IncrCounterWithLabels(keys []string, val float32, labels []metrics.Label) {
	metrics.IncrCounterWithLabels(keys, val, labels)
}
