// Package prom exposes iocounter counts as Prometheus metrics.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/smlrepo/iocounter"
)

// NewCounterFunc returns a Prometheus counter whose value is read from c at
// collection time. It observes the count only; the wrapper's counting
// semantics are unaffected.
func NewCounterFunc(opts prometheus.CounterOpts, c iocounter.Counter) prometheus.CounterFunc {
	return prometheus.NewCounterFunc(opts, func() float64 {
		return float64(c.Count())
	})
}
