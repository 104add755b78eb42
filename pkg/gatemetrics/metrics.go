package gatemetrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultAdmitted = "admitted"
	resultRejected = "rejected"
)

// Checker is anything that answers admission checks, such as
// *onlyevery.Gate or *onlyevery.Site.
type Checker interface {
	Check(interval time.Duration) bool
}

// Metrics holds the counters shared by every gate it wraps.
type Metrics struct {
	checks *prometheus.CounterVec
}

// New registers the gate counters with reg under namespace.
// If reg is nil, prometheus.DefaultRegisterer is used. Registering twice on
// the same registry reuses the existing collector.
func New(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gate",
		Name:      "checks_total",
		Help:      "Admission checks by gate and result.",
	}, []string{"gate", "result"})

	if err := reg.Register(checks); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("register gate metrics: %w", err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register gate metrics: %w", err)
		}
		checks = existing
	}

	return &Metrics{checks: checks}, nil
}

// Wrap returns c instrumented under the given gate name.
func (m *Metrics) Wrap(name string, c Checker) *Gate {
	return &Gate{
		inner:    c,
		admitted: m.checks.WithLabelValues(name, resultAdmitted),
		rejected: m.checks.WithLabelValues(name, resultRejected),
	}
}

// Gate is a Checker that counts every decision of the checker it wraps.
type Gate struct {
	inner    Checker
	admitted prometheus.Counter
	rejected prometheus.Counter
}

// Check returns the wrapped checker's decision unchanged.
func (g *Gate) Check(interval time.Duration) bool {
	if g.inner.Check(interval) {
		g.admitted.Inc()
		return true
	}
	g.rejected.Inc()
	return false
}

// Do calls fn when Check admits and reports whether it ran.
func (g *Gate) Do(interval time.Duration, fn func()) bool {
	if !g.Check(interval) {
		return false
	}
	fn()
	return true
}
