// Package gatemetrics counts gate decisions with Prometheus.
//
//	m, err := gatemetrics.New(prometheus.DefaultRegisterer, "ingest")
//	if err != nil {
//		return err
//	}
//
//	flush := m.Wrap("flush", onlyevery.New())
//	if flush.Check(time.Second) {
//		// ...
//	}
//
// Exposes ingest_gate_checks_total{gate="flush",result="admitted"|"rejected"}.
// Gate names become label values, so keep them to a small fixed set.
package gatemetrics
