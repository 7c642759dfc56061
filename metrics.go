package easydb

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mikeschinkel/go-easydb/rules"
)

// Metrics counts schema column checks by table, column type and result.
type Metrics struct {
	checks *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "easydb",
				Name:      "column_checks_total",
				Help:      "Total number of column values checked against a schema",
			},
			[]string{"table", "column_type", "result"},
		),
	}
	if reg == nil {
		return m, nil
	}
	if err := reg.Register(m.checks); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(table string, ct rules.ColumnType, r rules.Result) {
	if m == nil {
		return
	}
	result := "valid"
	if !r.OK() {
		result = "invalid"
	}
	m.checks.WithLabelValues(table, string(ct), result).Inc()
}
