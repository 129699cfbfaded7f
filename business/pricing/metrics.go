package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FormulasTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navigator_formulas_total",
			Help: "Count of generated pricing formulas by formula type.",
		},
		[]string{"formula_type"},
	)
)

func init() {
	prometheus.MustRegister(FormulasTotal)
}
