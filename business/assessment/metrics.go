package assessment

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AssessmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navigator_assessments_total",
			Help: "Count of completed assessments by classified model and quadrant.",
		},
		[]string{"model", "quadrant"},
	)
)

func init() {
	prometheus.MustRegister(AssessmentsTotal)
}
