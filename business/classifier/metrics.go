package classifier

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navigator_classifications_total",
			Help: "Count of business model classifications by resulting model.",
		},
		[]string{"model"},
	)
)

func init() {
	prometheus.MustRegister(ClassificationsTotal)
}
