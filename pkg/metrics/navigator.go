package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the assessment HTTP handler
	AssessmentLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "navigator_assessment_latency_seconds",
		Help:    "Latency of the full assessment handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of assessment requests served
	AssessmentRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "navigator_assessment_requests_total",
		Help: "Total number of assessment requests",
	})
)

func Init() {
	prometheus.MustRegister(
		AssessmentLatency,
		AssessmentRequests,
	)
}
