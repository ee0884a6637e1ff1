package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "healthcalc"

var (
	once sync.Once

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Completed calculations by BMI category.",
		},
		[]string{"category"},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Rejected inputs by offending field.",
		},
		[]string{"field"},
	)

	planFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diet_plan_fallbacks_total",
			Help:      "Diet plan lookups that fell back to the Normal plan.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "code"},
	)

	bmiObserved = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bmi",
			Help:      "Distribution of computed BMI values.",
			Buckets:   []float64{16, 18.5, 20, 23, 25, 27.5, 30, 35, 40},
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(calculations, validationFailures, planFallbacks, httpRequests, bmiObserved)
	})
}

func IncCalculation(category string) {
	calculations.WithLabelValues(category).Inc()
}

func ObserveBMI(bmi float64) {
	bmiObserved.Observe(bmi)
}

func IncValidationFailure(field string) {
	if field == "" {
		field = "unknown"
	}
	validationFailures.WithLabelValues(field).Inc()
}

func IncPlanFallback() {
	planFallbacks.Inc()
}

func IncHTTPRequest(route, code string) {
	httpRequests.WithLabelValues(route, code).Inc()
}
