package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	almaRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alma_requests_total",
			Help: "Calls made to the Alma API by operation and outcome.",
		},
		[]string{"op", "status"},
	)

	availabilityChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "availability_checks_total",
			Help: "Per-bib availability checks by result.",
		},
		[]string{"result"},
	)

	calendarBuilds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "calendar_builds_total",
			Help: "Calendar pages built.",
		},
	)

	loans = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loans_total",
			Help: "Loan mutations by action.",
		},
		[]string{"action"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(almaRequests, availabilityChecks, calendarBuilds, loans)
	})
}

func IncAlmaRequest(op, status string) {
	almaRequests.WithLabelValues(op, status).Inc()
}

func IncAvailabilityCheck(result string) {
	availabilityChecks.WithLabelValues(result).Inc()
}

func IncCalendarBuild() {
	calendarBuilds.Inc()
}

func IncLoan(action string) {
	loans.WithLabelValues(action).Inc()
}
