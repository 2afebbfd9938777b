package ban

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "customer_ban",
	Name:      "transition_total",
	Help:      "Number of ban transitions, by kind",
}, []string{"kind"})

var integrityViolationTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "customer_ban",
	Name:      "integrity_violation_total",
	Help:      "Number of customers found with more than one active ban",
})

var sweepRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "customer_ban",
	Name:      "sweep_run_total",
	Help:      "Number of expiry sweep runs, by result",
}, []string{"result"})

var sweepExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "customer_ban",
	Name:      "sweep_expired_total",
	Help:      "Number of bans expired by the sweep",
})

var sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "customer_ban",
	Name:      "sweep_duration_seconds",
	Help:      "Duration of expiry sweep runs",
	Buckets:   prometheus.DefBuckets,
})

const (
	transitionImpose = "impose"
	transitionLift   = "lift"
	transitionExpire = "expire"
)
