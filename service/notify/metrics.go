package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deliveryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "customer_ban",
	Subsystem: "notify",
	Name:      "delivery_total",
	Help:      "Number of send attempts by channel and result",
}, []string{"channel", "result"})

var deliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "customer_ban",
	Subsystem: "notify",
	Name:      "delivery_duration_seconds",
	Help:      "Duration of send attempts by channel",
	Buckets:   prometheus.DefBuckets,
}, []string{"channel"})

var deliveryLogErrorTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "customer_ban",
	Subsystem: "notify",
	Name:      "delivery_log_error_total",
	Help:      "Number of delivery statuses that could not be written to the delivery log",
})

var notificationGiveUpTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "customer_ban",
	Subsystem: "notify",
	Name:      "give_up_total",
	Help:      "Number of notifications abandoned after all retries",
}, []string{"channel", "template"})
