package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simpay_ipn_notifications_total",
			Help: "IPN notifications by event type and outcome",
		},
		[]string{"type", "outcome"},
	)

	NotificationRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simpay_ipn_rejections_total",
			Help: "IPN notifications rejected per gate",
		},
		[]string{"reason"},
	)

	PaidAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "simpay_paid_amounts",
			Help:    "Distribution of confirmed payment amounts",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)

	CheckoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simpay_checkouts_total",
			Help: "Outbound transaction creations by outcome",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		NotificationsTotal,
		NotificationRejections,
		PaidAmounts,
		CheckoutsTotal,
	)
}
