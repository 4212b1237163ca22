package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the checkout HTTP handler
	CheckoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shop_checkout_latency_seconds",
		Help:    "Latency of the checkout endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Orders committed to the store
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shop_orders_created_total",
		Help: "Total number of orders created",
	})

	// Operator notification mails that could not be delivered
	OrderEmailFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shop_order_email_failures_total",
		Help: "Total number of order notification emails that failed to send",
	})
)

func Init() {
	prometheus.MustRegister(
		CheckoutDuration,
		OrdersCreated,
		OrderEmailFailures,
	)
}
