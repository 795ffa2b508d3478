package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_orders",
			Subsystem: "http",
			Name:      "orders_created_total",
			Help:      "Total number of successfully created orders",
		},
	)

	orderCreationFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_orders",
			Subsystem: "http",
			Name:      "order_creation_failed_total",
			Help:      "Total number of failed order creation attempts",
		},
	)

	paymentIntentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_orders",
			Subsystem: "http",
			Name:      "payment_intents_created_total",
			Help:      "Total number of payment intents created ahead of checkout",
		},
	)
)

var (
	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "delivery_orders",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Total number of webhook events accepted, by event type",
		},
		[]string{"type"},
	)

	webhookSignatureFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_orders",
			Subsystem: "webhook",
			Name:      "signature_failures_total",
			Help:      "Total number of webhook requests rejected due to bad signature",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		orderCreationFailed,
		paymentIntentsCreated,

		webhookEvents,
		webhookSignatureFailures,
	)
}
