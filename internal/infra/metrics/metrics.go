// Package metrics exposes Prometheus counters for the payment flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PaymentsCreated   prometheus.Counter
	PaymentsConfirmed prometheus.Counter
	PaymentsExpired   prometheus.Counter

	WebhooksProcessed prometheus.Counter
	WebhooksIgnored   prometheus.Counter
	WebhooksFailed    prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PaymentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendapay_payments_created_total",
			Help: "Number of payment intents created at the gateway.",
		}),
		PaymentsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendapay_payments_confirmed_total",
			Help: "Number of payments reconciled into CONFIRMED.",
		}),
		PaymentsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendapay_payments_expired_total",
			Help: "Number of payments discarded because the expiry window elapsed.",
		}),
		WebhooksProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendapay_webhooks_processed_total",
			Help: "Number of webhook notifications fully reconciled.",
		}),
		WebhooksIgnored: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendapay_webhooks_ignored_total",
			Help: "Number of webhook notifications acknowledged without action.",
		}),
		WebhooksFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendapay_webhooks_failed_total",
			Help: "Number of webhook notifications that failed reconciliation.",
		}),
	}
}
