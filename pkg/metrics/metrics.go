package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	WebhooksReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_webhooks_received_total",
			Help: "Total number of inbound webhooks by topic and outcome (count)",
		},
		[]string{"topic", "status"},
	)

	ConversionEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_conversion_events_total",
			Help: "Total number of conversion events dispatched to the Graph API (count)",
		},
		[]string{"event_name", "status"},
	)

	DeliveryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_capi_delivery_duration_ms",
			Help:    "Duration of outbound Conversions API calls in milliseconds",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		},
		[]string{"status"},
	)

	SignatureFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_signature_failures_total",
			Help: "Total number of webhooks rejected for a bad HMAC signature (count)",
		},
	)
)

var registerOnce sync.Once

func RegisterRelayMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(WebhooksReceivedTotal)
		prometheus.MustRegister(ConversionEventsTotal)
		prometheus.MustRegister(DeliveryDuration)
		prometheus.MustRegister(SignatureFailuresTotal)
	})
}

func ObserveDeliveryDuration(duration time.Duration, status string) {
	DeliveryDuration.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}
