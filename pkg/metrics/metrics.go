// Package metrics exposes the marketplace's Prometheus instruments.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checkout counts checkout outcomes and order creation.
type Checkout struct {
	Attempts      *prometheus.CounterVec
	OrdersCreated prometheus.Counter
	Duration      prometheus.Histogram
}

// NewCheckout registers the checkout instruments on reg (the default
// registerer when nil).
func NewCheckout(reg prometheus.Registerer) *Checkout {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Checkout{
		Attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mandi",
			Subsystem: "checkout",
			Name:      "attempts_total",
			Help:      "Checkout attempts by result.",
		}, []string{"result"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mandi",
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Orders durably created by checkout.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mandi",
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Wall time of one checkout call.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.Attempts, c.OrdersCreated, c.Duration)
	return c
}

// Observe records one finished checkout. result is one of success,
// partial, failure.
func (c *Checkout) Observe(result string) {
	c.Attempts.WithLabelValues(result).Inc()
}

func (c *Checkout) ObserveDuration(start time.Time) {
	c.Duration.Observe(time.Since(start).Seconds())
}

func (c *Checkout) AddOrders(n int) {
	c.OrdersCreated.Add(float64(n))
}

// Handler serves the default registry for the /metrics listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
