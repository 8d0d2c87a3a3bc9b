// Package metrics defines and registers all custom Prometheus metrics for the
// commerce API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "qkart"

// CartMutationsTotal counts successful cart mutations.
// Label:
//   - op: "add", "update", or "remove"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of successful cart mutations, by operation.",
	},
	[]string{"op"},
)

// CheckoutsTotal counts checkout attempts by outcome.
// Label:
//   - result: "success", "rejected" (business-rule violation), or "error"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts, by result.",
	},
	[]string{"result"},
)

// CheckoutAmount observes the wallet amount debited by successful checkouts.
var CheckoutAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_amount",
		Help:      "Distribution of amounts debited by successful checkouts.",
		Buckets:   prometheus.ExponentialBuckets(10, 2.5, 8), // 10 .. ~15k
	},
)

// CheckoutDuration measures checkout latency end-to-end, including the
// storage transaction.
var CheckoutDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_duration_seconds",
		Help:      "Duration of checkout from precondition checks to commit.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ProductCacheTotal counts product cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProductCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_total",
		Help:      "Total number of product cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
