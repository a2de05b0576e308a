// Package metrics defines and registers all custom Prometheus metrics for
// the listings API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts newly registered accounts.
// Label:
//   - group: role tier of the created account ("user" or "admin")
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by group.",
	},
	[]string{"group"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// AdvertisementsCreatedTotal counts newly created listings.
var AdvertisementsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advertisements_created_total",
		Help:      "Total number of advertisements created.",
	},
)

// ListingSearchesTotal counts executed listing searches.
var ListingSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_searches_total",
		Help:      "Total number of listing search requests served.",
	},
)

// ListingCacheTotal counts single-listing cache decisions.
// Label:
//   - result: "hit" or "miss"
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
