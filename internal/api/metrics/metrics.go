// Package metrics defines and registers all custom Prometheus metrics for
// the admin API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adminapi"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "not_found" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "created", "conflict" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// EntityWritesTotal counts successful writes on the command side.
// Labels:
//   - entity: "user" or "office"
//   - operation: "create", "update" or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful entity writes, by entity and operation.",
	},
	[]string{"entity", "operation"},
)

// CacheLookupsTotal counts read-side cache decisions.
// Label:
//   - result: "hit" or "miss"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of entity cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
