// Package metrics defines and registers all custom Prometheus metrics for the
// forms API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "forms"

// MutationsTotal counts successful mutations of persisted state.
// Labels:
//   - resource: "form", "question", or "answer"
//   - operation: "create", "update", or "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful create/update/delete operations.",
	},
	[]string{"resource", "operation"},
)

// OwnershipRejectionsTotal counts update/delete attempts that matched no row,
// i.e. the target id was absent or owned by another user. The two cases are
// indistinguishable at this layer.
// Labels:
//   - resource: "form", "question", or "answer"
//   - operation: "update" or "delete"
var OwnershipRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_rejections_total",
		Help:      "Total number of mutations rejected by the id+owner predicate.",
	},
	[]string{"resource", "operation"},
)

// CacheLookupsTotal counts list-cache decisions.
// Labels:
//   - resource: "form", "question", or "answer"
//   - result: "hit", "miss", or "error"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of read-cache lookups, labelled by result.",
	},
	[]string{"resource", "result"},
)
