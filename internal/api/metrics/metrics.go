// Package metrics defines the custom Prometheus metrics for the course
// catalog API. It is the single source of truth for metric names, labels,
// and help strings; collectors register themselves with the default
// registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_credential" (no/empty bearer token) or
//     "invalid_token" (malformed, badly signed or expired)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during authentication.",
	},
	[]string{"reason"},
)

// AuthorizationDeniedTotal counts mutations rejected by the ownership
// policy after a successful authentication.
var AuthorizationDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of mutations denied by the ownership-or-admin policy.",
	},
)

// DomainEventsTotal counts domain events drained by the dispatcher workers.
// Label:
//   - kind: the event kind (e.g. "course_created", "login_failed")
var DomainEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domain_events_total",
		Help:      "Total number of domain events processed by the dispatcher.",
	},
	[]string{"kind"},
)
