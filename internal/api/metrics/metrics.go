// Package metrics defines and registers all custom Prometheus metrics for the
// incident reporting API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reportes"

// ReportsCreatedTotal counts accepted report submissions.
// Label:
//   - categoria: "Hardware" or "Software"
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of incident reports created, by categoria.",
	},
	[]string{"categoria"},
)

// ReportsRejectedTotal counts submissions rejected before persistence.
// Label:
//   - reason: short description of the rejection (e.g. "invalid_vocabulary", "rate_limited")
var ReportsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_rejected_total",
		Help:      "Total number of report submissions rejected before persistence.",
	},
	[]string{"reason"},
)

// NotificationsSentTotal counts notification emails delivered successfully.
var NotificationsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of new-report notification emails delivered.",
	},
)

// NotificationErrorsTotal counts notification jobs that failed.
// Label:
//   - reason: "send_failed" or "queue_full"
var NotificationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_errors_total",
		Help:      "Total number of notification jobs that failed, by reason.",
	},
	[]string{"reason"},
)

// AuthFailuresTotal counts rejected requests on protected routes.
// Label:
//   - kind: "missing" (no credential presented) or "invalid" (bad/expired token)
//
// Both map to 401 for the caller; the label keeps the two observable apart.
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected bearer-token checks, by kind.",
	},
	[]string{"kind"},
)
