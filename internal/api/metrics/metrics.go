// Package metrics defines and registers all custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ---------------------------------------------------------------------------
// Sweep metrics
// ---------------------------------------------------------------------------

// NotificationsCreatedTotal counts notifications emitted by the obligation
// sweep.
// Labels:
//   - type: source-derived tag (e.g. "invoice_overdue")
//   - severity: "info", "warning", "error"
var NotificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications created by the obligation sweep.",
	},
	[]string{"type", "severity"},
)

// SweepSourceFailuresTotal counts obligation-source reads that failed and
// were skipped while the remaining sources kept running.
// Label:
//   - source: "reminders", "invoices", "projects", or "hosting"
var SweepSourceFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_source_failures_total",
		Help:      "Total number of sweep source reads that failed.",
	},
	[]string{"source"},
)

// SweepDuration measures how long one full sweep for an agency takes.
var SweepDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Duration of a full obligation sweep for a single agency.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ---------------------------------------------------------------------------
// Scope metrics
// ---------------------------------------------------------------------------

// ScopeCacheTotal counts scope cache lookups.
// Label:
//   - result: "hit" or "miss"
var ScopeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scope_cache_total",
		Help:      "Total number of scope cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ScopeDeniedTotal counts resolutions that ended in the fail-closed denied
// state: a non-super-admin principal with no resolvable agency.
var ScopeDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scope_denied_total",
		Help:      "Total number of scope resolutions that ended fail-closed with no tenant access.",
	},
)
