// Package metrics defines and registers all custom Prometheus metrics for the
// dashboard service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Resolution metrics ────────────────────────────────────────────────────────

// RoleResolutionsTotal counts dashboard role decisions.
// Labels:
//   - role: the resolved role ("admin", "creator", "business")
//   - tier: the precedence tier that decided it (e.g. "profile", "email")
var RoleResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_resolutions_total",
		Help:      "Total number of dashboard role resolutions, by role and deciding tier.",
	},
	[]string{"role", "tier"},
)

// ProfileCacheTotal counts profile-role cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var ProfileCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_total",
		Help:      "Total number of profile role cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditDedupTotal counts deduplication decisions on resolution audit entries.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new entry, stored)
var AuditDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dedup_total",
		Help:      "Total number of audit deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// AuditErrorsTotal counts audit entries that failed to be stored.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of resolution audit entries that failed processing.",
	},
	[]string{"reason"},
)

// AuditDroppedTotal counts audit entries discarded because a worker queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of resolution audit entries dropped on a full worker queue or left unrecorded at shutdown.",
	},
)

// AuditQueueDepth tracks the current number of entries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts newly created accounts.
// Label:
//   - role: the metadata role chosen at registration, or "none"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by metadata role.",
	},
	[]string{"role"},
)
