// Package metrics defines and registers all custom Prometheus metrics for
// the user portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at import time; the
// echoprometheus middleware in the router adds per-request HTTP metrics on
// top of these.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts admin login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts successfully created user records.
// Label:
//   - source: "register" (public self-registration) or "admin"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user records created, by source.",
	},
	[]string{"source"},
)

// UsersDeletedTotal counts user records removed through the management API.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user records deleted by an admin.",
	},
)

// NicknameConflictsTotal counts create/update attempts rejected because the
// normalized nickname was already taken.
var NicknameConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nickname_conflicts_total",
		Help:      "Total number of requests rejected with a duplicate nickname.",
	},
)
