// Package metrics defines and registers the custom Prometheus metrics of the
// reservation API. All metrics are registered with the default registry on
// package initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reservations"

// AccountsRegisteredTotal counts created accounts.
// Label:
//   - role: "user" or "admin"
var AccountsRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

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

// ReservationOperationsTotal counts successful reservation changes.
// Labels:
//   - operation: "create", "update" or "delete"
//   - role: role of the acting account
var ReservationOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_operations_total",
		Help:      "Total number of reservation changes, by operation and acting role.",
	},
	[]string{"operation", "role"},
)
