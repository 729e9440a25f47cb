// Package metrics defines and registers all custom Prometheus metrics for the
// recetas API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recetas"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "unknown_email", "bad_password", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "success", "duplicate", "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts token verifications at the auth middleware.
// Label:
//   - result: "ok", "missing", "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// GuardDenialsTotal counts authorization guard rejections after a valid
// token, i.e. role/ownership failures that map to 403.
// Label:
//   - operation: "recipe_update", "recipe_delete", "user_delete",
//     "profile_update", "comment_delete"
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of protected operations rejected by the authorization guard.",
	},
	[]string{"operation"},
)
