// Package metrics defines the custom Prometheus metrics for the employee
// task API. It is the single source of truth for metric names, labels, and
// help strings; registration happens implicitly through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskapi"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "inactive"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the authorization layer.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected during authorization.",
	},
	[]string{"reason"},
)

// EmployeesMutatedTotal counts employee write operations.
// Label:
//   - op: "create", "update", or "delete"
var EmployeesMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_mutated_total",
		Help:      "Total number of employee mutations, labelled by operation.",
	},
	[]string{"op"},
)

// TasksMutatedTotal counts task write operations.
// Label:
//   - op: "create", "update", "delete", "assign", or "unassign"
var TasksMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_mutated_total",
		Help:      "Total number of task mutations, labelled by operation.",
	},
	[]string{"op"},
)
