// Package metrics defines the custom Prometheus metrics for the CMS API. It
// is the single source of truth for metric names, labels, and help strings.
//
// Call Register once at startup with the registry served on /metrics.
// Collectors are created unregistered so tests can use throwaway registries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "cmsapi"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRequestsTotal counts register and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success", "conflict", "invalid", "bad_request" or "error"
var AuthRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of register/login attempts, by outcome.",
	},
	[]string{"operation", "result"},
)

// TokenRejectionsTotal counts requests stopped by the auth gate.
// Label:
//   - reason: "missing" or "invalid"
var TokenRejectionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by the token gate.",
	},
	[]string{"reason"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactSubmissionsTotal counts inquiry submissions by processing outcome.
// Label:
//   - result: "stored", "logged", "dropped" or "error"
var ContactSubmissionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact form submissions processed.",
	},
	[]string{"result"},
)

// ContactQueueDepth tracks submissions waiting in each dispatcher worker channel.
var ContactQueueDepth = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "contact_queue_depth",
		Help:      "Current number of submissions pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Storage metrics ───────────────────────────────────────────────────────────

// StoreBackend is 1 for the credential store backend serving this process.
// Label:
//   - driver: "mongo", "postgres" or "memory"
var StoreBackend = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_backend",
		Help:      "Credential store backend in use (1 = active).",
	},
	[]string{"driver"},
)

// Register adds the custom collectors plus the Go runtime and process
// collectors to reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		AuthRequestsTotal,
		TokenRejectionsTotal,
		ContactSubmissionsTotal,
		ContactQueueDepth,
		StoreBackend,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
