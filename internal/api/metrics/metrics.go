// Package metrics defines and registers all custom Prometheus metrics for the
// CitySphere API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "citysphere"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successful account creations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "wrong_password", or "no_user"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TokenRejectionsTotal counts requests rejected at the bearer-token gate.
// Label:
//   - reason: "missing_header", "expired", or "invalid"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// ── AI metrics ────────────────────────────────────────────────────────────────

// AIRequestsTotal counts calls to the generative-AI provider.
// Labels:
//   - kind: "generate", "label", or "transcribe"
//   - outcome: "ok", "error", or "cache_hit"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of generative-AI requests, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// AIRequestDuration measures provider round-trip time.
// Label:
//   - kind: "generate", "label", or "transcribe"
var AIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_request_duration_seconds",
		Help:      "Duration of generative-AI provider calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ── Labeling pipeline metrics ─────────────────────────────────────────────────

// LabelJobsTotal counts processed labeling jobs.
// Label:
//   - result: "ok", "dedup_skip", or "error"
var LabelJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "label_jobs_total",
		Help:      "Total number of image labeling jobs, by result.",
	},
	[]string{"result"},
)

// LabelQueueDepth tracks pending jobs per dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var LabelQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "label_queue_depth",
		Help:      "Current number of labeling jobs pending in each worker channel.",
	},
	[]string{"worker_id"},
)
