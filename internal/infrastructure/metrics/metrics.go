package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediaferry_tasks_total",
		Help: "Tasks that reached a terminal state, by kind and outcome",
	}, []string{"kind", "outcome"})

	TaskRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediaferry_task_retries_total",
		Help: "Failed attempts that were rescheduled",
	}, []string{"kind"})

	TaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mediaferry_task_duration_seconds",
		Help:    "Duration of a single task attempt",
		Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
	}, []string{"kind"})

	PendingJobs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mediaferry_pending_jobs",
		Help: "Jobs waiting for the user to confirm a path",
	})

	TitleLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediaferry_title_lookups_total",
		Help: "Title lookups by catalog and result",
	}, []string{"catalog", "result"})

	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mediaferry_webhook_events_total",
		Help: "Decoded webhook updates by event type",
	}, []string{"type"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
