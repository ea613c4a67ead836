package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meta_ads_http_requests_total",
			Help: "Total de requisições HTTP por rota e status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meta_ads_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	GraphAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meta_ads_graph_api_requests_total",
			Help: "Total de chamadas à Graph API por operação e resultado",
		},
		[]string{"operation", "outcome"},
	)

	GraphAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meta_ads_graph_api_request_duration_seconds",
			Help:    "Duração das chamadas à Graph API em segundos",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meta_ads_job_runs_total",
			Help: "Execuções dos jobs agendados por resultado",
		},
		[]string{"job", "result"},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meta_ads_job_duration_seconds",
			Help:    "Duração das execuções dos jobs agendados",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 300},
		},
		[]string{"job"},
	)

	MetricsUpsertedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meta_ads_metrics_upserted_total",
			Help: "Linhas de métricas gravadas pela sincronização",
		},
	)

	OAuthConnectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meta_ads_oauth_connections_total",
			Help: "Callbacks de OAuth por resultado",
		},
		[]string{"result"},
	)
)

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveGraphAPICall(operation, outcome string, elapsed time.Duration) {
	GraphAPIRequestsTotal.WithLabelValues(operation, outcome).Inc()
	GraphAPIRequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func ObserveJobRun(job string, err error, elapsed time.Duration) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	JobRunsTotal.WithLabelValues(job, result).Inc()
	JobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
}

// Handler expõe o registro padrão no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
