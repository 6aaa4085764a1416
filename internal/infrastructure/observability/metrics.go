package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Счётчик вызовов методов репозитория
	RepositoryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repository_calls_total",
			Help: "Total number of repository method calls",
		},
		[]string{"method", "status"},
	)

	// Гистограмма времени выполнения запросов
	RepositoryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repository_duration_seconds",
			Help:    "Duration of repository method calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	Transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_transitions_total",
			Help: "Committed status transitions by entity and target status",
		},
		[]string{"entity", "to"},
	)

	registerOnce sync.Once
)

func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RepositoryCalls, RepositoryDuration, Transitions)
	})
}
