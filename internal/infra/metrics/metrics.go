// Package metrics exposes Prometheus collectors for profile resolution.
package metrics

import (
	"sync"

	"locator/internal/domain/entity"
	"locator/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "locator"

// Shared profile cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	once sync.Once

	openStateEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "open_state_evaluations_total",
			Help:      "Count of open-state evaluations by result.",
		},
		[]string{"result"},
	)

	sharedProfileCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shared_profile_cache_lookups_total",
			Help:      "Count of shared profile cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(openStateEvaluations, sharedProfileCache)
	})
}

// IncOpenState counts one open-state evaluation.
func IncOpenState(state entity.OpenState) {
	openStateEvaluations.WithLabelValues(state.String()).Inc()
}

// IncSharedProfileCache counts one cache lookup; result is CacheHit, CacheMiss or CacheError.
func IncSharedProfileCache(result string) {
	sharedProfileCache.WithLabelValues(result).Inc()
}

type openStateRecorder struct{}

// NewOpenStateObserver returns an observer that counts evaluations. It registers
// the collectors on first use.
func NewOpenStateObserver() service.OpenStateObserver {
	Register()

	return openStateRecorder{}
}

func (openStateRecorder) ObserveOpenState(state entity.OpenState) {
	IncOpenState(state)
}
