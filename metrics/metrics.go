package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var namespace = "fridagar"
var subsystem = "calendar"

var (
	// YearCacheHitsTotal counts holiday set lookups served from the per-year cache
	YearCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "year_cache_hits_total",
		Help:      "Number of holiday set lookups served from the per-year cache",
	})

	// YearCacheMissesTotal counts holiday sets computed from the rule table
	YearCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "year_cache_misses_total",
		Help:      "Number of holiday sets computed from the rule table",
	})

	// RuleCollisionsTotal counts rules dropped because another rule produced
	// the same date in the same year
	RuleCollisionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rule_collisions_total",
		Help:      "Number of day entries dropped on a date collision",
	})

	// WorkdayStepsTotal counts calendar days visited by workday walks,
	// partitioned by whether the day counted as worked
	WorkdayStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workday_steps_total",
		Help:      "Calendar days visited by workday walks partitioned by kind",
	}, []string{"kind"})
)
