// SPDX-License-Identifier: MIT

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/monkeypath/game"
)

const namespace = "monkeypath"

// Collector holds the game counters. It is safe for concurrent use.
type Collector struct {
	moves       *prometheus.CounterVec
	runs        *prometheus.CounterVec
	enumerated  *prometheus.CounterVec
	enumeration *prometheus.HistogramVec
}

var _ game.Recorder = (*Collector)(nil)

// NewCollector registers the game metrics with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Vine swings attempted, by level and result",
		}, []string{"level", "result"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs, by level and outcome",
		}, []string{"level", "outcome"}),
		enumerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paths_enumerated_total",
			Help:      "Simple paths found while analysing levels",
		}, []string{"level"}),
		enumeration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "enumeration_seconds",
			Help:      "Time spent enumerating and ranking the paths of a level",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7), // 1µs to 1s
		}, []string{"level"}),
	}
}

// RecordAnalysis implements game.Recorder.
func (c *Collector) RecordAnalysis(levelID, found int, elapsed time.Duration) {
	lv := strconv.Itoa(levelID)
	c.enumerated.WithLabelValues(lv).Add(float64(found))
	c.enumeration.WithLabelValues(lv).Observe(elapsed.Seconds())
}

// RecordMove implements game.Recorder.
func (c *Collector) RecordMove(levelID int, accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	c.moves.WithLabelValues(strconv.Itoa(levelID), result).Inc()
}

// RecordOutcome implements game.Recorder.
func (c *Collector) RecordOutcome(levelID int, outcome game.Outcome) {
	c.runs.WithLabelValues(strconv.Itoa(levelID), outcome.String()).Inc()
}
