// SPDX-License-Identifier: MIT

// Package metrics exports game telemetry to Prometheus.
//
// Collector implements game.Recorder, so a session reports into it directly:
//
//	reg := prometheus.NewRegistry()
//	c := metrics.NewCollector(reg)
//	s := game.NewSession(lvl, game.WithRecorder(c))
//
// All series are namespaced "monkeypath" and labelled by level:
//
//   - moves_total{level,result}: swings, result is "accepted" or "rejected".
//   - runs_total{level,outcome}: finished runs by outcome.
//   - paths_enumerated_total{level}: routes found by level analysis.
//   - enumeration_seconds{level}: time spent analysing a level.
package metrics
