// SPDX-License-Identifier: MIT

// Package monkeypath is a puzzle engine about a monkey racing a storm.
//
// Jaggu swings through trees along one-way vines. Each vine costs energy
// and takes time. The storm arrives after a fixed time limit, so the task
// is to reach home using as little energy as possible without running out
// of time.
//
// The repository is organised as one package per concern:
//
//	core/          edges, adjacency and neighbour lookups
//	paths/         simple-path enumeration, time filter, optimal selection
//	constrained/   label-setting solver used to cross-check and validate levels
//	level/         embedded level dataset, YAML loader and hot reload
//	game/          a player's run: moves, undo, verdict
//	teaching/      the three-stage walkthrough explaining the optimum
//	progress/      completed levels, in memory or SQLite
//	metrics/       Prometheus counters for sessions
//	builder/       synthetic edge lists for tests and benchmarks
//	cmd/monkeypath  the command-line front end
//
// Quick ASCII example (First Swing, energy/time on each vine):
//
//	    A ──7/3──▶ B ──3/2──▶ D
//	    │          ▲          ▲
//	   2/4        1/2         │
//	    ▼          │          │
//	    C ─────────┴───6/3────┘
//
// C has two vines, one to B and one to D.
// With a limit of 10 the optimum is A→C→B→D for 6 energy.
package monkeypath
