// SPDX-License-Identifier: MIT

// Package game models one player's run through a level: the vines swung so
// far, energy and storm time spent, and the final verdict.
//
// A Session starts at the level's start tree. Move follows a vine from the
// current tree (rejected with ErrNoVine when none exists), Undo steps back one
// vine, Reset starts over. The run is lost as soon as time spent exceeds the
// limit and won on reaching the goal within it; the time check comes first.
//
// Result compares a finished run with the level optimum computed by package
// paths: Optimal when the player's energy equals the cheapest feasible cost,
// Suboptimal when they won but a cheaper route exists, Failed when the storm
// caught them.
//
// Sessions are safe for concurrent use.
package game
