// SPDX-License-Identifier: MIT

// Package teaching builds the post-run walkthrough that explains how the
// optimal route is found.
//
// A Walkthrough has three steps:
//
//  1. FindAll lists every simple route in discovery order.
//  2. FilterByTime shows the same routes, marking the ones over the limit.
//  3. PickCheapest ranks the feasible routes by energy and flags the first.
//
// Render prints a walkthrough as plain text for terminals and logs.
package teaching
