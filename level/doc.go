// SPDX-License-Identifier: MIT

// Package level holds the jungle level dataset: node layout, vines (edges),
// the storm time limit and the start and goal trees.
//
// The four built-in levels are embedded as YAML and decoded on first use.
// Custom level files share the same shape and can be parsed with Parse or
// LoadFile, and watched for edits with a Loader.
//
// Validate checks a level for structural problems (unknown node references,
// duplicate IDs, negative weights, missing start or goal). Solvable separately
// reports levels whose goal cannot be reached within the time limit; those
// still load, and every run on them is lost.
//
// Levels unlock in order: the first is always open and each later one opens
// once its predecessor is completed (Unlocked, Next).
package level
