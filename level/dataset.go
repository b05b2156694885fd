// SPDX-License-Identifier: MIT

package level

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var builtinYAML []byte

var (
	builtinOnce   sync.Once
	builtinLevels []Level
)

// Builtin returns a fresh copy of the embedded levels, ordered by ID.
// It panics if the embedded document is malformed, which the tests rule out.
func Builtin() []Level {
	builtinOnce.Do(func() {
		ls, err := Parse(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("level: embedded dataset: %v", err))
		}
		builtinLevels = ls
	})

	return clone(builtinLevels)
}

// Parse decodes a levels document and validates every level in it.
// The result is sorted by level ID.
func Parse(data []byte) ([]Level, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("level: parse: %w", err)
	}
	if len(doc.Levels) == 0 {
		return nil, ErrNoLevels
	}

	seen := make(map[int]struct{}, len(doc.Levels))
	for _, l := range doc.Levels {
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("%w: level %d", ErrDuplicateID, l.ID)
		}
		seen[l.ID] = struct{}{}
		if err := Validate(l); err != nil {
			return nil, err
		}
	}
	sort.SliceStable(doc.Levels, func(i, j int) bool { return doc.Levels[i].ID < doc.Levels[j].ID })

	return doc.Levels, nil
}

// LoadFile reads and parses a levels document from disk.
func LoadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	ls, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ls, nil
}

// ByID finds a level by its ID.
func ByID(levels []Level, id int) (Level, bool) {
	for _, l := range levels {
		if l.ID == id {
			return l, true
		}
	}

	return Level{}, false
}

// Next returns the level following id in slice order, if any.
func Next(levels []Level, id int) (Level, bool) {
	for i, l := range levels {
		if l.ID == id && i+1 < len(levels) {
			return levels[i+1], true
		}
	}

	return Level{}, false
}

// clone deep-copies the node and edge slices so callers cannot mutate the cache.
func clone(in []Level) []Level {
	out := make([]Level, len(in))
	for i, l := range in {
		l.Nodes = append([]Node(nil), l.Nodes...)
		l.Edges = append(l.Edges[:0:0], l.Edges...)
		out[i] = l
	}

	return out
}
